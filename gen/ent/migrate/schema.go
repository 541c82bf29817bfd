// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "engine_name", Type: field.TypeString, Nullable: true},
		{Name: "engine_params", Type: field.TypeJSON, Nullable: true},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_invoices_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_invoice_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[14]},
				RefColumns: []*schema.Column{InvoiceFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[1], ExtractJobColumns[5], ExtractJobColumns[3]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[14]},
			},
			{
				Name:    "extractjob_invoice_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "invoice_number", Type: field.TypeString},
		{Name: "invoice_date", Type: field.TypeTime, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "due_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "provider", Type: field.TypeString, Nullable: true},
		{Name: "invoice_type", Type: field.TypeString, Nullable: true},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "period", Type: field.TypeString, Nullable: true},
		{Name: "consumption", Type: field.TypeString, Nullable: true},
		{Name: "account_number", Type: field.TypeString, Nullable: true},
		{Name: "installation_number", Type: field.TypeString, Nullable: true},
		{Name: "customer_number", Type: field.TypeString, Nullable: true},
		{Name: "full_name", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "consumer_group", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_profile_id_invoice_number",
				Unique:  true,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[2]},
			},
			{
				Name:    "invoice_profile_id_invoice_date",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[3]},
			},
		},
	}
	// InvoiceFilesColumns holds the columns for the "invoice_files" table.
	InvoiceFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "invoice_id", Type: field.TypeUUID, Nullable: true},
	}
	// InvoiceFilesTable holds the schema information for the "invoice_files" table.
	InvoiceFilesTable = &schema.Table{
		Name:       "invoice_files",
		Columns:    InvoiceFilesColumns,
		PrimaryKey: []*schema.Column{InvoiceFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoice_files_invoices_files",
				Columns:    []*schema.Column{InvoiceFilesColumns[8]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoicefile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{InvoiceFilesColumns[1], InvoiceFilesColumns[3]},
			},
			{
				Name:    "invoicefile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{InvoiceFilesColumns[1], InvoiceFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		InvoicesTable,
		InvoiceFilesTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = InvoicesTable
	ExtractJobTable.ForeignKeys[1].RefTable = InvoiceFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	InvoiceFilesTable.ForeignKeys[0].RefTable = InvoicesTable
	InvoiceFilesTable.Annotation = &entsql.Annotation{
		Table: "invoice_files",
	}
}
