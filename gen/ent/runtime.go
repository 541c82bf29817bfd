// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/enerjitakip/fatura-extract/db/ent/schema"
	"github.com/enerjitakip/fatura-extract/gen/ent/extractjob"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoice"
	"github.com/enerjitakip/fatura-extract/gen/ent/invoicefile"
	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	extractjobFields := schema.ExtractJob{}.Fields()
	_ = extractjobFields
	// extractjobDescFormat is the schema descriptor for format field.
	extractjobDescFormat := extractjobFields[4].Descriptor()
	// extractjob.FormatValidator is a validator for the "format" field. It is called by the builders before save.
	extractjob.FormatValidator = func() func(string) error {
		validators := extractjobDescFormat.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(format string) error {
			for _, fn := range fns {
				if err := fn(format); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// extractjobDescStartedAt is the schema descriptor for started_at field.
	extractjobDescStartedAt := extractjobFields[5].Descriptor()
	// extractjob.DefaultStartedAt holds the default value on creation for the started_at field.
	extractjob.DefaultStartedAt = extractjobDescStartedAt.Default.(func() time.Time)
	// extractjobDescNeedsReview is the schema descriptor for needs_review field.
	extractjobDescNeedsReview := extractjobFields[10].Descriptor()
	// extractjob.DefaultNeedsReview holds the default value on creation for the needs_review field.
	extractjob.DefaultNeedsReview = extractjobDescNeedsReview.Default.(bool)
	// extractjobDescID is the schema descriptor for id field.
	extractjobDescID := extractjobFields[0].Descriptor()
	// extractjob.DefaultID holds the default value on creation for the id field.
	extractjob.DefaultID = extractjobDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescInvoiceNumber is the schema descriptor for invoice_number field.
	invoiceDescInvoiceNumber := invoiceFields[2].Descriptor()
	// invoice.InvoiceNumberValidator is a validator for the "invoice_number" field. It is called by the builders before save.
	invoice.InvoiceNumberValidator = invoiceDescInvoiceNumber.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[17].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[18].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicefileFields := schema.InvoiceFile{}.Fields()
	_ = invoicefileFields
	// invoicefileDescSourcePath is the schema descriptor for source_path field.
	invoicefileDescSourcePath := invoicefileFields[3].Descriptor()
	// invoicefile.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	invoicefile.SourcePathValidator = invoicefileDescSourcePath.Validators[0].(func(string) error)
	// invoicefileDescContentHash is the schema descriptor for content_hash field.
	invoicefileDescContentHash := invoicefileFields[4].Descriptor()
	// invoicefile.ContentHashValidator is a validator for the "content_hash" field. It is called by the builders before save.
	invoicefile.ContentHashValidator = invoicefileDescContentHash.Validators[0].(func([]byte) error)
	// invoicefileDescFilename is the schema descriptor for filename field.
	invoicefileDescFilename := invoicefileFields[5].Descriptor()
	// invoicefile.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoicefile.FilenameValidator = invoicefileDescFilename.Validators[0].(func(string) error)
	// invoicefileDescFileExt is the schema descriptor for file_ext field.
	invoicefileDescFileExt := invoicefileFields[6].Descriptor()
	// invoicefile.FileExtValidator is a validator for the "file_ext" field. It is called by the builders before save.
	invoicefile.FileExtValidator = invoicefileDescFileExt.Validators[0].(func(string) error)
	// invoicefileDescFileSize is the schema descriptor for file_size field.
	invoicefileDescFileSize := invoicefileFields[7].Descriptor()
	// invoicefile.FileSizeValidator is a validator for the "file_size" field. It is called by the builders before save.
	invoicefile.FileSizeValidator = invoicefileDescFileSize.Validators[0].(func(int) error)
	// invoicefileDescUploadedAt is the schema descriptor for uploaded_at field.
	invoicefileDescUploadedAt := invoicefileFields[8].Descriptor()
	// invoicefile.DefaultUploadedAt holds the default value on creation for the uploaded_at field.
	invoicefile.DefaultUploadedAt = invoicefileDescUploadedAt.Default.(func() time.Time)
	// invoicefileDescID is the schema descriptor for id field.
	invoicefileDescID := invoicefileFields[0].Descriptor()
	// invoicefile.DefaultID holds the default value on creation for the id field.
	invoicefile.DefaultID = invoicefileDescID.Default.(func() uuid.UUID)
}
