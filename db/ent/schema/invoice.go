package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("profile_id", uuid.UUID{}),
		field.String("invoice_number").NotEmpty(),
		field.Time("invoice_date").
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("due_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("provider").Optional().Nillable(),
		field.String("invoice_type").Optional().Nillable(),
		field.String("unit").Optional().Nillable(),
		field.String("period").Optional().Nillable(),
		// kept as the verbatim OCR token; meter readings carry locale separators
		field.String("consumption").Optional().Nillable(),
		field.String("account_number").Optional().Nillable(),
		field.String("installation_number").Optional().Nillable(),
		field.String("customer_number").Optional().Nillable(),
		field.String("full_name").Optional().Nillable(),
		field.String("address").Optional().Nillable(),
		field.String("consumer_group").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE invoice -> MANY files
		edge.To("files", InvoiceFile.Type),
		// ONE invoice -> MANY jobs
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		// upserts are keyed on this pair
		index.Fields("profile_id", "invoice_number").Unique(),
		index.Fields("profile_id", "invoice_date"),
	}
}
