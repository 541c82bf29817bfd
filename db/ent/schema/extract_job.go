package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/enerjitakip/fatura-extract/constants"
	"github.com/enerjitakip/fatura-extract/db/ent/schema/utils"

	"github.com/google/uuid"
)

type ExtractJob struct{ ent.Schema }

func (ExtractJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extract_job"},
	}
}

func (ExtractJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs
		field.UUID("file_id", uuid.UUID{}),
		field.UUID("profile_id", uuid.UUID{}),
		field.UUID("invoice_id", uuid.UUID{}).Optional().Nillable(),
		field.String("format").NotEmpty().
			Validate(utils.EnumValidator(constants.FileTypes...)),
		field.Time("started_at").Default(time.Now),
		field.Time("finished_at").Optional().Nillable(),
		field.String("status").Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Float32("extraction_confidence").Optional().Nillable(),
		field.Bool("needs_review").Default(false),
		field.String("ocr_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).
			Optional(),
		field.String("engine_name").Optional().Nillable(),
		field.JSON("engine_params", json.RawMessage{}).
			Optional(),
	}
}

func (ExtractJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", InvoiceFile.Type).
			Ref("jobs").
			Field("file_id").
			Unique().
			Required(),
		edge.From("invoice", Invoice.Type).
			Ref("jobs").
			Field("invoice_id").
			Unique(),
	}
}

func (ExtractJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "status", "started_at"),
		index.Fields("file_id"),
		index.Fields("invoice_id"),
	}
}
