package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// OCRResult holds the cleaned OCR text plus the fields parsed out of it.
type OCRResult struct {
	ent.Schema
}

func (OCRResult) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_results"},
	}
}

func (OCRResult) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("organization_id", uuid.UUID{}),
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		// Cleaned text, truncated to the storage cap before insert.
		field.Text("results").Default(""),
		field.Float("total_amount").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.String("invoice_number").Optional().Nillable().MaxLen(100),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (OCRResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("ocr_results").
			Field("document_id").
			Required().
			Unique(),
		edge.From("vendor", Vendor.Type).
			Ref("ocr_results").
			Field("vendor_id").
			Unique(),
		edge.To("transactions", Transaction.Type),
	}
}
