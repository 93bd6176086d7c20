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

// Transaction is created once per ingested document; this core never updates
// or deletes one.
type Transaction struct {
	ent.Schema
}

func (Transaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "transactions"},
	}
}

func (Transaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("organization_id", uuid.UUID{}),
		field.UUID("ocr_result_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("vendor_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("category_id", uuid.UUID{}),
		field.String("description").Default("").MaxLen(255),
		field.Float("amount").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.Time("invoice_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Enum("tx_type").
			Values("expense", "income").
			Default("expense").
			StorageKey("type"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Transaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("transactions").
			Field("organization_id").
			Required().
			Unique(),
		edge.From("ocr_result", OCRResult.Type).
			Ref("transactions").
			Field("ocr_result_id").
			Unique(),
		edge.From("vendor", Vendor.Type).
			Ref("transactions").
			Field("vendor_id").
			Unique(),
		edge.From("category", Category.Type).
			Ref("transactions").
			Field("category_id").
			Required().
			Unique(),
	}
}
