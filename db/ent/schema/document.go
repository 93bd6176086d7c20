package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// Document is the ingested receipt/invoice: immutable once created. The blob
// itself lives in object storage; document_url records the reference.
type Document struct {
	ent.Schema
}

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("organization_id", uuid.UUID{}),
		field.UUID("uploaded_by", uuid.UUID{}),
		field.String("name").NotEmpty().MaxLen(255),
		field.String("document_url").Optional().Nillable(),
		field.String("doc_type").Default("receipt"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("documents").
			Field("organization_id").
			Required().
			Unique(),
		edge.From("uploader", User.Type).
			Ref("documents").
			Field("uploaded_by").
			Required().
			Unique(),
		edge.To("ocr_results", OCRResult.Type),
	}
}
