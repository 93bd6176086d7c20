package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/db/ent/schema/utils"
	"github.com/hackybara/expense-tracker/internal/entity"
)

// Forecast caches a computed cash-flow projection. Rows older than the
// freshness window are ignored, never deleted.
type Forecast struct {
	ent.Schema
}

func (Forecast) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "forecasts"},
	}
}

func (Forecast) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("organization_id", uuid.UUID{}),
		field.Int("horizon").Default(8),
		field.String("granularity").Default("week").
			Validate(utils.EnumValidator("week", "month")),
		field.JSON("series", []entity.ForecastPoint{}),
		field.Time("computed_at").Default(time.Now),
		field.Time("created_at").Default(time.Now),
	}
}

func (Forecast) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("organization", Organization.Type).
			Ref("forecasts").
			Field("organization_id").
			Required().
			Unique(),
	}
}
