// Code generated by ent, DO NOT EDIT.

package forecast

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/hackybara/expense-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldLTE(FieldID, id))
}

// OrganizationID applies equality check predicate on the "organization_id" field. It's identical to OrganizationIDEQ.
func OrganizationID(v uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldOrganizationID, v))
}

// Horizon applies equality check predicate on the "horizon" field. It's identical to HorizonEQ.
func Horizon(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldHorizon, v))
}

// Granularity applies equality check predicate on the "granularity" field. It's identical to GranularityEQ.
func Granularity(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldGranularity, v))
}

// ComputedAt applies equality check predicate on the "computed_at" field. It's identical to ComputedAtEQ.
func ComputedAt(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldComputedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldCreatedAt, v))
}

// OrganizationIDEQ applies the EQ predicate on the "organization_id" field.
func OrganizationIDEQ(v uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldOrganizationID, v))
}

// OrganizationIDNEQ applies the NEQ predicate on the "organization_id" field.
func OrganizationIDNEQ(v uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldNEQ(FieldOrganizationID, v))
}

// OrganizationIDIn applies the In predicate on the "organization_id" field.
func OrganizationIDIn(vs ...uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldIn(FieldOrganizationID, vs...))
}

// OrganizationIDNotIn applies the NotIn predicate on the "organization_id" field.
func OrganizationIDNotIn(vs ...uuid.UUID) predicate.Forecast {
	return predicate.Forecast(sql.FieldNotIn(FieldOrganizationID, vs...))
}

// HorizonEQ applies the EQ predicate on the "horizon" field.
func HorizonEQ(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldHorizon, v))
}

// HorizonNEQ applies the NEQ predicate on the "horizon" field.
func HorizonNEQ(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldNEQ(FieldHorizon, v))
}

// HorizonIn applies the In predicate on the "horizon" field.
func HorizonIn(vs ...int) predicate.Forecast {
	return predicate.Forecast(sql.FieldIn(FieldHorizon, vs...))
}

// HorizonNotIn applies the NotIn predicate on the "horizon" field.
func HorizonNotIn(vs ...int) predicate.Forecast {
	return predicate.Forecast(sql.FieldNotIn(FieldHorizon, vs...))
}

// HorizonGT applies the GT predicate on the "horizon" field.
func HorizonGT(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldGT(FieldHorizon, v))
}

// HorizonGTE applies the GTE predicate on the "horizon" field.
func HorizonGTE(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldGTE(FieldHorizon, v))
}

// HorizonLT applies the LT predicate on the "horizon" field.
func HorizonLT(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldLT(FieldHorizon, v))
}

// HorizonLTE applies the LTE predicate on the "horizon" field.
func HorizonLTE(v int) predicate.Forecast {
	return predicate.Forecast(sql.FieldLTE(FieldHorizon, v))
}

// GranularityEQ applies the EQ predicate on the "granularity" field.
func GranularityEQ(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldGranularity, v))
}

// GranularityNEQ applies the NEQ predicate on the "granularity" field.
func GranularityNEQ(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldNEQ(FieldGranularity, v))
}

// GranularityIn applies the In predicate on the "granularity" field.
func GranularityIn(vs ...string) predicate.Forecast {
	return predicate.Forecast(sql.FieldIn(FieldGranularity, vs...))
}

// GranularityNotIn applies the NotIn predicate on the "granularity" field.
func GranularityNotIn(vs ...string) predicate.Forecast {
	return predicate.Forecast(sql.FieldNotIn(FieldGranularity, vs...))
}

// GranularityGT applies the GT predicate on the "granularity" field.
func GranularityGT(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldGT(FieldGranularity, v))
}

// GranularityGTE applies the GTE predicate on the "granularity" field.
func GranularityGTE(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldGTE(FieldGranularity, v))
}

// GranularityLT applies the LT predicate on the "granularity" field.
func GranularityLT(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldLT(FieldGranularity, v))
}

// GranularityLTE applies the LTE predicate on the "granularity" field.
func GranularityLTE(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldLTE(FieldGranularity, v))
}

// GranularityContains applies the Contains predicate on the "granularity" field.
func GranularityContains(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldContains(FieldGranularity, v))
}

// GranularityHasPrefix applies the HasPrefix predicate on the "granularity" field.
func GranularityHasPrefix(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldHasPrefix(FieldGranularity, v))
}

// GranularityHasSuffix applies the HasSuffix predicate on the "granularity" field.
func GranularityHasSuffix(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldHasSuffix(FieldGranularity, v))
}

// GranularityEqualFold applies the EqualFold predicate on the "granularity" field.
func GranularityEqualFold(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldEqualFold(FieldGranularity, v))
}

// GranularityContainsFold applies the ContainsFold predicate on the "granularity" field.
func GranularityContainsFold(v string) predicate.Forecast {
	return predicate.Forecast(sql.FieldContainsFold(FieldGranularity, v))
}

// ComputedAtEQ applies the EQ predicate on the "computed_at" field.
func ComputedAtEQ(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldComputedAt, v))
}

// ComputedAtNEQ applies the NEQ predicate on the "computed_at" field.
func ComputedAtNEQ(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldNEQ(FieldComputedAt, v))
}

// ComputedAtIn applies the In predicate on the "computed_at" field.
func ComputedAtIn(vs ...time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldIn(FieldComputedAt, vs...))
}

// ComputedAtNotIn applies the NotIn predicate on the "computed_at" field.
func ComputedAtNotIn(vs ...time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldNotIn(FieldComputedAt, vs...))
}

// ComputedAtGT applies the GT predicate on the "computed_at" field.
func ComputedAtGT(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldGT(FieldComputedAt, v))
}

// ComputedAtGTE applies the GTE predicate on the "computed_at" field.
func ComputedAtGTE(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldGTE(FieldComputedAt, v))
}

// ComputedAtLT applies the LT predicate on the "computed_at" field.
func ComputedAtLT(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldLT(FieldComputedAt, v))
}

// ComputedAtLTE applies the LTE predicate on the "computed_at" field.
func ComputedAtLTE(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldLTE(FieldComputedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Forecast {
	return predicate.Forecast(sql.FieldLTE(FieldCreatedAt, v))
}

// HasOrganization applies the HasEdge predicate on the "organization" edge.
func HasOrganization() predicate.Forecast {
	return predicate.Forecast(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, OrganizationTable, OrganizationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasOrganizationWith applies the HasEdge predicate on the "organization" edge with a given conditions (other predicates).
func HasOrganizationWith(preds ...predicate.Organization) predicate.Forecast {
	return predicate.Forecast(func(s *sql.Selector) {
		step := newOrganizationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Forecast) predicate.Forecast {
	return predicate.Forecast(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Forecast) predicate.Forecast {
	return predicate.Forecast(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Forecast) predicate.Forecast {
	return predicate.Forecast(sql.NotPredicates(p))
}
