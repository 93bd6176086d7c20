// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hackybara/expense-tracker/gen/ent/forecast"
	"github.com/hackybara/expense-tracker/gen/ent/organization"
	"github.com/hackybara/expense-tracker/gen/ent/predicate"
	"github.com/hackybara/expense-tracker/internal/entity"
)

// ForecastUpdate is the builder for updating Forecast entities.
type ForecastUpdate struct {
	config
	hooks    []Hook
	mutation *ForecastMutation
}

// Where appends a list predicates to the ForecastUpdate builder.
func (_u *ForecastUpdate) Where(ps ...predicate.Forecast) *ForecastUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ForecastUpdate) SetOrganizationID(v uuid.UUID) *ForecastUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ForecastUpdate) SetNillableOrganizationID(v *uuid.UUID) *ForecastUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetHorizon sets the "horizon" field.
func (_u *ForecastUpdate) SetHorizon(v int) *ForecastUpdate {
	_u.mutation.ResetHorizon()
	_u.mutation.SetHorizon(v)
	return _u
}

// SetNillableHorizon sets the "horizon" field if the given value is not nil.
func (_u *ForecastUpdate) SetNillableHorizon(v *int) *ForecastUpdate {
	if v != nil {
		_u.SetHorizon(*v)
	}
	return _u
}

// AddHorizon adds value to the "horizon" field.
func (_u *ForecastUpdate) AddHorizon(v int) *ForecastUpdate {
	_u.mutation.AddHorizon(v)
	return _u
}

// SetGranularity sets the "granularity" field.
func (_u *ForecastUpdate) SetGranularity(v string) *ForecastUpdate {
	_u.mutation.SetGranularity(v)
	return _u
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_u *ForecastUpdate) SetNillableGranularity(v *string) *ForecastUpdate {
	if v != nil {
		_u.SetGranularity(*v)
	}
	return _u
}

// SetSeries sets the "series" field.
func (_u *ForecastUpdate) SetSeries(v []entity.ForecastPoint) *ForecastUpdate {
	_u.mutation.SetSeries(v)
	return _u
}

// AppendSeries appends value to the "series" field.
func (_u *ForecastUpdate) AppendSeries(v []entity.ForecastPoint) *ForecastUpdate {
	_u.mutation.AppendSeries(v)
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *ForecastUpdate) SetComputedAt(v time.Time) *ForecastUpdate {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *ForecastUpdate) SetNillableComputedAt(v *time.Time) *ForecastUpdate {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ForecastUpdate) SetCreatedAt(v time.Time) *ForecastUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ForecastUpdate) SetNillableCreatedAt(v *time.Time) *ForecastUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *ForecastUpdate) SetOrganization(v *Organization) *ForecastUpdate {
	return _u.SetOrganizationID(v.ID)
}

// Mutation returns the ForecastMutation object of the builder.
func (_u *ForecastUpdate) Mutation() *ForecastMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *ForecastUpdate) ClearOrganization() *ForecastUpdate {
	_u.mutation.ClearOrganization()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ForecastUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForecastUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ForecastUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForecastUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForecastUpdate) check() error {
	if v, ok := _u.mutation.Granularity(); ok {
		if err := forecast.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "Forecast.granularity": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Forecast.organization"`)
	}
	return nil
}

func (_u *ForecastUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forecast.Table, forecast.Columns, sqlgraph.NewFieldSpec(forecast.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Horizon(); ok {
		_spec.SetField(forecast.FieldHorizon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHorizon(); ok {
		_spec.AddField(forecast.FieldHorizon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Granularity(); ok {
		_spec.SetField(forecast.FieldGranularity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(forecast.FieldSeries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, forecast.FieldSeries, value)
		})
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(forecast.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(forecast.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   forecast.OrganizationTable,
			Columns: []string{forecast.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   forecast.OrganizationTable,
			Columns: []string{forecast.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forecast.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ForecastUpdateOne is the builder for updating a single Forecast entity.
type ForecastUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ForecastMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *ForecastUpdateOne) SetOrganizationID(v uuid.UUID) *ForecastUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *ForecastUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *ForecastUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetHorizon sets the "horizon" field.
func (_u *ForecastUpdateOne) SetHorizon(v int) *ForecastUpdateOne {
	_u.mutation.ResetHorizon()
	_u.mutation.SetHorizon(v)
	return _u
}

// SetNillableHorizon sets the "horizon" field if the given value is not nil.
func (_u *ForecastUpdateOne) SetNillableHorizon(v *int) *ForecastUpdateOne {
	if v != nil {
		_u.SetHorizon(*v)
	}
	return _u
}

// AddHorizon adds value to the "horizon" field.
func (_u *ForecastUpdateOne) AddHorizon(v int) *ForecastUpdateOne {
	_u.mutation.AddHorizon(v)
	return _u
}

// SetGranularity sets the "granularity" field.
func (_u *ForecastUpdateOne) SetGranularity(v string) *ForecastUpdateOne {
	_u.mutation.SetGranularity(v)
	return _u
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_u *ForecastUpdateOne) SetNillableGranularity(v *string) *ForecastUpdateOne {
	if v != nil {
		_u.SetGranularity(*v)
	}
	return _u
}

// SetSeries sets the "series" field.
func (_u *ForecastUpdateOne) SetSeries(v []entity.ForecastPoint) *ForecastUpdateOne {
	_u.mutation.SetSeries(v)
	return _u
}

// AppendSeries appends value to the "series" field.
func (_u *ForecastUpdateOne) AppendSeries(v []entity.ForecastPoint) *ForecastUpdateOne {
	_u.mutation.AppendSeries(v)
	return _u
}

// SetComputedAt sets the "computed_at" field.
func (_u *ForecastUpdateOne) SetComputedAt(v time.Time) *ForecastUpdateOne {
	_u.mutation.SetComputedAt(v)
	return _u
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_u *ForecastUpdateOne) SetNillableComputedAt(v *time.Time) *ForecastUpdateOne {
	if v != nil {
		_u.SetComputedAt(*v)
	}
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ForecastUpdateOne) SetCreatedAt(v time.Time) *ForecastUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ForecastUpdateOne) SetNillableCreatedAt(v *time.Time) *ForecastUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_u *ForecastUpdateOne) SetOrganization(v *Organization) *ForecastUpdateOne {
	return _u.SetOrganizationID(v.ID)
}

// Mutation returns the ForecastMutation object of the builder.
func (_u *ForecastUpdateOne) Mutation() *ForecastMutation {
	return _u.mutation
}

// ClearOrganization clears the "organization" edge to the Organization entity.
func (_u *ForecastUpdateOne) ClearOrganization() *ForecastUpdateOne {
	_u.mutation.ClearOrganization()
	return _u
}

// Where appends a list predicates to the ForecastUpdate builder.
func (_u *ForecastUpdateOne) Where(ps ...predicate.Forecast) *ForecastUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ForecastUpdateOne) Select(field string, fields ...string) *ForecastUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Forecast entity.
func (_u *ForecastUpdateOne) Save(ctx context.Context) (*Forecast, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ForecastUpdateOne) SaveX(ctx context.Context) *Forecast {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ForecastUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ForecastUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ForecastUpdateOne) check() error {
	if v, ok := _u.mutation.Granularity(); ok {
		if err := forecast.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "Forecast.granularity": %w`, err)}
		}
	}
	if _u.mutation.OrganizationCleared() && len(_u.mutation.OrganizationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Forecast.organization"`)
	}
	return nil
}

func (_u *ForecastUpdateOne) sqlSave(ctx context.Context) (_node *Forecast, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(forecast.Table, forecast.Columns, sqlgraph.NewFieldSpec(forecast.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Forecast.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, forecast.FieldID)
		for _, f := range fields {
			if !forecast.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != forecast.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Horizon(); ok {
		_spec.SetField(forecast.FieldHorizon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHorizon(); ok {
		_spec.AddField(forecast.FieldHorizon, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Granularity(); ok {
		_spec.SetField(forecast.FieldGranularity, field.TypeString, value)
	}
	if value, ok := _u.mutation.Series(); ok {
		_spec.SetField(forecast.FieldSeries, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSeries(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, forecast.FieldSeries, value)
		})
	}
	if value, ok := _u.mutation.ComputedAt(); ok {
		_spec.SetField(forecast.FieldComputedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(forecast.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.OrganizationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   forecast.OrganizationTable,
			Columns: []string{forecast.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrganizationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   forecast.OrganizationTable,
			Columns: []string{forecast.OrganizationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(organization.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Forecast{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{forecast.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
