// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hackybara/expense-tracker/gen/ent/forecast"
	"github.com/hackybara/expense-tracker/gen/ent/organization"
	"github.com/hackybara/expense-tracker/internal/entity"
)

// ForecastCreate is the builder for creating a Forecast entity.
type ForecastCreate struct {
	config
	mutation *ForecastMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *ForecastCreate) SetOrganizationID(v uuid.UUID) *ForecastCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetHorizon sets the "horizon" field.
func (_c *ForecastCreate) SetHorizon(v int) *ForecastCreate {
	_c.mutation.SetHorizon(v)
	return _c
}

// SetNillableHorizon sets the "horizon" field if the given value is not nil.
func (_c *ForecastCreate) SetNillableHorizon(v *int) *ForecastCreate {
	if v != nil {
		_c.SetHorizon(*v)
	}
	return _c
}

// SetGranularity sets the "granularity" field.
func (_c *ForecastCreate) SetGranularity(v string) *ForecastCreate {
	_c.mutation.SetGranularity(v)
	return _c
}

// SetNillableGranularity sets the "granularity" field if the given value is not nil.
func (_c *ForecastCreate) SetNillableGranularity(v *string) *ForecastCreate {
	if v != nil {
		_c.SetGranularity(*v)
	}
	return _c
}

// SetSeries sets the "series" field.
func (_c *ForecastCreate) SetSeries(v []entity.ForecastPoint) *ForecastCreate {
	_c.mutation.SetSeries(v)
	return _c
}

// SetComputedAt sets the "computed_at" field.
func (_c *ForecastCreate) SetComputedAt(v time.Time) *ForecastCreate {
	_c.mutation.SetComputedAt(v)
	return _c
}

// SetNillableComputedAt sets the "computed_at" field if the given value is not nil.
func (_c *ForecastCreate) SetNillableComputedAt(v *time.Time) *ForecastCreate {
	if v != nil {
		_c.SetComputedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ForecastCreate) SetCreatedAt(v time.Time) *ForecastCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ForecastCreate) SetNillableCreatedAt(v *time.Time) *ForecastCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ForecastCreate) SetID(v uuid.UUID) *ForecastCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ForecastCreate) SetNillableID(v *uuid.UUID) *ForecastCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetOrganization sets the "organization" edge to the Organization entity.
func (_c *ForecastCreate) SetOrganization(v *Organization) *ForecastCreate {
	return _c.SetOrganizationID(v.ID)
}

// Mutation returns the ForecastMutation object of the builder.
func (_c *ForecastCreate) Mutation() *ForecastMutation {
	return _c.mutation
}

// Save creates the Forecast in the database.
func (_c *ForecastCreate) Save(ctx context.Context) (*Forecast, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ForecastCreate) SaveX(ctx context.Context) *Forecast {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForecastCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForecastCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ForecastCreate) defaults() {
	if _, ok := _c.mutation.Horizon(); !ok {
		v := forecast.DefaultHorizon
		_c.mutation.SetHorizon(v)
	}
	if _, ok := _c.mutation.Granularity(); !ok {
		v := forecast.DefaultGranularity
		_c.mutation.SetGranularity(v)
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		v := forecast.DefaultComputedAt()
		_c.mutation.SetComputedAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := forecast.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := forecast.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ForecastCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "Forecast.organization_id"`)}
	}
	if _, ok := _c.mutation.Horizon(); !ok {
		return &ValidationError{Name: "horizon", err: errors.New(`ent: missing required field "Forecast.horizon"`)}
	}
	if _, ok := _c.mutation.Granularity(); !ok {
		return &ValidationError{Name: "granularity", err: errors.New(`ent: missing required field "Forecast.granularity"`)}
	}
	if v, ok := _c.mutation.Granularity(); ok {
		if err := forecast.GranularityValidator(v); err != nil {
			return &ValidationError{Name: "granularity", err: fmt.Errorf(`ent: validator failed for field "Forecast.granularity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Series(); !ok {
		return &ValidationError{Name: "series", err: errors.New(`ent: missing required field "Forecast.series"`)}
	}
	if _, ok := _c.mutation.ComputedAt(); !ok {
		return &ValidationError{Name: "computed_at", err: errors.New(`ent: missing required field "Forecast.computed_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Forecast.created_at"`)}
	}
	if len(_c.mutation.OrganizationIDs()) == 0 {
		return &ValidationError{Name: "organization", err: errors.New(`ent: missing required edge "Forecast.organization"`)}
	}
	return nil
}

func (_c *ForecastCreate) sqlSave(ctx context.Context) (*Forecast, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ForecastCreate) createSpec() (*Forecast, *sqlgraph.CreateSpec) {
	var (
		_node = &Forecast{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(forecast.Table, sqlgraph.NewFieldSpec(forecast.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Horizon(); ok {
		_spec.SetField(forecast.FieldHorizon, field.TypeInt, value)
		_node.Horizon = value
	}
	if value, ok := _c.mutation.Granularity(); ok {
		_spec.SetField(forecast.FieldGranularity, field.TypeString, value)
		_node.Granularity = value
	}
	if value, ok := _c.mutation.Series(); ok {
		_spec.SetField(forecast.FieldSeries, field.TypeJSON, value)
		_node.Series = value
	}
	if value, ok := _c.mutation.ComputedAt(); ok {
		_spec.SetField(forecast.FieldComputedAt, field.TypeTime, value)
		_node.ComputedAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(forecast.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OrganizationIDs(); len(nodes) > 0 {
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
		_node.OrganizationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ForecastCreateBulk is the builder for creating many Forecast entities in bulk.
type ForecastCreateBulk struct {
	config
	err      error
	builders []*ForecastCreate
}

// Save creates the Forecast entities in the database.
func (_c *ForecastCreateBulk) Save(ctx context.Context) ([]*Forecast, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Forecast, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ForecastMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ForecastCreateBulk) SaveX(ctx context.Context) []*Forecast {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ForecastCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ForecastCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
