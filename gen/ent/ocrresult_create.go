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
	"github.com/hackybara/expense-tracker/gen/ent/document"
	"github.com/hackybara/expense-tracker/gen/ent/ocrresult"
	"github.com/hackybara/expense-tracker/gen/ent/transaction"
	"github.com/hackybara/expense-tracker/gen/ent/vendor"
)

// OCRResultCreate is the builder for creating a OCRResult entity.
type OCRResultCreate struct {
	config
	mutation *OCRResultMutation
	hooks    []Hook
}

// SetOrganizationID sets the "organization_id" field.
func (_c *OCRResultCreate) SetOrganizationID(v uuid.UUID) *OCRResultCreate {
	_c.mutation.SetOrganizationID(v)
	return _c
}

// SetDocumentID sets the "document_id" field.
func (_c *OCRResultCreate) SetDocumentID(v uuid.UUID) *OCRResultCreate {
	_c.mutation.SetDocumentID(v)
	return _c
}

// SetVendorID sets the "vendor_id" field.
func (_c *OCRResultCreate) SetVendorID(v uuid.UUID) *OCRResultCreate {
	_c.mutation.SetVendorID(v)
	return _c
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableVendorID(v *uuid.UUID) *OCRResultCreate {
	if v != nil {
		_c.SetVendorID(*v)
	}
	return _c
}

// SetResults sets the "results" field.
func (_c *OCRResultCreate) SetResults(v string) *OCRResultCreate {
	_c.mutation.SetResults(v)
	return _c
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableResults(v *string) *OCRResultCreate {
	if v != nil {
		_c.SetResults(*v)
	}
	return _c
}

// SetTotalAmount sets the "total_amount" field.
func (_c *OCRResultCreate) SetTotalAmount(v float64) *OCRResultCreate {
	_c.mutation.SetTotalAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *OCRResultCreate) SetCurrency(v string) *OCRResultCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetInvoiceDate sets the "invoice_date" field.
func (_c *OCRResultCreate) SetInvoiceDate(v time.Time) *OCRResultCreate {
	_c.mutation.SetInvoiceDate(v)
	return _c
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableInvoiceDate(v *time.Time) *OCRResultCreate {
	if v != nil {
		_c.SetInvoiceDate(*v)
	}
	return _c
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_c *OCRResultCreate) SetInvoiceNumber(v string) *OCRResultCreate {
	_c.mutation.SetInvoiceNumber(v)
	return _c
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableInvoiceNumber(v *string) *OCRResultCreate {
	if v != nil {
		_c.SetInvoiceNumber(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *OCRResultCreate) SetCreatedAt(v time.Time) *OCRResultCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableCreatedAt(v *time.Time) *OCRResultCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *OCRResultCreate) SetUpdatedAt(v time.Time) *OCRResultCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableUpdatedAt(v *time.Time) *OCRResultCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *OCRResultCreate) SetID(v uuid.UUID) *OCRResultCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *OCRResultCreate) SetNillableID(v *uuid.UUID) *OCRResultCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetDocument sets the "document" edge to the Document entity.
func (_c *OCRResultCreate) SetDocument(v *Document) *OCRResultCreate {
	return _c.SetDocumentID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_c *OCRResultCreate) SetVendor(v *Vendor) *OCRResultCreate {
	return _c.SetVendorID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_c *OCRResultCreate) AddTransactionIDs(ids ...uuid.UUID) *OCRResultCreate {
	_c.mutation.AddTransactionIDs(ids...)
	return _c
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_c *OCRResultCreate) AddTransactions(v ...*Transaction) *OCRResultCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTransactionIDs(ids...)
}

// Mutation returns the OCRResultMutation object of the builder.
func (_c *OCRResultCreate) Mutation() *OCRResultMutation {
	return _c.mutation
}

// Save creates the OCRResult in the database.
func (_c *OCRResultCreate) Save(ctx context.Context) (*OCRResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *OCRResultCreate) SaveX(ctx context.Context) *OCRResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *OCRResultCreate) defaults() {
	if _, ok := _c.mutation.Results(); !ok {
		v := ocrresult.DefaultResults
		_c.mutation.SetResults(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ocrresult.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ocrresult.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ocrresult.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *OCRResultCreate) check() error {
	if _, ok := _c.mutation.OrganizationID(); !ok {
		return &ValidationError{Name: "organization_id", err: errors.New(`ent: missing required field "OCRResult.organization_id"`)}
	}
	if _, ok := _c.mutation.DocumentID(); !ok {
		return &ValidationError{Name: "document_id", err: errors.New(`ent: missing required field "OCRResult.document_id"`)}
	}
	if _, ok := _c.mutation.Results(); !ok {
		return &ValidationError{Name: "results", err: errors.New(`ent: missing required field "OCRResult.results"`)}
	}
	if _, ok := _c.mutation.TotalAmount(); !ok {
		return &ValidationError{Name: "total_amount", err: errors.New(`ent: missing required field "OCRResult.total_amount"`)}
	}
	if v, ok := _c.mutation.TotalAmount(); ok {
		if err := ocrresult.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`ent: validator failed for field "OCRResult.total_amount": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "OCRResult.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := ocrresult.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "OCRResult.currency": %w`, err)}
		}
	}
	if v, ok := _c.mutation.InvoiceNumber(); ok {
		if err := ocrresult.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "OCRResult.invoice_number": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "OCRResult.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "OCRResult.updated_at"`)}
	}
	if len(_c.mutation.DocumentIDs()) == 0 {
		return &ValidationError{Name: "document", err: errors.New(`ent: missing required edge "OCRResult.document"`)}
	}
	return nil
}

func (_c *OCRResultCreate) sqlSave(ctx context.Context) (*OCRResult, error) {
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

func (_c *OCRResultCreate) createSpec() (*OCRResult, *sqlgraph.CreateSpec) {
	var (
		_node = &OCRResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ocrresult.Table, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OrganizationID(); ok {
		_spec.SetField(ocrresult.FieldOrganizationID, field.TypeUUID, value)
		_node.OrganizationID = value
	}
	if value, ok := _c.mutation.Results(); ok {
		_spec.SetField(ocrresult.FieldResults, field.TypeString, value)
		_node.Results = value
	}
	if value, ok := _c.mutation.TotalAmount(); ok {
		_spec.SetField(ocrresult.FieldTotalAmount, field.TypeFloat64, value)
		_node.TotalAmount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(ocrresult.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.InvoiceDate(); ok {
		_spec.SetField(ocrresult.FieldInvoiceDate, field.TypeTime, value)
		_node.InvoiceDate = &value
	}
	if value, ok := _c.mutation.InvoiceNumber(); ok {
		_spec.SetField(ocrresult.FieldInvoiceNumber, field.TypeString, value)
		_node.InvoiceNumber = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrresult.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrresult.DocumentTable,
			Columns: []string{ocrresult.DocumentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VendorIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ocrresult.VendorTable,
			Columns: []string{ocrresult.VendorColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(vendor.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.VendorID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TransactionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ocrresult.TransactionsTable,
			Columns: []string{ocrresult.TransactionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(transaction.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OCRResultCreateBulk is the builder for creating many OCRResult entities in bulk.
type OCRResultCreateBulk struct {
	config
	err      error
	builders []*OCRResultCreate
}

// Save creates the OCRResult entities in the database.
func (_c *OCRResultCreateBulk) Save(ctx context.Context) ([]*OCRResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*OCRResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*OCRResultMutation)
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
func (_c *OCRResultCreateBulk) SaveX(ctx context.Context) []*OCRResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *OCRResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *OCRResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
