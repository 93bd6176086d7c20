// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/hackybara/expense-tracker/gen/ent/document"
	"github.com/hackybara/expense-tracker/gen/ent/ocrresult"
	"github.com/hackybara/expense-tracker/gen/ent/predicate"
	"github.com/hackybara/expense-tracker/gen/ent/transaction"
	"github.com/hackybara/expense-tracker/gen/ent/vendor"
)

// OCRResultUpdate is the builder for updating OCRResult entities.
type OCRResultUpdate struct {
	config
	hooks    []Hook
	mutation *OCRResultMutation
}

// Where appends a list predicates to the OCRResultUpdate builder.
func (_u *OCRResultUpdate) Where(ps ...predicate.OCRResult) *OCRResultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrganizationID sets the "organization_id" field.
func (_u *OCRResultUpdate) SetOrganizationID(v uuid.UUID) *OCRResultUpdate {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableOrganizationID(v *uuid.UUID) *OCRResultUpdate {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *OCRResultUpdate) SetDocumentID(v uuid.UUID) *OCRResultUpdate {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableDocumentID(v *uuid.UUID) *OCRResultUpdate {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *OCRResultUpdate) SetVendorID(v uuid.UUID) *OCRResultUpdate {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableVendorID(v *uuid.UUID) *OCRResultUpdate {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *OCRResultUpdate) ClearVendorID() *OCRResultUpdate {
	_u.mutation.ClearVendorID()
	return _u
}

// SetResults sets the "results" field.
func (_u *OCRResultUpdate) SetResults(v string) *OCRResultUpdate {
	_u.mutation.SetResults(v)
	return _u
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableResults(v *string) *OCRResultUpdate {
	if v != nil {
		_u.SetResults(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *OCRResultUpdate) SetTotalAmount(v float64) *OCRResultUpdate {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableTotalAmount(v *float64) *OCRResultUpdate {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *OCRResultUpdate) AddTotalAmount(v float64) *OCRResultUpdate {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *OCRResultUpdate) SetCurrency(v string) *OCRResultUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableCurrency(v *string) *OCRResultUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *OCRResultUpdate) SetInvoiceDate(v time.Time) *OCRResultUpdate {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableInvoiceDate(v *time.Time) *OCRResultUpdate {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *OCRResultUpdate) ClearInvoiceDate() *OCRResultUpdate {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *OCRResultUpdate) SetInvoiceNumber(v string) *OCRResultUpdate {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableInvoiceNumber(v *string) *OCRResultUpdate {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *OCRResultUpdate) ClearInvoiceNumber() *OCRResultUpdate {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OCRResultUpdate) SetCreatedAt(v time.Time) *OCRResultUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OCRResultUpdate) SetNillableCreatedAt(v *time.Time) *OCRResultUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OCRResultUpdate) SetUpdatedAt(v time.Time) *OCRResultUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *OCRResultUpdate) SetDocument(v *Document) *OCRResultUpdate {
	return _u.SetDocumentID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *OCRResultUpdate) SetVendor(v *Vendor) *OCRResultUpdate {
	return _u.SetVendorID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *OCRResultUpdate) AddTransactionIDs(ids ...uuid.UUID) *OCRResultUpdate {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *OCRResultUpdate) AddTransactions(v ...*Transaction) *OCRResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the OCRResultMutation object of the builder.
func (_u *OCRResultUpdate) Mutation() *OCRResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *OCRResultUpdate) ClearDocument() *OCRResultUpdate {
	_u.mutation.ClearDocument()
	return _u
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *OCRResultUpdate) ClearVendor() *OCRResultUpdate {
	_u.mutation.ClearVendor()
	return _u
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *OCRResultUpdate) ClearTransactions() *OCRResultUpdate {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *OCRResultUpdate) RemoveTransactionIDs(ids ...uuid.UUID) *OCRResultUpdate {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *OCRResultUpdate) RemoveTransactions(v ...*Transaction) *OCRResultUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *OCRResultUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRResultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *OCRResultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRResultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OCRResultUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ocrresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRResultUpdate) check() error {
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := ocrresult.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`ent: validator failed for field "OCRResult.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := ocrresult.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "OCRResult.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := ocrresult.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "OCRResult.invoice_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRResult.document"`)
	}
	return nil
}

func (_u *OCRResultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(ocrresult.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(ocrresult.FieldResults, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(ocrresult.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(ocrresult.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(ocrresult.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(ocrresult.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(ocrresult.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(ocrresult.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(ocrresult.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// OCRResultUpdateOne is the builder for updating a single OCRResult entity.
type OCRResultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *OCRResultMutation
}

// SetOrganizationID sets the "organization_id" field.
func (_u *OCRResultUpdateOne) SetOrganizationID(v uuid.UUID) *OCRResultUpdateOne {
	_u.mutation.SetOrganizationID(v)
	return _u
}

// SetNillableOrganizationID sets the "organization_id" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableOrganizationID(v *uuid.UUID) *OCRResultUpdateOne {
	if v != nil {
		_u.SetOrganizationID(*v)
	}
	return _u
}

// SetDocumentID sets the "document_id" field.
func (_u *OCRResultUpdateOne) SetDocumentID(v uuid.UUID) *OCRResultUpdateOne {
	_u.mutation.SetDocumentID(v)
	return _u
}

// SetNillableDocumentID sets the "document_id" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableDocumentID(v *uuid.UUID) *OCRResultUpdateOne {
	if v != nil {
		_u.SetDocumentID(*v)
	}
	return _u
}

// SetVendorID sets the "vendor_id" field.
func (_u *OCRResultUpdateOne) SetVendorID(v uuid.UUID) *OCRResultUpdateOne {
	_u.mutation.SetVendorID(v)
	return _u
}

// SetNillableVendorID sets the "vendor_id" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableVendorID(v *uuid.UUID) *OCRResultUpdateOne {
	if v != nil {
		_u.SetVendorID(*v)
	}
	return _u
}

// ClearVendorID clears the value of the "vendor_id" field.
func (_u *OCRResultUpdateOne) ClearVendorID() *OCRResultUpdateOne {
	_u.mutation.ClearVendorID()
	return _u
}

// SetResults sets the "results" field.
func (_u *OCRResultUpdateOne) SetResults(v string) *OCRResultUpdateOne {
	_u.mutation.SetResults(v)
	return _u
}

// SetNillableResults sets the "results" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableResults(v *string) *OCRResultUpdateOne {
	if v != nil {
		_u.SetResults(*v)
	}
	return _u
}

// SetTotalAmount sets the "total_amount" field.
func (_u *OCRResultUpdateOne) SetTotalAmount(v float64) *OCRResultUpdateOne {
	_u.mutation.ResetTotalAmount()
	_u.mutation.SetTotalAmount(v)
	return _u
}

// SetNillableTotalAmount sets the "total_amount" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableTotalAmount(v *float64) *OCRResultUpdateOne {
	if v != nil {
		_u.SetTotalAmount(*v)
	}
	return _u
}

// AddTotalAmount adds value to the "total_amount" field.
func (_u *OCRResultUpdateOne) AddTotalAmount(v float64) *OCRResultUpdateOne {
	_u.mutation.AddTotalAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *OCRResultUpdateOne) SetCurrency(v string) *OCRResultUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableCurrency(v *string) *OCRResultUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetInvoiceDate sets the "invoice_date" field.
func (_u *OCRResultUpdateOne) SetInvoiceDate(v time.Time) *OCRResultUpdateOne {
	_u.mutation.SetInvoiceDate(v)
	return _u
}

// SetNillableInvoiceDate sets the "invoice_date" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableInvoiceDate(v *time.Time) *OCRResultUpdateOne {
	if v != nil {
		_u.SetInvoiceDate(*v)
	}
	return _u
}

// ClearInvoiceDate clears the value of the "invoice_date" field.
func (_u *OCRResultUpdateOne) ClearInvoiceDate() *OCRResultUpdateOne {
	_u.mutation.ClearInvoiceDate()
	return _u
}

// SetInvoiceNumber sets the "invoice_number" field.
func (_u *OCRResultUpdateOne) SetInvoiceNumber(v string) *OCRResultUpdateOne {
	_u.mutation.SetInvoiceNumber(v)
	return _u
}

// SetNillableInvoiceNumber sets the "invoice_number" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableInvoiceNumber(v *string) *OCRResultUpdateOne {
	if v != nil {
		_u.SetInvoiceNumber(*v)
	}
	return _u
}

// ClearInvoiceNumber clears the value of the "invoice_number" field.
func (_u *OCRResultUpdateOne) ClearInvoiceNumber() *OCRResultUpdateOne {
	_u.mutation.ClearInvoiceNumber()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *OCRResultUpdateOne) SetCreatedAt(v time.Time) *OCRResultUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *OCRResultUpdateOne) SetNillableCreatedAt(v *time.Time) *OCRResultUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *OCRResultUpdateOne) SetUpdatedAt(v time.Time) *OCRResultUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocument sets the "document" edge to the Document entity.
func (_u *OCRResultUpdateOne) SetDocument(v *Document) *OCRResultUpdateOne {
	return _u.SetDocumentID(v.ID)
}

// SetVendor sets the "vendor" edge to the Vendor entity.
func (_u *OCRResultUpdateOne) SetVendor(v *Vendor) *OCRResultUpdateOne {
	return _u.SetVendorID(v.ID)
}

// AddTransactionIDs adds the "transactions" edge to the Transaction entity by IDs.
func (_u *OCRResultUpdateOne) AddTransactionIDs(ids ...uuid.UUID) *OCRResultUpdateOne {
	_u.mutation.AddTransactionIDs(ids...)
	return _u
}

// AddTransactions adds the "transactions" edges to the Transaction entity.
func (_u *OCRResultUpdateOne) AddTransactions(v ...*Transaction) *OCRResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTransactionIDs(ids...)
}

// Mutation returns the OCRResultMutation object of the builder.
func (_u *OCRResultUpdateOne) Mutation() *OCRResultMutation {
	return _u.mutation
}

// ClearDocument clears the "document" edge to the Document entity.
func (_u *OCRResultUpdateOne) ClearDocument() *OCRResultUpdateOne {
	_u.mutation.ClearDocument()
	return _u
}

// ClearVendor clears the "vendor" edge to the Vendor entity.
func (_u *OCRResultUpdateOne) ClearVendor() *OCRResultUpdateOne {
	_u.mutation.ClearVendor()
	return _u
}

// ClearTransactions clears all "transactions" edges to the Transaction entity.
func (_u *OCRResultUpdateOne) ClearTransactions() *OCRResultUpdateOne {
	_u.mutation.ClearTransactions()
	return _u
}

// RemoveTransactionIDs removes the "transactions" edge to Transaction entities by IDs.
func (_u *OCRResultUpdateOne) RemoveTransactionIDs(ids ...uuid.UUID) *OCRResultUpdateOne {
	_u.mutation.RemoveTransactionIDs(ids...)
	return _u
}

// RemoveTransactions removes "transactions" edges to Transaction entities.
func (_u *OCRResultUpdateOne) RemoveTransactions(v ...*Transaction) *OCRResultUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTransactionIDs(ids...)
}

// Where appends a list predicates to the OCRResultUpdate builder.
func (_u *OCRResultUpdateOne) Where(ps ...predicate.OCRResult) *OCRResultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *OCRResultUpdateOne) Select(field string, fields ...string) *OCRResultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated OCRResult entity.
func (_u *OCRResultUpdateOne) Save(ctx context.Context) (*OCRResult, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *OCRResultUpdateOne) SaveX(ctx context.Context) *OCRResult {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *OCRResultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *OCRResultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *OCRResultUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ocrresult.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *OCRResultUpdateOne) check() error {
	if v, ok := _u.mutation.TotalAmount(); ok {
		if err := ocrresult.TotalAmountValidator(v); err != nil {
			return &ValidationError{Name: "total_amount", err: fmt.Errorf(`ent: validator failed for field "OCRResult.total_amount": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := ocrresult.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "OCRResult.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceNumber(); ok {
		if err := ocrresult.InvoiceNumberValidator(v); err != nil {
			return &ValidationError{Name: "invoice_number", err: fmt.Errorf(`ent: validator failed for field "OCRResult.invoice_number": %w`, err)}
		}
	}
	if _u.mutation.DocumentCleared() && len(_u.mutation.DocumentIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "OCRResult.document"`)
	}
	return nil
}

func (_u *OCRResultUpdateOne) sqlSave(ctx context.Context) (_node *OCRResult, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ocrresult.Table, ocrresult.Columns, sqlgraph.NewFieldSpec(ocrresult.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "OCRResult.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ocrresult.FieldID)
		for _, f := range fields {
			if !ocrresult.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ocrresult.FieldID {
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
	if value, ok := _u.mutation.OrganizationID(); ok {
		_spec.SetField(ocrresult.FieldOrganizationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Results(); ok {
		_spec.SetField(ocrresult.FieldResults, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalAmount(); ok {
		_spec.SetField(ocrresult.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalAmount(); ok {
		_spec.AddField(ocrresult.FieldTotalAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(ocrresult.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.InvoiceDate(); ok {
		_spec.SetField(ocrresult.FieldInvoiceDate, field.TypeTime, value)
	}
	if _u.mutation.InvoiceDateCleared() {
		_spec.ClearField(ocrresult.FieldInvoiceDate, field.TypeTime)
	}
	if value, ok := _u.mutation.InvoiceNumber(); ok {
		_spec.SetField(ocrresult.FieldInvoiceNumber, field.TypeString, value)
	}
	if _u.mutation.InvoiceNumberCleared() {
		_spec.ClearField(ocrresult.FieldInvoiceNumber, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(ocrresult.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ocrresult.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VendorCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VendorIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTransactionsIDs(); len(nodes) > 0 && !_u.mutation.TransactionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TransactionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &OCRResult{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ocrresult.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
