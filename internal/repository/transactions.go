package repository

import (
	"context"
	"log/slog"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/gen/ent"
	"github.com/hackybara/expense-tracker/gen/ent/category"
	"github.com/hackybara/expense-tracker/gen/ent/predicate"
	"github.com/hackybara/expense-tracker/gen/ent/transaction"
	"github.com/hackybara/expense-tracker/gen/ent/vendor"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/utils"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// CreateTransactionRequest wraps parameters for inserting a transaction.
type CreateTransactionRequest struct {
	OrganizationID uuid.UUID
	OCRResultID    *uuid.UUID
	VendorID       *uuid.UUID
	CategoryID     uuid.UUID
	Description    string
	Amount         float64
	Currency       string
	InvoiceDate    *time.Time
	TxType         constants.TxType
}

// ListTransactionsRequest filters and paginates the listing. Category and
// Vendor are case-insensitive substring matches; FromDate and ToDate bound
// the effective date inclusively. Limit is clamped to [1, 100], zero meaning
// the default of 50; negative offsets read as zero.
type ListTransactionsRequest struct {
	OrganizationID uuid.UUID
	Category       string
	Vendor         string
	FromDate       *time.Time
	ToDate         *time.Time
	Limit          int
	Offset         int
}

type TransactionRepository interface {
	Insert(ctx context.Context, req *CreateTransactionRequest) (*entity.Transaction, error)
	// List returns one page ordered by effective date descending, plus the
	// total row count for the same filters.
	List(ctx context.Context, req *ListTransactionsRequest) ([]*entity.Transaction, int, error)
	// ListAllForOrg returns the org's full history in ascending effective
	// date order; the aggregation layer buckets it.
	ListAllForOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.Transaction, error)
}

type transactionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewTransactionRepository(client *ent.Client, logger *slog.Logger) TransactionRepository {
	return &transactionRepository{client: client, logger: logger}
}

func (r *transactionRepository) Insert(ctx context.Context, req *CreateTransactionRequest) (*entity.Transaction, error) {
	create := r.client.Transaction.Create().
		SetOrganizationID(req.OrganizationID).
		SetCategoryID(req.CategoryID).
		SetDescription(req.Description).
		SetAmount(req.Amount).
		SetCurrency(req.Currency).
		SetTxType(transaction.TxType(req.TxType))
	if req.OCRResultID != nil {
		create = create.SetOcrResultID(*req.OCRResultID)
	}
	if req.VendorID != nil {
		create = create.SetVendorID(*req.VendorID)
	}
	if req.InvoiceDate != nil {
		create = create.SetInvoiceDate(*req.InvoiceDate)
	}

	tx, err := create.Save(ctx)
	if err != nil {
		r.logger.Error("failed to insert transaction", "organization_id", req.OrganizationID, "error", err)
		return nil, err
	}
	r.logger.Info("inserted transaction",
		"organization_id", req.OrganizationID,
		"transaction_id", tx.ID,
		"amount", tx.Amount,
		"type", string(tx.TxType),
	)
	return utils.ToTransaction(tx), nil
}

func effectiveDateExpr(s *entsql.Selector) string {
	return "COALESCE(" + s.C(transaction.FieldInvoiceDate) + ", " + s.C(transaction.FieldCreatedAt) + ")"
}

// effectiveDateBetween bounds the effective date inclusively; either side
// may be nil.
func effectiveDateBetween(from, to *time.Time) predicate.Transaction {
	return func(s *entsql.Selector) {
		if from != nil {
			expr := effectiveDateExpr(s)
			s.Where(entsql.P(func(b *entsql.Builder) {
				b.WriteString(expr).WriteString(" >= ").Arg(*from)
			}))
		}
		if to != nil {
			expr := effectiveDateExpr(s)
			s.Where(entsql.P(func(b *entsql.Builder) {
				b.WriteString(expr).WriteString(" <= ").Arg(*to)
			}))
		}
	}
}

// byEffectiveDate orders on the invoice date, falling back to creation time
// for rows with none.
func byEffectiveDate(desc bool) transaction.OrderOption {
	dir := "ASC"
	if desc {
		dir = "DESC"
	}
	return func(s *entsql.Selector) {
		s.OrderExpr(entsql.Expr(effectiveDateExpr(s) + " " + dir))
	}
}

func (r *transactionRepository) List(ctx context.Context, req *ListTransactionsRequest) ([]*entity.Transaction, int, error) {
	limit := req.Limit
	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	q := r.client.Transaction.Query().
		Where(transaction.OrganizationID(req.OrganizationID))
	if req.Category != "" {
		q = q.Where(transaction.HasCategoryWith(category.NameContainsFold(req.Category)))
	}
	if req.Vendor != "" {
		q = q.Where(transaction.HasVendorWith(vendor.NameContainsFold(req.Vendor)))
	}
	if req.FromDate != nil || req.ToDate != nil {
		q = q.Where(effectiveDateBetween(req.FromDate, req.ToDate))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		r.logger.Error("failed to count transactions", "organization_id", req.OrganizationID, "error", err)
		return nil, 0, err
	}

	txs, err := q.
		WithCategory().
		WithVendor().
		Order(byEffectiveDate(true)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list transactions", "organization_id", req.OrganizationID, "error", err)
		return nil, 0, err
	}

	result := make([]*entity.Transaction, len(txs))
	for i, tx := range txs {
		result[i] = utils.ToTransaction(tx)
	}
	return result, total, nil
}

func (r *transactionRepository) ListAllForOrg(ctx context.Context, orgID uuid.UUID) ([]*entity.Transaction, error) {
	txs, err := r.client.Transaction.Query().
		Where(transaction.OrganizationID(orgID)).
		WithCategory().
		WithVendor().
		Order(byEffectiveDate(false)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to load transactions", "organization_id", orgID, "error", err)
		return nil, err
	}

	result := make([]*entity.Transaction, len(txs))
	for i, tx := range txs {
		result[i] = utils.ToTransaction(tx)
	}
	return result, nil
}
