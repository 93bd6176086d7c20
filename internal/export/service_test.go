package export

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/entity"
	"github.com/hackybara/expense-tracker/internal/report"
	"github.com/hackybara/expense-tracker/internal/repository"
)

type stubTxs struct {
	rows []*entity.Transaction
	err  error
}

func (s *stubTxs) Insert(context.Context, *repository.CreateTransactionRequest) (*entity.Transaction, error) {
	panic("not used")
}

func (s *stubTxs) List(context.Context, *repository.ListTransactionsRequest) ([]*entity.Transaction, int, error) {
	panic("not used")
}

func (s *stubTxs) ListAllForOrg(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return s.rows, s.err
}

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestExportMonthlyReportXLSX(t *testing.T) {
	txs := &stubTxs{rows: []*entity.Transaction{
		{Amount: 15.90, Currency: "MYR", TxType: constants.TxTypeExpense, CategoryName: "Food & Beverage", VendorName: "Starbucks", InvoiceDate: date(2026, time.January, 10)},
		{Amount: 200, Currency: "MYR", TxType: constants.TxTypeExpense, CategoryName: "Utilities", InvoiceDate: date(2026, time.February, 2)},
		{Amount: 99, Currency: "MYR", TxType: constants.TxTypeExpense, CategoryName: "Others", InvoiceDate: date(2025, time.December, 30)},
	}}
	svc := NewService(txs, slog.New(slog.DiscardHandler))

	data, err := svc.ExportMonthlyReportXLSX(context.Background(), uuid.New(), 2026)
	if err != nil {
		t.Fatalf("ExportMonthlyReportXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("opening workbook: %v", err)
	}
	defer f.Close()

	reportRows, err := f.GetRows("Monthly Report")
	if err != nil {
		t.Fatalf("report sheet: %v", err)
	}
	// Header plus one row per 2026 (month, category) pair.
	if len(reportRows) != 3 {
		t.Fatalf("report rows = %d, want 3: %v", len(reportRows), reportRows)
	}
	if reportRows[1][0] != "2026-01" || reportRows[1][1] != "Food & Beverage" {
		t.Errorf("first report row = %v", reportRows[1])
	}

	txRows, err := f.GetRows("Transactions")
	if err != nil {
		t.Fatalf("transactions sheet: %v", err)
	}
	// The 2025 transaction is excluded from the year's sheet.
	if len(txRows) != 3 {
		t.Errorf("transaction rows = %d, want 3: %v", len(txRows), txRows)
	}
}

func TestExportMonthlyReportYearValidation(t *testing.T) {
	svc := NewService(&stubTxs{}, slog.New(slog.DiscardHandler))
	_, err := svc.ExportMonthlyReportXLSX(context.Background(), uuid.New(), 1999)
	if !errors.Is(err, report.ErrYearOutOfRange) {
		t.Fatalf("err = %v, want ErrYearOutOfRange", err)
	}
}

func TestExportQueryFailure(t *testing.T) {
	svc := NewService(&stubTxs{err: errors.New("db down")}, slog.New(slog.DiscardHandler))
	if _, err := svc.ExportMonthlyReportXLSX(context.Background(), uuid.New(), 2026); err == nil {
		t.Fatal("expected error when the query fails")
	}
}
