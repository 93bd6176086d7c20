package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/hackybara/expense-tracker/internal/repository"
	"github.com/hackybara/expense-tracker/internal/report"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	txs    repository.TransactionRepository
	logger *slog.Logger
}

func NewService(txs repository.TransactionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{txs: txs, logger: logger}
}

// ExportMonthlyReportXLSX returns a workbook with two sheets: the per-month
// per-category totals for the year, and the year's raw transactions. Year
// bounds follow the monthly report.
func (s *Service) ExportMonthlyReportXLSX(ctx context.Context, orgID uuid.UUID, year int) ([]byte, error) {
	start := time.Now()

	txs, err := s.txs.ListAllForOrg(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	rows, err := report.MonthlyReport(txs, year)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const reportSheet = "Monthly Report"
	const txSheet = "Transactions"

	// The default sheet becomes the report sheet.
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(defaultSheet, reportSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(txSheet); err != nil {
		return nil, err
	}

	write := func(sheet string, col, row int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}

	for i, h := range []string{"Month", "Category", "Total"} {
		write(reportSheet, i+1, 1, h)
	}
	for i, r := range rows {
		write(reportSheet, 1, i+2, r.Month.Format("2006-01"))
		write(reportSheet, 2, i+2, r.Category)
		write(reportSheet, 3, i+2, r.Total)
	}
	_ = f.SetColWidth(reportSheet, "A", "A", 10)
	_ = f.SetColWidth(reportSheet, "B", "B", 22)
	_ = f.SetColWidth(reportSheet, "C", "C", 14)

	for i, h := range []string{"Date", "Vendor", "Category", "Type", "Amount", "Currency", "Description"} {
		write(txSheet, i+1, 1, h)
	}
	row := 2
	for _, t := range txs {
		if t.EffectiveDate().Year() != year {
			continue
		}
		write(txSheet, 1, row, t.EffectiveDate().Format("2006-01-02"))
		write(txSheet, 2, row, t.VendorName)
		category := t.CategoryName
		if category == "" {
			category = report.UncategorizedLabel
		}
		write(txSheet, 3, row, category)
		write(txSheet, 4, row, string(t.TxType))
		write(txSheet, 5, row, t.Amount)
		write(txSheet, 6, row, t.Currency)
		write(txSheet, 7, row, truncate(t.Description, 140))
		row++
	}
	_ = f.SetColWidth(txSheet, "A", "A", 12)
	_ = f.SetColWidth(txSheet, "B", "C", 24)
	_ = f.SetColWidth(txSheet, "D", "F", 10)
	_ = f.SetColWidth(txSheet, "G", "G", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"organization_id", orgID.String(),
		"year", year,
		"report_rows", len(rows),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
