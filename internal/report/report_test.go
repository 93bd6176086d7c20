package report

import (
	"errors"
	"testing"
	"time"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/entity"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func tx(txType constants.TxType, amount float64, category, vendor string, invoiceDate time.Time) *entity.Transaction {
	t := &entity.Transaction{
		Amount:       amount,
		CategoryName: category,
		VendorName:   vendor,
		TxType:       txType,
		CreatedAt:    invoiceDate,
	}
	if !invoiceDate.IsZero() {
		d := invoiceDate
		t.InvoiceDate = &d
	}
	return t
}

func TestBuildSummary(t *testing.T) {
	now := date(2026, time.June, 1)
	txs := []*entity.Transaction{
		tx(constants.TxTypeExpense, 100, "Food & Beverage", "Starbucks", date(2026, time.May, 20)),
		tx(constants.TxTypeExpense, 50, "Food & Beverage", "KFC", date(2026, time.May, 25)),
		tx(constants.TxTypeExpense, 200, "Utilities", "TNB", date(2026, time.May, 1)),
		// Outside the 90 day window but inside all-time KPIs.
		tx(constants.TxTypeExpense, 500, "Office Supplies", "MPH", date(2025, time.January, 10)),
		// Income counts toward receipt count and average, not expenses.
		tx(constants.TxTypeIncome, 1000, "Others", "", date(2026, time.May, 30)),
		// No category name loaded.
		tx(constants.TxTypeExpense, 10, "", "", date(2026, time.May, 28)),
	}

	s := BuildSummary(txs, now)

	if s.KPIs.TotalExpense != 860 {
		t.Errorf("TotalExpense = %v, want 860", s.KPIs.TotalExpense)
	}
	if s.KPIs.ReceiptCount != 6 {
		t.Errorf("ReceiptCount = %d, want 6", s.KPIs.ReceiptCount)
	}
	if want := 1860.0 / 6; s.KPIs.AvgPerReceipt != want {
		t.Errorf("AvgPerReceipt = %v, want %v", s.KPIs.AvgPerReceipt, want)
	}
	if s.KPIs.TopCategory.Name != "Office Supplies" || s.KPIs.TopCategory.Total != 500 {
		t.Errorf("TopCategory = %+v, want Office Supplies/500", s.KPIs.TopCategory)
	}

	want90d := []CategoryTotal{
		{Category: "Utilities", Total: 200},
		{Category: "Food & Beverage", Total: 150},
		{Category: UncategorizedLabel, Total: 10},
	}
	if len(s.ByCategory90d) != len(want90d) {
		t.Fatalf("ByCategory90d = %+v, want %+v", s.ByCategory90d, want90d)
	}
	for i, w := range want90d {
		if s.ByCategory90d[i] != w {
			t.Errorf("ByCategory90d[%d] = %+v, want %+v", i, s.ByCategory90d[i], w)
		}
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	s := BuildSummary(nil, date(2026, time.June, 1))
	if s.KPIs.ReceiptCount != 0 || s.KPIs.TotalExpense != 0 || s.KPIs.AvgPerReceipt != 0 {
		t.Errorf("empty KPIs = %+v", s.KPIs)
	}
	if s.KPIs.TopCategory.Name != "None" {
		t.Errorf("TopCategory.Name = %q, want None", s.KPIs.TopCategory.Name)
	}
	if len(s.ByCategory90d) != 0 {
		t.Errorf("ByCategory90d = %+v, want empty", s.ByCategory90d)
	}
}

func TestTopVendors(t *testing.T) {
	now := date(2026, time.June, 1)
	txs := []*entity.Transaction{
		tx(constants.TxTypeExpense, 300, "Food & Beverage", "Starbucks", date(2026, time.May, 1)),
		tx(constants.TxTypeExpense, 200, "Food & Beverage", "KFC", date(2026, time.May, 2)),
		tx(constants.TxTypeExpense, 100, "Utilities", "TNB", date(2026, time.May, 3)),
		tx(constants.TxTypeExpense, 999, "Utilities", "Old Vendor", date(2025, time.January, 1)),
		tx(constants.TxTypeExpense, 50, "Others", "", date(2026, time.May, 4)),
		tx(constants.TxTypeIncome, 400, "Others", "Client", date(2026, time.May, 5)),
	}

	got := TopVendors(txs, now, 2)
	if len(got) != 2 {
		t.Fatalf("TopVendors = %+v, want 2 entries", got)
	}
	if got[0].Vendor != "Starbucks" || got[0].Total != 300 {
		t.Errorf("TopVendors[0] = %+v", got[0])
	}
	if got[1].Vendor != "KFC" || got[1].Total != 200 {
		t.Errorf("TopVendors[1] = %+v", got[1])
	}
}

func TestMonthlyReport(t *testing.T) {
	txs := []*entity.Transaction{
		tx(constants.TxTypeExpense, 100, "Food & Beverage", "", date(2026, time.January, 5)),
		tx(constants.TxTypeExpense, 40, "Food & Beverage", "", date(2026, time.January, 20)),
		tx(constants.TxTypeIncome, 500, "Others", "", date(2026, time.January, 31)),
		tx(constants.TxTypeExpense, 75, "Utilities", "", date(2026, time.February, 2)),
		tx(constants.TxTypeExpense, 75, "Utilities", "", date(2025, time.December, 31)),
	}
	// Effective date falls back to the creation date.
	noInvoice := &entity.Transaction{
		Amount:    30,
		TxType:    constants.TxTypeExpense,
		CreatedAt: time.Date(2026, time.February, 10, 15, 4, 5, 0, time.UTC),
	}
	txs = append(txs, noInvoice)

	rows, err := MonthlyReport(txs, 2026)
	if err != nil {
		t.Fatalf("MonthlyReport: %v", err)
	}

	want := []MonthlyRow{
		{Month: date(2026, time.January, 1), Category: "Food & Beverage", Total: 140},
		{Month: date(2026, time.January, 1), Category: "Others", Total: 500},
		{Month: date(2026, time.February, 1), Category: UncategorizedLabel, Total: 30},
		{Month: date(2026, time.February, 1), Category: "Utilities", Total: 75},
	}
	if len(rows) != len(want) {
		t.Fatalf("rows = %+v, want %+v", rows, want)
	}
	for i, w := range want {
		if !rows[i].Month.Equal(w.Month) || rows[i].Category != w.Category || rows[i].Total != w.Total {
			t.Errorf("rows[%d] = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestMonthlyReportYearValidation(t *testing.T) {
	for _, year := range []int{2019, 2031} {
		if _, err := MonthlyReport(nil, year); !errors.Is(err, ErrYearOutOfRange) {
			t.Errorf("year %d: err = %v, want ErrYearOutOfRange", year, err)
		}
	}
	for _, year := range []int{2020, 2030} {
		if _, err := MonthlyReport(nil, year); err != nil {
			t.Errorf("year %d: unexpected err %v", year, err)
		}
	}
}

func TestWeeklyCashFlow(t *testing.T) {
	txs := []*entity.Transaction{
		// Week of Monday 2026-01-05.
		tx(constants.TxTypeExpense, 100, "", "", date(2026, time.January, 5)),
		tx(constants.TxTypeIncome, 250, "", "", date(2026, time.January, 8)),
		// Sunday still belongs to the same ISO week.
		tx(constants.TxTypeExpense, 20, "", "", date(2026, time.January, 11)),
		// Next week.
		tx(constants.TxTypeExpense, 60, "", "", date(2026, time.January, 12)),
	}

	points := WeeklyCashFlow(txs)
	if len(points) != 2 {
		t.Fatalf("points = %+v, want 2 weeks", points)
	}

	first := points[0]
	if !first.WeekStart.Equal(date(2026, time.January, 5)) {
		t.Errorf("first week start = %v, want 2026-01-05", first.WeekStart)
	}
	if first.Inflow != 250 || first.Outflow != 120 || first.Net != 130 {
		t.Errorf("first week = %+v, want inflow 250 outflow 120 net 130", first)
	}

	second := points[1]
	if !second.WeekStart.Equal(date(2026, time.January, 12)) {
		t.Errorf("second week start = %v, want 2026-01-12", second.WeekStart)
	}
	if second.Net != -60 {
		t.Errorf("second week net = %v, want -60", second.Net)
	}
}

func TestWeekStartAcrossYearBoundary(t *testing.T) {
	// 2026-01-01 is a Thursday; its week starts Monday 2025-12-29.
	points := WeeklyCashFlow([]*entity.Transaction{
		tx(constants.TxTypeExpense, 10, "", "", date(2026, time.January, 1)),
	})
	if len(points) != 1 || !points[0].WeekStart.Equal(date(2025, time.December, 29)) {
		t.Errorf("points = %+v, want week start 2025-12-29", points)
	}
}
