// Package report aggregates transactions into the dashboard views: KPIs and
// category breakdowns, monthly per-category totals, and weekly cash flow.
// Everything here is pure; repositories hand in transactions, report buckets
// them.
package report

import (
	"sort"
	"time"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/entity"
)

// UncategorizedLabel stands in for transactions whose category name was not
// loaded.
const UncategorizedLabel = "Uncategorized"

const spendingWindowDays = 90

type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type TopCategory struct {
	Name  string  `json:"name"`
	Total float64 `json:"total"`
}

type KPIs struct {
	TotalExpense  float64     `json:"total_expense"`
	ReceiptCount  int         `json:"receipt_count"`
	AvgPerReceipt float64     `json:"avg_per_receipt"`
	TopCategory   TopCategory `json:"top_category"`
}

type Summary struct {
	KPIs          KPIs            `json:"kpis"`
	ByCategory90d []CategoryTotal `json:"by_category_90d"`
}

// BuildSummary computes KPIs over the whole history and the expense
// breakdown over the trailing 90 days of effective dates. TotalExpense and
// the category figures count expenses only; ReceiptCount and AvgPerReceipt
// cover every transaction.
func BuildSummary(txs []*entity.Transaction, now time.Time) Summary {
	var totalExpense, totalAll float64
	allTime := map[string]float64{}
	windowStart := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -spendingWindowDays)
	recent := map[string]float64{}

	for _, t := range txs {
		totalAll += t.Amount
		if t.TxType != constants.TxTypeExpense {
			continue
		}
		totalExpense += t.Amount
		name := t.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		allTime[name] += t.Amount
		if !t.EffectiveDate().Before(windowStart) {
			recent[name] += t.Amount
		}
	}

	kpis := KPIs{
		TotalExpense: totalExpense,
		ReceiptCount: len(txs),
		TopCategory:  TopCategory{Name: "None"},
	}
	if len(txs) > 0 {
		kpis.AvgPerReceipt = totalAll / float64(len(txs))
	}
	if top := sortTotals(allTime); len(top) > 0 {
		kpis.TopCategory = TopCategory{Name: top[0].Category, Total: top[0].Total}
	}

	return Summary{KPIs: kpis, ByCategory90d: sortTotals(recent)}
}

// sortTotals flattens a totals map, largest first, name ascending on ties so
// the order is stable.
func sortTotals(m map[string]float64) []CategoryTotal {
	out := make([]CategoryTotal, 0, len(m))
	for name, total := range m {
		out = append(out, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out
}

type VendorTotal struct {
	Vendor string  `json:"vendor"`
	Total  float64 `json:"total"`
}

// TopVendors returns the highest-spend vendors over the trailing 90 days,
// at most limit entries. Transactions without a vendor are skipped.
func TopVendors(txs []*entity.Transaction, now time.Time, limit int) []VendorTotal {
	windowStart := now.UTC().Truncate(24 * time.Hour).AddDate(0, 0, -spendingWindowDays)
	totals := map[string]float64{}
	for _, t := range txs {
		if t.TxType != constants.TxTypeExpense || t.VendorName == "" {
			continue
		}
		if t.EffectiveDate().Before(windowStart) {
			continue
		}
		totals[t.VendorName] += t.Amount
	}

	out := make([]VendorTotal, 0, len(totals))
	for name, total := range totals {
		out = append(out, VendorTotal{Vendor: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Vendor < out[j].Vendor
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
