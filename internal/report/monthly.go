package report

import (
	"errors"
	"sort"
	"time"

	"github.com/hackybara/expense-tracker/internal/entity"
)

const (
	MinReportYear = 2020
	MaxReportYear = 2030
)

// ErrYearOutOfRange rejects report years outside the supported window.
var ErrYearOutOfRange = errors.New("report year out of range")

type MonthlyRow struct {
	Month    time.Time `json:"month"`
	Category string    `json:"category"`
	Total    float64   `json:"total"`
}

// MonthlyReport groups a year's transactions (expenses and incomes alike) by
// calendar month of the effective date and by category, ordered by month
// then category name.
func MonthlyReport(txs []*entity.Transaction, year int) ([]MonthlyRow, error) {
	if year < MinReportYear || year > MaxReportYear {
		return nil, ErrYearOutOfRange
	}

	type key struct {
		month    time.Time
		category string
	}
	totals := map[key]float64{}
	for _, t := range txs {
		eff := t.EffectiveDate()
		if eff.Year() != year {
			continue
		}
		name := t.CategoryName
		if name == "" {
			name = UncategorizedLabel
		}
		month := time.Date(eff.Year(), eff.Month(), 1, 0, 0, 0, 0, time.UTC)
		totals[key{month: month, category: name}] += t.Amount
	}

	rows := make([]MonthlyRow, 0, len(totals))
	for k, total := range totals {
		rows = append(rows, MonthlyRow{Month: k.month, Category: k.category, Total: total})
	}
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Month.Equal(rows[j].Month) {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].Category < rows[j].Category
	})
	return rows, nil
}
