package report

import (
	"sort"
	"time"

	"github.com/hackybara/expense-tracker/constants"
	"github.com/hackybara/expense-tracker/internal/entity"
)

// WeeklyCashFlow buckets transactions into ISO weeks of their effective
// date. Incomes add to inflow and net; expenses add to outflow and subtract
// from net. Weeks come back in ascending order, gaps left as-is.
func WeeklyCashFlow(txs []*entity.Transaction) []entity.WeeklyCashFlowPoint {
	buckets := map[time.Time]*entity.WeeklyCashFlowPoint{}
	for _, t := range txs {
		ws := weekStart(t.EffectiveDate())
		p, ok := buckets[ws]
		if !ok {
			p = &entity.WeeklyCashFlowPoint{WeekStart: ws}
			buckets[ws] = p
		}
		if t.TxType == constants.TxTypeIncome {
			p.Inflow += t.Amount
			p.Net += t.Amount
		} else {
			p.Outflow += t.Amount
			p.Net -= t.Amount
		}
	}

	out := make([]entity.WeeklyCashFlowPoint, 0, len(buckets))
	for _, p := range buckets {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].WeekStart.Before(out[j].WeekStart) })
	return out
}

// weekStart truncates to the Monday of the date's ISO week.
func weekStart(d time.Time) time.Time {
	d = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(d.Weekday()) + 6) % 7
	return d.AddDate(0, 0, -offset)
}
