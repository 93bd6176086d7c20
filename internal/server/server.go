// Package server exposes the gRPC surface. Handlers validate and translate;
// the service and report layers do the work.
package server

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	expensev1 "github.com/hackybara/expense-tracker/gen/proto/expense/v1"
	"github.com/hackybara/expense-tracker/internal/entity"
)

func parseOrgID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "organization_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, "organization_id must be a UUID")
	}
	return id, nil
}

func toPBTransaction(t *entity.Transaction) *expensev1.Transaction {
	out := &expensev1.Transaction{
		Id:             t.ID.String(),
		OrganizationId: t.OrganizationID.String(),
		Vendor:         t.VendorName,
		Category:       t.CategoryName,
		Description:    t.Description,
		Amount:         t.Amount,
		Currency:       t.Currency,
		TxType:         string(t.TxType),
		EffectiveDate:  t.EffectiveDate().Format("2006-01-02"),
		CreatedAt:      t.CreatedAt.UTC().Format(time.RFC3339),
	}
	if t.InvoiceDate != nil {
		out.InvoiceDate = t.InvoiceDate.Format("2006-01-02")
	}
	return out
}

func toPBForecastPoint(p entity.ForecastPoint) *expensev1.ForecastPoint {
	out := &expensev1.ForecastPoint{
		Week:       p.Period.Format("2006-01-02"),
		IsForecast: p.IsForecast,
	}
	if p.ObservedNet != nil {
		out.Net = *p.ObservedNet
		out.HasNet = true
	}
	if p.ForecastNet != nil {
		out.Forecast = *p.ForecastNet
		out.HasForecast = true
	}
	return out
}

// parseDateRange turns YYYY-MM-DD bounds into timestamps covering the named
// days inclusively. Empty strings mean unbounded.
func parseDateRange(from, to string) (*time.Time, *time.Time, error) {
	var fromTS, toTS *time.Time
	if from = strings.TrimSpace(from); from != "" {
		d, err := time.Parse("2006-01-02", from)
		if err != nil {
			return nil, nil, status.Error(codes.InvalidArgument, "from_date must be YYYY-MM-DD")
		}
		fromTS = &d
	}
	if to = strings.TrimSpace(to); to != "" {
		d, err := time.Parse("2006-01-02", to)
		if err != nil {
			return nil, nil, status.Error(codes.InvalidArgument, "to_date must be YYYY-MM-DD")
		}
		end := d.AddDate(0, 0, 1).Add(-time.Nanosecond)
		toTS = &end
	}
	if fromTS != nil && toTS != nil && toTS.Before(*fromTS) {
		return nil, nil, status.Error(codes.InvalidArgument, "to_date is before from_date")
	}
	return fromTS, toTS, nil
}
