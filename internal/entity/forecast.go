package entity

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyCashFlowPoint is one ISO week of aggregated transactions.
type WeeklyCashFlowPoint struct {
	WeekStart time.Time `json:"week"`
	Inflow    float64   `json:"inflow"`
	Outflow   float64   `json:"outflow"`
	Net       float64   `json:"net"`
}

// ForecastPoint is one period of a forecast series. Historical points carry
// ObservedNet with ForecastNet nil; projected points the reverse.
type ForecastPoint struct {
	Period      time.Time `json:"week"`
	ObservedNet *float64  `json:"net"`
	ForecastNet *float64  `json:"forecast"`
	IsForecast  bool      `json:"is_forecast"`
}

type Forecast struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Horizon        int
	Granularity    string
	Series         []ForecastPoint
	ComputedAt     time.Time
}
