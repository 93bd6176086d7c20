// Package forecast projects weekly net cash flow with a trend-adjusted
// moving average. The projection is deliberately simple: it favors stable,
// explainable numbers over model sophistication.
package forecast

import (
	"math"
	"time"

	"github.com/hackybara/expense-tracker/internal/entity"
)

const (
	// DefaultHorizon is how many weeks ahead Project looks.
	DefaultHorizon = 8
	// MinHistory is the fewest observed weeks a projection needs.
	MinHistory = 4

	maxWindow      = 4
	trendDampening = 0.9
)

type Status string

const (
	StatusOK               Status = "ok"
	StatusInsufficientData Status = "insufficient_data"
)

// Project builds a combined series of observed weeks followed by projected
// weeks. History must be in ascending week order. Fewer than MinHistory
// points yields an empty series and StatusInsufficientData.
func Project(history []entity.WeeklyCashFlowPoint, horizon int) ([]entity.ForecastPoint, Status) {
	if len(history) < MinHistory {
		return []entity.ForecastPoint{}, StatusInsufficientData
	}
	if horizon <= 0 {
		horizon = DefaultHorizon
	}

	nets := make([]float64, len(history))
	for i, p := range history {
		nets[i] = p.Net
	}

	window := maxWindow
	if len(nets) < window {
		window = len(nets)
	}

	var movingAverages []float64
	for i := 0; i+window <= len(nets); i++ {
		movingAverages = append(movingAverages, mean(nets[i:i+window]))
	}

	trend := 0.0
	if len(movingAverages) >= 2 {
		recent := mean(movingAverages[len(movingAverages)-2:])
		older := mean(movingAverages[:2])
		trend = (recent - older) / float64(len(movingAverages))
	}

	series := make([]entity.ForecastPoint, 0, len(history)+horizon)
	for _, p := range history {
		net := p.Net
		series = append(series, entity.ForecastPoint{
			Period:      p.WeekStart,
			ObservedNet: &net,
			IsForecast:  false,
		})
	}

	base := mean(nets[len(nets)-window:])
	lastWeek := history[len(history)-1].WeekStart
	for i := 0; i < horizon; i++ {
		dampening := math.Pow(trendDampening, float64(i))
		value := round2(base + trend*float64(i+1)*dampening)
		series = append(series, entity.ForecastPoint{
			Period:      lastWeek.AddDate(0, 0, 7*(i+1)),
			ForecastNet: &value,
			IsForecast:  true,
		})
	}

	return series, StatusOK
}

func mean(xs []float64) float64 {
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// StaleAfter reports whether a forecast computed at "computedAt" has aged out
// of the cache window.
func StaleAfter(computedAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(computedAt) > ttl
}
