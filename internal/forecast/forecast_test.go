package forecast

import (
	"math"
	"testing"
	"time"

	"github.com/hackybara/expense-tracker/internal/entity"
)

func week(day int) time.Time {
	return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
}

func history(nets ...float64) []entity.WeeklyCashFlowPoint {
	out := make([]entity.WeeklyCashFlowPoint, len(nets))
	for i, n := range nets {
		out[i] = entity.WeeklyCashFlowPoint{WeekStart: week(5 + 7*i), Net: n}
	}
	return out
}

func TestProjectInsufficientHistory(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		series, status := Project(history(make([]float64, n)...), DefaultHorizon)
		if status != StatusInsufficientData {
			t.Errorf("%d points: status = %q, want %q", n, status, StatusInsufficientData)
		}
		if len(series) != 0 {
			t.Errorf("%d points: series length = %d, want 0", n, len(series))
		}
	}
}

func TestProjectFlatHistory(t *testing.T) {
	series, status := Project(history(100, 100, 100, 100), DefaultHorizon)
	if status != StatusOK {
		t.Fatalf("status = %q, want %q", status, StatusOK)
	}
	if len(series) != 4+DefaultHorizon {
		t.Fatalf("series length = %d, want %d", len(series), 4+DefaultHorizon)
	}
	for i, p := range series[:4] {
		if p.IsForecast || p.ObservedNet == nil || p.ForecastNet != nil {
			t.Errorf("point %d: historical point misshaped: %+v", i, p)
		}
		if *p.ObservedNet != 100 {
			t.Errorf("point %d: observed net = %v, want 100", i, *p.ObservedNet)
		}
	}
	for i, p := range series[4:] {
		if !p.IsForecast || p.ForecastNet == nil || p.ObservedNet != nil {
			t.Errorf("forecast %d: projected point misshaped: %+v", i, p)
		}
		if *p.ForecastNet != 100 {
			t.Errorf("forecast %d: net = %v, want 100 for flat history", i, *p.ForecastNet)
		}
	}
}

func TestProjectForecastPeriodsAreWeekly(t *testing.T) {
	series, _ := Project(history(10, 20, 30, 40, 50), 3)
	last := week(5 + 7*4)
	for i, p := range series[5:] {
		want := last.AddDate(0, 0, 7*(i+1))
		if !p.Period.Equal(want) {
			t.Errorf("forecast %d: period = %v, want %v", i, p.Period, want)
		}
	}
}

func TestProjectTrendDampens(t *testing.T) {
	// Rising history produces a positive trend whose per-step increment
	// shrinks as the dampening factor compounds.
	series, status := Project(history(10, 20, 30, 40, 50, 60), DefaultHorizon)
	if status != StatusOK {
		t.Fatalf("status = %q, want %q", status, StatusOK)
	}
	projected := series[6:]
	if len(projected) != DefaultHorizon {
		t.Fatalf("projected length = %d, want %d", len(projected), DefaultHorizon)
	}

	base := (30.0 + 40 + 50 + 60) / 4
	if first := *projected[0].ForecastNet; first <= base {
		t.Errorf("first forecast %v should exceed base %v for a rising trend", first, base)
	}

	prevIncrement := math.Inf(1)
	prev := base
	for i, p := range projected {
		inc := *p.ForecastNet - prev
		if i > 0 && inc >= prevIncrement {
			t.Errorf("forecast %d: increment %v did not shrink from %v", i, inc, prevIncrement)
		}
		prevIncrement = inc
		prev = *p.ForecastNet
	}
}

func TestProjectExactValues(t *testing.T) {
	// Window 4 over six points gives moving averages [25 35 45], so the
	// trend is (40-30)/3 and the base is mean(30,40,50,60) = 45.
	series, _ := Project(history(10, 20, 30, 40, 50, 60), 2)
	want := []float64{
		48.33, // 45 + 10/3 * 1 * 0.9^0, rounded
		51,    // 45 + 10/3 * 2 * 0.9^1
	}
	for i, w := range want {
		if got := *series[6+i].ForecastNet; got != w {
			t.Errorf("forecast %d = %v, want %v", i, got, w)
		}
	}
}

func TestStaleAfter(t *testing.T) {
	now := time.Date(2026, time.March, 2, 12, 0, 0, 0, time.UTC)
	if StaleAfter(now.Add(-23*time.Hour), 24*time.Hour, now) {
		t.Error("forecast inside TTL reported stale")
	}
	if !StaleAfter(now.Add(-25*time.Hour), 24*time.Hour, now) {
		t.Error("forecast outside TTL not reported stale")
	}
}
