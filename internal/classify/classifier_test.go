package classify

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/hackybara/expense-tracker/constants"
)

func TestKeywordGuess(t *testing.T) {
	tests := []struct {
		name string
		text string
		want constants.Category
	}{
		{"coffee chain", "STARBUCKS COFFEE KL Sentral\nGrande Latte 15.90", constants.FoodAndBeverage},
		{"electricity bill", "TNB electricity bill for March, monthly bill", constants.Utilities},
		{"ride hailing", "Grab ride from KLCC to Bangsar, toll included", constants.Transportation},
		{"stationery run", "Popular Bookstore pen pencil notebook stapler", constants.OfficeSupplies},
		{"no signal", "zzqx 123456", constants.Others},
		{"empty text", "", constants.Others},
		{"multi word phrase outweighs", "jaya grocer market", constants.FoodAndBeverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KeywordGuess(tt.text); got != tt.want {
				t.Errorf("KeywordGuess(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

type fakeAI struct {
	label string
	err   error
	delay time.Duration
}

func (f *fakeAI) ClassifyReceipt(ctx context.Context, _ string) (string, error) {
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.label, f.err
}

func TestClassifierTwoTier(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)
	text := "STARBUCKS COFFEE latte and cake"

	tests := []struct {
		name string
		ai   AITier
		want constants.Category
	}{
		{"ai valid answer wins", &fakeAI{label: "Utilities"}, constants.Utilities},
		{"ai error falls back to keywords", &fakeAI{err: errors.New("boom")}, constants.FoodAndBeverage},
		{"ai no answer falls back", &fakeAI{label: ""}, constants.FoodAndBeverage},
		{"ai unknown label falls back", &fakeAI{label: "Groceries"}, constants.FoodAndBeverage},
		{"no ai tier configured", nil, constants.FoodAndBeverage},
		{"ai timeout falls back", &fakeAI{label: "Utilities", delay: 200 * time.Millisecond}, constants.FoodAndBeverage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timeout := 10 * time.Second
			if tt.name == "ai timeout falls back" {
				timeout = 20 * time.Millisecond
			}
			c := New(tt.ai, timeout, logger)
			if got := c.Classify(context.Background(), text); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}
