package openai

import (
	"testing"
	"unicode/utf8"
)

func TestParseInsightSections(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantOK      bool
		wantSummary string
		wantRecs    int
	}{
		{
			name: "well formed reply",
			content: "---SUMMARY---\nSpending is up 12% month over month.\n---JSON---\n" +
				`{"budget_recommendations":[{"category":"Food & Beverage","suggestion":"cap dining out","est_monthly_savings":120}],` +
				`"tax_preparation":[],"risks":[]}`,
			wantOK:      true,
			wantSummary: "Spending is up 12% month over month.",
			wantRecs:    1,
		},
		{
			name:    "missing summary marker",
			content: "Spending looks fine.",
			wantOK:  false,
		},
		{
			name:        "broken json keeps summary",
			content:     "---SUMMARY---\nAll good.\n---JSON---\n{not json",
			wantOK:      true,
			wantSummary: "All good.",
			wantRecs:    0,
		},
		{
			name:        "json failing schema keeps summary",
			content:     "---SUMMARY---\nAll good.\n---JSON---\n{\"budget_recommendations\":\"nope\"}",
			wantOK:      true,
			wantSummary: "All good.",
			wantRecs:    0,
		},
		{
			name:    "empty summary section",
			content: "---SUMMARY---\n\n---JSON---\n{}",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, actions, ok := parseInsightSections(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
			if len(actions.BudgetRecommendations) != tt.wantRecs {
				t.Errorf("recommendations = %d, want %d", len(actions.BudgetRecommendations), tt.wantRecs)
			}
			if actions.TaxPreparation == nil || actions.Risks == nil {
				t.Errorf("action slices must be non-nil")
			}
		})
	}
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		n    int
		want string
	}{
		{"short ascii untouched", "hello", 10, "hello"},
		{"ascii cut", "hello", 3, "hel"},
		{"multi-byte boundary", "ごはん食べた", 4, "ごはん食"},
		{"multi-byte untouched", "ごはん", 3, "ごはん"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.in, tt.n)
			if got != tt.want {
				t.Errorf("truncateRunes(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncateRunes(%q, %d) produced invalid UTF-8", tt.in, tt.n)
			}
		})
	}
}
