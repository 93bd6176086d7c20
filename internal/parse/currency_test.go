package parse

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dollar not glued to digit", "TOTAL: $ 15.90", "USD"},
		{"usd code", "Total 12.00 USD", "USD"},
		{"euro symbol", "Gesamt 9,99 €TOTAL 9.99", "EUR"},
		{"pound", "Total £4.50", "GBP"},
		{"singapore dollar beats bare dollar", "TOTAL S$12.00", "SGD"},
		{"rm marker", "TOTAL RM 124.50", "MYR"},
		{"baht", "รวม ฿150.00", "THB"},
		{"rupee", "Total ₹250.00", "INR"},
		{"yen", "合計 ¥1200.00", "JPY"},
		{"lowercase code uppercased first", "total 10.00 usd", "USD"},
		{"no marker falls back", "TOTAL 124.50", "MYR"},
		{"custom fallback", "TOTAL 124.50", "SGD"},
		{"empty text", "", "MYR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fallback := ""
			if tt.name == "custom fallback" {
				fallback = "SGD"
			}
			if got := Currency(tt.text, fallback); got != tt.want {
				t.Errorf("Currency(%q, %q) = %q, want %q", tt.text, fallback, got, tt.want)
			}
		})
	}
}
