package parse

import (
	"regexp"
	"strings"
)

// Currency markers in priority order; the first match wins. A bare "$" only
// counts when not glued to a digit, so "S$12.00" resolves to SGD, not USD.
var currencyPatterns = []struct {
	re   *regexp.Regexp
	code string
}{
	{regexp.MustCompile(`\bUSD\b|\$(?:[^0-9]|$)`), "USD"},
	{regexp.MustCompile(`\bEUR\b|€`), "EUR"},
	{regexp.MustCompile(`\bGBP\b|£`), "GBP"},
	{regexp.MustCompile(`\bSGD\b|S\$`), "SGD"},
	{regexp.MustCompile(`\bMYR\b|RM\b`), "MYR"},
	{regexp.MustCompile(`\bTHB\b|฿`), "THB"},
	{regexp.MustCompile(`\bINR\b|₹`), "INR"},
	{regexp.MustCompile(`\bJPY\b|¥`), "JPY"},
}

// DefaultCurrency is used when the caller supplies no fallback.
const DefaultCurrency = "MYR"

// Currency scans text for a currency symbol or ISO code and returns the
// resolved 3-letter code, falling back to the supplied default. Always returns
// a valid code.
func Currency(text, fallback string) string {
	if fallback == "" {
		fallback = DefaultCurrency
	}
	if text == "" {
		return fallback
	}
	upper := strings.ToUpper(text)
	for _, p := range currencyPatterns {
		if p.re.MatchString(upper) {
			return p.code
		}
	}
	return fallback
}
