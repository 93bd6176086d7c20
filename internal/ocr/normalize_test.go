package ocr

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf to lf", "STARBUCKS\r\nLatte 15.90\r\n", "STARBUCKS\nLatte 15.90"},
		{"tabs and runs of spaces", "TOTAL\t\t  15.90", "TOTAL 15.90"},
		{"blank line runs capped at one", "A\n\n\n\nB", "A\n\nB"},
		{"control characters stripped", "A\x00B\x07C", "ABC"},
		{"leading and trailing whitespace", "  \n STARBUCKS \n  ", "STARBUCKS"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanForStorage(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"flattens newlines", "STARBUCKS\nLatte\n15.90", 100, "STARBUCKS Latte 15.90"},
		{"truncates by rune", "héllo world", 5, "héllo"},
		{"strips controls", "A\x1fB", 100, "AB"},
		{"zero max uses default", strings.Repeat("a", DefaultMaxTextLength+10), 0, strings.Repeat("a", DefaultMaxTextLength)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanForStorage(tt.in, tt.max); got != tt.want {
				t.Errorf("CleanForStorage(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}

func TestCleanForStorageIdempotent(t *testing.T) {
	in := "  STARBUCKS\r\n  Latte   15.90\x07  "
	once := CleanForStorage(in, 50)
	twice := CleanForStorage(once, 50)
	if once != twice {
		t.Errorf("not idempotent: %q vs %q", once, twice)
	}
}
