// parsecheck runs the parsing and keyword classification stages over a text
// file and prints the result, for eyeballing extraction quality without a
// database or an API key.
package main

import (
	"encoding/json"
	"log/slog"
	"os"

	"github.com/hackybara/expense-tracker/internal/classify"
	"github.com/hackybara/expense-tracker/internal/ocr"
	"github.com/hackybara/expense-tracker/internal/parse"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		logger.Error("usage: parsecheck <textfile>")
		os.Exit(2)
	}
	raw, err := os.ReadFile(os.Args[1])
	if err != nil {
		logger.Error("reading input", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	fallback := os.Getenv("FALLBACK_CURRENCY")
	if fallback == "" {
		fallback = "MYR"
	}

	text := ocr.Normalize(string(raw))
	fields := parse.Extract(text, fallback)
	category := classify.KeywordGuess(text)

	out := struct {
		Vendor        string  `json:"vendor"`
		InvoiceDate   string  `json:"invoice_date"`
		InvoiceNumber string  `json:"invoice_number"`
		TotalAmount   float64 `json:"total_amount"`
		Currency      string  `json:"currency"`
		Category      string  `json:"category"`
	}{
		Vendor:        fields.Vendor,
		InvoiceDate:   fields.InvoiceDate,
		InvoiceNumber: fields.InvoiceNumber,
		TotalAmount:   fields.TotalAmount,
		Currency:      fields.Currency,
		Category:      string(category),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		logger.Error("encoding output", "error", err)
		os.Exit(1)
	}
}
