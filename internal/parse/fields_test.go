package parse

import "testing"

func TestAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"largest figure wins", "Latte 15.90\nSandwich 12.40\nTOTAL 28.30", 28.30},
		{"thousands separators", "GRAND TOTAL 1,234.56", 1234.56},
		{"single figure", "RM 124.50", 124.50},
		{"no decimals no match", "TOTAL 124", 0},
		{"empty", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := amount(tt.text); got != tt.want {
				t.Errorf("amount(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestInvoiceDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"iso", "Date: 2024-01-15", "2024-01-15"},
		{"iso with slashes", "2024/01/15", "2024-01-15"},
		{"iso with dots", "2024.1.5", "2024-01-05"},
		{"day first", "15-01-2024", "2024-01-15"},
		{"us style", "01/15/2024", "2024-01-15"},
		{"spaced out by ocr", "Date: 2024 - 01 - 15", "2024-01-15"},
		{"iso preferred over others", "Printed: 2024-03-04; paid: 01-02-2024", "2024-03-04"},
		{"next line starts with a letter", "Date: 2024-01-15\nReceipt #R5512", "2024-01-15"},
		{"next line starts with a digit", "Date: 2024-01-15\n123 items", "2024-01-15"},
		{"nothing datelike", "TOTAL 15.90", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := invoiceDate(tt.text); got != tt.want {
				t.Errorf("invoiceDate(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestInvoiceNumber(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"invoice with colon", "Invoice No: INV-2024-001", "INV-2024-001"},
		{"receipt number", "Receipt #R12345", "R12345"},
		{"reference", "Ref: ABC/99", "ABC/99"},
		{"short token rejected", "Invoice No: 12", ""},
		{"case insensitive", "INVOICE NUMBER INV99", "INV99"},
		{"none", "Just a coffee", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := invoiceNumber(tt.text); got != tt.want {
				t.Errorf("invoiceNumber(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestVendor(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			"first clean line",
			"STARBUCKS COFFEE\n123 Jalan Ampang\nTOTAL 15.90",
			"STARBUCKS COFFEE",
		},
		{
			"skips stop word lines",
			"RECEIPT\nThank You\nKFC Bukit Bintang\nTOTAL 42.00",
			"KFC Bukit Bintang",
		},
		{
			"skips phone like lines",
			"03-2161 1234\n60 12-345 6789\nOld Town Kopitiam",
			"Old Town Kopitiam",
		},
		{
			"strips stray symbols",
			"** MPH Bookstore **\nitems follow",
			"MPH Bookstore",
		},
		{"too short rejected", "AB\nX\n", ""},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := vendor(tt.text); got != tt.want {
				t.Errorf("vendor(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestFieldsAndExtract(t *testing.T) {
	text := "STARBUCKS COFFEE\nKL Sentral\nDate: 2024-01-15\nReceipt #R5512\nLatte 15.90\nTOTAL RM 124.50"
	f := Extract(text, "")
	if f.Vendor != "STARBUCKS COFFEE" {
		t.Errorf("Vendor = %q", f.Vendor)
	}
	if f.InvoiceDate != "2024-01-15" {
		t.Errorf("InvoiceDate = %q", f.InvoiceDate)
	}
	if f.InvoiceNumber != "R5512" {
		t.Errorf("InvoiceNumber = %q", f.InvoiceNumber)
	}
	if f.TotalAmount != 124.50 {
		t.Errorf("TotalAmount = %v", f.TotalAmount)
	}
	if f.Currency != "MYR" {
		t.Errorf("Currency = %q", f.Currency)
	}
}
