// Package parse turns raw OCR text into typed accounting fields. Every
// sub-parser is total: malformed input degrades to an absent value or zero,
// never an error.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hackybara/expense-tracker/internal/entity"
)

// Money-like figure: 1-3 leading digits, optional thousands groups, exactly
// two decimals. The grand total is assumed to be the largest such figure.
var reAmount = regexp.MustCompile(`\d{1,3}(?:,\d{3})*\.\d{2}`)

// Date candidates in trial order: ISO first, then day-first, then US style.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:20\d{2}|19\d{2})[-/.](?:0?[1-9]|1[0-2])[-/.](?:0?[1-9]|[12]\d|3[01])\b`),
	regexp.MustCompile(`\b(?:0?[1-9]|[12]\d|3[01])[-/.](?:0?[1-9]|1[0-2])[-/.](?:20\d{2}|19\d{2})\b`),
	regexp.MustCompile(`\b(?:0?[1-9]|1[0-2])[-/.](?:0?[1-9]|[12]\d|3[01])[-/.](?:20\d{2}|19\d{2})\b`),
}

// dateLayouts are tried against every normalized match; the pattern that
// matched picks the candidate substring, not the interpretation.
var dateLayouts = []string{"2006-1-2", "2-1-2006", "1-2-2006"}

var reDateSep = regexp.MustCompile(`[/.]`)

var invoicePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:invoice|inv|bill)\s*(?:no\.?|#|num(?:ber)?)?\s*[:\-]?\s*([A-Za-z0-9\-/]+)`),
	regexp.MustCompile(`(?i)receipt\s*(?:no\.?|#)?\s*[:\-]?\s*([A-Za-z0-9\-/]+)`),
	regexp.MustCompile(`(?i)ref(?:erence)?\s*(?:no\.?|#)?\s*[:\-]?\s*([A-Za-z0-9\-/]+)`),
}

// Vendor-line filters.
var (
	reVendorClean = regexp.MustCompile(`[^A-Za-z0-9 &\-.,]`)
	reMostlyNums  = regexp.MustCompile(`^\d+[\d\s\-]*$`)
	rePhoneLike   = regexp.MustCompile(`\d{3,}[-\s]\d{3,}`)

	vendorStopWords = []string{
		"total", "subtotal", "tax", "invoice", "receipt", "amount", "cashier",
		"date", "time", "thank", "you", "welcome", "payment", "change", "balance",
		"gst", "vat", "service", "charge", "www", "http", "email", "phone", "tel",
	}
)

// vendorScanLines bounds the vendor search; the vendor name is assumed to
// appear near the top of the receipt.
const vendorScanLines = 15

// Fields extracts vendor, invoice date, invoice number and total amount from
// OCR text. Currency is resolved separately (see Currency); the returned
// struct leaves it empty.
func Fields(text string) entity.ParsedFields {
	fields := entity.ParsedFields{}
	if text == "" {
		return fields
	}

	fields.TotalAmount = amount(text)
	fields.InvoiceDate = invoiceDate(text)
	fields.InvoiceNumber = invoiceNumber(text)
	fields.Vendor = vendor(text)
	return fields
}

// Extract runs Fields plus currency resolution against the fallback code.
func Extract(text, fallbackCurrency string) entity.ParsedFields {
	fields := Fields(text)
	fields.Currency = Currency(text, fallbackCurrency)
	return fields
}

func amount(text string) float64 {
	var maxAmount float64
	for _, m := range reAmount.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m, ",", ""), 64)
		if err != nil {
			continue
		}
		if v > maxAmount {
			maxAmount = v
		}
	}
	return maxAmount
}

func invoiceDate(text string) string {
	// Spaces inside a date ("2024 - 01 - 15") are a common OCR artifact.
	// Newlines stay: they separate the date from the next line's text, which
	// would otherwise defeat the patterns' boundary anchors.
	compact := strings.ReplaceAll(text, " ", "")
	for _, re := range datePatterns {
		m := re.FindString(compact)
		if m == "" {
			continue
		}
		normalized := reDateSep.ReplaceAllString(m, "-")
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, normalized); err == nil {
				return t.Format("2006-01-02")
			}
		}
	}
	return ""
}

func invoiceNumber(text string) string {
	for _, re := range invoicePatterns {
		m := re.FindStringSubmatch(text)
		if len(m) < 2 {
			continue
		}
		token := strings.TrimSpace(m[1])
		if len(token) >= 3 {
			return token
		}
	}
	return ""
}

func vendor(text string) string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
			if len(lines) == vendorScanLines {
				break
			}
		}
	}

	for _, line := range lines {
		clean := strings.TrimSpace(reVendorClean.ReplaceAllString(line, ""))
		if len(clean) < 3 || len(clean) > 60 {
			continue
		}
		if containsStopWord(strings.ToLower(clean)) {
			continue
		}
		if reMostlyNums.MatchString(clean) || rePhoneLike.MatchString(clean) || mostlyDigits(clean) {
			continue
		}
		return clean
	}
	return ""
}

func containsStopWord(lower string) bool {
	for _, w := range vendorStopWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func mostlyDigits(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits*2 > len([]rune(s))
}
