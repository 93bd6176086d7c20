package entity

// ParsedFields is what the extractor pulls out of OCR text. Empty string means
// the sub-parser found nothing; TotalAmount is 0 when no money-like figure
// matched. Never persisted on its own: it is consumed into a Transaction
// within the ingestion call that produced it.
type ParsedFields struct {
	Vendor        string
	InvoiceDate   string // YYYY-MM-DD
	InvoiceNumber string
	TotalAmount   float64
	Currency      string // resolved 3-letter code, never empty
}
