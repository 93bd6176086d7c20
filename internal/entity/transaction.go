package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/hackybara/expense-tracker/constants"
)

type Transaction struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	OCRResultID    *uuid.UUID
	VendorID       *uuid.UUID
	CategoryID     uuid.UUID
	// VendorName/CategoryName are joined in by the repository when the edges
	// are loaded; empty otherwise.
	VendorName   string
	CategoryName string
	Description  string
	Amount       float64
	Currency     string
	InvoiceDate  *time.Time
	TxType       constants.TxType
	CreatedAt    time.Time
}

// EffectiveDate is the invoice date when one was parsed, else the creation
// date. Every date-range bucketing uses this.
func (t *Transaction) EffectiveDate() time.Time {
	if t.InvoiceDate != nil {
		return *t.InvoiceDate
	}
	return time.Date(t.CreatedAt.Year(), t.CreatedAt.Month(), t.CreatedAt.Day(), 0, 0, 0, 0, time.UTC)
}
