package entity

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	UploadedBy     uuid.UUID
	Name           string
	DocumentURL    *string
	DocType        string
	CreatedAt      time.Time
}

type OCRResult struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	DocumentID     uuid.UUID
	VendorID       *uuid.UUID
	Results        string
	TotalAmount    float64
	Currency       string
	InvoiceDate    *time.Time
	InvoiceNumber  *string
	CreatedAt      time.Time
}
