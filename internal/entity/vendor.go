package entity

import (
	"time"

	"github.com/google/uuid"
)

type Vendor struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
