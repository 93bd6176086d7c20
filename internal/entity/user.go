package entity

import (
	"time"

	"github.com/google/uuid"
)

// User identifies a document owner. IsSystem marks the per-org placeholder
// principal attached to anonymous ingestions.
type User struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Name           string
	Email          string
	IsSystem       bool
	CreatedAt      time.Time
}
