package domain

import (
	"time"

	"github.com/google/uuid"
)

// Name is one entry of the master catalog. Entries are seeded once and
// treated as append-only reference data; they are never mutated or deleted.
type Name struct {
	ID        uuid.UUID
	Name      string
	Gender    Gender
	Meaning   *string
	CreatedAt time.Time
}
