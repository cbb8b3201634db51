package domain

import (
	"time"

	"github.com/google/uuid"
)

// CoupleSettings holds the couple's shared swipe preferences. Either member
// may change them; the last writer wins.
type CoupleSettings struct {
	PresentationOrder PresentationOrder
	GenderFilter      GenderFilter
}

// DefaultCoupleSettings returns settings used when a couple is created
// without explicit preferences.
func DefaultCoupleSettings() CoupleSettings {
	return CoupleSettings{
		PresentationOrder: OrderFixed,
		GenderFilter:      FilterAll,
	}
}

// Couple pairs exactly two accounts sharing one preference ledger and one
// settings object. Partner2ID is nil until the second member joins and is
// set at most once.
type Couple struct {
	ID         uuid.UUID
	Nickname   string
	Partner1ID uuid.UUID
	Partner2ID *uuid.UUID
	Settings   CoupleSettings
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsOpen reports whether the couple still accepts a second member.
func (c *Couple) IsOpen() bool {
	return c.Partner2ID == nil
}

// HasMember reports whether the given identity occupies either slot.
func (c *Couple) HasMember(id uuid.UUID) bool {
	if c.Partner1ID == id {
		return true
	}
	return c.Partner2ID != nil && *c.Partner2ID == id
}
