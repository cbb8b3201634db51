package domain

import (
	"time"

	"github.com/google/uuid"
)

// PreferenceRecord stores both members' decisions on one catalog name.
// A record exists iff at least one member has decided; an absent record is
// equivalent to both decisions being UNDECIDED. Records are created lazily
// on the first decision, mutated in place afterwards, and never deleted.
// At most one record exists per (couple, name).
type PreferenceRecord struct {
	ID               uuid.UUID
	CoupleID         uuid.UUID
	NameID           uuid.UUID
	Partner1Decision Decision
	Partner2Decision Decision
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DecisionFor returns the given role's decision. A nil record reads as
// UNDECIDED for both roles.
func (r *PreferenceRecord) DecisionFor(role Role) Decision {
	if r == nil {
		return DecisionUndecided
	}
	if role == RolePartner1 {
		return r.Partner1Decision
	}
	return r.Partner2Decision
}

// WithDecision returns a copy of the record with the given role's decision
// applied. Writing one role's decision never touches the other's.
func (r *PreferenceRecord) WithDecision(role Role, d Decision) PreferenceRecord {
	var out PreferenceRecord
	if r != nil {
		out = *r
	} else {
		out.Partner1Decision = DecisionUndecided
		out.Partner2Decision = DecisionUndecided
	}
	if role == RolePartner1 {
		out.Partner1Decision = d
	} else {
		out.Partner2Decision = d
	}
	return out
}

// IsMatch reports whether both members approved the name.
func (r *PreferenceRecord) IsMatch() bool {
	return r != nil &&
		r.Partner1Decision == DecisionApproved &&
		r.Partner2Decision == DecisionApproved
}

// IsNewMatch reports whether applying the decision for the role turns the
// record into a mutual approval that was not one before. A later flip away
// and back re-triggers it: only the before/after states are compared.
func IsNewMatch(prior *PreferenceRecord, role Role, d Decision) bool {
	if prior.IsMatch() {
		return false
	}
	after := prior.WithDecision(role, d)
	return after.IsMatch()
}
