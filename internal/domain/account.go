package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account links an authenticated identity to its couple and its fixed role
// within that couple. The ID matches the external identity's ID. Accounts
// are created at signup/join and are immutable thereafter.
type Account struct {
	ID        uuid.UUID
	CoupleID  uuid.UUID
	Role      Role
	CreatedAt time.Time
}

// Credential is an email+password identity stored by the local identity
// provider. The password is kept only as a bcrypt hash.
type Credential struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
