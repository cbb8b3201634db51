// Package identity implements the identity provider consumed by the
// pairing service: creation and verification of email+password identities.
package identity

import (
	"context"

	"github.com/google/uuid"
)

// Identity is an authenticated principal.
type Identity struct {
	ID    uuid.UUID
	Email string
}

// Provider creates and verifies identities.
//
// Create fails with domain.ErrEmailInUse, domain.ErrWeakCredential or
// domain.ErrInvalidFormat. Verify fails with domain.ErrInvalidCredential or
// domain.ErrRateLimited.
type Provider interface {
	Create(ctx context.Context, email, password string) (*Identity, error)
	Verify(ctx context.Context, email, password string) (*Identity, error)
}
