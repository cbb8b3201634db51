// Package ctxutil provides helpers for request-scoped values.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	identityIDKey ctxKey = "identity_id"
	coupleIDKey   ctxKey = "couple_id"
	roleKey       ctxKey = "role"
	requestIDKey  ctxKey = "request_id"
)

// WithIdentityID stores the authenticated identity's ID in the context.
func WithIdentityID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, identityIDKey, id)
}

// IdentityIDFromCtx extracts the identity ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func IdentityIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(identityIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithCoupleID stores the authenticated identity's couple ID in the context.
func WithCoupleID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, coupleIDKey, id)
}

// CoupleIDFromCtx extracts the couple ID from the context.
func CoupleIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(coupleIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRole stores the identity's role within its couple in the context.
func WithRole(ctx context.Context, role string) context.Context {
	return context.WithValue(ctx, roleKey, role)
}

// RoleFromCtx extracts the role from the context.
func RoleFromCtx(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(roleKey).(string)
	if !ok || role == "" {
		return "", false
	}
	return role, true
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
