package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyExists    = errors.New("already exists")
	ErrValidation       = errors.New("validation error")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// Identity provider errors, surfaced verbatim to the caller.
var (
	ErrEmailInUse        = errors.New("email already in use")
	ErrWeakCredential    = errors.New("credential too weak")
	ErrInvalidFormat     = errors.New("invalid email format")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrRateLimited       = errors.New("rate limited")
)

// Pairing errors.
var (
	// ErrInvalidCode means no couple matches the supplied join code.
	ErrInvalidCode = errors.New("invalid couple code")
	// ErrAlreadyPaired means the couple's second slot is already taken.
	ErrAlreadyPaired = errors.New("couple already paired")
	// ErrDuplicateIdentity means the identity already belongs to a couple.
	ErrDuplicateIdentity = errors.New("identity already belongs to a couple")
	// ErrNotPaired means a valid identity has no account row. Recoverable
	// only by support intervention.
	ErrNotPaired = errors.New("identity not paired with any couple")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}
