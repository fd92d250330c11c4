package domain

import (
	"errors"
	"fmt"
)

// Domain error types
type (
	// NotFoundError indicates a resource was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// ForbiddenError indicates authorization failure
	ForbiddenError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string   { return e.Message }
func (e *ValidationError) Error() string { return e.Message }
func (e *ForbiddenError) Error() string  { return e.Message }

// Is implementations so typed errors match their sentinels
func (e *NotFoundError) Is(target error) bool   { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
func (e *ForbiddenError) Is(target error) bool  { return target == ErrForbidden }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation failed")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrOwnershipViolation = errors.New("list does not belong to owner")
)

// OwnershipViolationError is returned when a write tries to attach an item
// to a list the caller does not own. Unlike a not-found result it is raised
// mid-write, where the caller already named the list explicitly.
type OwnershipViolationError struct {
	ListID  int64
	OwnerID string
}

// Error implements the error interface
func (e *OwnershipViolationError) Error() string {
	return fmt.Sprintf("list %d does not belong to owner %s", e.ListID, e.OwnerID)
}

// Is allows errors.Is() to match against ErrOwnershipViolation and ErrForbidden
func (e *OwnershipViolationError) Is(target error) bool {
	return target == ErrOwnershipViolation || target == ErrForbidden
}

// NewNotFound builds the not-found error shared by every owner-scoped lookup.
// The message never reveals whether the row exists under another owner.
func NewNotFound(resource string, id int64) error {
	return &NotFoundError{Message: fmt.Sprintf("%s %d: %s", resource, id, ErrNotFound)}
}
