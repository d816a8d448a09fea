package store

import (
	"errors"
	"fmt"

	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// Entity-specific variants wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a unique constraint.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when the database rejects a row, for
	// example because a foreign key does not resolve.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrUnknownAttribute is returned by GetByAttribute for a name that is not
	// a column of the entity. It is a validation-kind error.
	ErrUnknownAttribute = fmt.Errorf("%w: unknown attribute", domain.ErrValidation)

	ErrUserNotFound    = fmt.Errorf("%w: user", ErrNotFound)
	ErrAmenityNotFound = fmt.Errorf("%w: amenity", ErrNotFound)
	ErrPlaceNotFound   = fmt.Errorf("%w: place", ErrNotFound)
	ErrReviewNotFound  = fmt.Errorf("%w: review", ErrNotFound)

	// ErrEmailExists indicates that a user with the given email already exists.
	ErrEmailExists = fmt.Errorf("%w: email", ErrDuplicate)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError reports whether err is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}

// StoreError adds the entity and operation to a lower-level failure.
type StoreError struct {
	Entity    string // e.g. "place"
	Operation string // e.g. "insert"
	Message   string
	Err       error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{
		Entity:    entity,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
