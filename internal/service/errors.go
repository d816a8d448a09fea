package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	// ErrReference indicates that a cross-entity reference in the input
	// (an owner, an amenity, a place) does not resolve. It is a client error.
	ErrReference = errors.New("referenced entity does not exist")

	// ErrInvalidCredentials is returned by Authenticate for an unknown email
	// and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ReferenceError names the reference that did not resolve. It matches
// ErrReference.
type ReferenceError struct {
	Entity string
	ID     uuid.UUID
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrReference, e.Entity, e.ID)
}

// Is makes errors.Is(err, ErrReference) hold.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

func referenceError(entity string, id uuid.UUID) error {
	return &ReferenceError{Entity: entity, ID: id}
}
