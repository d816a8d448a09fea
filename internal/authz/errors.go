package authz

import (
	"errors"
	"fmt"

	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

var (
	// ErrUnauthenticated is returned when an operation requires a logged-in actor.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when the actor lacks permission.
	ErrForbidden = errors.New("forbidden")

	// ErrOwnPlaceReview is returned when an owner tries to review their own
	// place. It is a validation-kind error.
	ErrOwnPlaceReview = fmt.Errorf("%w: you cannot review your own place", domain.ErrValidation)

	// ErrDuplicateReview is returned for a second review of the same place by
	// the same user. It is a conflict-kind error.
	ErrDuplicateReview = fmt.Errorf("%w: you have already reviewed this place", domain.ErrConflict)
)

// ForbiddenError explains why an actor was refused. It matches ErrForbidden.
type ForbiddenError struct {
	Reason string
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Reason
}

// Is makes errors.Is(err, ErrForbidden) hold.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

func forbidden(reason string) error {
	return &ForbiddenError{Reason: reason}
}
