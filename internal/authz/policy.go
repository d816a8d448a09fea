package authz

import (
	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// CanCreateUser allows anyone to create the very first user; afterwards
// only admins may create accounts.
func CanCreateUser(a Actor, usersExist bool) error {
	if !usersExist {
		return nil
	}
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if !a.IsAdmin {
		return forbidden("admin privileges required")
	}
	return nil
}

// CanUpdateUser allows users to modify their own profile and admins to
// modify any profile. Which fields may change is decided by domain.User.
func CanUpdateUser(a Actor, targetID uuid.UUID) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if a.IsAdmin || a.Is(targetID) {
		return nil
	}
	return forbidden("unauthorized action")
}

// CanManageAmenities restricts amenity creation and updates to admins.
func CanManageAmenities(a Actor) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if !a.IsAdmin {
		return forbidden("admin privileges required")
	}
	return nil
}

// RequireUser requires an actor backed by a user account. The system
// identity does not qualify.
func RequireUser(a Actor) error {
	if a.UserID == uuid.Nil {
		return ErrUnauthenticated
	}
	return nil
}

// CanCreatePlace requires an authenticated user; the user becomes the owner.
func CanCreatePlace(a Actor) error {
	return RequireUser(a)
}

// CanModifyPlace allows the owner or an admin to update or delete a place.
func CanModifyPlace(a Actor, p *domain.Place) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if a.IsAdmin || a.Is(p.OwnerID) {
		return nil
	}
	return forbidden("unauthorized action")
}

// CanReview checks the business rules for writing a review of p.
func CanReview(a Actor, p *domain.Place, alreadyReviewed bool) error {
	if err := RequireUser(a); err != nil {
		return err
	}
	if a.Is(p.OwnerID) {
		return ErrOwnPlaceReview
	}
	if alreadyReviewed {
		return ErrDuplicateReview
	}
	return nil
}

// CanUpdateReview allows only the author to edit a review.
func CanUpdateReview(a Actor, r *domain.Review) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if a.Is(r.UserID) {
		return nil
	}
	return forbidden("unauthorized action")
}

// CanDeleteReview allows the author or an admin to delete a review.
func CanDeleteReview(a Actor, r *domain.Review) error {
	if !a.Authenticated() {
		return ErrUnauthenticated
	}
	if a.IsAdmin || a.Is(r.UserID) {
		return nil
	}
	return forbidden("unauthorized action")
}
