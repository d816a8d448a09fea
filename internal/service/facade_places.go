package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// PlaceInput carries the fields of a new place. The owner is the actor.
type PlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	AmenityIDs  []uuid.UUID
}

// PlaceDetails is a place with its owner and amenities resolved.
type PlaceDetails struct {
	Place     *domain.Place
	Owner     *domain.User
	Amenities []*domain.Amenity
}

// CreatePlace creates a place owned by the actor and attaches the given
// amenities. If the owner or any amenity does not exist nothing is stored.
func (f *FacadeImpl) CreatePlace(ctx context.Context, actor authz.Actor, in PlaceInput) (*domain.Place, error) {
	if err := authz.CanCreatePlace(actor); err != nil {
		return nil, err
	}
	place, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, actor.UserID)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, s Stores) error {
		if _, err := resolve(ctx, "owner", place.OwnerID, s.Users.Get); err != nil {
			return err
		}
		for _, amenityID := range in.AmenityIDs {
			if _, err := resolve(ctx, "amenity", amenityID, s.Amenities.Get); err != nil {
				return err
			}
			place.AddAmenity(amenityID)
		}

		if err := s.Places.Add(ctx, place); err != nil {
			return err
		}
		for _, amenityID := range place.AmenityIDs {
			if err := s.Places.AddAmenity(ctx, place.ID, amenityID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create place: %w", err)
	}

	f.log(ctx).Info("place created",
		"place_id", place.ID,
		"owner_id", place.OwnerID,
		"amenities", len(place.AmenityIDs))
	return place, nil
}

// GetPlace returns a place by ID.
func (f *FacadeImpl) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	place, err := f.stores.Places.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve place: %w", err)
	}
	return place, nil
}

// GetPlaceDetails returns a place with its owner and amenities.
func (f *FacadeImpl) GetPlaceDetails(ctx context.Context, id uuid.UUID) (*PlaceDetails, error) {
	details := &PlaceDetails{Amenities: []*domain.Amenity{}}

	// Read in one transaction so that the place and its relations agree.
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		place, err := s.Places.Get(ctx, id)
		if err != nil {
			return err
		}
		details.Place = place

		owner, err := s.Users.Get(ctx, place.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to resolve owner: %w", err)
		}
		details.Owner = owner

		for _, amenityID := range place.AmenityIDs {
			amenity, err := s.Amenities.Get(ctx, amenityID)
			if err != nil {
				return fmt.Errorf("failed to resolve amenity: %w", err)
			}
			details.Amenities = append(details.Amenities, amenity)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve place: %w", err)
	}
	return details, nil
}

// ListPlaces returns every place.
func (f *FacadeImpl) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	places, err := f.stores.Places.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	return places, nil
}

// ListPlacesByOwner returns the places a user owns. The user must exist.
func (f *FacadeImpl) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	if _, err := f.stores.Users.Get(ctx, ownerID); err != nil {
		return nil, fmt.Errorf("failed to retrieve owner: %w", err)
	}
	places, err := f.stores.Places.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list places by owner: %w", err)
	}
	return places, nil
}

// UpdatePlace applies patch to a place. Owner or admin only.
func (f *FacadeImpl) UpdatePlace(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.Place, error) {
	var updated *domain.Place
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		p, err := s.Places.Update(ctx, id, func(p *domain.Place) error {
			if err := authz.CanModifyPlace(actor, p); err != nil {
				return err
			}
			return p.Update(patch)
		})
		updated = p
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update place: %w", err)
	}
	return updated, nil
}

// DeletePlace deletes a place and every review attached to it. Owner or
// admin only. Either all of it happens or none of it does.
func (f *FacadeImpl) DeletePlace(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	var removedReviews int
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		place, err := s.Places.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := authz.CanModifyPlace(actor, place); err != nil {
			return err
		}
		if _, err := s.Users.Get(ctx, place.OwnerID); err != nil {
			return fmt.Errorf("failed to resolve owner: %w", err)
		}

		reviews, err := s.Reviews.ListByPlace(ctx, place.ID)
		if err != nil {
			return err
		}
		for _, r := range reviews {
			if err := s.Reviews.Delete(ctx, r.ID); err != nil {
				return fmt.Errorf("failed to delete review %s: %w", r.ID, err)
			}
		}
		removedReviews = len(reviews)

		// Amenity links go with the place (ON DELETE CASCADE).
		return s.Places.Delete(ctx, place.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}

	f.log(ctx).Info("place deleted", "place_id", id, "reviews_deleted", removedReviews)
	return nil
}
