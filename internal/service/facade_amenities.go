package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// AmenityInput carries the fields of a new amenity.
type AmenityInput struct {
	Name string
}

// CreateAmenity adds an amenity. Admin only.
func (f *FacadeImpl) CreateAmenity(ctx context.Context, actor authz.Actor, in AmenityInput) (*domain.Amenity, error) {
	if err := authz.CanManageAmenities(actor); err != nil {
		return nil, err
	}
	amenity, err := domain.NewAmenity(in.Name)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, s Stores) error {
		return s.Amenities.Add(ctx, amenity)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create amenity: %w", err)
	}

	f.log(ctx).Info("amenity created", "amenity_id", amenity.ID)
	return amenity, nil
}

// GetAmenity returns an amenity by ID.
func (f *FacadeImpl) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	amenity, err := f.stores.Amenities.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve amenity: %w", err)
	}
	return amenity, nil
}

// ListAmenities returns every amenity.
func (f *FacadeImpl) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	amenities, err := f.stores.Amenities.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list amenities: %w", err)
	}
	return amenities, nil
}

// UpdateAmenity applies patch to an amenity. Admin only.
func (f *FacadeImpl) UpdateAmenity(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.Amenity, error) {
	var updated *domain.Amenity
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		a, err := s.Amenities.Update(ctx, id, func(a *domain.Amenity) error {
			if err := authz.CanManageAmenities(actor); err != nil {
				return err
			}
			return a.Update(patch)
		})
		updated = a
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update amenity: %w", err)
	}
	return updated, nil
}
