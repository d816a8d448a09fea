package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// Facade is a testify mock of service.Facade.
type Facade struct {
	mock.Mock
}

var _ service.Facade = (*Facade)(nil)

func (m *Facade) CreateUser(ctx context.Context, actor authz.Actor, in service.UserInput) (*domain.User, error) {
	args := m.Called(ctx, actor, in)
	return entityAt[domain.User](args, 0), args.Error(1)
}

func (m *Facade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	return entityAt[domain.User](args, 0), args.Error(1)
}

func (m *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return entityAt[domain.User](args, 0), args.Error(1)
}

func (m *Facade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	return entitiesAt[domain.User](args, 0), args.Error(1)
}

func (m *Facade) UpdateUser(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.User, error) {
	args := m.Called(ctx, actor, id, patch)
	return entityAt[domain.User](args, 0), args.Error(1)
}

func (m *Facade) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	return entityAt[domain.User](args, 0), args.Error(1)
}

func (m *Facade) CreateAmenity(ctx context.Context, actor authz.Actor, in service.AmenityInput) (*domain.Amenity, error) {
	args := m.Called(ctx, actor, in)
	return entityAt[domain.Amenity](args, 0), args.Error(1)
}

func (m *Facade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	args := m.Called(ctx, id)
	return entityAt[domain.Amenity](args, 0), args.Error(1)
}

func (m *Facade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	args := m.Called(ctx)
	return entitiesAt[domain.Amenity](args, 0), args.Error(1)
}

func (m *Facade) UpdateAmenity(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.Amenity, error) {
	args := m.Called(ctx, actor, id, patch)
	return entityAt[domain.Amenity](args, 0), args.Error(1)
}

func (m *Facade) CreatePlace(ctx context.Context, actor authz.Actor, in service.PlaceInput) (*domain.Place, error) {
	args := m.Called(ctx, actor, in)
	return entityAt[domain.Place](args, 0), args.Error(1)
}

func (m *Facade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	args := m.Called(ctx, id)
	return entityAt[domain.Place](args, 0), args.Error(1)
}

func (m *Facade) GetPlaceDetails(ctx context.Context, id uuid.UUID) (*service.PlaceDetails, error) {
	args := m.Called(ctx, id)
	return entityAt[service.PlaceDetails](args, 0), args.Error(1)
}

func (m *Facade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	args := m.Called(ctx)
	return entitiesAt[domain.Place](args, 0), args.Error(1)
}

func (m *Facade) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	args := m.Called(ctx, ownerID)
	return entitiesAt[domain.Place](args, 0), args.Error(1)
}

func (m *Facade) UpdatePlace(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.Place, error) {
	args := m.Called(ctx, actor, id, patch)
	return entityAt[domain.Place](args, 0), args.Error(1)
}

func (m *Facade) DeletePlace(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *Facade) CreateReview(ctx context.Context, actor authz.Actor, in service.ReviewInput) (*domain.Review, error) {
	args := m.Called(ctx, actor, in)
	return entityAt[domain.Review](args, 0), args.Error(1)
}

func (m *Facade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, id)
	return entityAt[domain.Review](args, 0), args.Error(1)
}

func (m *Facade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	args := m.Called(ctx)
	return entitiesAt[domain.Review](args, 0), args.Error(1)
}

func (m *Facade) ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, placeID)
	return entitiesAt[domain.Review](args, 0), args.Error(1)
}

func (m *Facade) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, userID)
	return entitiesAt[domain.Review](args, 0), args.Error(1)
}

func (m *Facade) UpdateReview(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.Review, error) {
	args := m.Called(ctx, actor, id, patch)
	return entityAt[domain.Review](args, 0), args.Error(1)
}

func (m *Facade) DeleteReview(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	return m.Called(ctx, actor, id).Error(0)
}
