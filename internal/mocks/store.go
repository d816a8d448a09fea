package mocks

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// Repository is a testify mock of store.Repository[T].
type Repository[T any] struct {
	mock.Mock
}

func entityAt[T any](args mock.Arguments, i int) *T {
	if v, ok := args.Get(i).(*T); ok {
		return v
	}
	return nil
}

func entitiesAt[T any](args mock.Arguments, i int) []*T {
	if v, ok := args.Get(i).([]*T); ok {
		return v
	}
	return nil
}

// Add records the call and returns the configured error.
func (m *Repository[T]) Add(ctx context.Context, entity *T) error {
	return m.Called(ctx, entity).Error(0)
}

// Get returns the configured entity and error.
func (m *Repository[T]) Get(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	return entityAt[T](args, 0), args.Error(1)
}

// GetForUpdate returns the configured entity and error.
func (m *Repository[T]) GetForUpdate(ctx context.Context, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, id)
	return entityAt[T](args, 0), args.Error(1)
}

// GetAll returns the configured entities and error.
func (m *Repository[T]) GetAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	return entitiesAt[T](args, 0), args.Error(1)
}

// GetByAttribute returns the configured entity and error.
func (m *Repository[T]) GetByAttribute(ctx context.Context, name string, value any) (*T, error) {
	args := m.Called(ctx, name, value)
	return entityAt[T](args, 0), args.Error(1)
}

// Update takes the entity from the expectation, applies mutate to a copy and
// returns the copy. The mutate function is not called when the expectation
// returns an error.
func (m *Repository[T]) Update(ctx context.Context, id uuid.UUID, mutate store.MutateFn[T]) (*T, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	current := entityAt[T](args, 0)
	if current == nil {
		return nil, store.ErrNotFound
	}
	updated := *current
	if err := mutate(&updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete returns the configured error.
func (m *Repository[T]) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// UserStore is a testify mock of store.UserStore.
type UserStore struct {
	Repository[domain.User]
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	return entityAt[domain.User](args, 0), args.Error(1)
}

func (m *UserStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *UserStore) LockTable(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *UserStore) WithTx(*sql.Tx) store.UserStore { return m }

// AmenityStore is a testify mock of store.AmenityStore.
type AmenityStore struct {
	Repository[domain.Amenity]
}

var _ store.AmenityStore = (*AmenityStore)(nil)

func (m *AmenityStore) WithTx(*sql.Tx) store.AmenityStore { return m }

// PlaceStore is a testify mock of store.PlaceStore.
type PlaceStore struct {
	Repository[domain.Place]
}

var _ store.PlaceStore = (*PlaceStore)(nil)

func (m *PlaceStore) AddAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	return m.Called(ctx, placeID, amenityID).Error(0)
}

func (m *PlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	args := m.Called(ctx, ownerID)
	return entitiesAt[domain.Place](args, 0), args.Error(1)
}

func (m *PlaceStore) WithTx(*sql.Tx) store.PlaceStore { return m }

// ReviewStore is a testify mock of store.ReviewStore.
type ReviewStore struct {
	Repository[domain.Review]
}

var _ store.ReviewStore = (*ReviewStore)(nil)

func (m *ReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, placeID)
	return entitiesAt[domain.Review](args, 0), args.Error(1)
}

func (m *ReviewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	args := m.Called(ctx, userID)
	return entitiesAt[domain.Review](args, 0), args.Error(1)
}

func (m *ReviewStore) GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error) {
	args := m.Called(ctx, userID, placeID)
	return entityAt[domain.Review](args, 0), args.Error(1)
}

func (m *ReviewStore) WithTx(*sql.Tx) store.ReviewStore { return m }
