package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

// Facade exposes every business operation of the platform.
type Facade interface {
	// Users
	CreateUser(ctx context.Context, actor authz.Actor, in UserInput) (*domain.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, actor authz.Actor, id uuid.UUID, patch domain.Patch) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// Amenities
	CreateAmenity(ctx context.Context, actor authz.Actor, in AmenityInput) (*domain.Amenity, error)
	GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)
	ListAmenities(ctx context.Context) ([]*domain.Amenity, error)
	UpdateAmenity(ctx context.Context, actor authz.Actor, id uuid.UUID, patch domain.Patch) (*domain.Amenity, error)

	// Places
	CreatePlace(ctx context.Context, actor authz.Actor, in PlaceInput) (*domain.Place, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	GetPlaceDetails(ctx context.Context, id uuid.UUID) (*PlaceDetails, error)
	ListPlaces(ctx context.Context) ([]*domain.Place, error)
	ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)
	UpdatePlace(ctx context.Context, actor authz.Actor, id uuid.UUID, patch domain.Patch) (*domain.Place, error)
	DeletePlace(ctx context.Context, actor authz.Actor, id uuid.UUID) error

	// Reviews
	CreateReview(ctx context.Context, actor authz.Actor, in ReviewInput) (*domain.Review, error)
	GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListReviews(ctx context.Context) ([]*domain.Review, error)
	ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)
	ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)
	UpdateReview(ctx context.Context, actor authz.Actor, id uuid.UUID, patch domain.Patch) (*domain.Review, error)
	DeleteReview(ctx context.Context, actor authz.Actor, id uuid.UUID) error
}

// Stores groups the entity stores the facade works with.
type Stores struct {
	Users     store.UserStore
	Amenities store.AmenityStore
	Places    store.PlaceStore
	Reviews   store.ReviewStore
}

func (s Stores) withTx(tx *sql.Tx) Stores {
	return Stores{
		Users:     s.Users.WithTx(tx),
		Amenities: s.Amenities.WithTx(tx),
		Places:    s.Places.WithTx(tx),
		Reviews:   s.Reviews.WithTx(tx),
	}
}

// FacadeImpl implements Facade on top of the stores.
type FacadeImpl struct {
	db     *sql.DB
	stores Stores
	hasher auth.PasswordHasher
	logger *slog.Logger
}

var _ Facade = (*FacadeImpl)(nil)

// NewFacade creates the facade. db is used only to open transactions; the
// stores are rebound to each transaction with WithTx.
func NewFacade(db *sql.DB, stores Stores, hasher auth.PasswordHasher, logger *slog.Logger) (*FacadeImpl, error) {
	if db == nil {
		return nil, errors.New("db cannot be nil")
	}
	if stores.Users == nil || stores.Amenities == nil || stores.Places == nil || stores.Reviews == nil {
		return nil, errors.New("all stores are required")
	}
	if hasher == nil {
		return nil, errors.New("password hasher cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FacadeImpl{
		db:     db,
		stores: stores,
		hasher: hasher,
		logger: logger.With("component", "facade"),
	}, nil
}

// inTx runs fn in a transaction with every store bound to it.
func (f *FacadeImpl) inTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error {
	return store.RunInTransaction(ctx, f.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, f.stores.withTx(tx))
	})
}

func (f *FacadeImpl) log(ctx context.Context) *slog.Logger {
	return logger.FromContextOrDefault(ctx, f.logger)
}

// resolve loads a referenced entity, turning absence into ErrReference.
func resolve[T any](ctx context.Context, entity string, id uuid.UUID, get func(context.Context, uuid.UUID) (*T, error)) (*T, error) {
	v, err := get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, referenceError(entity, id)
		}
		return nil, err
	}
	return v, nil
}
