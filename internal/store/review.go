package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	Repository[domain.Review]

	// ListByPlace returns the reviews attached to a place.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// ListByUser returns the reviews a user has authored.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error)

	// GetByUserAndPlace returns the review a user wrote for a place.
	// Returns ErrReviewNotFound if there is none.
	GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error)

	// WithTx returns a ReviewStore bound to tx.
	WithTx(tx *sql.Tx) ReviewStore
}
