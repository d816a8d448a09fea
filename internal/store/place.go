package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// PlaceStore defines the interface for place data persistence.
// Places returned by any method have AmenityIDs populated.
type PlaceStore interface {
	Repository[domain.Place]

	// AddAmenity attaches an amenity to a place. Attaching an amenity that is
	// already attached is a no-op.
	AddAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error

	// ListByOwner returns the places owned by a user.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// WithTx returns a PlaceStore bound to tx.
	WithTx(tx *sql.Tx) PlaceStore
}
