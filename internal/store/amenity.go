package store

import (
	"database/sql"

	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// AmenityStore defines the interface for amenity data persistence.
type AmenityStore interface {
	Repository[domain.Amenity]

	// WithTx returns an AmenityStore bound to tx.
	WithTx(tx *sql.Tx) AmenityStore
}
