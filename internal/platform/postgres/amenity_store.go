package postgres

import (
	"database/sql"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

var amenityMapping = &entityMapping[domain.Amenity]{
	table:     "amenities",
	entity:    "amenity",
	notFound:  store.ErrAmenityNotFound,
	columns:   []string{"id", "name", "created_at", "updated_at"},
	immutable: []string{"id", "created_at"},
	audit:     func(a *domain.Amenity) *domain.Audit { return &a.Audit },
	record: func(a *domain.Amenity) goqu.Record {
		return goqu.Record{
			"id":         a.ID,
			"name":       a.Name,
			"created_at": a.CreatedAt,
			"updated_at": a.UpdatedAt,
		}
	},
	scan: func(row rowScanner) (*domain.Amenity, error) {
		var a domain.Amenity
		if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		utc(&a.Audit)
		return &a, nil
	},
	validate: (*domain.Amenity).Validate,
}

// PostgresAmenityStore implements store.AmenityStore on PostgreSQL.
type PostgresAmenityStore struct {
	*repository[domain.Amenity]
}

// NewPostgresAmenityStore creates an amenity store.
func NewPostgresAmenityStore(db store.DBTX, logger *slog.Logger) *PostgresAmenityStore {
	return &PostgresAmenityStore{repository: newRepository(db, amenityMapping, logger)}
}

var _ store.AmenityStore = (*PostgresAmenityStore)(nil)

// WithTx implements store.AmenityStore.
func (s *PostgresAmenityStore) WithTx(tx *sql.Tx) store.AmenityStore {
	return &PostgresAmenityStore{repository: s.withDB(tx)}
}
