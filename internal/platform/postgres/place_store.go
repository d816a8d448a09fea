package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

const placeAmenitiesTable = "place_amenities"

var placeMapping = &entityMapping[domain.Place]{
	table:    "places",
	entity:   "place",
	notFound: store.ErrPlaceNotFound,
	columns: []string{
		"id", "title", "description", "price", "latitude", "longitude", "owner_id", "created_at", "updated_at",
	},
	immutable: []string{"id", "created_at", "owner_id"},
	audit:     func(p *domain.Place) *domain.Audit { return &p.Audit },
	record: func(p *domain.Place) goqu.Record {
		return goqu.Record{
			"id":          p.ID,
			"title":       p.Title,
			"description": p.Description,
			"price":       p.Price,
			"latitude":    p.Latitude,
			"longitude":   p.Longitude,
			"owner_id":    p.OwnerID,
			"created_at":  p.CreatedAt,
			"updated_at":  p.UpdatedAt,
		}
	},
	scan: func(row rowScanner) (*domain.Place, error) {
		var p domain.Place
		if err := row.Scan(
			&p.ID, &p.Title, &p.Description, &p.Price, &p.Latitude, &p.Longitude, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		utc(&p.Audit)
		p.AmenityIDs = []uuid.UUID{}
		return &p, nil
	},
	validate:  (*domain.Place).Validate,
	afterLoad: loadAmenityIDs,
}

// loadAmenityIDs fills AmenityIDs for every place with one query.
func loadAmenityIDs(ctx context.Context, db store.DBTX, places []*domain.Place) error {
	byID := make(map[uuid.UUID]*domain.Place, len(places))
	ids := make([]any, 0, len(places))
	for _, p := range places {
		byID[p.ID] = p
		ids = append(ids, p.ID)
	}

	query, args, err := dialect.From(placeAmenitiesTable).Prepared(true).
		Select(goqu.C("place_id"), goqu.C("amenity_id")).
		Where(goqu.C("place_id").In(ids...)).
		Order(goqu.C("attached_at").Asc(), goqu.C("amenity_id").Asc()).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build amenity query: %w", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return store.NewStoreError("place", "select", "failed to load amenities", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var placeID, amenityID uuid.UUID
		if err := rows.Scan(&placeID, &amenityID); err != nil {
			return store.NewStoreError("place", "select", "failed to scan amenity", err)
		}
		if p, ok := byID[placeID]; ok {
			p.AddAmenity(amenityID)
		}
	}
	if err := rows.Err(); err != nil {
		return store.NewStoreError("place", "select", "failed to iterate amenities", MapError(err))
	}
	return nil
}

// PostgresPlaceStore implements store.PlaceStore on PostgreSQL.
type PostgresPlaceStore struct {
	*repository[domain.Place]
}

// NewPostgresPlaceStore creates a place store.
func NewPostgresPlaceStore(db store.DBTX, logger *slog.Logger) *PostgresPlaceStore {
	return &PostgresPlaceStore{repository: newRepository(db, placeMapping, logger)}
}

var _ store.PlaceStore = (*PostgresPlaceStore)(nil)

// AddAmenity implements store.PlaceStore.
// Returns store.ErrInvalidEntity if either side does not exist.
func (s *PostgresPlaceStore) AddAmenity(ctx context.Context, placeID, amenityID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := dialect.Insert(placeAmenitiesTable).Prepared(true).
		Rows(goqu.Record{"place_id": placeID, "amenity_id": amenityID}).
		OnConflict(goqu.DoNothing()).
		ToSQL()
	if err != nil {
		return fmt.Errorf("failed to build amenity insert: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		log.Warn("failed to attach amenity",
			slog.String("place_id", placeID.String()),
			slog.String("amenity_id", amenityID.String()),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	return nil
}

// ListByOwner implements store.PlaceStore.
func (s *PostgresPlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return s.list(ctx, goqu.C("owner_id").Eq(ownerID))
}

// WithTx implements store.PlaceStore.
func (s *PostgresPlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PostgresPlaceStore{repository: s.withDB(tx)}
}
