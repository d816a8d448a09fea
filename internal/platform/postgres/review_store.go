package postgres

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

var reviewMapping = &entityMapping[domain.Review]{
	table:     "reviews",
	entity:    "review",
	notFound:  store.ErrReviewNotFound,
	columns:   []string{"id", "text", "rating", "user_id", "place_id", "created_at", "updated_at"},
	immutable: []string{"id", "created_at", "user_id", "place_id"},
	audit:     func(r *domain.Review) *domain.Audit { return &r.Audit },
	record: func(r *domain.Review) goqu.Record {
		return goqu.Record{
			"id":         r.ID,
			"text":       r.Text,
			"rating":     r.Rating,
			"user_id":    r.UserID,
			"place_id":   r.PlaceID,
			"created_at": r.CreatedAt,
			"updated_at": r.UpdatedAt,
		}
	},
	scan: func(row rowScanner) (*domain.Review, error) {
		var r domain.Review
		if err := row.Scan(&r.ID, &r.Text, &r.Rating, &r.UserID, &r.PlaceID, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		utc(&r.Audit)
		return &r, nil
	},
	validate: (*domain.Review).Validate,
}

// PostgresReviewStore implements store.ReviewStore on PostgreSQL.
type PostgresReviewStore struct {
	*repository[domain.Review]
}

// NewPostgresReviewStore creates a review store.
func NewPostgresReviewStore(db store.DBTX, logger *slog.Logger) *PostgresReviewStore {
	return &PostgresReviewStore{repository: newRepository(db, reviewMapping, logger)}
}

var _ store.ReviewStore = (*PostgresReviewStore)(nil)

// ListByPlace implements store.ReviewStore.
func (s *PostgresReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	return s.list(ctx, goqu.C("place_id").Eq(placeID))
}

// ListByUser implements store.ReviewStore.
func (s *PostgresReviewStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	return s.list(ctx, goqu.C("user_id").Eq(userID))
}

// GetByUserAndPlace implements store.ReviewStore.
func (s *PostgresReviewStore) GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error) {
	return s.getOne(ctx, goqu.And(
		goqu.C("user_id").Eq(userID),
		goqu.C("place_id").Eq(placeID),
	), false)
}

// WithTx implements store.ReviewStore.
func (s *PostgresReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &PostgresReviewStore{repository: s.withDB(tx)}
}
