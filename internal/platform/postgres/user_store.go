package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/doug-martin/goqu/v9"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/platform/logger"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

var userMapping = &entityMapping[domain.User]{
	table:     "users",
	entity:    "user",
	notFound:  store.ErrUserNotFound,
	duplicate: store.ErrEmailExists,
	columns: []string{
		"id", "first_name", "last_name", "email", "password_hash", "is_admin", "created_at", "updated_at",
	},
	immutable: []string{"id", "created_at"},
	audit:     func(u *domain.User) *domain.Audit { return &u.Audit },
	record: func(u *domain.User) goqu.Record {
		return goqu.Record{
			"id":            u.ID,
			"first_name":    u.FirstName,
			"last_name":     u.LastName,
			"email":         u.Email,
			"password_hash": u.HashedPassword,
			"is_admin":      u.IsAdmin,
			"created_at":    u.CreatedAt,
			"updated_at":    u.UpdatedAt,
		}
	},
	scan: func(row rowScanner) (*domain.User, error) {
		var u domain.User
		if err := row.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.HashedPassword, &u.IsAdmin, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		utc(&u.Audit)
		return &u, nil
	},
	validate: func(u *domain.User) error {
		if u.HashedPassword == "" {
			return domain.NewValidationError("password", "must be hashed before storage", nil)
		}
		return u.Validate()
	},
}

// PostgresUserStore implements store.UserStore on PostgreSQL.
type PostgresUserStore struct {
	*repository[domain.User]
}

// NewPostgresUserStore creates a user store on a connection pool or transaction.
// If logger is nil, slog.Default() is used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	return &PostgresUserStore{repository: newRepository(db, userMapping, logger)}
}

var _ store.UserStore = (*PostgresUserStore)(nil)

// GetByEmail implements store.UserStore.
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.GetByAttribute(ctx, "email", email)
}

// Count implements store.UserStore.
func (s *PostgresUserStore) Count(ctx context.Context) (int, error) {
	return s.count(ctx, nil)
}

// LockTable implements store.UserStore. SHARE ROW EXCLUSIVE conflicts with
// itself and with inserts, so concurrent bootstrap checks run one at a time.
func (s *PostgresUserStore) LockTable(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "LOCK TABLE users IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to lock users table",
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to lock users table: %w", MapError(err))
	}
	return nil
}

// WithTx implements store.UserStore.
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{repository: s.withDB(tx)}
}
