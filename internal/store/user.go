package store

import (
	"context"
	"database/sql"

	"github.com/hbnb-platform/hbnb-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	Repository[domain.User]

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// Count returns the number of registered users.
	Count(ctx context.Context) (int, error)

	// LockTable blocks concurrent user inserts until the current transaction
	// ends. It must be called inside a transaction.
	LockTable(ctx context.Context) error

	// WithTx returns a UserStore bound to tx.
	WithTx(tx *sql.Tx) UserStore
}
