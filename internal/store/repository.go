package store

import (
	"context"

	"github.com/google/uuid"
)

// MutateFn applies an in-place change to a loaded entity. Returning an error
// aborts the update and nothing is written.
type MutateFn[T any] func(entity *T) error

// Repository is the CRUD contract shared by every entity store.
type Repository[T any] interface {
	// Add persists a new entity. A nil ID is replaced by a fresh one.
	Add(ctx context.Context, entity *T) error

	// Get returns the entity, or an error wrapping ErrNotFound.
	Get(ctx context.Context, id uuid.UUID) (*T, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Outside a transaction the lock is released immediately.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*T, error)

	// GetAll returns every entity ordered by creation time.
	GetAll(ctx context.Context) ([]*T, error)

	// GetByAttribute returns the first entity whose attribute equals value.
	// Returns ErrUnknownAttribute when name is not an attribute of T.
	GetByAttribute(ctx context.Context, name string, value any) (*T, error)

	// Update locks and loads the entity, passes it to mutate and persists the
	// result. Returns an error wrapping ErrNotFound if the entity is absent.
	Update(ctx context.Context, id uuid.UUID, mutate MutateFn[T]) (*T, error)

	// Delete removes the entity. Returns an error wrapping ErrNotFound if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}
