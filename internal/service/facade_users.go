package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

// UserInput carries the fields of a new user.
type UserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// CreateUser registers a user. While no user exists anyone may call it and
// the new user is forced to be an admin; afterwards only admins may.
func (f *FacadeImpl) CreateUser(ctx context.Context, actor authz.Actor, in UserInput) (*domain.User, error) {
	log := f.log(ctx)

	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, in.Password, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, s Stores) error {
		// Held until commit so that two concurrent requests cannot both
		// observe an empty table.
		if err := s.Users.LockTable(ctx); err != nil {
			return err
		}
		n, err := s.Users.Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count users: %w", err)
		}
		if err := authz.CanCreateUser(actor, n > 0); err != nil {
			return err
		}
		if n == 0 {
			user.IsAdmin = true
		}

		if err := ensureEmailFree(ctx, s.Users, user.Email, uuid.Nil); err != nil {
			return err
		}
		if err := f.hashPassword(user); err != nil {
			return err
		}
		return s.Users.Add(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			log.Debug("attempted to create user with existing email")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user created", "user_id", user.ID, "is_admin", user.IsAdmin)
	return user, nil
}

// GetUser returns a user by ID.
func (f *FacadeImpl) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := f.stores.Users.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// GetUserByEmail returns a user by email address.
func (f *FacadeImpl) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := f.stores.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user by email: %w", err)
	}
	return user, nil
}

// ListUsers returns every user.
func (f *FacadeImpl) ListUsers(ctx context.Context) ([]*domain.User, error) {
	users, err := f.stores.Users.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser applies patch to a user. Users may edit their own profile and
// admins any profile; email, password and is_admin are admin-only. A new
// email must not belong to another user and a new password is re-hashed.
func (f *FacadeImpl) UpdateUser(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.User, error) {
	var updated *domain.User
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		u, err := s.Users.Update(ctx, id, func(u *domain.User) error {
			if err := authz.CanUpdateUser(actor, u.ID); err != nil {
				return err
			}
			previousEmail := u.Email
			if err := u.Update(patch, actor.IsAdmin); err != nil {
				return err
			}
			if u.Email != previousEmail {
				if err := ensureEmailFree(ctx, s.Users, u.Email, u.ID); err != nil {
					return err
				}
			}
			if u.Password != "" {
				return f.hashPassword(u)
			}
			return nil
		})
		updated = u
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	f.log(ctx).Info("user updated", "user_id", id)
	return updated, nil
}

// Authenticate verifies an email/password pair and returns the user.
func (f *FacadeImpl) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := f.stores.Users.GetByEmail(ctx, email)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to retrieve user for authentication: %w", err)
	}

	if err := f.hasher.Compare(user.HashedPassword, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			f.log(ctx).Debug("password mismatch", "user_id", user.ID)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	return user, nil
}

func (f *FacadeImpl) hashPassword(u *domain.User) error {
	hash, err := f.hasher.Hash(u.Password)
	if err != nil {
		return err
	}
	u.SetHashedPassword(hash)
	return nil
}

// ensureEmailFree fails with store.ErrEmailExists when email belongs to a
// user other than self.
func ensureEmailFree(ctx context.Context, users store.UserStore, email string, self uuid.UUID) error {
	existing, err := users.GetByEmail(ctx, email)
	switch {
	case err == nil && existing.ID != self:
		return store.ErrEmailExists
	case err == nil, store.IsNotFoundError(err):
		return nil
	default:
		return fmt.Errorf("failed to check email: %w", err)
	}
}
