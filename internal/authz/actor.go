package authz

import (
	"context"

	"github.com/google/uuid"
)

// Actor is the identity performing an operation. The zero value is anonymous.
type Actor struct {
	UserID  uuid.UUID
	IsAdmin bool
	system  bool
}

// Anonymous returns an unauthenticated actor.
func Anonymous() Actor {
	return Actor{}
}

// User returns an actor for an authenticated user.
func User(id uuid.UUID, isAdmin bool) Actor {
	return Actor{UserID: id, IsAdmin: isAdmin}
}

// System returns the administrative identity used by operator tooling such
// as the create-admin command. It has no user ID.
func System() Actor {
	return Actor{IsAdmin: true, system: true}
}

// Authenticated reports whether the actor is a known user or the system.
func (a Actor) Authenticated() bool {
	return a.system || a.UserID != uuid.Nil
}

// IsSystem reports whether the actor is the system identity.
func (a Actor) IsSystem() bool {
	return a.system
}

// Is reports whether the actor is the given user.
func (a Actor) Is(userID uuid.UUID) bool {
	return a.UserID != uuid.Nil && a.UserID == userID
}

type actorKey struct{}

// WithActor returns a copy of ctx carrying the actor.
func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

// FromContext returns the actor stored in ctx, or Anonymous.
func FromContext(ctx context.Context) Actor {
	if a, ok := ctx.Value(actorKey{}).(Actor); ok {
		return a
	}
	return Anonymous()
}
