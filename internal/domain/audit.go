package domain

import (
	"time"

	"github.com/google/uuid"
)

// Audit holds the attributes shared by every entity.
// ID and CreatedAt never change after construction.
type Audit struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// now returns the current UTC time at the storage layer's resolution.
var now = func() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func newAudit() Audit {
	t := now()
	return Audit{ID: uuid.New(), CreatedAt: t, UpdatedAt: t}
}

// touch refreshes UpdatedAt. The new value is always strictly later than the
// previous one, even when the clock has not advanced.
func (a *Audit) touch() {
	t := now()
	if !t.After(a.UpdatedAt) {
		t = a.UpdatedAt.Add(time.Microsecond)
	}
	a.UpdatedAt = t
}

func (a Audit) validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", nil)
	}
	return nil
}
