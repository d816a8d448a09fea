package authz

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCanCreateUser(t *testing.T) {
	admin := User(uuid.New(), true)
	member := User(uuid.New(), false)

	assert.NoError(t, CanCreateUser(Anonymous(), false), "bootstrap is open")
	assert.NoError(t, CanCreateUser(member, false))
	assert.ErrorIs(t, CanCreateUser(Anonymous(), true), ErrUnauthenticated)
	assert.ErrorIs(t, CanCreateUser(member, true), ErrForbidden)
	assert.NoError(t, CanCreateUser(admin, true))
	assert.NoError(t, CanCreateUser(System(), true))
}

func TestCanUpdateUser(t *testing.T) {
	self := uuid.New()

	assert.NoError(t, CanUpdateUser(User(self, false), self))
	assert.ErrorIs(t, CanUpdateUser(User(uuid.New(), false), self), ErrForbidden)
	assert.NoError(t, CanUpdateUser(User(uuid.New(), true), self))
	assert.ErrorIs(t, CanUpdateUser(Anonymous(), self), ErrUnauthenticated)
}

func TestCanManageAmenities(t *testing.T) {
	assert.NoError(t, CanManageAmenities(User(uuid.New(), true)))
	assert.ErrorIs(t, CanManageAmenities(User(uuid.New(), false)), ErrForbidden)
	assert.ErrorIs(t, CanManageAmenities(Anonymous()), ErrUnauthenticated)
}

func TestCanCreatePlace(t *testing.T) {
	assert.NoError(t, CanCreatePlace(User(uuid.New(), false)))
	assert.ErrorIs(t, CanCreatePlace(Anonymous()), ErrUnauthenticated)
	assert.ErrorIs(t, CanCreatePlace(System()), ErrUnauthenticated, "a place needs a real owner")
}

func TestCanModifyPlace(t *testing.T) {
	owner := uuid.New()
	place := &domain.Place{OwnerID: owner}

	assert.NoError(t, CanModifyPlace(User(owner, false), place))
	assert.NoError(t, CanModifyPlace(User(uuid.New(), true), place))
	assert.ErrorIs(t, CanModifyPlace(User(uuid.New(), false), place), ErrForbidden)
	assert.ErrorIs(t, CanModifyPlace(Anonymous(), place), ErrUnauthenticated)
}

func TestCanReview(t *testing.T) {
	owner := uuid.New()
	place := &domain.Place{OwnerID: owner}
	guest := User(uuid.New(), false)

	assert.NoError(t, CanReview(guest, place, false))

	err := CanReview(User(owner, true), place, false)
	assert.ErrorIs(t, err, ErrOwnPlaceReview)
	assert.ErrorIs(t, err, domain.ErrValidation)

	err = CanReview(guest, place, true)
	assert.ErrorIs(t, err, ErrDuplicateReview)
	assert.ErrorIs(t, err, domain.ErrConflict)

	assert.ErrorIs(t, CanReview(Anonymous(), place, false), ErrUnauthenticated)
}

func TestReviewMutations(t *testing.T) {
	author := uuid.New()
	review := &domain.Review{UserID: author}
	admin := User(uuid.New(), true)
	other := User(uuid.New(), false)

	assert.NoError(t, CanUpdateReview(User(author, false), review))
	assert.ErrorIs(t, CanUpdateReview(admin, review), ErrForbidden, "admins cannot edit others' reviews")
	assert.ErrorIs(t, CanUpdateReview(other, review), ErrForbidden)

	assert.NoError(t, CanDeleteReview(User(author, false), review))
	assert.NoError(t, CanDeleteReview(admin, review))
	assert.ErrorIs(t, CanDeleteReview(other, review), ErrForbidden)
	assert.ErrorIs(t, CanDeleteReview(Anonymous(), review), ErrUnauthenticated)
}

func TestActorContext(t *testing.T) {
	id := uuid.New()
	ctx := WithActor(context.Background(), User(id, true))

	got := FromContext(ctx)
	assert.True(t, got.Is(id))
	assert.True(t, got.IsAdmin)
	assert.False(t, FromContext(context.Background()).Authenticated())
	assert.False(t, Anonymous().Is(uuid.Nil))
	assert.True(t, System().IsSystem())
}

func TestForbiddenErrorCarriesReason(t *testing.T) {
	err := CanManageAmenities(User(uuid.New(), false))

	var fe *ForbiddenError
	if assert.ErrorAs(t, err, &fe) {
		assert.Equal(t, "admin privileges required", fe.Reason)
	}
	assert.Equal(t, "forbidden: admin privileges required", err.Error())
}
