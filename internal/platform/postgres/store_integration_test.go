//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/platform/postgres"
	"github.com/hbnb-platform/hbnb-api/internal/store"
	"github.com/hbnb-platform/hbnb-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustUser(t *testing.T, email string) *domain.User {
	t.Helper()
	u, err := domain.NewUser("Ada", "Lovelace", email, "secret", false)
	require.NoError(t, err)
	u.SetHashedPassword("$2a$04$integration")
	return u
}

func TestStores_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, nil)
		amenities := postgres.NewPostgresAmenityStore(tx, nil)
		places := postgres.NewPostgresPlaceStore(tx, nil)
		reviews := postgres.NewPostgresReviewStore(tx, nil)

		owner := mustUser(t, "owner-"+uuid.NewString()+"@example.com")
		guest := mustUser(t, "guest-"+uuid.NewString()+"@example.com")
		require.NoError(t, users.Add(ctx, owner))
		require.NoError(t, users.Add(ctx, guest))

		got, err := users.GetByEmail(ctx, owner.Email)
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.ID)
		assert.Equal(t, owner.CreatedAt, got.CreatedAt)

		wifi, err := domain.NewAmenity("Wi-Fi")
		require.NoError(t, err)
		require.NoError(t, amenities.Add(ctx, wifi))

		place, err := domain.NewPlace("Cabin", "Lake view", 120, 45, -73, owner.ID)
		require.NoError(t, err)
		require.NoError(t, places.Add(ctx, place))
		require.NoError(t, places.AddAmenity(ctx, place.ID, wifi.ID))
		require.NoError(t, places.AddAmenity(ctx, place.ID, wifi.ID), "attaching twice is a no-op")

		loaded, err := places.Get(ctx, place.ID)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{wifi.ID}, loaded.AmenityIDs)

		owned, err := places.ListByOwner(ctx, owner.ID)
		require.NoError(t, err)
		assert.Len(t, owned, 1)

		review, err := domain.NewReview("Great stay", 5, guest.ID, place.ID)
		require.NoError(t, err)
		require.NoError(t, reviews.Add(ctx, review))

		found, err := reviews.GetByUserAndPlace(ctx, guest.ID, place.ID)
		require.NoError(t, err)
		assert.Equal(t, review.ID, found.ID)

		updated, err := reviews.Update(ctx, review.ID, func(r *domain.Review) error {
			return r.Update(domain.Patch{"rating": 4})
		})
		require.NoError(t, err)
		assert.Equal(t, 4, updated.Rating)
		assert.True(t, updated.UpdatedAt.After(review.UpdatedAt))

		byAttr, err := places.GetByAttribute(ctx, "title", "Cabin")
		require.NoError(t, err)
		assert.Equal(t, place.ID, byAttr.ID)

		_, err = places.GetByAttribute(ctx, "password_hash", "x")
		assert.ErrorIs(t, err, store.ErrUnknownAttribute)

		require.NoError(t, reviews.Delete(ctx, review.ID))
		require.NoError(t, places.Delete(ctx, place.ID))
		_, err = places.Get(ctx, place.ID)
		assert.ErrorIs(t, err, store.ErrPlaceNotFound)
		assert.ErrorIs(t, places.Delete(ctx, place.ID), store.ErrPlaceNotFound)

		// A constraint violation aborts the transaction, so this runs last.
		dup := mustUser(t, owner.Email)
		assert.ErrorIs(t, users.Add(ctx, dup), store.ErrEmailExists)
	})
}

func TestReviewForeignKey_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		users := postgres.NewPostgresUserStore(tx, nil)
		reviews := postgres.NewPostgresReviewStore(tx, nil)
		ctx := context.Background()

		author := mustUser(t, "author-"+uuid.NewString()+"@example.com")
		require.NoError(t, users.Add(ctx, author))

		review, err := domain.NewReview("Nowhere", 3, author.ID, uuid.New())
		require.NoError(t, err)
		assert.ErrorIs(t, reviews.Add(ctx, review), store.ErrInvalidEntity)
	})
}
