//go:build integration

package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/platform/postgres"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/hbnb-platform/hbnb-api/internal/store"
	"github.com/hbnb-platform/hbnb-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestFacade_Integration(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.ResetTables(t, db)
	t.Cleanup(func() { testdb.ResetTables(t, db) })

	f, err := service.NewFacade(db, service.Stores{
		Users:     postgres.NewPostgresUserStore(db, nil),
		Amenities: postgres.NewPostgresAmenityStore(db, nil),
		Places:    postgres.NewPostgresPlaceStore(db, nil),
		Reviews:   postgres.NewPostgresReviewStore(db, nil),
	}, auth.NewBcryptHasher(bcrypt.MinCost), nil)
	require.NoError(t, err)
	ctx := context.Background()

	admin, err := f.CreateUser(ctx, authz.Anonymous(), service.UserInput{
		FirstName: "Root", LastName: "Admin", Email: "admin@example.com", Password: "secret",
	})
	require.NoError(t, err)
	require.True(t, admin.IsAdmin, "first user is an admin")

	_, err = f.CreateUser(ctx, authz.Anonymous(), service.UserInput{
		FirstName: "Eve", LastName: "Anon", Email: "eve@example.com", Password: "secret",
	})
	require.ErrorIs(t, err, authz.ErrUnauthenticated)

	adminActor := authz.User(admin.ID, true)
	owner, err := f.CreateUser(ctx, adminActor, service.UserInput{
		FirstName: "Olive", LastName: "Owner", Email: "olive@example.com", Password: "secret",
	})
	require.NoError(t, err)
	guest, err := f.CreateUser(ctx, adminActor, service.UserInput{
		FirstName: "Gus", LastName: "Guest", Email: "gus@example.com", Password: "secret",
	})
	require.NoError(t, err)

	loggedIn, err := f.Authenticate(ctx, "gus@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, guest.ID, loggedIn.ID)

	wifi, err := f.CreateAmenity(ctx, adminActor, service.AmenityInput{Name: "Wi-Fi"})
	require.NoError(t, err)

	ownerActor := authz.User(owner.ID, false)
	_, err = f.CreatePlace(ctx, ownerActor, service.PlaceInput{
		Title: "Ghost", Price: 10, AmenityIDs: []uuid.UUID{wifi.ID, uuid.New()},
	})
	require.ErrorIs(t, err, service.ErrReference)
	none, err := f.ListPlaces(ctx)
	require.NoError(t, err)
	assert.Empty(t, none, "failed creation leaves nothing behind")

	place, err := f.CreatePlace(ctx, ownerActor, service.PlaceInput{
		Title: "Cabin", Price: 100, Latitude: 45, Longitude: -73, AmenityIDs: []uuid.UUID{wifi.ID},
	})
	require.NoError(t, err)

	details, err := f.GetPlaceDetails(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, details.Owner.ID)
	require.Len(t, details.Amenities, 1)
	assert.Equal(t, "Wi-Fi", details.Amenities[0].Name)

	guestActor := authz.User(guest.ID, false)
	_, err = f.CreateReview(ctx, ownerActor, service.ReviewInput{Text: "Mine", Rating: 5, PlaceID: place.ID})
	assert.ErrorIs(t, err, authz.ErrOwnPlaceReview)

	review, err := f.CreateReview(ctx, guestActor, service.ReviewInput{Text: "Great", Rating: 5, PlaceID: place.ID})
	require.NoError(t, err)
	_, err = f.CreateReview(ctx, guestActor, service.ReviewInput{Text: "Again", Rating: 4, PlaceID: place.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	before := guest.UpdatedAt
	updated, err := f.UpdateUser(ctx, guestActor, guest.ID, domain.Patch{"first_name": "Gustav"})
	require.NoError(t, err)
	reloaded, err := f.GetUser(ctx, guest.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gustav", reloaded.FirstName)
	assert.Equal(t, updated.UpdatedAt, reloaded.UpdatedAt)
	assert.True(t, reloaded.UpdatedAt.After(before), "updated_at advances across a stored round trip")

	authored, err := f.ListReviewsByUser(ctx, guest.ID)
	require.NoError(t, err)
	require.Len(t, authored, 1)

	require.NoError(t, f.DeletePlace(ctx, ownerActor, place.ID))
	_, err = f.GetReview(ctx, review.ID)
	assert.ErrorIs(t, err, store.ErrNotFound, "reviews are deleted with their place")
	_, err = f.GetPlace(ctx, place.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
	authored, err = f.ListReviewsByUser(ctx, guest.ID)
	require.NoError(t, err)
	assert.Empty(t, authored, "author no longer lists the deleted review")
	wifiAfter, err := f.GetAmenity(ctx, wifi.ID)
	require.NoError(t, err, "amenities survive place deletion")
	assert.Equal(t, wifi.ID, wifiAfter.ID)
}
