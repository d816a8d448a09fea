package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlace(t *testing.T) {
	owner := uuid.New()

	p, err := NewPlace("Cabin", "Quiet", 120.5, 45.0, -122.5, owner)

	require.NoError(t, err)
	assert.Equal(t, owner, p.OwnerID)
	assert.Empty(t, p.AmenityIDs)
	assert.NotNil(t, p.AmenityIDs)
}

func TestNewPlace_Validation(t *testing.T) {
	owner := uuid.New()
	tests := []struct {
		name  string
		title string
		price float64
		lat   float64
		lon   float64
		owner uuid.UUID
		field string
	}{
		{"missing title", "", 10, 0, 0, owner, "title"},
		{"zero price", "T", 0, 0, 0, owner, "price"},
		{"negative price", "T", -1, 0, 0, owner, "price"},
		{"latitude too high", "T", 10, 90.1, 0, owner, "latitude"},
		{"longitude too low", "T", 10, 0, -180.1, owner, "longitude"},
		{"missing owner", "T", 10, 0, 0, uuid.Nil, "owner_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlace(tt.title, "", tt.price, tt.lat, tt.lon, tt.owner)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestPlace_Boundaries(t *testing.T) {
	_, err := NewPlace("T", "", 0.01, 90, 180, uuid.New())
	assert.NoError(t, err)
	_, err = NewPlace("T", "", 0.01, -90, -180, uuid.New())
	assert.NoError(t, err)
}

func TestPlace_AddAmenity(t *testing.T) {
	p, err := NewPlace("T", "", 1, 0, 0, uuid.New())
	require.NoError(t, err)
	id := uuid.New()

	p.AddAmenity(id)
	p.AddAmenity(id)

	assert.Equal(t, []uuid.UUID{id}, p.AmenityIDs)
	assert.True(t, p.HasAmenity(id))
	assert.False(t, p.HasAmenity(uuid.New()))
}

func TestPlace_Update(t *testing.T) {
	owner := uuid.New()

	t.Run("numbers from JSON", func(t *testing.T) {
		p, err := NewPlace("T", "", 1, 0, 0, owner)
		require.NoError(t, err)

		err = p.Update(Patch{"price": json.Number("99.5"), "latitude": float64(10), "longitude": 20})

		require.NoError(t, err)
		assert.Equal(t, 99.5, p.Price)
		assert.Equal(t, 10.0, p.Latitude)
		assert.Equal(t, 20.0, p.Longitude)
	})

	t.Run("owner is not patchable", func(t *testing.T) {
		p, err := NewPlace("T", "", 1, 0, 0, owner)
		require.NoError(t, err)

		err = p.Update(Patch{"owner_id": uuid.New().String(), "amenity_ids": []any{"x"}})

		require.NoError(t, err)
		assert.Equal(t, owner, p.OwnerID)
		assert.Empty(t, p.AmenityIDs)
	})

	t.Run("null description clears it", func(t *testing.T) {
		p, err := NewPlace("T", "desc", 1, 0, 0, owner)
		require.NoError(t, err)

		require.NoError(t, p.Update(Patch{"description": nil}))
		assert.Empty(t, p.Description)
	})

	t.Run("out of range keeps previous state", func(t *testing.T) {
		p, err := NewPlace("T", "", 1, 0, 0, owner)
		require.NoError(t, err)
		before := *p

		err = p.Update(Patch{"title": "New", "latitude": 91.0})

		assert.ErrorIs(t, err, ErrValidation)
		assert.Equal(t, before.Title, p.Title)
		assert.Equal(t, before.UpdatedAt, p.UpdatedAt)
	})

	t.Run("string price rejected", func(t *testing.T) {
		p, err := NewPlace("T", "", 1, 0, 0, owner)
		require.NoError(t, err)

		assert.ErrorIs(t, p.Update(Patch{"price": "10"}), ErrValidation)
	})
}
