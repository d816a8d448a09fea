package domain

import (
	"slices"

	"github.com/google/uuid"
)

// MaxTitleLength bounds Place.Title.
const MaxTitleLength = 100

// Place is a rental listing. It has exactly one owner, a set of amenities and
// exclusively owns its reviews: deleting a place deletes them.
type Place struct {
	Audit
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
}

// NewPlace creates a validated Place with a fresh identity and no amenities.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	p := &Place{
		Audit:       newAudit(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		AmenityIDs:  []uuid.UUID{},
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the place's invariants.
func (p *Place) Validate() error {
	if err := firstError(
		p.Audit.validate(),
		requireText("title", p.Title),
		maxLength("title", p.Title, MaxTitleLength),
		requireID("owner_id", p.OwnerID),
		inRange("latitude", p.Latitude, -90, 90),
		inRange("longitude", p.Longitude, -180, 180),
	); err != nil {
		return err
	}
	if p.Price <= 0 {
		return NewValidationError("price", "must be greater than 0", nil)
	}
	return nil
}

// AddAmenity attaches an amenity. Attaching the same amenity twice is a no-op.
func (p *Place) AddAmenity(id uuid.UUID) {
	if !p.HasAmenity(id) {
		p.AmenityIDs = append(p.AmenityIDs, id)
	}
}

// HasAmenity reports whether the amenity is attached.
func (p *Place) HasAmenity(id uuid.UUID) bool {
	return slices.Contains(p.AmenityIDs, id)
}

// Update applies the recognized fields of p. The owner and the amenity set
// are not patchable.
func (p *Place) Update(patch Patch) error {
	next := *p
	next.AmenityIDs = slices.Clone(p.AmenityIDs)
	if err := placeFields.apply(&next, patch); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.touch()
	*p = next
	return nil
}

var placeFields = fieldSet[Place]{
	"title": func(p *Place, v any) error {
		s, err := asString("title", v)
		p.Title = s
		return err
	},
	"description": func(p *Place, v any) error {
		if v == nil {
			p.Description = ""
			return nil
		}
		s, err := asString("description", v)
		p.Description = s
		return err
	},
	"price": func(p *Place, v any) error {
		f, err := asFloat("price", v)
		p.Price = f
		return err
	},
	"latitude": func(p *Place, v any) error {
		f, err := asFloat("latitude", v)
		p.Latitude = f
		return err
	},
	"longitude": func(p *Place, v any) error {
		f, err := asFloat("longitude", v)
		p.Longitude = f
		return err
	},
}
