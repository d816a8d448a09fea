package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/service"
)

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// CreateUserRequest defines the payload for user registration.
type CreateUserRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Email     string `json:"email"      validate:"required"`
	Password  string `json:"password"   validate:"required"`
	IsAdmin   bool   `json:"is_admin"`
}

// AmenityRequest defines the payload for creating an amenity.
type AmenityRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreatePlaceRequest defines the payload for creating a place. Ranges are
// checked by the domain so that clients get one consistent message.
type CreatePlaceRequest struct {
	Title       string       `json:"title"       validate:"required"`
	Description string       `json:"description"`
	Price       *float64     `json:"price"       validate:"required"`
	Latitude    *float64     `json:"latitude"    validate:"required"`
	Longitude   *float64     `json:"longitude"   validate:"required"`
	Amenities   []AmenityRef `json:"amenities"   validate:"dive"`
}

// AmenityRef references an existing amenity by ID.
type AmenityRef struct {
	ID uuid.UUID `json:"id" validate:"required"`
}

// CreateReviewRequest defines the payload for creating a review.
type CreateReviewRequest struct {
	Text    string    `json:"text"     validate:"required"`
	Rating  *int      `json:"rating"   validate:"required"`
	PlaceID uuid.UUID `json:"place_id" validate:"required"`
}

// UserResponse is the public projection of a user. It never carries
// password material.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityResponse is the public projection of an amenity.
type AmenityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlaceResponse is the public projection of a place with amenity IDs.
type PlaceResponse struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenities"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// OwnerSummary is the owner embedded in a place's details.
type OwnerSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
}

// AmenitySummary is an amenity embedded in a place's details.
type AmenitySummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// PlaceDetailsResponse is a place with its owner and amenities expanded.
type PlaceDetailsResponse struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Latitude    float64          `json:"latitude"`
	Longitude   float64          `json:"longitude"`
	Owner       OwnerSummary     `json:"owner"`
	Amenities   []AmenitySummary `json:"amenities"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ReviewResponse is the public projection of a review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MessageResponse carries a confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func amenityToResponse(a *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func placeToResponse(p *domain.Place) PlaceResponse {
	amenityIDs := p.AmenityIDs
	if amenityIDs == nil {
		amenityIDs = []uuid.UUID{}
	}
	return PlaceResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		OwnerID:     p.OwnerID,
		AmenityIDs:  amenityIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func placeDetailsToResponse(d *service.PlaceDetails) PlaceDetailsResponse {
	amenities := make([]AmenitySummary, 0, len(d.Amenities))
	for _, a := range d.Amenities {
		amenities = append(amenities, AmenitySummary{ID: a.ID, Name: a.Name})
	}
	return PlaceDetailsResponse{
		ID:          d.Place.ID,
		Title:       d.Place.Title,
		Description: d.Place.Description,
		Price:       d.Place.Price,
		Latitude:    d.Place.Latitude,
		Longitude:   d.Place.Longitude,
		Owner: OwnerSummary{
			ID:        d.Owner.ID,
			FirstName: d.Owner.FirstName,
			LastName:  d.Owner.LastName,
			Email:     d.Owner.Email,
		},
		Amenities: amenities,
		CreatedAt: d.Place.CreatedAt,
		UpdatedAt: d.Place.UpdatedAt,
	}
}

func reviewToResponse(r *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		Text:      r.Text,
		Rating:    r.Rating,
		UserID:    r.UserID,
		PlaceID:   r.PlaceID,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// mapSlice converts every element of in with fn. It always returns a
// non-nil slice so that empty lists encode as [].
func mapSlice[T, R any](in []*T, fn func(*T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
