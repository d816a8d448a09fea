package domain

import (
	"github.com/google/uuid"
)

// Rating bounds, inclusive.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a user's rating of a place. A user reviews a given place at most
// once and never reviews a place they own; both rules are enforced when the
// review is created.
type Review struct {
	Audit
	Text    string    `json:"text"`
	Rating  int       `json:"rating"`
	UserID  uuid.UUID `json:"user_id"`
	PlaceID uuid.UUID `json:"place_id"`
}

// NewReview creates a validated Review with a fresh identity.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	r := &Review{
		Audit:   newAudit(),
		Text:    text,
		Rating:  rating,
		UserID:  userID,
		PlaceID: placeID,
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the review's invariants.
func (r *Review) Validate() error {
	return firstError(
		r.Audit.validate(),
		requireText("text", r.Text),
		ValidateRating(r.Rating),
		requireID("user_id", r.UserID),
		requireID("place_id", r.PlaceID),
	)
}

// ValidateRating rejects ratings outside [MinRating, MaxRating].
func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5", nil)
	}
	return nil
}

// Update applies the recognized fields of p. The author and place are fixed.
func (r *Review) Update(p Patch) error {
	next := *r
	if err := reviewFields.apply(&next, p); err != nil {
		return err
	}
	if err := next.Validate(); err != nil {
		return err
	}
	next.touch()
	*r = next
	return nil
}

var reviewFields = fieldSet[Review]{
	"text": func(r *Review, v any) error {
		s, err := asString("text", v)
		r.Text = s
		return err
	},
	"rating": func(r *Review, v any) error {
		n, err := asInt("rating", v)
		r.Rating = n
		return err
	},
}
