package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/store"
)

// ReviewInput carries the fields of a new review. The author is the actor.
type ReviewInput struct {
	Text    string
	Rating  int
	PlaceID uuid.UUID
}

// CreateReview records the actor's review of a place. Owners cannot review
// their own place and a user reviews a given place at most once.
func (f *FacadeImpl) CreateReview(ctx context.Context, actor authz.Actor, in ReviewInput) (*domain.Review, error) {
	if err := authz.RequireUser(actor); err != nil {
		return nil, err
	}
	review, err := domain.NewReview(in.Text, in.Rating, actor.UserID, in.PlaceID)
	if err != nil {
		return nil, err
	}

	err = f.inTx(ctx, func(ctx context.Context, s Stores) error {
		// Locking the author serializes this user's review creations, which
		// makes the duplicate check below reliable.
		if _, err := resolve(ctx, "user", actor.UserID, s.Users.GetForUpdate); err != nil {
			return err
		}
		place, err := resolve(ctx, "place", in.PlaceID, s.Places.Get)
		if err != nil {
			return err
		}

		_, err = s.Reviews.GetByUserAndPlace(ctx, actor.UserID, place.ID)
		if err != nil && !store.IsNotFoundError(err) {
			return err
		}
		alreadyReviewed := err == nil
		if err := authz.CanReview(actor, place, alreadyReviewed); err != nil {
			return err
		}

		if err := s.Reviews.Add(ctx, review); err != nil {
			// The place was deleted after it was resolved.
			if errors.Is(err, store.ErrInvalidEntity) {
				return referenceError("place", in.PlaceID)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	f.log(ctx).Info("review created",
		"review_id", review.ID,
		"place_id", review.PlaceID,
		"user_id", review.UserID)
	return review, nil
}

// GetReview returns a review by ID.
func (f *FacadeImpl) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	review, err := f.stores.Reviews.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve review: %w", err)
	}
	return review, nil
}

// ListReviews returns every review.
func (f *FacadeImpl) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	reviews, err := f.stores.Reviews.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// ListReviewsByPlace returns the reviews of a place. The place must exist.
func (f *FacadeImpl) ListReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	if _, err := f.stores.Places.Get(ctx, placeID); err != nil {
		return nil, fmt.Errorf("failed to retrieve place: %w", err)
	}
	reviews, err := f.stores.Reviews.ListByPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by place: %w", err)
	}
	return reviews, nil
}

// ListReviewsByUser returns the reviews a user has written. The user must exist.
func (f *FacadeImpl) ListReviewsByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Review, error) {
	if _, err := f.stores.Users.Get(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	reviews, err := f.stores.Reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews by user: %w", err)
	}
	return reviews, nil
}

// UpdateReview applies patch to a review. Author only.
func (f *FacadeImpl) UpdateReview(
	ctx context.Context,
	actor authz.Actor,
	id uuid.UUID,
	patch domain.Patch,
) (*domain.Review, error) {
	var updated *domain.Review
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		r, err := s.Reviews.Update(ctx, id, func(r *domain.Review) error {
			if err := authz.CanUpdateReview(actor, r); err != nil {
				return err
			}
			return r.Update(patch)
		})
		updated = r
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return updated, nil
}

// DeleteReview deletes a review. Author or admin only.
func (f *FacadeImpl) DeleteReview(ctx context.Context, actor authz.Actor, id uuid.UUID) error {
	err := f.inTx(ctx, func(ctx context.Context, s Stores) error {
		review, err := s.Reviews.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if err := authz.CanDeleteReview(actor, review); err != nil {
			return err
		}
		if _, err := s.Users.Get(ctx, review.UserID); err != nil {
			return fmt.Errorf("failed to resolve author: %w", err)
		}
		if _, err := s.Places.Get(ctx, review.PlaceID); err != nil {
			return fmt.Errorf("failed to resolve place: %w", err)
		}
		return s.Reviews.Delete(ctx, review.ID)
	})
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	f.log(ctx).Info("review deleted", "review_id", id)
	return nil
}
