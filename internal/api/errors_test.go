package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/domain"
	"github.com/hbnb-platform/hbnb-api/internal/service"
	"github.com/hbnb-platform/hbnb-api/internal/service/auth"
	"github.com/hbnb-platform/hbnb-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"wrapped expired token", fmt.Errorf("validate: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"unauthenticated", fmt.Errorf("failed to create place: %w", authz.ErrUnauthenticated), http.StatusUnauthorized},
		{"invalid credentials", service.ErrInvalidCredentials, http.StatusUnauthorized},
		{"forbidden", fmt.Errorf("failed to update place: %w", &authz.ForbiddenError{Reason: "x"}), http.StatusForbidden},
		{"not found", fmt.Errorf("failed to retrieve place: %w", store.ErrPlaceNotFound), http.StatusNotFound},
		{"email exists", store.ErrEmailExists, http.StatusConflict},
		{"duplicate review", authz.ErrDuplicateReview, http.StatusConflict},
		{"validation", domain.NewValidationError("price", "must be positive", nil), http.StatusBadRequest},
		{"own place review", authz.ErrOwnPlaceReview, http.StatusBadRequest},
		{"restricted field", domain.NewValidationError("email", "admin only", domain.ErrRestrictedField), http.StatusBadRequest},
		{"reference", &service.ReferenceError{Entity: "amenity", ID: uuid.New()}, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"unknown attribute", store.ErrUnknownAttribute, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedStatus, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	amenityID := uuid.New()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"expired token", auth.ErrExpiredToken, "Token expired"},
		{"invalid credentials", service.ErrInvalidCredentials, "Invalid credentials"},
		{"unauthenticated", authz.ErrUnauthenticated, "Authentication required"},
		{"forbidden with reason", fmt.Errorf("wrap: %w", &authz.ForbiddenError{Reason: "admin privileges required"}), "Admin privileges required"},
		{"user not found", store.ErrUserNotFound, "User not found"},
		{"review not found", fmt.Errorf("wrap: %w", store.ErrReviewNotFound), "Review not found"},
		{"email exists", store.ErrEmailExists, "Email already registered"},
		{"duplicate review", authz.ErrDuplicateReview, "You have already reviewed this place"},
		{"own place review", authz.ErrOwnPlaceReview, "You cannot review your own place"},
		{
			"reference",
			fmt.Errorf("failed to create place: %w", &service.ReferenceError{Entity: "amenity", ID: amenityID}),
			"Invalid amenity: " + amenityID.String() + " does not exist",
		},
		{"validation", domain.NewValidationError("price", "must be positive", nil), "Invalid price: must be positive"},
		{"unknown attribute", store.ErrUnknownAttribute, "Unknown attribute"},
		{"internal error text is hidden", errors.New("pq: relation users does not exist"), "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetSafeErrorMessage(tt.err))
		})
	}
}
