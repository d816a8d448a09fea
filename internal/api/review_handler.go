package api

import (
	"net/http"

	"github.com/hbnb-platform/hbnb-api/internal/api/shared"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/service"
)

// ReviewHandler handles /reviews requests.
type ReviewHandler struct {
	facade service.Facade
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(facade service.Facade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// CreateReview handles POST /reviews. The caller is the author.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	review, err := h.facade.CreateReview(r.Context(), authz.FromContext(r.Context()), service.ReviewInput{
		Text:    req.Text,
		Rating:  *req.Rating,
		PlaceID: req.PlaceID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, reviewToResponse(review))
}

// ListReviews handles GET /reviews.
func (h *ReviewHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.ListReviews(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(reviews, reviewToResponse))
}

// GetReview handles GET /reviews/{id}.
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// UpdateReview handles PUT /reviews/{id}.
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	review, err := h.facade.UpdateReview(r.Context(), authz.FromContext(r.Context()), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, reviewToResponse(review))
}

// DeleteReview handles DELETE /reviews/{id}.
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.facade.DeleteReview(r.Context(), authz.FromContext(r.Context()), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Review deleted successfully"})
}
