package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/hbnb-platform/hbnb-api/internal/api/shared"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/service"
)

// PlaceHandler handles /places requests.
type PlaceHandler struct {
	facade service.Facade
}

// NewPlaceHandler creates a PlaceHandler.
func NewPlaceHandler(facade service.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// CreatePlace handles POST /places. The caller becomes the owner.
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req CreatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	place, err := h.facade.CreatePlace(r.Context(), authz.FromContext(r.Context()), service.PlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		AmenityIDs:  amenityIDs(req.Amenities),
	})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, placeToResponse(place))
}

// ListPlaces handles GET /places.
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.ListPlaces(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(places, placeToResponse))
}

// GetPlace handles GET /places/{id}, expanding the owner and amenities.
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	details, err := h.facade.GetPlaceDetails(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, placeDetailsToResponse(details))
}

// UpdatePlace handles PUT /places/{id}.
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	place, err := h.facade.UpdatePlace(r.Context(), authz.FromContext(r.Context()), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, placeToResponse(place))
}

// DeletePlace handles DELETE /places/{id}. The place's reviews go with it.
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	if err := h.facade.DeletePlace(r.Context(), authz.FromContext(r.Context()), id); err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Place deleted successfully"})
}

// ListPlaceReviews handles GET /places/{id}/reviews.
func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	reviews, err := h.facade.ListReviewsByPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(reviews, reviewToResponse))
}

func amenityIDs(refs []AmenityRef) []uuid.UUID {
	if len(refs) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID
	}
	return ids
}
