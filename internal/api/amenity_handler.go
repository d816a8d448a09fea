package api

import (
	"net/http"

	"github.com/hbnb-platform/hbnb-api/internal/api/shared"
	"github.com/hbnb-platform/hbnb-api/internal/authz"
	"github.com/hbnb-platform/hbnb-api/internal/service"
)

// AmenityHandler handles /amenities requests.
type AmenityHandler struct {
	facade service.Facade
}

// NewAmenityHandler creates an AmenityHandler.
func NewAmenityHandler(facade service.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

// CreateAmenity handles POST /amenities.
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req AmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	amenity, err := h.facade.CreateAmenity(r.Context(), authz.FromContext(r.Context()),
		service.AmenityInput{Name: req.Name})
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, amenityToResponse(amenity))
}

// ListAmenities handles GET /amenities.
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, mapSlice(amenities, amenityToResponse))
}

// GetAmenity handles GET /amenities/{id}.
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	amenity, err := h.facade.GetAmenity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}

// UpdateAmenity handles PUT /amenities/{id}.
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}
	patch, ok := decodePatch(w, r)
	if !ok {
		return
	}
	amenity, err := h.facade.UpdateAmenity(r.Context(), authz.FromContext(r.Context()), id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, amenityToResponse(amenity))
}
