package handler

import (
	"net/http"

	"github.com/fieldday/api/internal/model"
	"github.com/fieldday/api/internal/service"
)

// VenueHandler handles venue endpoints
type VenueHandler struct {
	venues *service.VenueService
}

// NewVenueHandler creates a new venue handler
func NewVenueHandler(venues *service.VenueService) *VenueHandler {
	return &VenueHandler{venues: venues}
}

// List handles GET /v1/venues
func (h *VenueHandler) List(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, http.StatusOK, h.venues.List(r.Context()))
}

// Create handles POST /v1/venues
func (h *VenueHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form model.VenueFormData
	if err := DecodeJSON(r, &form); err != nil {
		WriteAppError(w, model.NewValidationError("Invalid request body", ""))
		return
	}

	WriteResult(w, http.StatusCreated, h.venues.Create(r.Context(), form))
}
