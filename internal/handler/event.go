package handler

import (
	"net/http"

	"github.com/fieldday/api/internal/model"
	"github.com/fieldday/api/internal/service"
)

// EventHandler handles event endpoints
type EventHandler struct {
	events *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// List handles GET /v1/events
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &model.EventFilters{
		Search:    r.URL.Query().Get("search"),
		SportType: r.URL.Query().Get("sport_type"),
	}

	WriteResult(w, http.StatusOK, h.events.List(r.Context(), filters))
}

// Get handles GET /v1/events/{eventId}
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteResult(w, http.StatusOK, h.events.Get(r.Context(), r.PathValue("eventId")))
}

// Create handles POST /v1/events
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var form model.EventFormData
	if err := DecodeJSON(r, &form); err != nil {
		WriteAppError(w, model.NewValidationError("Invalid request body", ""))
		return
	}

	WriteResult(w, http.StatusCreated, h.events.Create(r.Context(), form))
}

// Update handles PATCH /v1/events/{eventId}
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	var form model.EventFormData
	if err := DecodeJSON(r, &form); err != nil {
		WriteAppError(w, model.NewValidationError("Invalid request body", ""))
		return
	}

	WriteResult(w, http.StatusOK, h.events.Update(r.Context(), r.PathValue("eventId"), form))
}

// Delete handles DELETE /v1/events/{eventId}
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	res := h.events.Delete(r.Context(), r.PathValue("eventId"))
	if !res.Success() {
		WriteAppError(w, res.Error())
		return
	}
	WriteNoContent(w)
}

// SportTypes handles GET /v1/sports
func (h *EventHandler) SportTypes(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, model.SportTypes)
}
