package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mathomas/bookit-api/internal/application"
)

type locationService interface {
	ListLocations(ctx context.Context) ([]application.Location, error)
	GetLocation(ctx context.Context, id string) (application.Location, error)
}

// LocationHandler serves the read-only location catalog.
type LocationHandler struct {
	service   locationService
	responder responder
}

// NewLocationHandler creates a location handler.
func NewLocationHandler(service locationService, logger *slog.Logger) *LocationHandler {
	return &LocationHandler{service: service, responder: newResponder(logger)}
}

// List returns every location.
func (h *LocationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locations, err := h.service.ListLocations(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toLocationDTOs(locations))
}

// Get returns one location by path identifier.
func (h *LocationHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := LocationIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		http.NotFound(w, r)
		return
	}

	location, err := h.service.GetLocation(r.Context(), id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toLocationDTO(location))
}

type locationDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	TimeZone string `json:"timeZone"`
}

func toLocationDTO(location application.Location) locationDTO {
	return locationDTO{
		ID:       location.ID,
		Name:     location.Name,
		TimeZone: location.Timezone,
	}
}

func toLocationDTOs(locations []application.Location) []locationDTO {
	out := make([]locationDTO, len(locations))
	for i, location := range locations {
		out[i] = toLocationDTO(location)
	}
	return out
}
