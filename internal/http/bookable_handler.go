package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mathomas/bookit-api/internal/application"
)

type bookableService interface {
	ListBookables(ctx context.Context, locationID string, window application.SearchWindow) ([]application.Bookable, error)
	GetBookable(ctx context.Context, locationID, bookableID string) (application.Bookable, error)
}

// BookableHandler serves bookable lookups and availability searches.
type BookableHandler struct {
	service   bookableService
	responder responder
}

// NewBookableHandler creates a bookable handler.
func NewBookableHandler(service bookableService, logger *slog.Logger) *BookableHandler {
	return &BookableHandler{service: service, responder: newResponder(logger)}
}

// List returns a location's bookables, with derived availability when a
// start/end query window is supplied.
func (h *BookableHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locationID, ok := LocationIDFromContext(r.Context())
	if !ok || strings.TrimSpace(locationID) == "" {
		http.NotFound(w, r)
		return
	}

	window, err := searchWindowFromQuery(r)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	bookables, err := h.service.ListBookables(r.Context(), locationID, window)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookableDTOs(bookables))
}

// Get returns one bookable scoped to its location.
func (h *BookableHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	locationID, ok := LocationIDFromContext(r.Context())
	if !ok || strings.TrimSpace(locationID) == "" {
		http.NotFound(w, r)
		return
	}
	bookableID, ok := BookableIDFromContext(r.Context())
	if !ok || strings.TrimSpace(bookableID) == "" {
		http.NotFound(w, r)
		return
	}

	bookable, err := h.service.GetBookable(r.Context(), locationID, bookableID)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookableDTO(bookable))
}

// searchWindowFromQuery parses the optional start/end bounds. Presence is
// significant: a malformed value is rejected here, while pairing rules are
// the service's concern.
func searchWindowFromQuery(r *http.Request) (application.SearchWindow, error) {
	query := r.URL.Query()
	window := application.SearchWindow{}

	if raw := strings.TrimSpace(query.Get("start")); raw != "" {
		start, err := parseDateTime(raw)
		if err != nil {
			return application.SearchWindow{}, err
		}
		window.Start = &start
	}
	if raw := strings.TrimSpace(query.Get("end")); raw != "" {
		end, err := parseDateTime(raw)
		if err != nil {
			return application.SearchWindow{}, err
		}
		window.End = &end
	}

	return window, nil
}

type bookableDTO struct {
	ID         string `json:"id"`
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Available  bool   `json:"available"`
}

func toBookableDTO(bookable application.Bookable) bookableDTO {
	return bookableDTO{
		ID:         bookable.ID,
		LocationID: bookable.LocationID,
		Name:       bookable.Name,
		Available:  bookable.Available,
	}
}

func toBookableDTOs(bookables []application.Bookable) []bookableDTO {
	out := make([]bookableDTO, len(bookables))
	for i, bookable := range bookables {
		out[i] = toBookableDTO(bookable)
	}
	return out
}
