package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mathomas/bookit-api/internal/application"
)

type bookingService interface {
	CreateBooking(ctx context.Context, params application.CreateBookingParams) (application.Booking, error)
	GetBooking(ctx context.Context, identity application.Identity, id string) (application.Booking, error)
	ListBookings(ctx context.Context, identity application.Identity, window application.DateWindow) ([]application.Booking, error)
	DeleteBooking(ctx context.Context, identity application.Identity, id string) error
}

// BookingHandler serves booking creation, lookup, listing, and deletion.
type BookingHandler struct {
	service   bookingService
	responder responder
}

// NewBookingHandler creates a booking handler.
func NewBookingHandler(service bookingService, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{service: service, responder: newResponder(logger)}
}

// Create validates the request body and delegates to the booking service.
// On success the booking is returned with 201 and a Location header.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	params, err := req.toParams()
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	identity, _ := IdentityFromContext(r.Context())
	params.Identity = identity

	created, err := h.service.CreateBooking(r.Context(), params)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/v1/booking/%s", created.ID))
	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toBookingDTO(created))
}

// Get returns one booking, subject-masked for non-owners.
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	identity, _ := IdentityFromContext(r.Context())

	b, err := h.service.GetBooking(r.Context(), identity, id)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookingDTO(b))
}

// List returns all bookings, masked, optionally narrowed to a date window.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	window, err := dateWindowFromQuery(r)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, err)
		return
	}

	identity, _ := IdentityFromContext(r.Context())

	bookings, err := h.service.ListBookings(r.Context(), identity, window)
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookingDTOs(bookings))
}

// Delete removes a booking for its owner. Unknown ids are a no-op 204.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	id, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(id) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidBookingID)
		return
	}

	identity, _ := IdentityFromContext(r.Context())

	if err := h.service.DeleteBooking(r.Context(), identity, id); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

func dateWindowFromQuery(r *http.Request) (application.DateWindow, error) {
	query := r.URL.Query()
	window := application.DateWindow{}

	if raw := strings.TrimSpace(query.Get("start")); raw != "" {
		start, err := parseDate(raw)
		if err != nil {
			return application.DateWindow{}, err
		}
		window.StartInclusive = &start
	}
	if raw := strings.TrimSpace(query.Get("end")); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			return application.DateWindow{}, err
		}
		window.EndExclusive = &end
	}

	return window, nil
}

type bookingRequest struct {
	BookableID string `json:"bookableId"`
	Subject    string `json:"subject"`
	Start      string `json:"start"`
	End        string `json:"end"`
}

// toParams enforces the request-shape preconditions. Temporal and conflict
// rules belong to the service.
func (req bookingRequest) toParams() (application.CreateBookingParams, error) {
	var problems []string
	if strings.TrimSpace(req.BookableID) == "" {
		problems = append(problems, "bookableId is required")
	}
	if strings.TrimSpace(req.Subject) == "" {
		problems = append(problems, "subject is required and cannot be blank")
	}
	if strings.TrimSpace(req.Start) == "" {
		problems = append(problems, "start is required")
	}
	if strings.TrimSpace(req.End) == "" {
		problems = append(problems, "end is required")
	}
	if len(problems) > 0 {
		return application.CreateBookingParams{}, errors.New(strings.Join(problems, ","))
	}

	start, err := parseDateTime(req.Start)
	if err != nil {
		return application.CreateBookingParams{}, err
	}
	end, err := parseDateTime(req.End)
	if err != nil {
		return application.CreateBookingParams{}, err
	}

	return application.CreateBookingParams{
		BookableID: strings.TrimSpace(req.BookableID),
		Subject:    req.Subject,
		Start:      start,
		End:        end,
	}, nil
}

type bookingDTO struct {
	ID         string  `json:"id"`
	BookableID string  `json:"bookableId"`
	Subject    string  `json:"subject"`
	Start      string  `json:"start"`
	End        string  `json:"end"`
	User       userDTO `json:"user"`
}

type userDTO struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ExternalID string `json:"externalId"`
}

func toBookingDTO(b application.Booking) bookingDTO {
	return bookingDTO{
		ID:         b.ID,
		BookableID: b.BookableID,
		Subject:    b.Subject,
		Start:      formatDateTime(b.Start),
		End:        formatDateTime(b.End),
		User: userDTO{
			ID:         b.User.ID,
			Name:       b.User.Name,
			ExternalID: b.User.ExternalID,
		},
	}
}

func toBookingDTOs(bookings []application.Booking) []bookingDTO {
	out := make([]bookingDTO, len(bookings))
	for i, b := range bookings {
		out[i] = toBookingDTO(b)
	}
	return out
}
