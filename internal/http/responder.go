package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mathomas/bookit-api/internal/application"
	"github.com/mathomas/bookit-api/internal/booking"
	"github.com/mathomas/bookit-api/internal/interval"
)

var (
	errBadRequestBody   = errors.New("invalid request body")
	errInvalidBookingID = errors.New("invalid booking id")
	errMissingIdentity  = errors.New("an authenticated identity is required")
)

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	return responder{logger: defaultLogger(logger)}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	message := http.StatusText(status)
	if err != nil {
		if msg := strings.TrimSpace(err.Error()); msg != "" {
			message = msg
		}
	}

	r.writeJSON(ctx, w, status, errorResponse{Message: message})
}

// handleServiceError translates application sentinels into their external
// representation. Business-rule failures are logged at debug level only;
// they are expected outcomes, not server faults.
func (r responder) handleServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	if err == nil {
		r.writeError(ctx, w, http.StatusInternalServerError, errors.New("unknown error"))
		return
	}

	logger := r.loggerFor(ctx)

	switch {
	case errors.Is(err, booking.ErrStartInPast):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "Start must be in the future"})
	case errors.Is(err, booking.ErrEndNotAfterStart):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "End must be after Start"})
	case errors.Is(err, application.ErrStartDateRequired):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "start is required when end is specified"})
	case errors.Is(err, application.ErrEndDateRequired):
		r.writeJSON(ctx, w, http.StatusBadRequest, errorResponse{Message: "end is required when start is specified"})
	case errors.Is(err, application.ErrForbidden):
		r.writeJSON(ctx, w, http.StatusForbidden, errorResponse{Message: "Forbidden"})
	case errors.Is(err, application.ErrLocationNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "Location not found"})
	case errors.Is(err, application.ErrBookableNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "Bookable not found"})
	case errors.Is(err, application.ErrBookingNotFound):
		r.writeJSON(ctx, w, http.StatusNotFound, errorResponse{Message: "Booking not found"})
	case errors.Is(err, booking.ErrBookableUnavailable):
		r.writeJSON(ctx, w, http.StatusConflict, errorResponse{Message: "Bookable is not available.  Please select another time"})
	case errors.Is(err, interval.ErrInvalidTimezone):
		logger.ErrorContext(ctx, "location carries an invalid timezone", "error", err)
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Location timezone is invalid"})
	default:
		logger.ErrorContext(ctx, "request failed", "error", err, "kind", application.ErrorKind(err))
		r.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Message: "Internal server error"})
	}
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}

type errorResponse struct {
	Message string `json:"message"`
}
