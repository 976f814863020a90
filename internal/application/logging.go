package application

import (
	"errors"

	"github.com/mathomas/bookit-api/internal/booking"
	"github.com/mathomas/bookit-api/internal/interval"
)

// ErrorKind maps sentinel errors to a stable logging label. The transport
// layer attaches it to failure log entries; the services themselves never
// log business-rule violations.
func ErrorKind(err error) string {
	if err == nil {
		return ""
	}
	switch {
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	case errors.Is(err, ErrLocationNotFound),
		errors.Is(err, ErrBookableNotFound),
		errors.Is(err, ErrBookingNotFound):
		return "not_found"
	case errors.Is(err, ErrStartDateRequired),
		errors.Is(err, ErrEndDateRequired):
		return "partial_window"
	case errors.Is(err, booking.ErrStartInPast),
		errors.Is(err, booking.ErrEndNotAfterStart):
		return "temporal_invariant"
	case errors.Is(err, booking.ErrBookableUnavailable):
		return "conflict"
	case errors.Is(err, interval.ErrInvalidTimezone):
		return "invalid_timezone"
	}
	return "unexpected"
}
