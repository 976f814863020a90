package booking

import (
	"errors"
	"time"

	"github.com/mathomas/bookit-api/internal/interval"
)

var (
	// ErrStartInPast is returned when the proposed start is not strictly in
	// the future, evaluated in the bookable's location timezone.
	ErrStartInPast = errors.New("booking: start must be in the future")
	// ErrEndNotAfterStart is returned when the proposed end does not strictly
	// follow the proposed start.
	ErrEndNotAfterStart = errors.New("booking: end must be after start")
	// ErrBookableUnavailable is returned when an existing booking overlaps
	// the proposed interval.
	ErrBookableUnavailable = errors.New("booking: bookable is not available")
)

// Validate checks a proposed booking against the temporal invariants and the
// existing bookings for the same bookable.
//
// proposedStart and proposedEnd are naive date-times; now is the naive
// wall-clock reading of the current instant in the bookable's location
// timezone. Sub-minute precision is discarded before any comparison. Existing
// bookings for other bookables are ignored; intervals that exactly abut do
// not conflict.
//
// On success the truncated start and end are returned for persistence.
func Validate(bookableID string, proposedStart, proposedEnd, now time.Time, existing []Booking, loc *time.Location) (time.Time, time.Time, error) {
	start := interval.TruncateToMinute(proposedStart)
	end := interval.TruncateToMinute(proposedEnd)

	if !start.After(interval.TruncateToMinute(now)) {
		return time.Time{}, time.Time{}, ErrStartInPast
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrEndNotAfterStart
	}

	proposedFrom := interval.ToInstant(start, loc)
	proposedTo := interval.ToInstant(end, loc)

	for _, b := range existing {
		if b.BookableID != bookableID {
			continue
		}
		from := interval.ToInstant(b.Start, loc)
		to := interval.ToInstant(b.End, loc)
		if interval.Overlaps(proposedFrom, proposedTo, from, to) {
			return time.Time{}, time.Time{}, ErrBookableUnavailable
		}
	}

	return start, end, nil
}
