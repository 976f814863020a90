package booking

import (
	"time"

	"github.com/mathomas/bookit-api/internal/interval"
)

// Available derives a bookable's availability for the half-open query window
// [windowStart, windowEnd), both naive date-times in the bookable's location
// timezone. The stored flag is a hard override: a disabled bookable is never
// available, regardless of bookings. Bookings for other bookables are
// ignored; exact abutment with the window does not make it unavailable.
func Available(b Bookable, bookings []Booking, windowStart, windowEnd time.Time, loc *time.Location) bool {
	if !b.Available {
		return false
	}

	from := interval.ToInstant(interval.TruncateToMinute(windowStart), loc)
	to := interval.ToInstant(interval.TruncateToMinute(windowEnd), loc)

	for _, existing := range bookings {
		if existing.BookableID != b.ID {
			continue
		}
		start := interval.ToInstant(existing.Start, loc)
		end := interval.ToInstant(existing.End, loc)
		if interval.Overlaps(from, to, start, end) {
			return false
		}
	}

	return true
}
