// Package interval provides half-open time interval arithmetic and the
// anchoring of naive date-times to IANA timezones.
//
// Booking start/end values travel through the system as naive wall-clock
// date-times: time.Time values whose year/month/day/hour/minute fields are
// meaningful and whose location is not. The owning location's timezone is the
// only authority for turning them into instants.
package interval

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimezone is returned when a location carries an unknown or
// malformed IANA timezone identifier.
var ErrInvalidTimezone = errors.New("interval: invalid timezone")

// LoadLocation resolves an IANA timezone identifier.
func LoadLocation(tzID string) (*time.Location, error) {
	if tzID == "" {
		return nil, fmt.Errorf("%w: empty identifier", ErrInvalidTimezone)
	}
	loc, err := time.LoadLocation(tzID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tzID)
	}
	return loc, nil
}

// ToInstant anchors a naive date-time to the supplied timezone, producing an
// absolute instant. The naive value's own location is ignored.
func ToInstant(naive time.Time, loc *time.Location) time.Time {
	return time.Date(
		naive.Year(), naive.Month(), naive.Day(),
		naive.Hour(), naive.Minute(), naive.Second(), naive.Nanosecond(),
		loc,
	)
}

// ToNaive strips an absolute instant down to its wall-clock reading in the
// supplied timezone. The result carries UTC as a placeholder location so that
// naive values compare with each other field-by-field.
func ToNaive(instant time.Time, loc *time.Location) time.Time {
	local := instant.In(loc)
	return time.Date(
		local.Year(), local.Month(), local.Day(),
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(),
		time.UTC,
	)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant. Intervals that merely touch at
// an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Contains reports whether the half-open interval [start, end) contains the
// instant t.
func Contains(start, end, t time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// TruncateToMinute discards seconds and sub-second precision. All temporal
// comparisons in the booking core happen at minute granularity.
func TruncateToMinute(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}
