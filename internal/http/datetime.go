package http

import (
	"fmt"
	"strings"
	"time"
)

// dateTimeLayout is the wire format for naive booking date-times. No zone
// designator: values are interpreted in the owning location's timezone.
const dateTimeLayout = "2006-01-02T15:04"

var dateTimeLayouts = []string{
	dateTimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.000",
}

// parseDateTime parses a naive date-time, accepting optional seconds and
// milliseconds. Sub-minute precision is not significant downstream.
func parseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q, expected yyyy-MM-ddTHH:mm", value)
}

// parseDate parses a date bound for booking listings. A full date-time is
// accepted as well; only its date portion is significant.
func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.ParseInLocation("2006-01-02", value, time.UTC); err == nil {
		return t, nil
	}
	if t, err := parseDateTime(value); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q, expected yyyy-MM-dd", value)
}

func formatDateTime(t time.Time) string {
	return t.Format(dateTimeLayout)
}
