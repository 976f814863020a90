// Package testfixtures provides deterministic builders and a controllable
// clock shared by unit and repository tests.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/mathomas/bookit-api/internal/persistence"
)

var (
	locationCounter uint64
	bookableCounter uint64
	bookingCounter  uint64
	userCounter     uint64
)

var referenceTime = time.Date(2024, time.January, 2, 15, 4, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// LocationOption configures a generated location fixture.
type LocationOption func(*persistence.Location)

// NewLocationFixture returns a deterministic location with optional
// overrides. The default timezone is America/New_York.
func NewLocationFixture(opts ...LocationOption) persistence.Location {
	idx := atomic.AddUint64(&locationCounter, 1)
	fixture := persistence.Location{
		ID:       fmt.Sprintf("location-%03d", idx),
		Name:     fmt.Sprintf("Location %03d", idx),
		Timezone: "America/New_York",
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithLocationID overrides the generated location ID.
func WithLocationID(id string) LocationOption {
	return func(l *persistence.Location) { l.ID = id }
}

// WithLocationTimezone overrides the generated timezone.
func WithLocationTimezone(tz string) LocationOption {
	return func(l *persistence.Location) { l.Timezone = tz }
}

// BookableOption configures a generated bookable fixture.
type BookableOption func(*persistence.Bookable)

// NewBookableFixture returns a deterministic bookable with optional
// overrides. The bookable is available unless overridden.
func NewBookableFixture(locationID string, opts ...BookableOption) persistence.Bookable {
	idx := atomic.AddUint64(&bookableCounter, 1)
	fixture := persistence.Bookable{
		ID:         fmt.Sprintf("bookable-%03d", idx),
		LocationID: locationID,
		Name:       fmt.Sprintf("Bookable %03d", idx),
		Available:  true,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithBookableID overrides the generated bookable ID.
func WithBookableID(id string) BookableOption {
	return func(b *persistence.Bookable) { b.ID = id }
}

// WithBookableUnavailable marks the bookable's stored flag as disabled.
func WithBookableUnavailable() BookableOption {
	return func(b *persistence.Bookable) { b.Available = false }
}

// UserOption configures a generated user fixture.
type UserOption func(*persistence.User)

// NewUserFixture returns a deterministic user with optional overrides.
func NewUserFixture(opts ...UserOption) persistence.User {
	idx := atomic.AddUint64(&userCounter, 1)
	fixture := persistence.User{
		ID:         fmt.Sprintf("user-%03d", idx),
		Name:       fmt.Sprintf("User %03d", idx),
		ExternalID: fmt.Sprintf("external-%03d", idx),
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithUserExternalID overrides the generated external identifier.
func WithUserExternalID(externalID string) UserOption {
	return func(u *persistence.User) { u.ExternalID = externalID }
}

// BookingOption configures a generated booking fixture.
type BookingOption func(*persistence.Booking)

// NewBookingFixture returns a deterministic booking claiming the supplied
// bookable for owner. Defaults to a one-hour slot starting an hour after
// ReferenceTime.
func NewBookingFixture(bookableID string, owner persistence.User, opts ...BookingOption) persistence.Booking {
	idx := atomic.AddUint64(&bookingCounter, 1)
	start := referenceTime.Add(time.Hour)
	fixture := persistence.Booking{
		ID:         fmt.Sprintf("booking-%03d", idx),
		BookableID: bookableID,
		Subject:    fmt.Sprintf("Booking %03d", idx),
		Start:      start,
		End:        start.Add(time.Hour),
		User:       owner,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithBookingInterval overrides the booking's start and end.
func WithBookingInterval(start, end time.Time) BookingOption {
	return func(b *persistence.Booking) {
		b.Start = start
		b.End = end
	}
}

// WithBookingSubject overrides the booking's subject.
func WithBookingSubject(subject string) BookingOption {
	return func(b *persistence.Booking) { b.Subject = subject }
}
