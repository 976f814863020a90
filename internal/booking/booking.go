// Package booking holds the pure booking domain: creation-time validation,
// availability computation, and subject visibility. Functions in this package
// operate on already-fetched collections and never touch storage, so every
// rule is unit-testable in isolation.
package booking

import "time"

// User identifies the owner of a booking. ExternalID is the stable subject
// identifier issued by the upstream identity provider.
type User struct {
	ID         string
	Name       string
	ExternalID string
}

// Bookable is a reservable resource belonging to a location. Available is the
// stored flag; the availability exposed to clients additionally accounts for
// conflicting bookings (see Available).
type Bookable struct {
	ID         string
	LocationID string
	Name       string
	Available  bool
}

// Booking is a time-bounded claim on a bookable. Start and End are naive
// date-times interpreted in the owning location's timezone; they are already
// truncated to minute precision when a booking is persisted.
type Booking struct {
	ID         string
	BookableID string
	Subject    string
	Start      time.Time
	End        time.Time
	User       User
}
