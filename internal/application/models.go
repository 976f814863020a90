package application

import "time"

// Identity is the per-request authenticated identity supplied by the
// transport layer. The upstream identity provider is authoritative; the
// application never parses tokens itself.
type Identity struct {
	ExternalID string
	GivenName  string
	FamilyName string
}

// Location is a place with its own timezone, owning a set of bookables.
type Location struct {
	ID       string
	Name     string
	Timezone string
}

// Bookable is a reservable resource. In availability search results,
// Available carries the derived availability for the query window; elsewhere
// it is the stored flag.
type Bookable struct {
	ID         string
	LocationID string
	Name       string
	Available  bool
}

// User is a lazily-registered account tied to an external subject.
type User struct {
	ID         string
	Name       string
	ExternalID string
}

// Booking is a reservation as exposed by the application services. Start and
// End are naive date-times at minute precision in the owning location's
// timezone. Subject may be redacted depending on the requesting identity.
type Booking struct {
	ID         string
	BookableID string
	Subject    string
	Start      time.Time
	End        time.Time
	User       User
}

// CreateBookingParams wraps the data required to create a booking.
type CreateBookingParams struct {
	Identity   Identity
	BookableID string
	Subject    string
	Start      time.Time
	End        time.Time
}

// SearchWindow carries the optional half-open availability query window.
// Both bounds must be supplied together.
type SearchWindow struct {
	Start *time.Time
	End   *time.Time
}

// DateWindow carries the optional date bounds for booking listings. Either
// bound may be omitted, leaving that side open-ended.
type DateWindow struct {
	StartInclusive *time.Time
	EndExclusive   *time.Time
}
