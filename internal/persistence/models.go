package persistence

import "time"

// Location is a place with its own timezone, owning a set of bookables.
// Locations are immutable once created.
type Location struct {
	ID       string
	Name     string
	Timezone string
}

// Bookable is a reservable resource belonging to exactly one location.
// Available is the stored flag as written by operators; derived availability
// is computed in the booking core.
type Bookable struct {
	ID         string
	LocationID string
	Name       string
	Available  bool
}

// User is created lazily the first time an external subject performs an
// authenticated action. ExternalID carries a UNIQUE constraint in storage.
type User struct {
	ID         string
	Name       string
	ExternalID string
}

// Booking stores a reservation. Start and End are naive date-times at minute
// precision, interpreted via the bookable's location timezone. User is the
// resolved owner record.
type Booking struct {
	ID         string
	BookableID string
	Subject    string
	Start      time.Time
	End        time.Time
	User       User
}
