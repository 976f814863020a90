package persistence

import "context"

// LocationRepository exposes read operations for locations. Locations are
// seeded at startup and never mutated by the service.
type LocationRepository interface {
	ListLocations(ctx context.Context) ([]Location, error)
	GetLocation(ctx context.Context, id string) (Location, error)
}

// BookableRepository exposes read operations for bookables.
type BookableRepository interface {
	ListBookables(ctx context.Context) ([]Bookable, error)
	ListBookablesForLocation(ctx context.Context, locationID string) ([]Bookable, error)
	GetBookable(ctx context.Context, id string) (Bookable, error)
}

// BookingRepository stores reservations. Bookings are never updated after
// creation; they are only inserted and deleted.
type BookingRepository interface {
	CreateBooking(ctx context.Context, booking Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListBookingsForBookable(ctx context.Context, bookableID string) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// UserRepository stores lazily-registered users. CreateUser must surface
// ErrDuplicate when the external identifier is already taken so callers can
// recover the first-sight race as a lookup.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) error
	GetUserByExternalID(ctx context.Context, externalID string) (User, error)
}
