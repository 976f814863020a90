package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathomas/bookit-api/internal/booking"
	"github.com/mathomas/bookit-api/internal/interval"
	"github.com/mathomas/bookit-api/internal/persistence"
)

// BookableCatalog captures the persistence operations needed for bookables.
type BookableCatalog interface {
	ListBookables(ctx context.Context) ([]Bookable, error)
	ListBookablesForLocation(ctx context.Context, locationID string) ([]Bookable, error)
	GetBookable(ctx context.Context, id string) (Bookable, error)
}

// BookingLister captures the read side of the booking store used for
// availability computation.
type BookingLister interface {
	ListBookings(ctx context.Context) ([]Booking, error)
}

// BookableService answers bookable lookups and availability searches.
type BookableService struct {
	locations LocationCatalog
	bookables BookableCatalog
	bookings  BookingLister
}

// NewBookableService wires dependencies for bookable operations.
func NewBookableService(locations LocationCatalog, bookables BookableCatalog, bookings BookingLister) *BookableService {
	return &BookableService{locations: locations, bookables: bookables, bookings: bookings}
}

// GetBookable returns one bookable scoped to a location. An unknown location
// fails before the bookable is considered.
func (s *BookableService) GetBookable(ctx context.Context, locationID, bookableID string) (Bookable, error) {
	if s == nil || s.bookables == nil {
		return Bookable{}, fmt.Errorf("bookable catalog not configured")
	}

	if _, err := s.requireLocation(ctx, locationID); err != nil {
		return Bookable{}, err
	}

	bookable, err := s.bookables.GetBookable(ctx, bookableID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Bookable{}, ErrBookableNotFound
		}
		return Bookable{}, err
	}
	if bookable.LocationID != locationID {
		return Bookable{}, ErrBookableNotFound
	}

	return bookable, nil
}

// ListBookables returns the location's bookables in catalog order, each with
// its availability for the supplied window.
//
// With no window, the stored flag is reported as-is and no bookings are
// consulted. With a window, both bounds are required together, the end must
// strictly follow the start after minute truncation, and availability is the
// stored flag combined with a conflict check against existing bookings.
func (s *BookableService) ListBookables(ctx context.Context, locationID string, window SearchWindow) ([]Bookable, error) {
	if s == nil || s.bookables == nil {
		return nil, fmt.Errorf("bookable catalog not configured")
	}

	location, err := s.requireLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	bookables, err := s.bookables.ListBookablesForLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	switch {
	case window.Start == nil && window.End == nil:
		return bookables, nil
	case window.Start == nil:
		return nil, ErrStartDateRequired
	case window.End == nil:
		return nil, ErrEndDateRequired
	}

	start := interval.TruncateToMinute(*window.Start)
	end := interval.TruncateToMinute(*window.End)
	if !end.After(start) {
		return nil, booking.ErrEndNotAfterStart
	}

	loc, err := interval.LoadLocation(location.Timezone)
	if err != nil {
		return nil, err
	}

	all, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	existing := toDomainBookings(all)

	result := make([]Bookable, len(bookables))
	for i, b := range bookables {
		derived := b
		derived.Available = booking.Available(toDomainBookable(b), existing, start, end, loc)
		result[i] = derived
	}

	return result, nil
}

func (s *BookableService) requireLocation(ctx context.Context, locationID string) (Location, error) {
	if s.locations == nil {
		return Location{}, fmt.Errorf("location catalog not configured")
	}
	location, err := s.locations.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Location{}, ErrLocationNotFound
		}
		return Location{}, err
	}
	return location, nil
}

func toDomainBookable(b Bookable) booking.Bookable {
	return booking.Bookable{
		ID:         b.ID,
		LocationID: b.LocationID,
		Name:       b.Name,
		Available:  b.Available,
	}
}

func toDomainBookings(bookings []Booking) []booking.Booking {
	out := make([]booking.Booking, len(bookings))
	for i, b := range bookings {
		out[i] = toDomainBooking(b)
	}
	return out
}

func toDomainBooking(b Booking) booking.Booking {
	return booking.Booking{
		ID:         b.ID,
		BookableID: b.BookableID,
		Subject:    b.Subject,
		Start:      b.Start,
		End:        b.End,
		User: booking.User{
			ID:         b.User.ID,
			Name:       b.User.Name,
			ExternalID: b.User.ExternalID,
		},
	}
}

func fromDomainBooking(b booking.Booking) Booking {
	return Booking{
		ID:         b.ID,
		BookableID: b.BookableID,
		Subject:    b.Subject,
		Start:      b.Start,
		End:        b.End,
		User: User{
			ID:         b.User.ID,
			Name:       b.User.Name,
			ExternalID: b.User.ExternalID,
		},
	}
}
