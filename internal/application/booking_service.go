package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mathomas/bookit-api/internal/booking"
	"github.com/mathomas/bookit-api/internal/interval"
	"github.com/mathomas/bookit-api/internal/persistence"
)

// BookingRepository captures the persistence interactions needed by the
// booking service.
type BookingRepository interface {
	CreateBooking(ctx context.Context, b Booking) error
	GetBooking(ctx context.Context, id string) (Booking, error)
	ListBookings(ctx context.Context) ([]Booking, error)
	ListBookingsForBookable(ctx context.Context, bookableID string) ([]Booking, error)
	DeleteBooking(ctx context.Context, id string) error
}

// IdentityRegistrar resolves authenticated identities to user records.
type IdentityRegistrar interface {
	Register(ctx context.Context, identity Identity) (User, error)
}

// BookingService orchestrates booking creation, lookup, listing, and
// deletion. Every operation takes the caller's identity explicitly.
type BookingService struct {
	bookings    BookingRepository
	bookables   BookableCatalog
	locations   LocationCatalog
	identity    IdentityRegistrar
	idGenerator func() string
	now         func() time.Time
	locks       *keyedMutex
}

// NewBookingService wires dependencies for booking operations. now supplies
// the current instant; it is evaluated in the bookable's location timezone
// for past-start checks.
func NewBookingService(bookings BookingRepository, bookables BookableCatalog, locations LocationCatalog, identity IdentityRegistrar, idGenerator func() string, now func() time.Time) *BookingService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &BookingService{
		bookings:    bookings,
		bookables:   bookables,
		locations:   locations,
		identity:    identity,
		idGenerator: idGenerator,
		now:         now,
		locks:       newKeyedMutex(),
	}
}

// CreateBooking validates the proposed reservation and persists it. The
// conflict check and the insert run under the bookable's lock so concurrent
// requests for the same bookable serialize; exactly one of two identical
// concurrent requests succeeds.
func (s *BookingService) CreateBooking(ctx context.Context, params CreateBookingParams) (Booking, error) {
	if s == nil || s.bookings == nil {
		return Booking{}, fmt.Errorf("booking repository not configured")
	}

	bookable, err := s.bookables.GetBookable(ctx, params.BookableID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Booking{}, ErrBookableNotFound
		}
		return Booking{}, err
	}

	location, err := s.locations.GetLocation(ctx, bookable.LocationID)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Booking{}, ErrLocationNotFound
		}
		return Booking{}, err
	}

	loc, err := interval.LoadLocation(location.Timezone)
	if err != nil {
		return Booking{}, err
	}

	owner, err := s.identity.Register(ctx, params.Identity)
	if err != nil {
		return Booking{}, err
	}

	unlock := s.locks.lock(bookable.ID)
	defer unlock()

	existing, err := s.bookings.ListBookingsForBookable(ctx, bookable.ID)
	if err != nil {
		return Booking{}, err
	}

	now := interval.ToNaive(s.now(), loc)
	start, end, err := booking.Validate(bookable.ID, params.Start, params.End, now, toDomainBookings(existing), loc)
	if err != nil {
		return Booking{}, err
	}

	created := Booking{
		ID:         s.idGenerator(),
		BookableID: bookable.ID,
		Subject:    strings.TrimSpace(params.Subject),
		Start:      start,
		End:        end,
		User:       owner,
	}

	if err := s.bookings.CreateBooking(ctx, created); err != nil {
		return Booking{}, mapBookingRepoError(err)
	}

	return created, nil
}

// GetBooking returns one booking with the visibility policy applied for the
// requesting identity.
func (s *BookingService) GetBooking(ctx context.Context, identity Identity, id string) (Booking, error) {
	if s == nil || s.bookings == nil {
		return Booking{}, fmt.Errorf("booking repository not configured")
	}

	b, err := s.bookings.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Booking{}, ErrBookingNotFound
		}
		return Booking{}, err
	}

	return fromDomainBooking(booking.Present(toDomainBooking(b), identity.ExternalID)), nil
}

// ListBookings returns all bookings, masked for the requesting identity and
// optionally narrowed to a date window. Bounds are date values; a booking is
// included when its interval overlaps [start 00:00, end 00:00) evaluated in
// the booking's own location timezone. Either bound may be omitted, leaving
// that side open.
func (s *BookingService) ListBookings(ctx context.Context, identity Identity, window DateWindow) ([]Booking, error) {
	if s == nil || s.bookings == nil {
		return nil, fmt.Errorf("booking repository not configured")
	}

	if window.StartInclusive != nil && window.EndExclusive != nil &&
		!window.StartInclusive.Before(*window.EndExclusive) {
		return nil, booking.ErrEndNotAfterStart
	}

	all, err := s.bookings.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	if window.StartInclusive == nil && window.EndExclusive == nil {
		return maskAll(all, identity), nil
	}

	timezones, err := s.bookableTimezones(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]Booking, 0, len(all))
	for _, b := range all {
		tz, ok := timezones[b.BookableID]
		if !ok {
			return nil, fmt.Errorf("booking %s references bookable %s with no timezone", b.ID, b.BookableID)
		}
		loc, err := interval.LoadLocation(tz)
		if err != nil {
			return nil, err
		}

		overlaps, err := bookingOverlapsDates(b, window, loc)
		if err != nil {
			return nil, err
		}
		if overlaps {
			filtered = append(filtered, b)
		}
	}

	return maskAll(filtered, identity), nil
}

// DeleteBooking removes a booking when requested by its owner. A non-owner
// is refused; deleting an unknown booking is a no-op.
func (s *BookingService) DeleteBooking(ctx context.Context, identity Identity, id string) error {
	if s == nil || s.bookings == nil {
		return fmt.Errorf("booking repository not configured")
	}

	b, err := s.bookings.GetBooking(ctx, id)
	if err != nil && !errors.Is(err, persistence.ErrNotFound) {
		return err
	}
	if err == nil && b.User.ExternalID != identity.ExternalID {
		return ErrForbidden
	}

	return s.bookings.DeleteBooking(ctx, id)
}

func (s *BookingService) bookableTimezones(ctx context.Context) (map[string]string, error) {
	bookables, err := s.bookables.ListBookables(ctx)
	if err != nil {
		return nil, err
	}
	locations, err := s.locations.ListLocations(ctx)
	if err != nil {
		return nil, err
	}

	byLocation := make(map[string]string, len(locations))
	for _, l := range locations {
		byLocation[l.ID] = l.Timezone
	}

	timezones := make(map[string]string, len(bookables))
	for _, b := range bookables {
		if tz, ok := byLocation[b.LocationID]; ok {
			timezones[b.ID] = tz
		}
	}
	return timezones, nil
}

// bookingOverlapsDates anchors the window's date bounds to midnight in the
// booking's location timezone and tests half-open interval overlap. An
// omitted bound leaves that side of the window open.
func bookingOverlapsDates(b Booking, window DateWindow, loc *time.Location) (bool, error) {
	bookingStart := interval.ToInstant(b.Start, loc)
	bookingEnd := interval.ToInstant(b.End, loc)

	if window.StartInclusive != nil {
		windowStart := interval.ToInstant(startOfDay(*window.StartInclusive), loc)
		if !windowStart.Before(bookingEnd) {
			return false, nil
		}
	}
	if window.EndExclusive != nil {
		windowEnd := interval.ToInstant(startOfDay(*window.EndExclusive), loc)
		if !bookingStart.Before(windowEnd) {
			return false, nil
		}
	}
	return true, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func maskAll(bookings []Booking, identity Identity) []Booking {
	masked := booking.PresentAll(toDomainBookings(bookings), identity.ExternalID)
	out := make([]Booking, len(masked))
	for i, b := range masked {
		out[i] = fromDomainBooking(b)
	}
	return out
}

func mapBookingRepoError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, persistence.ErrForeignKeyViolation):
		return ErrBookableNotFound
	case errors.Is(err, persistence.ErrConstraintViolation):
		return booking.ErrEndNotAfterStart
	}
	return err
}
