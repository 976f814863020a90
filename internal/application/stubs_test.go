package application

import (
	"context"
	"sync"
	"time"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// The stubs below back the service tests with in-memory state. Errors can be
// injected per call site to exercise failure paths.

type stubLocationCatalog struct {
	locations []Location
	err       error
}

func (s *stubLocationCatalog) ListLocations(ctx context.Context) ([]Location, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]Location(nil), s.locations...), nil
}

func (s *stubLocationCatalog) GetLocation(ctx context.Context, id string) (Location, error) {
	if s.err != nil {
		return Location{}, s.err
	}
	for _, l := range s.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return Location{}, persistence.ErrNotFound
}

type stubBookableCatalog struct {
	bookables []Bookable
	err       error
}

func (s *stubBookableCatalog) ListBookables(ctx context.Context) ([]Bookable, error) {
	if s.err != nil {
		return nil, s.err
	}
	return append([]Bookable(nil), s.bookables...), nil
}

func (s *stubBookableCatalog) ListBookablesForLocation(ctx context.Context, locationID string) ([]Bookable, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Bookable
	for _, b := range s.bookables {
		if b.LocationID == locationID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookableCatalog) GetBookable(ctx context.Context, id string) (Bookable, error) {
	if s.err != nil {
		return Bookable{}, s.err
	}
	for _, b := range s.bookables {
		if b.ID == id {
			return b, nil
		}
	}
	return Bookable{}, persistence.ErrNotFound
}

type stubBookingRepository struct {
	mu        sync.Mutex
	bookings  []Booking
	createErr error
	listCalls int
}

func (s *stubBookingRepository) CreateBooking(ctx context.Context, b Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.bookings = append(s.bookings, b)
	return nil
}

func (s *stubBookingRepository) GetBooking(ctx context.Context, id string) (Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return Booking{}, persistence.ErrNotFound
}

func (s *stubBookingRepository) ListBookings(ctx context.Context) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listCalls++
	return append([]Booking(nil), s.bookings...), nil
}

func (s *stubBookingRepository) ListBookingsForBookable(ctx context.Context, bookableID string) ([]Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Booking
	for _, b := range s.bookings {
		if b.BookableID == bookableID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *stubBookingRepository) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, b := range s.bookings {
		if b.ID == id {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *stubBookingRepository) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

type stubUserRepository struct {
	mu            sync.Mutex
	users         map[string]User
	duplicateOnce bool
	missOnce      bool
	createCalls   int
}

func newStubUserRepository(users ...User) *stubUserRepository {
	byExternal := make(map[string]User, len(users))
	for _, u := range users {
		byExternal[u.ExternalID] = u
	}
	return &stubUserRepository{users: byExternal}
}

func (s *stubUserRepository) CreateUser(ctx context.Context, user User) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createCalls++
	if s.duplicateOnce {
		s.duplicateOnce = false
		return User{}, persistence.ErrDuplicate
	}
	if _, exists := s.users[user.ExternalID]; exists {
		return User{}, persistence.ErrDuplicate
	}
	s.users[user.ExternalID] = user
	return user, nil
}

func (s *stubUserRepository) GetUserByExternalID(ctx context.Context, externalID string) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.missOnce {
		s.missOnce = false
		return User{}, persistence.ErrNotFound
	}
	if u, ok := s.users[externalID]; ok {
		return u, nil
	}
	return User{}, persistence.ErrNotFound
}

type stubIdentityRegistrar struct {
	user User
	err  error
}

func (s *stubIdentityRegistrar) Register(ctx context.Context, identity Identity) (User, error) {
	if s.err != nil {
		return User{}, s.err
	}
	if s.user.ExternalID == "" {
		return User{ID: "user-1", Name: "Stub User", ExternalID: identity.ExternalID}, nil
	}
	return s.user, nil
}

func timePtr(t time.Time) *time.Time { return &t }
