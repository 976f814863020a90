package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mathomas/bookit-api/internal/application"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var (
	testLocation = application.Location{ID: "location-1", Name: "NYC", Timezone: "America/New_York"}
	testBookable = application.Bookable{ID: "bookable-1", LocationID: "location-1", Name: "Red Room", Available: true}
	testUser     = application.User{ID: "user-1", Name: "Owner", ExternalID: "owner@example.com"}
	testIdentity = application.Identity{ExternalID: "owner@example.com", GivenName: "Owner", FamilyName: "User"}
)

func testBooking() application.Booking {
	return application.Booking{
		ID:         "booking-1",
		BookableID: testBookable.ID,
		Subject:    "standup",
		Start:      time.Date(2024, time.January, 2, 14, 0, 0, 0, time.UTC),
		End:        time.Date(2024, time.January, 2, 15, 0, 0, 0, time.UTC),
		User:       testUser,
	}
}

type stubLocationService struct {
	locations []application.Location
	err       error
}

func (s *stubLocationService) ListLocations(ctx context.Context) ([]application.Location, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.locations, nil
}

func (s *stubLocationService) GetLocation(ctx context.Context, id string) (application.Location, error) {
	if s.err != nil {
		return application.Location{}, s.err
	}
	for _, l := range s.locations {
		if l.ID == id {
			return l, nil
		}
	}
	return application.Location{}, application.ErrLocationNotFound
}

type stubBookableService struct {
	bookables   []application.Bookable
	err         error
	gotWindow   application.SearchWindow
	gotLocation string
}

func (s *stubBookableService) ListBookables(ctx context.Context, locationID string, window application.SearchWindow) ([]application.Bookable, error) {
	s.gotLocation = locationID
	s.gotWindow = window
	if s.err != nil {
		return nil, s.err
	}
	return s.bookables, nil
}

func (s *stubBookableService) GetBookable(ctx context.Context, locationID, bookableID string) (application.Bookable, error) {
	if s.err != nil {
		return application.Bookable{}, s.err
	}
	for _, b := range s.bookables {
		if b.ID == bookableID && b.LocationID == locationID {
			return b, nil
		}
	}
	return application.Bookable{}, application.ErrBookableNotFound
}

type stubBookingService struct {
	created     application.Booking
	booking     application.Booking
	bookings    []application.Booking
	err         error
	gotParams   application.CreateBookingParams
	gotWindow   application.DateWindow
	gotIdentity application.Identity
	deletedID   string
}

func (s *stubBookingService) CreateBooking(ctx context.Context, params application.CreateBookingParams) (application.Booking, error) {
	s.gotParams = params
	if s.err != nil {
		return application.Booking{}, s.err
	}
	return s.created, nil
}

func (s *stubBookingService) GetBooking(ctx context.Context, identity application.Identity, id string) (application.Booking, error) {
	s.gotIdentity = identity
	if s.err != nil {
		return application.Booking{}, s.err
	}
	if s.booking.ID != id {
		return application.Booking{}, application.ErrBookingNotFound
	}
	return s.booking, nil
}

func (s *stubBookingService) ListBookings(ctx context.Context, identity application.Identity, window application.DateWindow) ([]application.Booking, error) {
	s.gotIdentity = identity
	s.gotWindow = window
	if s.err != nil {
		return nil, s.err
	}
	return s.bookings, nil
}

func (s *stubBookingService) DeleteBooking(ctx context.Context, identity application.Identity, id string) error {
	s.gotIdentity = identity
	s.deletedID = id
	return s.err
}

type testRouter struct {
	router    http.Handler
	locations *stubLocationService
	bookables *stubBookableService
	bookings  *stubBookingService
}

func newTestRouter() *testRouter {
	logger := discardLogger()
	locations := &stubLocationService{locations: []application.Location{testLocation}}
	bookables := &stubBookableService{bookables: []application.Bookable{testBookable}}
	bookings := &stubBookingService{}

	router := NewRouter(RouterConfig{
		Ping:      NewPingHandler(logger),
		Locations: NewLocationHandler(locations, logger),
		Bookables: NewBookableHandler(bookables, logger),
		Bookings:  NewBookingHandler(bookings, logger),
	})

	return &testRouter{router: router, locations: locations, bookables: bookables, bookings: bookings}
}

// do routes a request with the identity already attached, the way the
// middleware would hand it over.
func (tr *testRouter) do(t *testing.T, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	req = req.WithContext(ContextWithIdentity(req.Context(), testIdentity))
	rec := httptest.NewRecorder()
	tr.router.ServeHTTP(rec, req)
	return rec
}
