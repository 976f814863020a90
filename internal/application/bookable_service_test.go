package application

import (
	"context"
	"errors"
	"testing"

	"github.com/mathomas/bookit-api/internal/booking"
)

func newBookableServiceForTest(repo *stubBookingRepository, bookables ...Bookable) (*BookableService, *stubBookingRepository) {
	if repo == nil {
		repo = &stubBookingRepository{}
	}
	if len(bookables) == 0 {
		bookables = []Bookable{testBookable}
	}
	service := NewBookableService(
		&stubLocationCatalog{locations: []Location{testLocation}},
		&stubBookableCatalog{bookables: bookables},
		repo,
	)
	return service, repo
}

func TestBookableService_GetBookable(t *testing.T) {
	t.Parallel()

	service, _ := newBookableServiceForTest(nil)

	got, err := service.GetBookable(context.Background(), testLocation.ID, testBookable.ID)
	if err != nil {
		t.Fatalf("expected bookable, got %v", err)
	}
	if got.ID != testBookable.ID {
		t.Fatalf("expected %q, got %q", testBookable.ID, got.ID)
	}
}

func TestBookableService_GetBookable_UnknownLocation(t *testing.T) {
	t.Parallel()

	service, _ := newBookableServiceForTest(nil)

	_, err := service.GetBookable(context.Background(), "missing", testBookable.ID)
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}

func TestBookableService_GetBookable_WrongLocation(t *testing.T) {
	t.Parallel()

	elsewhere := Bookable{ID: "bookable-9", LocationID: "location-9", Name: "Far Room", Available: true}
	service := NewBookableService(
		&stubLocationCatalog{locations: []Location{testLocation, {ID: "location-9", Name: "Remote", Timezone: "Europe/London"}}},
		&stubBookableCatalog{bookables: []Bookable{elsewhere}},
		&stubBookingRepository{},
	)

	// The bookable exists but belongs to another location.
	_, err := service.GetBookable(context.Background(), testLocation.ID, elsewhere.ID)
	if !errors.Is(err, ErrBookableNotFound) {
		t.Fatalf("expected ErrBookableNotFound, got %v", err)
	}
}

func TestBookableService_ListBookables_NoWindowReportsStoredFlag(t *testing.T) {
	t.Parallel()

	disabled := Bookable{ID: "bookable-2", LocationID: testLocation.ID, Name: "Closed Room", Available: false}
	repo := &stubBookingRepository{
		bookings: []Booking{storedBooking("existing", testOwner, wall(14, 0), wall(15, 0))},
	}
	service, repo := newBookableServiceForTest(repo, testBookable, disabled)

	got, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{})
	if err != nil {
		t.Fatalf("expected listing, got %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 bookables, got %d", len(got))
	}
	if !got[0].Available || got[1].Available {
		t.Fatalf("expected stored flags to pass through, got %+v", got)
	}
	if repo.listCalls != 0 {
		t.Fatalf("expected no booking scan without a window, got %d calls", repo.listCalls)
	}
}

func TestBookableService_ListBookables_WindowDerivesAvailability(t *testing.T) {
	t.Parallel()

	repo := &stubBookingRepository{
		bookings: []Booking{storedBooking("existing", testOwner, wall(14, 0), wall(15, 0))},
	}
	service, _ := newBookableServiceForTest(repo)

	free, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{
		Start: timePtr(wall(13, 0)),
		End:   timePtr(wall(14, 0)),
	})
	if err != nil {
		t.Fatalf("expected listing, got %v", err)
	}
	if len(free) != 1 || !free[0].Available {
		t.Fatalf("expected bookable to be available before the booking, got %+v", free)
	}

	busy, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{
		Start: timePtr(wall(14, 30)),
		End:   timePtr(wall(15, 30)),
	})
	if err != nil {
		t.Fatalf("expected listing, got %v", err)
	}
	if len(busy) != 1 || busy[0].Available {
		t.Fatalf("expected bookable to be unavailable during the booking, got %+v", busy)
	}
}

func TestBookableService_ListBookables_DisabledStaysUnavailable(t *testing.T) {
	t.Parallel()

	disabled := Bookable{ID: "bookable-2", LocationID: testLocation.ID, Name: "Closed Room", Available: false}
	service, _ := newBookableServiceForTest(&stubBookingRepository{}, disabled)

	got, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{
		Start: timePtr(wall(13, 0)),
		End:   timePtr(wall(14, 0)),
	})
	if err != nil {
		t.Fatalf("expected listing, got %v", err)
	}
	if len(got) != 1 || got[0].Available {
		t.Fatalf("expected disabled bookable to stay unavailable, got %+v", got)
	}
}

func TestBookableService_ListBookables_PartialWindow(t *testing.T) {
	t.Parallel()

	service, _ := newBookableServiceForTest(nil)

	if _, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{
		End: timePtr(wall(14, 0)),
	}); !errors.Is(err, ErrStartDateRequired) {
		t.Fatalf("expected ErrStartDateRequired, got %v", err)
	}

	if _, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{
		Start: timePtr(wall(13, 0)),
	}); !errors.Is(err, ErrEndDateRequired) {
		t.Fatalf("expected ErrEndDateRequired, got %v", err)
	}
}

func TestBookableService_ListBookables_InvertedWindow(t *testing.T) {
	t.Parallel()

	service, _ := newBookableServiceForTest(nil)

	_, err := service.ListBookables(context.Background(), testLocation.ID, SearchWindow{
		Start: timePtr(wall(15, 0)),
		End:   timePtr(wall(14, 0)),
	})
	if !errors.Is(err, booking.ErrEndNotAfterStart) {
		t.Fatalf("expected ErrEndNotAfterStart, got %v", err)
	}
}

func TestBookableService_ListBookables_UnknownLocation(t *testing.T) {
	t.Parallel()

	service, _ := newBookableServiceForTest(nil)

	_, err := service.ListBookables(context.Background(), "missing", SearchWindow{})
	if !errors.Is(err, ErrLocationNotFound) {
		t.Fatalf("expected ErrLocationNotFound, got %v", err)
	}
}
