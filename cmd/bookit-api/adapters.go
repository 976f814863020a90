package main

import (
	"context"

	"github.com/mathomas/bookit-api/internal/application"
	"github.com/mathomas/bookit-api/internal/persistence"
	"github.com/mathomas/bookit-api/internal/persistence/sqlite"
)

// The adapters below translate between the persistence records and the
// application models so neither layer imports the other's types.

type locationCatalogAdapter struct {
	repo *sqlite.LocationRepository
}

func newLocationCatalogAdapter(repo *sqlite.LocationRepository) *locationCatalogAdapter {
	return &locationCatalogAdapter{repo: repo}
}

func (a *locationCatalogAdapter) ListLocations(ctx context.Context) ([]application.Location, error) {
	records, err := a.repo.ListLocations(ctx)
	if err != nil {
		return nil, err
	}
	locations := make([]application.Location, len(records))
	for i, rec := range records {
		locations[i] = toApplicationLocation(rec)
	}
	return locations, nil
}

func (a *locationCatalogAdapter) GetLocation(ctx context.Context, id string) (application.Location, error) {
	rec, err := a.repo.GetLocation(ctx, id)
	if err != nil {
		return application.Location{}, err
	}
	return toApplicationLocation(rec), nil
}

type bookableCatalogAdapter struct {
	repo *sqlite.BookableRepository
}

func newBookableCatalogAdapter(repo *sqlite.BookableRepository) *bookableCatalogAdapter {
	return &bookableCatalogAdapter{repo: repo}
}

func (a *bookableCatalogAdapter) ListBookables(ctx context.Context) ([]application.Bookable, error) {
	records, err := a.repo.ListBookables(ctx)
	if err != nil {
		return nil, err
	}
	return toApplicationBookables(records), nil
}

func (a *bookableCatalogAdapter) ListBookablesForLocation(ctx context.Context, locationID string) ([]application.Bookable, error) {
	records, err := a.repo.ListBookablesForLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return toApplicationBookables(records), nil
}

func (a *bookableCatalogAdapter) GetBookable(ctx context.Context, id string) (application.Bookable, error) {
	rec, err := a.repo.GetBookable(ctx, id)
	if err != nil {
		return application.Bookable{}, err
	}
	return toApplicationBookable(rec), nil
}

type bookingRepositoryAdapter struct {
	repo *sqlite.BookingRepository
}

func newBookingRepositoryAdapter(repo *sqlite.BookingRepository) *bookingRepositoryAdapter {
	return &bookingRepositoryAdapter{repo: repo}
}

func (a *bookingRepositoryAdapter) CreateBooking(ctx context.Context, b application.Booking) error {
	return a.repo.CreateBooking(ctx, toPersistenceBooking(b))
}

func (a *bookingRepositoryAdapter) GetBooking(ctx context.Context, id string) (application.Booking, error) {
	rec, err := a.repo.GetBooking(ctx, id)
	if err != nil {
		return application.Booking{}, err
	}
	return toApplicationBooking(rec), nil
}

func (a *bookingRepositoryAdapter) ListBookings(ctx context.Context) ([]application.Booking, error) {
	records, err := a.repo.ListBookings(ctx)
	if err != nil {
		return nil, err
	}
	return toApplicationBookings(records), nil
}

func (a *bookingRepositoryAdapter) ListBookingsForBookable(ctx context.Context, bookableID string) ([]application.Booking, error) {
	records, err := a.repo.ListBookingsForBookable(ctx, bookableID)
	if err != nil {
		return nil, err
	}
	return toApplicationBookings(records), nil
}

func (a *bookingRepositoryAdapter) DeleteBooking(ctx context.Context, id string) error {
	return a.repo.DeleteBooking(ctx, id)
}

type userRepositoryAdapter struct {
	repo *sqlite.UserRepository
}

func newUserRepositoryAdapter(repo *sqlite.UserRepository) *userRepositoryAdapter {
	return &userRepositoryAdapter{repo: repo}
}

func (a *userRepositoryAdapter) CreateUser(ctx context.Context, user application.User) (application.User, error) {
	rec := persistence.User{ID: user.ID, Name: user.Name, ExternalID: user.ExternalID}
	if err := a.repo.CreateUser(ctx, rec); err != nil {
		return application.User{}, err
	}
	return user, nil
}

func (a *userRepositoryAdapter) GetUserByExternalID(ctx context.Context, externalID string) (application.User, error) {
	rec, err := a.repo.GetUserByExternalID(ctx, externalID)
	if err != nil {
		return application.User{}, err
	}
	return application.User{ID: rec.ID, Name: rec.Name, ExternalID: rec.ExternalID}, nil
}

func toApplicationLocation(rec persistence.Location) application.Location {
	return application.Location{ID: rec.ID, Name: rec.Name, Timezone: rec.Timezone}
}

func toApplicationBookable(rec persistence.Bookable) application.Bookable {
	return application.Bookable{
		ID:         rec.ID,
		LocationID: rec.LocationID,
		Name:       rec.Name,
		Available:  rec.Available,
	}
}

func toApplicationBookables(records []persistence.Bookable) []application.Bookable {
	out := make([]application.Bookable, len(records))
	for i, rec := range records {
		out[i] = toApplicationBookable(rec)
	}
	return out
}

func toApplicationBooking(rec persistence.Booking) application.Booking {
	return application.Booking{
		ID:         rec.ID,
		BookableID: rec.BookableID,
		Subject:    rec.Subject,
		Start:      rec.Start,
		End:        rec.End,
		User: application.User{
			ID:         rec.User.ID,
			Name:       rec.User.Name,
			ExternalID: rec.User.ExternalID,
		},
	}
}

func toApplicationBookings(records []persistence.Booking) []application.Booking {
	out := make([]application.Booking, len(records))
	for i, rec := range records {
		out[i] = toApplicationBooking(rec)
	}
	return out
}

func toPersistenceBooking(b application.Booking) persistence.Booking {
	return persistence.Booking{
		ID:         b.ID,
		BookableID: b.BookableID,
		Subject:    b.Subject,
		Start:      b.Start,
		End:        b.End,
		User: persistence.User{
			ID:         b.User.ID,
			Name:       b.User.Name,
			ExternalID: b.User.ExternalID,
		},
	}
}
