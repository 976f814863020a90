package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// LocationCatalog captures the persistence operations needed for locations.
type LocationCatalog interface {
	ListLocations(ctx context.Context) ([]Location, error)
	GetLocation(ctx context.Context, id string) (Location, error)
}

// LocationService exposes the read-only location catalog.
type LocationService struct {
	locations LocationCatalog
}

// NewLocationService wires dependencies for location lookups.
func NewLocationService(locations LocationCatalog) *LocationService {
	return &LocationService{locations: locations}
}

// ListLocations returns every location in catalog order.
func (s *LocationService) ListLocations(ctx context.Context) ([]Location, error) {
	if s == nil || s.locations == nil {
		return nil, fmt.Errorf("location catalog not configured")
	}
	return s.locations.ListLocations(ctx)
}

// GetLocation returns one location by identifier.
func (s *LocationService) GetLocation(ctx context.Context, id string) (Location, error) {
	if s == nil || s.locations == nil {
		return Location{}, fmt.Errorf("location catalog not configured")
	}
	location, err := s.locations.GetLocation(ctx, id)
	if err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return Location{}, ErrLocationNotFound
		}
		return Location{}, err
	}
	return location, nil
}
