package sqlite

import (
	"context"
	"fmt"

	"github.com/mathomas/bookit-api/internal/persistence"
)

var seedLocations = []persistence.Location{
	{ID: "b1177996-75e2-41da-a3e9-fcdd75d1ab31", Name: "NYC", Timezone: "America/New_York"},
	{ID: "43ec3f7d-348d-427f-8c13-102ca0362a62", Name: "LON", Timezone: "Europe/London"},
}

var seedBookables = []persistence.Bookable{
	{ID: "aab6d676-d3cb-4b9b-b285-6e63058aeda8", LocationID: "b1177996-75e2-41da-a3e9-fcdd75d1ab31", Name: "Red Room", Available: true},
	{ID: "1c824c61-7539-41d7-b723-d4447826ba50", LocationID: "b1177996-75e2-41da-a3e9-fcdd75d1ab31", Name: "Black Room", Available: true},
	{ID: "9b06b5ed-39e4-4e5c-a8c6-8b4bd1fab042", LocationID: "43ec3f7d-348d-427f-8c13-102ca0362a62", Name: "Green Room", Available: true},
}

// Seed inserts the default location and bookable catalog when the locations
// table is empty. The catalog is read-only at runtime, so seeding happens
// once at startup.
func Seed(ctx context.Context, pool *ConnectionPool) error {
	var count int
	if err := pool.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM locations`).Scan(&count); err != nil {
		return fmt.Errorf("failed to inspect location catalog: %w", err)
	}
	if count > 0 {
		return nil
	}

	locations := NewLocationRepository(pool)
	for _, loc := range seedLocations {
		if err := locations.CreateLocation(ctx, loc); err != nil {
			return fmt.Errorf("failed to seed location %s: %w", loc.Name, err)
		}
	}

	bookables := NewBookableRepository(pool)
	for _, b := range seedBookables {
		if err := bookables.CreateBookable(ctx, b); err != nil {
			return fmt.Errorf("failed to seed bookable %s: %w", b.Name, err)
		}
	}

	return nil
}
