package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// LocationRepository implements persistence.LocationRepository using SQLite.
type LocationRepository struct {
	pool *ConnectionPool
}

var _ persistence.LocationRepository = (*LocationRepository)(nil)

// NewLocationRepository creates a new SQLite location repository.
func NewLocationRepository(pool *ConnectionPool) *LocationRepository {
	return &LocationRepository{pool: pool}
}

// CreateLocation inserts a location. Locations are seeded at startup; the
// service itself never creates them.
func (r *LocationRepository) CreateLocation(ctx context.Context, location persistence.Location) error {
	_, err := r.pool.db.ExecContext(ctx,
		`INSERT INTO locations (id, name, timezone) VALUES (?, ?, ?)`,
		location.ID, location.Name, location.Timezone,
	)
	return mapError(err)
}

// ListLocations returns all locations ordered by name.
func (r *LocationRepository) ListLocations(ctx context.Context) ([]persistence.Location, error) {
	rows, err := r.pool.db.QueryContext(ctx,
		`SELECT id, name, timezone FROM locations ORDER BY name, id`,
	)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var locations []persistence.Location
	for rows.Next() {
		var loc persistence.Location
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Timezone); err != nil {
			return nil, mapError(err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return locations, nil
}

// GetLocation retrieves a location by ID.
func (r *LocationRepository) GetLocation(ctx context.Context, id string) (persistence.Location, error) {
	var loc persistence.Location
	err := r.pool.db.QueryRowContext(ctx,
		`SELECT id, name, timezone FROM locations WHERE id = ?`, id,
	).Scan(&loc.ID, &loc.Name, &loc.Timezone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Location{}, persistence.ErrNotFound
		}
		return persistence.Location{}, mapError(err)
	}
	return loc, nil
}
