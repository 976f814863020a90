package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// BookableRepository implements persistence.BookableRepository using SQLite.
type BookableRepository struct {
	pool *ConnectionPool
}

var _ persistence.BookableRepository = (*BookableRepository)(nil)

// NewBookableRepository creates a new SQLite bookable repository.
func NewBookableRepository(pool *ConnectionPool) *BookableRepository {
	return &BookableRepository{pool: pool}
}

// CreateBookable inserts a bookable. Bookables are seeded at startup; the
// service itself never creates them.
func (r *BookableRepository) CreateBookable(ctx context.Context, bookable persistence.Bookable) error {
	_, err := r.pool.db.ExecContext(ctx,
		`INSERT INTO bookables (id, location_id, name, available) VALUES (?, ?, ?, ?)`,
		bookable.ID, bookable.LocationID, bookable.Name, boolToInt(bookable.Available),
	)
	return mapError(err)
}

// ListBookables returns every bookable ordered by name.
func (r *BookableRepository) ListBookables(ctx context.Context) ([]persistence.Bookable, error) {
	return r.queryBookables(ctx,
		`SELECT id, location_id, name, available FROM bookables ORDER BY name, id`,
	)
}

// ListBookablesForLocation returns the bookables belonging to a location,
// ordered by name. The ordering here is the listing order exposed to clients.
func (r *BookableRepository) ListBookablesForLocation(ctx context.Context, locationID string) ([]persistence.Bookable, error) {
	return r.queryBookables(ctx,
		`SELECT id, location_id, name, available FROM bookables WHERE location_id = ? ORDER BY name, id`,
		locationID,
	)
}

// GetBookable retrieves a bookable by ID.
func (r *BookableRepository) GetBookable(ctx context.Context, id string) (persistence.Bookable, error) {
	var (
		b         persistence.Bookable
		available int
	)
	err := r.pool.db.QueryRowContext(ctx,
		`SELECT id, location_id, name, available FROM bookables WHERE id = ?`, id,
	).Scan(&b.ID, &b.LocationID, &b.Name, &available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Bookable{}, persistence.ErrNotFound
		}
		return persistence.Bookable{}, mapError(err)
	}
	b.Available = available != 0
	return b, nil
}

func (r *BookableRepository) queryBookables(ctx context.Context, query string, args ...any) ([]persistence.Bookable, error) {
	rows, err := r.pool.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookables []persistence.Bookable
	for rows.Next() {
		var (
			b         persistence.Bookable
			available int
		)
		if err := rows.Scan(&b.ID, &b.LocationID, &b.Name, &available); err != nil {
			return nil, mapError(err)
		}
		b.Available = available != 0
		bookables = append(bookables, b)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return bookables, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
