package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// BookingRepository implements persistence.BookingRepository using SQLite.
// Bookings are joined with their owning user on every read so callers never
// need a second lookup.
type BookingRepository struct {
	pool *ConnectionPool
}

var _ persistence.BookingRepository = (*BookingRepository)(nil)

// NewBookingRepository creates a new SQLite booking repository.
func NewBookingRepository(pool *ConnectionPool) *BookingRepository {
	return &BookingRepository{pool: pool}
}

const bookingColumns = `
	b.id, b.bookable_id, b.subject, b.start_time, b.end_time,
	u.id, u.name, u.external_id
`

// CreateBooking inserts a new booking within a transaction.
func (r *BookingRepository) CreateBooking(ctx context.Context, booking persistence.Booking) error {
	return r.pool.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO bookings (id, bookable_id, subject, start_time, end_time, user_id)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			booking.ID,
			booking.BookableID,
			booking.Subject,
			formatNaive(booking.Start),
			formatNaive(booking.End),
			booking.User.ID,
		)
		return mapError(err)
	})
}

// GetBooking retrieves a booking with its owner by ID.
func (r *BookingRepository) GetBooking(ctx context.Context, id string) (persistence.Booking, error) {
	row := r.pool.db.QueryRowContext(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b JOIN users u ON u.id = b.user_id
		 WHERE b.id = ?`, id,
	)

	booking, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.Booking{}, persistence.ErrNotFound
		}
		return persistence.Booking{}, mapError(err)
	}
	return booking, nil
}

// ListBookings returns every booking ordered by start time. A single query
// yields the snapshot-consistent set the conflict checks require.
func (r *BookingRepository) ListBookings(ctx context.Context) ([]persistence.Booking, error) {
	return r.queryBookings(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b JOIN users u ON u.id = b.user_id
		 ORDER BY b.start_time, b.id`,
	)
}

// ListBookingsForBookable returns the bookings claiming one bookable, ordered
// by start time.
func (r *BookingRepository) ListBookingsForBookable(ctx context.Context, bookableID string) ([]persistence.Booking, error) {
	return r.queryBookings(ctx,
		`SELECT `+bookingColumns+`
		 FROM bookings b JOIN users u ON u.id = b.user_id
		 WHERE b.bookable_id = ?
		 ORDER BY b.start_time, b.id`,
		bookableID,
	)
}

// DeleteBooking removes a booking. Deleting an unknown ID is a no-op.
func (r *BookingRepository) DeleteBooking(ctx context.Context, id string) error {
	_, err := r.pool.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	return mapError(err)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]persistence.Booking, error) {
	rows, err := r.pool.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var bookings []persistence.Booking
	for rows.Next() {
		booking, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, mapError(err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}

	return bookings, nil
}

func scanBooking(scan func(dest ...any) error) (persistence.Booking, error) {
	var (
		b          persistence.Booking
		start, end string
	)
	if err := scan(
		&b.ID, &b.BookableID, &b.Subject, &start, &end,
		&b.User.ID, &b.User.Name, &b.User.ExternalID,
	); err != nil {
		return persistence.Booking{}, err
	}

	var err error
	if b.Start, err = parseNaive(start); err != nil {
		return persistence.Booking{}, err
	}
	if b.End, err = parseNaive(end); err != nil {
		return persistence.Booking{}, err
	}

	return b, nil
}
