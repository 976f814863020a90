package sqlite

import (
	"context"
	"fmt"
	"time"
)

// timeLayout is the storage format for naive booking date-times. Minute
// precision, lexicographic order matches chronological order.
const timeLayout = "2006-01-02T15:04"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS locations (
		id       TEXT PRIMARY KEY,
		name     TEXT NOT NULL,
		timezone TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookables (
		id          TEXT PRIMARY KEY,
		location_id TEXT NOT NULL REFERENCES locations(id),
		name        TEXT NOT NULL,
		available   INTEGER NOT NULL DEFAULT 1
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		external_id TEXT NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_external_id ON users(external_id)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id          TEXT PRIMARY KEY,
		bookable_id TEXT NOT NULL REFERENCES bookables(id),
		subject     TEXT NOT NULL,
		start_time  TEXT NOT NULL,
		end_time    TEXT NOT NULL,
		user_id     TEXT NOT NULL REFERENCES users(id),
		CHECK (end_time > start_time)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bookings_bookable ON bookings(bookable_id)`,
}

// Migrate creates the schema when it does not exist yet. Statements are
// idempotent, so running Migrate on every startup is safe.
func Migrate(ctx context.Context, pool *ConnectionPool) error {
	for _, stmt := range schema {
		if _, err := pool.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}

func formatNaive(t time.Time) string {
	return t.Format(timeLayout)
}

func parseNaive(value string) (time.Time, error) {
	t, err := time.ParseInLocation(timeLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored time %q: %w", value, err)
	}
	return t, nil
}
