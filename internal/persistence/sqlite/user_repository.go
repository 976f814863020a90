package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// UserRepository implements persistence.UserRepository using SQLite.
type UserRepository struct {
	pool *ConnectionPool
}

var _ persistence.UserRepository = (*UserRepository)(nil)

// NewUserRepository creates a new SQLite user repository.
func NewUserRepository(pool *ConnectionPool) *UserRepository {
	return &UserRepository{pool: pool}
}

// CreateUser inserts a newly-registered user. A concurrent insert for the
// same external identifier surfaces persistence.ErrDuplicate via the unique
// index, which callers recover as a lookup.
func (r *UserRepository) CreateUser(ctx context.Context, user persistence.User) error {
	_, err := r.pool.db.ExecContext(ctx,
		`INSERT INTO users (id, name, external_id) VALUES (?, ?, ?)`,
		user.ID, user.Name, user.ExternalID,
	)
	return mapError(err)
}

// GetUserByExternalID retrieves a user by the identity provider's subject
// identifier.
func (r *UserRepository) GetUserByExternalID(ctx context.Context, externalID string) (persistence.User, error) {
	var user persistence.User
	err := r.pool.db.QueryRowContext(ctx,
		`SELECT id, name, external_id FROM users WHERE external_id = ?`, externalID,
	).Scan(&user.ID, &user.Name, &user.ExternalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return persistence.User{}, persistence.ErrNotFound
		}
		return persistence.User{}, mapError(err)
	}
	return user, nil
}
