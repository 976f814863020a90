package persistence

import "errors"

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("persistence: not found")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, such as users.external_id.
	ErrDuplicate = errors.New("persistence: duplicate record")
	// ErrConstraintViolation is returned when a CHECK constraint rejects a
	// write, such as a booking whose end does not follow its start.
	ErrConstraintViolation = errors.New("persistence: constraint violation")
	// ErrForeignKeyViolation is returned when a write references a missing
	// parent record.
	ErrForeignKeyViolation = errors.New("persistence: foreign key violation")
)
