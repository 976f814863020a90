package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mathomas/bookit-api/internal/persistence"
)

// UserRepository captures the persistence operations needed by the user
// service.
type UserRepository interface {
	CreateUser(ctx context.Context, user User) (User, error)
	GetUserByExternalID(ctx context.Context, externalID string) (User, error)
}

// UserService resolves authenticated external subjects to internal user
// records, creating them on first sight.
type UserService struct {
	users       UserRepository
	idGenerator func() string
}

// NewUserService wires dependencies for identity resolution.
func NewUserService(users UserRepository, idGenerator func() string) *UserService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	return &UserService{users: users, idGenerator: idGenerator}
}

// Register looks up the user for the supplied identity, creating one from
// the identity's name parts when the subject has not been seen before.
//
// An existing user is returned unchanged; name parts from the current
// request do not refresh it. When two requests race on first-time
// registration, the storage uniqueness constraint rejects the second insert
// and the loser recovers by re-reading.
func (s *UserService) Register(ctx context.Context, identity Identity) (User, error) {
	if s == nil || s.users == nil {
		return User{}, fmt.Errorf("user repository not configured")
	}

	existing, err := s.users.GetUserByExternalID(ctx, identity.ExternalID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, persistence.ErrNotFound) {
		return User{}, err
	}

	user := User{
		ID:         s.idGenerator(),
		Name:       displayName(identity),
		ExternalID: identity.ExternalID,
	}

	created, err := s.users.CreateUser(ctx, user)
	if err == nil {
		return created, nil
	}
	if errors.Is(err, persistence.ErrDuplicate) {
		return s.users.GetUserByExternalID(ctx, identity.ExternalID)
	}
	return User{}, err
}

func displayName(identity Identity) string {
	return strings.TrimSpace(identity.GivenName + " " + identity.FamilyName)
}
