package repositories

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a user by ID, or apperrors.ErrNotFound.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByUsername retrieves a user by username, or apperrors.ErrNotFound.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CountActiveUsers returns the number of users marked active.
	CountActiveUsers(ctx context.Context) (int, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser inserts a new user and returns its identifier.
	SaveUser(ctx context.Context, user domain.User) (int64, error)
}

// UserRepositoryFacade combines all user repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
