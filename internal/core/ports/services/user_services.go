package services

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
	"github.com/mkopo/chama_management_app/internal/dto"
)

// UserSvcFacade defines user account and authentication operations.
type UserSvcFacade interface {
	// Register creates a new user with a hashed password.
	Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GetOrCreateOAuthUser returns the user for an externally verified
	// identity, creating a member account on first sign-in. OAuth accounts
	// have no usable password.
	GetOrCreateOAuthUser(ctx context.Context, username string) (*domain.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID int64) (*domain.User, error)
}
