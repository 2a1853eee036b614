package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkopo/chama_management_app/internal/apperrors"
	"github.com/mkopo/chama_management_app/internal/core/domain"
	portsrepo "github.com/mkopo/chama_management_app/internal/core/ports/repositories"
	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/dto"
	"github.com/mkopo/chama_management_app/internal/middleware"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// userService implements user registration and credential verification.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// Register creates a new user with a bcrypt-hashed password. Usernames are
// unique; registering an existing one fails with apperrors.ErrDuplicate.
func (s *userService) Register(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username %q is taken", apperrors.ErrDuplicate, req.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = domain.RoleMember
	}

	user := domain.User{
		Username:     req.Username,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	}

	id, err := s.userRepo.SaveUser(ctx, user)
	if err != nil {
		logger.Error("Failed to register user", slog.String("username", req.Username), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	user.ID = id
	logger.Info("User registered", slog.Int64("id", id), slog.String("username", user.Username), slog.String("role", user.Role))
	return &user, nil
}

// Authenticate verifies credentials and returns the user on success. Lookup
// failures and password mismatches report the same error so callers cannot
// enumerate usernames.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrInvalidCredentials)
	}
	return user, nil
}

// GetOrCreateOAuthUser returns the user for an externally verified identity,
// creating a member account on first sign-in. The account gets no password
// hash, so it can never pass Authenticate.
func (s *userService) GetOrCreateOAuthUser(ctx context.Context, username string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user %s: %w", username, err)
	}

	created := domain.User{
		Username: username,
		Role:     domain.RoleMember,
		Active:   true,
	}
	id, err := s.userRepo.SaveUser(ctx, created)
	if err != nil {
		logger.Error("Failed to create oauth user", slog.String("username", username), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	created.ID = id
	logger.Info("User created via oauth sign-in", slog.Int64("id", id), slog.String("username", username))
	return &created, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %d: %w", userID, err)
	}
	return user, nil
}
