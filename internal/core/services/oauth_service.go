package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	portssvc "github.com/mkopo/chama_management_app/internal/core/ports/services"
	"github.com/mkopo/chama_management_app/internal/platform/config"
)

var ErrOAuthNotConfigured = errors.New("google client ID is not configured")

// googleOAuthService implements Google sign-in: it exchanges authorization
// codes and verifies the ID tokens Google returns.
type googleOAuthService struct {
	clientID     string
	oauth2Config *oauth2.Config
}

// NewGoogleOAuthService creates a new Google OAuth service from the
// application configuration.
func NewGoogleOAuthService(cfg *config.Config) portssvc.OAuthSvcFacade {
	return &googleOAuthService{
		clientID: cfg.GoogleClientID,
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		},
	}
}

var _ portssvc.OAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCodeForToken exchanges an authorization code for Google tokens.
func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	if s.clientID == "" {
		return nil, ErrOAuthNotConfigured
	}
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}
	return token, nil
}

// ValidateIDToken verifies a Google ID token against the configured client ID.
func (s *googleOAuthService) ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	if s.clientID == "" {
		return nil, ErrOAuthNotConfigured
	}
	payload, err := idtoken.Validate(ctx, idToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return payload, nil
}
