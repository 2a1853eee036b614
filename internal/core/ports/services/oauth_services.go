package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// OAuthSvcFacade defines the Google sign-in operations.
type OAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateIDToken verifies a Google ID token and returns its payload.
	ValidateIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
