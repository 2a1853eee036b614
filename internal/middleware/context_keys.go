package middleware

import (
	"context"

	"github.com/mkopo/chama_management_app/internal/core/domain"
)

// identityKey is the key used to store the authenticated caller's normalized
// identity in the request context.
const identityKey = contextKey("identity")

// WithIdentity returns a context carrying the normalized caller identity.
func WithIdentity(ctx context.Context, id domain.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentityFromCtx retrieves the normalized caller identity from the
// context. It returns the identity and a boolean indicating if it was found.
func GetIdentityFromCtx(ctx context.Context) (domain.Identity, bool) {
	id, ok := ctx.Value(identityKey).(domain.Identity)
	return id, ok
}
