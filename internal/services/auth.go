package service

import (
	"context"

	"github.com/shopease/shopease/internal/api/middleware"
	"github.com/shopease/shopease/internal/models"
)

// AuthProvider resolves the identity of the current session. A false return
// means the session is unauthenticated and cart state belongs to the guest
// identity.
type AuthProvider interface {
	CurrentIdentity(ctx context.Context) (string, bool)
}

// contextAuthProvider reads the claims the auth middleware stored in the
// request context when a valid session token was presented.
type contextAuthProvider struct{}

func NewContextAuthProvider() AuthProvider {
	return contextAuthProvider{}
}

func (contextAuthProvider) CurrentIdentity(ctx context.Context) (string, bool) {

	claims, ok := ctx.Value(middleware.UserContextKey).(*models.Claims)
	if !ok || claims == nil || claims.Username == "" {
		return "", false
	}

	return claims.Username, true
}
