// Package session carries the authenticated identity through a request's
// context. The identity enters the context exactly once, when the auth
// middleware validates the session token, and disappears with the request;
// there is no process-wide current-user state.
package session

import (
	"context"

	"github.com/preciosa-app/backend/internal/models"
)

// contextKey is unexported so no other package can collide with it.
type contextKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, identity)
}

// IdentityFrom extracts the identity set by the auth middleware.
// The second return is false for unauthenticated contexts.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(contextKey{}).(models.Identity)
	return identity, ok
}
