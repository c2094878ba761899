// Package http provides HTTP middleware and handlers for authentication.
package http

import (
	"context"

	authDomain "github.com/allisson/auth/internal/auth/domain"
)

// claimsKey is a context key type for storing authenticated claims.
type claimsKey struct{}

// WithClaims stores authenticated token claims in the context.
// Called by the authorization middleware after a successful scope check.
func WithClaims(ctx context.Context, claims *authDomain.Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// GetClaims retrieves authenticated token claims from the context.
// Returns (claims, true) if present, or (nil, false) if no claims were set.
// Handlers use this to resolve the acting identity for audit stamping and
// the /me style endpoints.
func GetClaims(ctx context.Context) (*authDomain.Claims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(*authDomain.Claims)
	return claims, ok
}
