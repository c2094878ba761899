package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Claims is the decoded payload of a session token. Scopes are a snapshot of
// the role's capabilities at mint time and are never re-resolved per request:
// role changes take effect only after re-login, in exchange for authorization
// checks that need zero database access.
type Claims struct {
	Subject   string    // Username of the authenticated user
	UserID    uuid.UUID // User identity
	RoleID    uuid.UUID // Role the scopes were snapshotted from
	Scopes    []string  // Granted capability strings
	ExpiresAt time.Time // Hard expiry, no server-side revocation
}

// HasScope reports whether the claims grant the capability string.
func (c *Claims) HasScope(scope string) bool {
	return slices.Contains(c.Scopes, scope)
}
