// Package domain defines authentication and authorization domain models.
// Implements scope-based access control where roles grant capability strings
// of the form "<resource>:<action>" that are embedded in session tokens.
package domain

// Action defines the types of operations that can be performed on a resource.
type Action string

const (
	// ReadAction allows reading resource data.
	ReadAction Action = "read"

	// WriteAction allows creating, updating, or deleting resource data.
	WriteAction Action = "write"
)

// catalogEntry binds a protected resource type to its allowed actions.
type catalogEntry struct {
	resource string
	actions  []Action
}

// scopeCatalog is the static registry of protected resource types and their
// action sets. Adding a protected resource type means extending this table;
// nothing is derived at runtime from model introspection.
var scopeCatalog = []catalogEntry{
	{resource: "user", actions: []Action{ReadAction, WriteAction}},
	{resource: "role", actions: []Action{ReadAction, WriteAction}},
}

// Convenience scope constants for route registration.
const (
	ScopeUserRead  = "user:read"
	ScopeUserWrite = "user:write"
	ScopeRoleRead  = "role:read"
	ScopeRoleWrite = "role:write"
)

// Scope builds the capability string for a resource and action.
func Scope(resource string, action Action) string {
	return resource + ":" + string(action)
}

// ReadOnlyScopes returns one "<resource>:read" capability per registered
// resource type. Used to seed a minimal default role.
func ReadOnlyScopes() []string {
	scopes := make([]string, 0, len(scopeCatalog))
	for _, entry := range scopeCatalog {
		for _, action := range entry.actions {
			if action == ReadAction {
				scopes = append(scopes, Scope(entry.resource, action))
			}
		}
	}
	return scopes
}

// RootScopes returns every capability for every registered resource type.
// Used to seed the superuser role.
func RootScopes() []string {
	var scopes []string
	for _, entry := range scopeCatalog {
		for _, action := range entry.actions {
			scopes = append(scopes, Scope(entry.resource, action))
		}
	}
	return scopes
}

// IsKnownScope reports whether the capability string is part of the catalog
// vocabulary. Role permissions are validated against this at create/update time.
func IsKnownScope(scope string) bool {
	for _, entry := range scopeCatalog {
		for _, action := range entry.actions {
			if Scope(entry.resource, action) == scope {
				return true
			}
		}
	}
	return false
}
