package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScope(t *testing.T) {
	assert.Equal(t, "user:read", Scope("user", ReadAction))
	assert.Equal(t, "role:write", Scope("role", WriteAction))
}

func TestReadOnlyScopes(t *testing.T) {
	scopes := ReadOnlyScopes()

	assert.ElementsMatch(t, []string{ScopeUserRead, ScopeRoleRead}, scopes)

	// Every read-only scope must be part of the catalog
	for _, scope := range scopes {
		assert.True(t, IsKnownScope(scope), "scope %s should be known", scope)
	}
}

func TestRootScopes(t *testing.T) {
	scopes := RootScopes()

	assert.ElementsMatch(t, []string{
		ScopeUserRead,
		ScopeUserWrite,
		ScopeRoleRead,
		ScopeRoleWrite,
	}, scopes)

	// Root scopes must cover everything the read-only set covers
	for _, scope := range ReadOnlyScopes() {
		assert.Contains(t, scopes, scope)
	}
}

func TestIsKnownScope(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  bool
	}{
		{
			name:  "known user read scope",
			scope: "user:read",
			want:  true,
		},
		{
			name:  "known role write scope",
			scope: "role:write",
			want:  true,
		},
		{
			name:  "unknown resource",
			scope: "secret:read",
			want:  false,
		},
		{
			name:  "unknown action",
			scope: "user:delete",
			want:  false,
		},
		{
			name:  "empty string",
			scope: "",
			want:  false,
		},
		{
			name:  "missing separator",
			scope: "userread",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsKnownScope(tt.scope))
		})
	}
}
