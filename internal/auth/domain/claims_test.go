package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestClaimsHasScope(t *testing.T) {
	claims := &Claims{
		Subject:   "alice",
		UserID:    uuid.Must(uuid.NewV7()),
		RoleID:    uuid.Must(uuid.NewV7()),
		Scopes:    []string{ScopeUserRead, ScopeRoleRead},
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	tests := []struct {
		name  string
		scope string
		want  bool
	}{
		{
			name:  "granted scope",
			scope: ScopeUserRead,
			want:  true,
		},
		{
			name:  "missing scope",
			scope: ScopeUserWrite,
			want:  false,
		},
		{
			name:  "empty scope",
			scope: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, claims.HasScope(tt.scope))
		})
	}
}

func TestClaimsHasScopeEmptyScopes(t *testing.T) {
	claims := &Claims{Scopes: nil}
	assert.False(t, claims.HasScope(ScopeUserRead))
}
