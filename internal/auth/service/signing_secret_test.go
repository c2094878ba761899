package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"
)

// localKeeperURI uses the in-process localsecrets driver, no external KMS needed.
const localKeeperURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

func TestResolveSigningSecretWithoutKMS(t *testing.T) {
	secret, err := ResolveSigningSecret(context.Background(), "plain-signing-secret", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("plain-signing-secret"), secret)
}

func TestResolveSigningSecretWithKMS(t *testing.T) {
	ctx := context.Background()

	// Encrypt a plaintext secret through the same keeper the resolver will use
	keeper, err := secrets.OpenKeeper(ctx, localKeeperURI)
	require.NoError(t, err)
	defer keeper.Close()

	ciphertext, err := keeper.Encrypt(ctx, []byte("decrypted-signing-secret"))
	require.NoError(t, err)

	encoded := base64.StdEncoding.EncodeToString(ciphertext)

	secret, err := ResolveSigningSecret(ctx, encoded, localKeeperURI)
	require.NoError(t, err)
	assert.Equal(t, []byte("decrypted-signing-secret"), secret)
}

func TestResolveSigningSecretErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name             string
		configuredSecret string
		kmsKeyURI        string
		wantErrContains  string
	}{
		{
			name:             "unknown keeper scheme",
			configuredSecret: "aGVsbG8=",
			kmsKeyURI:        "unknownkms://key",
			wantErrContains:  "failed to open KMS keeper",
		},
		{
			name:             "invalid base64 ciphertext",
			configuredSecret: "not valid base64!!!",
			kmsKeyURI:        localKeeperURI,
			wantErrContains:  "failed to decode signing secret ciphertext",
		},
		{
			name:             "undecryptable ciphertext",
			configuredSecret: base64.StdEncoding.EncodeToString([]byte("garbage-ciphertext")),
			kmsKeyURI:        localKeeperURI,
			wantErrContains:  "failed to decrypt signing secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret, err := ResolveSigningSecret(ctx, tt.configuredSecret, tt.kmsKeyURI)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErrContains)
			assert.Nil(t, secret)
		})
	}
}
