package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"gocloud.dev/secrets"

	// Register all KMS provider drivers
	_ "gocloud.dev/secrets/awskms"
	_ "gocloud.dev/secrets/azurekeyvault"
	_ "gocloud.dev/secrets/gcpkms"
	_ "gocloud.dev/secrets/hashivault"
	_ "gocloud.dev/secrets/localsecrets"
)

// ResolveSigningSecret returns the JWT signing secret to use at process start.
//
// When kmsKeyURI is empty the configured secret is used as-is. Otherwise the
// configured value is treated as base64 ciphertext and decrypted through the
// KMS keeper identified by the URI, so the plaintext signing secret never has
// to appear in the environment.
//
// Supported URIs: gcpkms://, awskms://, azurekeyvault://, hashivault://, base64key://
func ResolveSigningSecret(ctx context.Context, configuredSecret, kmsKeyURI string) ([]byte, error) {
	if kmsKeyURI == "" {
		return []byte(configuredSecret), nil
	}

	keeper, err := secrets.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return nil, fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer keeper.Close()

	ciphertext, err := base64.StdEncoding.DecodeString(configuredSecret)
	if err != nil {
		return nil, fmt.Errorf("failed to decode signing secret ciphertext: %w", err)
	}

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt signing secret: %w", err)
	}

	return plaintext, nil
}
