package service

import (
	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/auth/internal/errors"
)

// dummyPlaintext seeds the throwaway hash used by VerifyDummy.
const dummyPlaintext = "dummy-password-for-timing-equalization"

// passwordService implements PasswordService using Argon2id.
type passwordService struct {
	hasher    *pwdhash.PasswordHasher
	dummyHash string
}

// Hash hashes a plain text password using Argon2id with a per-call salt.
func (p *passwordService) Hash(plainPassword string) (string, error) {
	hashedPassword, err := p.hasher.Hash([]byte(plainPassword))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash password")
	}
	return hashedPassword, nil
}

// Verify performs a constant-time comparison between a plain password and its hash.
func (p *passwordService) Verify(plainPassword string, hashedPassword string) bool {
	ok, err := p.hasher.Verify([]byte(plainPassword), hashedPassword)
	if err != nil {
		return false
	}
	return ok
}

// VerifyDummy verifies against a fixed hash computed at construction time.
// The result is discarded; only the CPU cost matters.
func (p *passwordService) VerifyDummy(plainPassword string) {
	_, _ = p.hasher.Verify([]byte(plainPassword), p.dummyHash)
}

// NewPasswordService creates a PasswordService using Argon2id hashing.
// Uses the Interactive policy, which targets per-request login latency.
func NewPasswordService() PasswordService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyInteractive),
	)
	if err != nil {
		// This should never happen with a valid policy
		panic(err)
	}

	dummyHash, err := hasher.Hash([]byte(dummyPlaintext))
	if err != nil {
		panic(err)
	}

	return &passwordService{
		hasher:    hasher,
		dummyHash: dummyHash,
	}
}
