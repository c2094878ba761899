// Package service provides technical services for authentication operations.
//
// This package implements password hashing and verification and the signed
// session token codec used by the login and authorization flows.
package service

import (
	authDomain "github.com/allisson/auth/internal/auth/domain"
)

// PasswordService defines operations for password hashing and verification.
// Implementations must use a deliberately slow, salted hashing algorithm
// (e.g., argon2, bcrypt); the cost is a security contract, not a bug.
type PasswordService interface {
	// Hash hashes a plain text password. A fresh salt is generated per call
	// and embedded in the returned string so it travels with the stored value.
	Hash(plainPassword string) (hashedPassword string, err error)

	// Verify compares a plain text password against a stored hash using a
	// constant-time comparison. Returns false on mismatch; a wrong password is
	// never an error.
	Verify(plainPassword string, hashedPassword string) bool

	// VerifyDummy burns the same CPU cost as Verify against a throwaway hash.
	// Called on the unknown-user login path so response timing does not reveal
	// whether the username or the password was wrong.
	VerifyDummy(plainPassword string)
}

// TokenCodec mints and parses signed, time-bounded bearer tokens. Tokens are
// self-contained: verification needs only the configured secret, no lookup.
type TokenCodec interface {
	// Mint serializes and signs the claims, including the expiry carried in
	// claims.ExpiresAt. The output is a compact URL-safe JWT.
	Mint(claims *authDomain.Claims) (string, error)

	// Parse verifies the signature and structure of a token and returns its
	// claims. Returns ErrExpiredToken when the expiry is in the past and
	// ErrInvalidToken for any signature, structure, or decoding failure.
	Parse(token string) (*authDomain.Claims, error)
}
