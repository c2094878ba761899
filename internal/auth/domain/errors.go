package domain

import (
	"github.com/allisson/auth/internal/errors"
)

// Authentication and authorization errors.
var (
	// ErrInvalidCredentials indicates the username/password pair did not match.
	// The same error is returned whether the user is unknown or the password is
	// wrong, so responses do not reveal which check failed.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "username or password incorrect")

	// ErrInvalidToken indicates a token that is malformed, tampered with, or
	// signed with the wrong key.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid token")

	// ErrExpiredToken indicates a structurally valid token whose expiry has
	// passed. Distinct from ErrInvalidToken: the client can recover by logging
	// in again. Still maps to 401.
	ErrExpiredToken = errors.Wrap(errors.ErrUnauthorized, "token expired")

	// ErrInsufficientScope indicates a valid identity that lacks a required
	// capability.
	ErrInsufficientScope = errors.Wrap(errors.ErrForbidden, "not enough permissions")

	// ErrRoleIntegrity indicates a user references a role that no longer
	// exists. This is a data-integrity violation the caller could not have
	// caused, so it deliberately does not wrap ErrNotFound and surfaces as an
	// internal server error.
	ErrRoleIntegrity = errors.New("user references a role that does not exist")
)
