// Package errors defines the error vocabulary shared by every module in the
// service. Use cases classify failures against the sentinels below (a missing
// user wraps ErrNotFound, a taken username wraps ErrConflict, a bad credential
// wraps ErrUnauthorized) and the HTTP layer maps each sentinel to a status
// code without inspecting the concrete error.
package errors

import (
	"errors"
	"fmt"
)

// Sentinels. Domain errors wrap exactly one of these so handlers can map
// them with Is.
var (
	// ErrNotFound: the requested resource does not exist. Maps to 404.
	ErrNotFound = errors.New("not found")

	// ErrConflict: the request collides with existing data, such as a
	// duplicate username or a role still assigned to users. Maps to 409.
	ErrConflict = errors.New("conflict")

	// ErrInvalidInput: the request payload fails validation. Maps to 422.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnauthorized: the request carries no valid credential. Covers bad
	// logins and invalid or expired tokens. Maps to 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden: the credential is valid but its scopes do not allow the
	// operation. Maps to 403.
	ErrForbidden = errors.New("forbidden")
)

// New creates an error with the given message. Thin wrapper over the stdlib
// so callers only import this package.
func New(message string) error {
	return errors.New(message)
}

// Wrap adds context to err while keeping the sentinel reachable through the
// error chain. Returns nil when err is nil so call sites can wrap
// unconditionally.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's tree that matches target.
func As(err error, target any) bool {
	return errors.As(err, target)
}
