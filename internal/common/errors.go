// Package common defines shared constants and sentinel errors used across
// client layers of Pulse. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Validation errors (user input rejected before any network call).
	ErrorValidation = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")

	// ErrIdentityMissing means the one-time code cannot be checked because
	// no pending-verification email is stored.
	ErrIdentityMissing = errors.New("pending verification email missing")
)
