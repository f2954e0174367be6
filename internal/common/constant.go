// Package common contains shared constants and sentinel errors used across
// Pulse client components.
package common

// Header names attached to outbound API requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// Keys of the client-wide key-value store.
//
// KeyToken and KeyUser form the session and are always written and cleared
// together. KeyPendingEmail marks an account that signed up but has not yet
// confirmed its one-time code.
const (
	KeyToken        = "token"
	KeyUser         = "user"
	KeyPendingEmail = "emailForOtp"
)
