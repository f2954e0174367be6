package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadResponse  = errors.New("malformed server response")
)

// APIError is a non-success answer from the API. Message is the "message"
// field of the body, when there was one.
type APIError struct {
	StatusCode int
	Message    string
	kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

// Unwrap exposes ErrUnauthorized or ErrUnavailable when the status maps to
// one of them.
func (e *APIError) Unwrap() error {
	return e.kind
}

// UserMessage is the text the server meant for the user.
func (e *APIError) UserMessage() string {
	return e.Message
}
