// Package client talks to the Pulse HTTP API.
//
// The Client interface lists the calls the client services make: signup,
// login, one-time code verification, order placement and the contact form.
// HTTPClient implements it over JSON with resty.
//
// # Errors
//
// Non-success statuses come back as *APIError, which carries the server's
// "message" field and wraps ErrUnauthorized (401, 403) or ErrUnavailable
// (502, 503, 504). Transport failures and timeouts map to ErrUnavailable;
// a cancelled context is returned as is. Match with errors.Is / errors.As.
package client
