package domain

import "errors"

var (
	ErrAgentNotFound    = errors.New("agent not found")
	ErrSecretNotFound   = errors.New("secret not found")
	ErrNotAuthenticated = errors.New("not authenticated")
)

const (
	MessageNetworkError = "Network error"
	MessageGenericError = "An error occurred"

	MessageLoginRequired = "You must be logged in to submit a request."
)

// AuthError is the only error kind surfaced by the remote API boundary.
// Message is either the server-provided error text or one of the generic
// fallbacks; Err keeps the transport cause when there is one.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return MessageGenericError
	}
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}
