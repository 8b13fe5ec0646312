package awscognito

import "errors"

// Failure causes reported by the identity provider and the trust broker.
// Adapters join one of these with the original SDK error, so callers match
// with errors.Is and still see the raw text.
var (
	ErrNotAuthorized    = errors.New("not authorized")
	ErrUserNotFound     = errors.New("user not found")
	ErrUserNotConfirmed = errors.New("user not confirmed")
	ErrCanceled         = errors.New("request canceled")

	// ErrSessionInvalid wraps ErrNotAuthorized: a missing or expired session
	// is an authorization failure.
	ErrSessionInvalid = &sessionError{}

	// registration path
	ErrUsernameExists  = errors.New("username already exists")
	ErrEmailExists     = errors.New("email already exists")
	ErrInvalidPassword = errors.New("password does not meet requirements")
)

type sessionError struct{}

func (e *sessionError) Error() string {
	return "user is not authenticated"
}

func (e *sessionError) Unwrap() error {
	return ErrNotAuthorized
}
