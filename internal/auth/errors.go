package auth

import "errors"

// Authentication outcomes. The HTTP layer may coarsen several of these into a
// single status, but callers can always recover the precise cause with
// errors.Is.
var (
	// ErrUserNotFound is returned when no credential exists for a username.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPassword is returned when the credential exists but the
	// password does not match its hash.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrMissingToken is returned when a protected call carries no bearer token.
	ErrMissingToken = errors.New("missing bearer token")

	// ErrInvalidToken covers malformed, tampered and expired tokens alike.
	ErrInvalidToken = errors.New("invalid token")

	// ErrUnauthorized wraps every Access Guard rejection.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConfiguration marks an unusable signing setup. It is fatal at startup.
	ErrConfiguration = errors.New("auth configuration error")

	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")
)
