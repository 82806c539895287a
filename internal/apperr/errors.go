// Package apperr defines the sentinel errors services return. Handlers map
// them to HTTP statuses; raw store errors never reach callers.
package apperr

import "errors"

var (
	// common
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("internal error")

	// auth
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid access token")
	ErrTokenExpired       = errors.New("access token expired")
	ErrForbidden          = errors.New("forbidden")

	// users
	ErrUsernameTaken    = errors.New("username already exists")
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrInvalidRole      = errors.New("invalid role")
	ErrSelfModification = errors.New("cannot modify own account")
	ErrMissingFields    = errors.New("all fields are required")

	// messages
	ErrEmptyContent   = errors.New("message content cannot be empty")
	ErrContentTooLong = errors.New("message content cannot exceed 1000 characters")

	// documents
	ErrInvalidFilename = errors.New("invalid filename")
)
