package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("user already exists")
)

// Service-level errors
var (
	// ErrInvalidCredentials covers both "unknown username" and "wrong
	// password" so a caller cannot enumerate usernames.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
