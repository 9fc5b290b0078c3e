package user

import (
	"context"
)

// Service defines the business logic contract for credentials and login.
type Service interface {
	// Register creates a new account.
	// Returns ErrUsernameTaken when the username is already present.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login verifies credentials and issues an access token.
	// Returns ErrInvalidCredentials on any mismatch.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
}
