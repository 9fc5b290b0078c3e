package user

import (
	"context"
)

// Repository defines the data access contract for users.
// Implementations map store-level uniqueness violations to ErrUsernameTaken.
type Repository interface {
	// Create inserts a new user and returns the generated ID.
	// Returns ErrUsernameTaken if the username is already present.
	Create(ctx context.Context, user *User) (int64, error)

	// FindByUsername looks a user up for login.
	// Returns ErrUserNotFound when no row matches (case-sensitive).
	FindByUsername(ctx context.Context, username string) (*User, error)

	// ExistsByUsername reports whether a username is already registered.
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
