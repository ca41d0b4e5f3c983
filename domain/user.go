package domain

import "context"

// User is a registered account that may own comments.
type User struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

// UserRepository defines the contract for user lookups.
type UserRepository interface {
	// GetByID retrieves a user by their ID.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id int64) (User, error)
}
