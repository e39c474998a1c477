package domain

import (
	"context"
	"time"
)

// User represents a registered user of the application.
// PasswordHash never leaves the service layer.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// TopAuthor is a reduced view of a user joined with the number of
// recipes they have published.
type TopAuthor struct {
	UserID      string
	Name        string
	Email       string
	CreatedAt   time.Time
	RecipeCount int
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	TopAuthors(ctx context.Context, limit int) ([]TopAuthor, error)
}
