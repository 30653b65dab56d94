package repository

import (
	"context"

	"foodloop/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	// GetByCredentials returns the user matching both username and password
	// exactly, or nil when no such user exists. A miss is not an error.
	GetByCredentials(ctx context.Context, username, password string) (*domain.User, error)
}
