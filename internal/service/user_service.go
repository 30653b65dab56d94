package service

import (
	"context"
	"errors"

	"foodloop/internal/domain"
	"foodloop/internal/repository"
)

var (
	// ErrInvalidCredentials indicates that provided login credentials are
	// incorrect. Wrong credentials are a normal outcome, not a fault.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUsernameRequired indicates a signup attempt with an empty username.
	ErrUsernameRequired = errors.New("username is required")
)

// UserService describes user signup and login operations.
type UserService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

// Register stores a new user. The password is persisted verbatim; the system
// keeps the original's plaintext credential scheme.
func (s *userService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, ErrUsernameRequired
	}

	user := &domain.User{
		Username: username,
		Password: password,
	}
	if _, err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate returns the matching user, or ErrInvalidCredentials when
// username and password do not match an existing account.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
