package repository

import "errors"

// Shared persistence errors surfaced to callers via errors.Is.
var (
	ErrDuplicateUsername = errors.New("username already exists")
	ErrItemNotFound      = errors.New("item not found")
)
