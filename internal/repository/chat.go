package repository

import (
	"context"

	"foodloop/internal/domain"
)

// ChatRepository defines persistence operations for the append-only chat log.
type ChatRepository interface {
	Init(ctx context.Context) error
	Append(ctx context.Context, msg *domain.ChatMessage) (int64, error)
	// Recent returns at most limit messages, newest first.
	Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}
