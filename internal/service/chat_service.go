package service

import (
	"context"
	"time"

	"foodloop/internal/domain"
	"foodloop/internal/repository"
)

const timestampLayout = "2006-01-02 15:04:05"

// ChatService is the append-only message board shared by all users.
type ChatService interface {
	Send(ctx context.Context, user, message string) (*domain.ChatMessage, error)
	Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error)
}

type chatService struct {
	messages repository.ChatRepository
	now      func() time.Time
}

func NewChatService(messages repository.ChatRepository) ChatService {
	return &chatService{
		messages: messages,
		now:      time.Now,
	}
}

// Send appends a message stamped with the local capture time. Message
// content is not validated; empty messages are allowed.
func (s *chatService) Send(ctx context.Context, user, message string) (*domain.ChatMessage, error) {
	msg := &domain.ChatMessage{
		User:      user,
		Message:   message,
		Timestamp: s.now().Format(timestampLayout),
	}
	if _, err := s.messages.Append(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// Recent returns the newest limit messages in chronological display order.
// The store hands back newest first; the reversal to oldest first is part of
// the contract, not a presentation nicety.
func (s *chatService) Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	msgs, err := s.messages.Recent(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
