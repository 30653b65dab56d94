package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodloop/internal/domain"
)

type mockChatRepo struct {
	msgs []domain.ChatMessage
}

func (m *mockChatRepo) Init(ctx context.Context) error { return nil }

func (m *mockChatRepo) Append(ctx context.Context, msg *domain.ChatMessage) (int64, error) {
	msg.ID = int64(len(m.msgs) + 1)
	m.msgs = append(m.msgs, *msg)
	return msg.ID, nil
}

func (m *mockChatRepo) Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for i := len(m.msgs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.msgs[i])
	}
	return out, nil
}

func TestSendCapturesTimestamp(t *testing.T) {
	repo := &mockChatRepo{}
	svc := &chatService{
		messages: repo,
		now:      func() time.Time { return time.Date(2024, 12, 1, 9, 5, 42, 0, time.Local) },
	}

	msg, err := svc.Send(context.Background(), "alice", "hello")
	require.NoError(t, err)
	assert.Equal(t, "2024-12-01 09:05:42", msg.Timestamp)
	assert.Equal(t, "alice", msg.User)
	require.Len(t, repo.msgs, 1)
}

func TestSendAllowsEmptyMessage(t *testing.T) {
	repo := &mockChatRepo{}
	svc := NewChatService(repo)

	_, err := svc.Send(context.Background(), "alice", "")
	require.NoError(t, err)
	require.Len(t, repo.msgs, 1)
	assert.Equal(t, "", repo.msgs[0].Message)
}

func TestRecentReturnsChronologicalOrder(t *testing.T) {
	repo := &mockChatRepo{}
	svc := NewChatService(repo)
	ctx := context.Background()

	for i := 1; i <= 12; i++ {
		_, err := svc.Send(ctx, "alice", fmt.Sprintf("m%d", i))
		require.NoError(t, err)
	}

	msgs, err := svc.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 10)

	// oldest of the kept ten first
	for i, msg := range msgs {
		assert.Equal(t, fmt.Sprintf("m%d", i+3), msg.Message)
	}
}

func TestRecentEmpty(t *testing.T) {
	svc := NewChatService(&mockChatRepo{})

	msgs, err := svc.Recent(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
