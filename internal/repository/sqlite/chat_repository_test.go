package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodloop/internal/domain"
)

func TestChatRecentNewestFirst(t *testing.T) {
	repo := NewChatRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	for i := 1; i <= 12; i++ {
		_, err := repo.Append(ctx, &domain.ChatMessage{
			User:      "alice",
			Message:   fmt.Sprintf("m%d", i),
			Timestamp: "2024-12-01 09:00:00",
		})
		require.NoError(t, err)
	}

	msgs, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 10)
	assert.Equal(t, "m12", msgs[0].Message)
	assert.Equal(t, "m3", msgs[9].Message)
}

func TestChatRecentFewerThanLimit(t *testing.T) {
	repo := NewChatRepository(openTestDB(t))
	ctx := context.Background()
	require.NoError(t, repo.Init(ctx))

	_, err := repo.Append(ctx, &domain.ChatMessage{User: "alice", Message: "hi", Timestamp: "2024-12-01 09:00:00"})
	require.NoError(t, err)

	msgs, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "hi", msgs[0].Message)
}
