package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"foodloop/internal/domain"
	"foodloop/internal/repository"
)

const createChatTable = `
CREATE TABLE IF NOT EXISTS chat (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user TEXT NOT NULL,
	message TEXT NOT NULL,
	timestamp TEXT NOT NULL
);
`

type ChatRepository struct {
	db *sql.DB
}

func NewChatRepository(db *sql.DB) repository.ChatRepository {
	return &ChatRepository{db: db}
}

func (r *ChatRepository) Init(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, createChatTable); err != nil {
		return fmt.Errorf("create chat table: %w", err)
	}
	return nil
}

func (r *ChatRepository) Append(ctx context.Context, msg *domain.ChatMessage) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
INSERT INTO chat (user, message, timestamp)
VALUES (?, ?, ?)`,
		msg.User,
		msg.Message,
		msg.Timestamp,
	)
	if err != nil {
		return 0, fmt.Errorf("insert message: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("message last insert id: %w", err)
	}
	msg.ID = id
	return id, nil
}

func (r *ChatRepository) Recent(ctx context.Context, limit int) ([]domain.ChatMessage, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, user, message, timestamp
FROM chat
ORDER BY id DESC
LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query chat: %w", err)
	}
	defer rows.Close()

	var msgs []domain.ChatMessage
	for rows.Next() {
		var msg domain.ChatMessage
		if err := rows.Scan(&msg.ID, &msg.User, &msg.Message, &msg.Timestamp); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msgs = append(msgs, msg)
	}

	return msgs, rows.Err()
}
