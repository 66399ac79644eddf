package sqlite

import (
	"context"
	"fmt"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ChatHistoryStore = (*ChatHistoryRepo)(nil)

// ChatHistoryRepo is the SQLite implementation of the ChatHistoryStore port.
type ChatHistoryRepo struct {
	db *DB
}

// NewChatHistoryRepo creates a new ChatHistoryRepo backed by the given DB.
func NewChatHistoryRepo(db *DB) *ChatHistoryRepo {
	return &ChatHistoryRepo{db: db}
}

// Append stores one message at the end of the user's history.
func (r *ChatHistoryRepo) Append(ctx context.Context, msg model.ChatMessage) error {
	const query = `INSERT INTO chat_history (user_id, role, content) VALUES (?, ?, ?)`
	_, err := r.db.Writer.ExecContext(ctx, query, msg.UserID, string(msg.Role), msg.Content)
	if err != nil {
		return fmt.Errorf("append chat message for %s: %w", msg.UserID, err)
	}
	return nil
}

// Recent returns the newest limit messages for the user in chronological
// order. The inner query selects newest-first; the outer one restores
// conversation order for prompt assembly.
func (r *ChatHistoryRepo) Recent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	const query = `
		SELECT id, user_id, role, content, created_at FROM (
			SELECT id, user_id, role, content, created_at
			FROM chat_history
			WHERE user_id = ?
			ORDER BY id DESC
			LIMIT ?
		) ORDER BY id ASC
	`

	rows, err := r.db.Reader.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list chat history for %s: %w", userID, err)
	}
	defer rows.Close()

	var msgs []model.ChatMessage
	for rows.Next() {
		var msg model.ChatMessage
		var role string
		if err := rows.Scan(&msg.ID, &msg.UserID, &role, &msg.Content, &msg.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan chat message: %w", err)
		}
		msg.Role = model.ChatRole(role)
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chat history: %w", err)
	}

	if msgs == nil {
		msgs = []model.ChatMessage{}
	}
	return msgs, nil
}

// Clear deletes the user's entire history.
func (r *ChatHistoryRepo) Clear(ctx context.Context, userID string) error {
	const query = `DELETE FROM chat_history WHERE user_id = ?`
	_, err := r.db.Writer.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("clear chat history for %s: %w", userID, err)
	}
	return nil
}
