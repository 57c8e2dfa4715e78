package repository

import (
	"context"
	"time"

	"github.com/mattn/go-sqlite3"
)

// MessageRepo handles chat messages.
type MessageRepo struct {
	db DBTX
}

func NewMessageRepo(db DBTX) *MessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Insert(ctx context.Context, m Message) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO messages(id, conversation_id, sender, content, created_at)
	VALUES (?, ?, ?, ?, ?);
	`, m.ID, m.ConversationID, m.Sender, m.Content, m.CreatedAt)
	return err
}

// ListByConversation returns messages oldest first.
func (r *MessageRepo) ListByConversation(ctx context.Context, conversationID string) ([]Message, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, conversation_id, sender, content, created_at
	FROM messages
	WHERE conversation_id = ?
	ORDER BY created_at, rowid`, conversationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Content, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// parseTime reads timestamps that come back as text, e.g. from aggregates
// where the column type is lost.
func parseTime(s string) (time.Time, error) {
	var err error
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
