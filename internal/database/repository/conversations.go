package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// ConversationRepo handles conversations.
type ConversationRepo struct {
	db DBTX
}

func NewConversationRepo(db DBTX) *ConversationRepo {
	return &ConversationRepo{db: db}
}

// Ensure inserts the conversation unless a row with its id exists.
func (r *ConversationRepo) Ensure(ctx context.Context, c Conversation) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO conversations(id, name, category, mode, created_at)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT(id) DO NOTHING;
	`, c.ID, c.Name, c.Category, c.Mode, c.CreatedAt)
	return err
}

func (r *ConversationRepo) Get(ctx context.Context, id string) (Conversation, error) {
	var c Conversation
	err := r.db.QueryRowContext(ctx, `SELECT id, name, category, mode, created_at FROM conversations WHERE id = ?`, id).
		Scan(&c.ID, &c.Name, &c.Category, &c.Mode, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversation{}, ErrNotFound
	}
	return c, err
}

// List returns the newest conversations first. limit <= 0 means all.
func (r *ConversationRepo) List(ctx context.Context, limit int) ([]ConversationSummary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx, `
	SELECT c.id, c.name, c.category, c.mode, c.created_at,
	       COUNT(m.id), MAX(m.created_at)
	FROM conversations c
	LEFT JOIN messages m ON m.conversation_id = c.id
	GROUP BY c.id
	ORDER BY c.created_at DESC, c.id
	LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []ConversationSummary
	for rows.Next() {
		var s ConversationSummary
		var last sql.NullString
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Mode, &s.CreatedAt, &s.Messages, &last); err != nil {
			return nil, err
		}
		if last.Valid {
			if t, err := parseTime(last.String); err == nil {
				s.LastMessageAt = &t
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *ConversationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM conversations WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
