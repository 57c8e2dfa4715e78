package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/database"
	"github.com/jask/fitcoach/internal/database/repository"
)

// Journal mirrors chat messages into sqlite. Each visit to the chat page is
// its own conversation row, keyed by the page's instance id.
type Journal struct {
	DB *sql.DB
}

// Record stores msg, creating the conversation row on first use.
func (j *Journal) Record(ctx context.Context, chatID string, conv core.Conversation, msg coach.Message) error {
	if j.DB == nil {
		return fmt.Errorf("journal: db not configured")
	}
	at := msg.Timestamp.UTC()
	return database.WithTx(ctx, j.DB, func(tx *sql.Tx) error {
		if err := repository.NewConversationRepo(tx).Ensure(ctx, repository.Conversation{
			ID:        chatID,
			Name:      conv.Name,
			Category:  conv.Category,
			Mode:      conv.Mode,
			CreatedAt: at,
		}); err != nil {
			return fmt.Errorf("record conversation: %w", err)
		}
		if err := repository.NewMessageRepo(tx).Insert(ctx, repository.Message{
			ID:             msg.ID,
			ConversationID: chatID,
			Sender:         string(msg.Sender),
			Content:        msg.Content,
			CreatedAt:      at,
		}); err != nil {
			return fmt.Errorf("record message: %w", err)
		}
		return nil
	})
}

// History lists journaled conversations, newest first.
func (j *Journal) History(ctx context.Context, limit int) ([]repository.ConversationSummary, error) {
	if j.DB == nil {
		return nil, fmt.Errorf("journal: db not configured")
	}
	return repository.NewConversationRepo(j.DB).List(ctx, limit)
}

// Transcript returns one conversation and its messages.
func (j *Journal) Transcript(ctx context.Context, id string) (repository.Conversation, []coach.Message, error) {
	if j.DB == nil {
		return repository.Conversation{}, nil, fmt.Errorf("journal: db not configured")
	}
	conv, err := repository.NewConversationRepo(j.DB).Get(ctx, id)
	if err != nil {
		return repository.Conversation{}, nil, fmt.Errorf("transcript %s: %w", id, err)
	}
	rows, err := repository.NewMessageRepo(j.DB).ListByConversation(ctx, id)
	if err != nil {
		return repository.Conversation{}, nil, fmt.Errorf("transcript %s: %w", id, err)
	}
	out := make([]coach.Message, 0, len(rows))
	for _, r := range rows {
		out = append(out, coach.Message{ID: r.ID, Content: r.Content, Sender: coach.Sender(r.Sender), Timestamp: r.CreatedAt})
	}
	return conv, out, nil
}

// Forget deletes one conversation and, through the foreign key, its messages.
func (j *Journal) Forget(ctx context.Context, id string) error {
	if j.DB == nil {
		return fmt.Errorf("journal: db not configured")
	}
	if err := repository.NewConversationRepo(j.DB).Delete(ctx, id); err != nil {
		return fmt.Errorf("forget %s: %w", id, err)
	}
	return nil
}
