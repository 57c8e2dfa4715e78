package repository

import (
	"context"
	"database/sql"
	"time"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conversation represents a conversation row.
type Conversation struct {
	ID        string
	Name      string
	Category  string
	Mode      string
	CreatedAt time.Time
}

// ConversationSummary is a conversation with its message stats.
type ConversationSummary struct {
	Conversation
	Messages      int
	LastMessageAt *time.Time
}

// Message represents a message row.
type Message struct {
	ID             string
	ConversationID string
	Sender         string
	Content        string
	CreatedAt      time.Time
}

// ProgressSnapshot represents a progress_snapshots row.
type ProgressSnapshot struct {
	ID               string
	StepsCurrent     int
	StepsTarget      int
	CaloriesCurrent  int
	CaloriesTarget   int
	WaterCurrent     int
	WaterTarget      int
	Streak           int
	WeeklyGoals      int
	WeeklyGoalTarget int
	ActiveMinutes    int
	RecordedAt       time.Time
}

// DaySteps represents a weekly_steps row.
type DaySteps struct {
	Position int
	Day      string
	Steps    int
}
