package service

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/coach"
	"github.com/jask/fitcoach/internal/core"
	"github.com/jask/fitcoach/internal/database"
	"github.com/jask/fitcoach/internal/database/repository"
)

func testDB(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	db, err := database.OpenMigrated(ctx, filepath.Join(t.TempDir(), "svc.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, ctx
}

func TestJournalRecordsConversation(t *testing.T) {
	db, ctx := testDB(t)
	j := &Journal{DB: db}
	conv := core.Conversation{Name: "Leg Day", Category: "workout", Mode: "detailed"}
	at := time.Date(2026, 5, 4, 7, 30, 0, 0, time.FixedZone("AEST", 10*60*60))

	greet := coach.Message{ID: "g", Sender: coach.SenderBot, Content: "Hey!", Timestamp: at}
	ask := coach.Message{ID: "u", Sender: coach.SenderUser, Content: "squats", Timestamp: at.Add(time.Second)}
	require.NoError(t, j.Record(ctx, "chat-1", conv, greet))
	require.NoError(t, j.Record(ctx, "chat-1", conv, ask))

	history, err := j.History(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "Leg Day", history[0].Name)
	require.Equal(t, 2, history[0].Messages)

	got, msgs, err := j.Transcript(ctx, "chat-1")
	require.NoError(t, err)
	require.Equal(t, "workout", got.Category)
	require.Len(t, msgs, 2)
	require.Equal(t, coach.SenderBot, msgs[0].Sender)
	require.Equal(t, "squats", msgs[1].Content)
	require.True(t, msgs[1].Timestamp.Equal(ask.Timestamp))
}

func TestJournalDuplicateMessageFails(t *testing.T) {
	db, ctx := testDB(t)
	j := &Journal{DB: db}
	msg := coach.Message{ID: "dup", Sender: coach.SenderUser, Content: "x", Timestamp: time.Now()}
	conv := core.Conversation{Name: "n", Category: "goals", Mode: "quick"}
	require.NoError(t, j.Record(ctx, "c", conv, msg))
	require.Error(t, j.Record(ctx, "c", conv, msg))
}

func TestTranscriptUnknown(t *testing.T) {
	db, ctx := testDB(t)
	_, _, err := (&Journal{DB: db}).Transcript(ctx, "nope")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestJournalWithoutDB(t *testing.T) {
	require.Error(t, (&Journal{}).Record(context.Background(), "c", core.Conversation{}, coach.Message{}))
	_, err := (&Journal{}).History(context.Background(), 1)
	require.Error(t, err)
}

func TestProgressStoreLoadsSeed(t *testing.T) {
	db, ctx := testDB(t)
	sample := catalog.MustDefault().SampleProgress
	require.NoError(t, database.SeedDefaults(ctx, db, sample))

	snap, err := (&ProgressStore{DB: db}).Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 7842, snap.Steps.Current)
	require.Equal(t, "kcal", snap.Calories.Unit)
	require.Equal(t, 12, snap.Streak)
	require.Len(t, snap.Week, len(sample.Week))
}

func TestProgressStoreEmpty(t *testing.T) {
	db, ctx := testDB(t)
	_, err := (&ProgressStore{DB: db}).Load(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResetKeepsProgress(t *testing.T) {
	db, ctx := testDB(t)
	require.NoError(t, database.SeedDefaults(ctx, db, catalog.MustDefault().SampleProgress))
	j := &Journal{DB: db}
	conv := core.Conversation{Name: "n", Category: "goals", Mode: "quick"}
	require.NoError(t, j.Record(ctx, "a", conv, coach.NewMessage(coach.SenderBot, "hi", time.Now())))
	require.NoError(t, j.Record(ctx, "b", conv, coach.NewMessage(coach.SenderBot, "hi", time.Now())))

	removed, err := (&MaintenanceService{DB: db}).Reset(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, removed)

	history, err := j.History(ctx, 0)
	require.NoError(t, err)
	require.Empty(t, history)
	_, err = (&ProgressStore{DB: db}).Load(ctx)
	require.NoError(t, err)
}

func TestJournalForget(t *testing.T) {
	db, ctx := testDB(t)
	j := &Journal{DB: db}
	conv := core.Conversation{Name: "n", Category: "goals", Mode: "quick"}
	require.NoError(t, j.Record(ctx, "a", conv, coach.NewMessage(coach.SenderBot, "hi", time.Now())))
	require.NoError(t, j.Record(ctx, "b", conv, coach.NewMessage(coach.SenderBot, "hi", time.Now())))

	require.NoError(t, j.Forget(ctx, "a"))
	require.ErrorIs(t, j.Forget(ctx, "a"), repository.ErrNotFound)
	_, _, err := j.Transcript(ctx, "a")
	require.ErrorIs(t, err, repository.ErrNotFound)

	history, err := j.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, "b", history[0].ID)
}

func TestCompact(t *testing.T) {
	db, ctx := testDB(t)
	m := &MaintenanceService{DB: db}
	require.NoError(t, m.Compact(ctx))

	require.NoError(t, db.Close())
	err := m.Compact(ctx)
	require.ErrorContains(t, err, "vacuum")
	require.Error(t, (&MaintenanceService{}).Compact(ctx))
}
