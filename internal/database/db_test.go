package database

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/database/repository"
)

func openTestDB(t *testing.T) (string, context.Context) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return filepath.Join(t.TempDir(), "data", "test.db"), ctx
}

func TestMigrationsApplyAndAreIdempotent(t *testing.T) {
	path, ctx := openTestDB(t)
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))

	v, ok, err := SchemaVersion(path)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint(2), v)

	db, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	for _, table := range []string{"conversations", "messages", "progress_snapshots", "weekly_steps"} {
		var name string
		require.NoError(t, db.QueryRowContext(ctx, `SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name), table)
	}
}

func TestSchemaVersionOnFreshDatabase(t *testing.T) {
	path, _ := openTestDB(t)
	_, ok, err := SchemaVersion(path)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSeedDefaultsOnce(t *testing.T) {
	path, ctx := openTestDB(t)
	db, err := OpenMigrated(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sample := catalog.MustDefault().SampleProgress
	require.NoError(t, SeedDefaults(ctx, db, sample))
	require.NoError(t, SeedDefaults(ctx, db, sample))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM progress_snapshots").Scan(&count))
	require.Equal(t, 1, count)

	repo := repository.NewProgressRepo(db)
	snap, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.Equal(t, 7842, snap.StepsCurrent)
	require.Equal(t, 10000, snap.StepsTarget)
	require.Equal(t, 5, snap.WeeklyGoalTarget)

	week, err := repo.Week(ctx)
	require.NoError(t, err)
	require.Len(t, week, len(sample.Week))
	require.Equal(t, sample.Week[0].Day, week[0].Day)
}

func TestWithTxRollsBack(t *testing.T) {
	path, ctx := openTestDB(t)
	db, err := OpenMigrated(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	err = WithTx(ctx, db, func(tx *sql.Tx) error {
		if err := repository.NewConversationRepo(tx).Ensure(ctx, repository.Conversation{ID: "c1", Name: "n", Category: "workout", Mode: "quick", CreatedAt: Now()}); err != nil {
			return err
		}
		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")

	_, err = repository.NewConversationRepo(db).Get(ctx, "c1")
	require.ErrorIs(t, err, repository.ErrNotFound)
}
