package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/fitcoach/internal/catalog"
	"github.com/jask/fitcoach/internal/database/repository"
)

// SeedDefaults stores the catalog's sample progress when no snapshot exists.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB, sample catalog.Sample) error {
	_, err := repository.NewProgressRepo(db).Latest(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("seed defaults: %w", err)
	}
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewProgressRepo(tx)
		snap := repository.ProgressSnapshot{
			ID:               uuid.NewSHA1(uuid.NameSpaceOID, []byte("progress:sample")).String(),
			StepsCurrent:     sample.Steps.Current,
			StepsTarget:      sample.Steps.Target,
			CaloriesCurrent:  sample.Calories.Current,
			CaloriesTarget:   sample.Calories.Target,
			WaterCurrent:     sample.Water.Current,
			WaterTarget:      sample.Water.Target,
			Streak:           sample.Streak,
			WeeklyGoals:      sample.WeeklyGoals,
			WeeklyGoalTarget: sample.WeeklyGoalTarget,
			ActiveMinutes:    sample.ActiveMinutes,
			RecordedAt:       Now(),
		}
		if err := repo.Insert(ctx, snap); err != nil {
			return fmt.Errorf("seed progress: %w", err)
		}
		week := make([]repository.DaySteps, 0, len(sample.Week))
		for _, d := range sample.Week {
			week = append(week, repository.DaySteps{Day: d.Day, Steps: d.Steps})
		}
		if err := repo.ReplaceWeek(ctx, week); err != nil {
			return fmt.Errorf("seed weekly steps: %w", err)
		}
		return nil
	})
}
