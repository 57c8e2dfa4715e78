package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fitcoach/internal/database/repository"
	"github.com/jask/fitcoach/internal/progress"
)

// ProgressStore serves the dashboard snapshot from sqlite.
type ProgressStore struct {
	DB *sql.DB
}

// Load returns the latest snapshot with the weekly series attached.
func (s *ProgressStore) Load(ctx context.Context) (progress.Snapshot, error) {
	if s.DB == nil {
		return progress.Snapshot{}, fmt.Errorf("progress: db not configured")
	}
	repo := repository.NewProgressRepo(s.DB)
	row, err := repo.Latest(ctx)
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("load progress: %w", err)
	}
	week, err := repo.Week(ctx)
	if err != nil {
		return progress.Snapshot{}, fmt.Errorf("load weekly steps: %w", err)
	}
	snap := progress.Snapshot{
		Steps:            progress.Metric{Label: "Steps", Current: row.StepsCurrent, Target: row.StepsTarget},
		Calories:         progress.Metric{Label: "Calories", Unit: "kcal", Current: row.CaloriesCurrent, Target: row.CaloriesTarget},
		Water:            progress.Metric{Label: "Water", Unit: "glasses", Current: row.WaterCurrent, Target: row.WaterTarget},
		Streak:           row.Streak,
		WeeklyGoals:      row.WeeklyGoals,
		WeeklyGoalTarget: row.WeeklyGoalTarget,
		ActiveMinutes:    row.ActiveMinutes,
		RecordedAt:       row.RecordedAt,
	}
	for _, d := range week {
		snap.Week = append(snap.Week, progress.DaySteps{Day: d.Day, Steps: d.Steps})
	}
	return snap, nil
}
