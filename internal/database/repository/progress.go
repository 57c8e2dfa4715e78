package repository

import (
	"context"
	"database/sql"
	"errors"
)

// ProgressRepo handles progress snapshots and the weekly step series.
type ProgressRepo struct {
	db DBTX
}

func NewProgressRepo(db DBTX) *ProgressRepo {
	return &ProgressRepo{db: db}
}

func (r *ProgressRepo) Insert(ctx context.Context, p ProgressSnapshot) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO progress_snapshots(id, steps_current, steps_target, calories_current, calories_target,
	 water_current, water_target, streak, weekly_goals, weekly_goal_target, active_minutes, recorded_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`, p.ID, p.StepsCurrent, p.StepsTarget, p.CaloriesCurrent, p.CaloriesTarget,
		p.WaterCurrent, p.WaterTarget, p.Streak, p.WeeklyGoals, p.WeeklyGoalTarget, p.ActiveMinutes, p.RecordedAt)
	return err
}

// Latest returns the most recently recorded snapshot or ErrNotFound.
func (r *ProgressRepo) Latest(ctx context.Context) (ProgressSnapshot, error) {
	var p ProgressSnapshot
	err := r.db.QueryRowContext(ctx, `
	SELECT id, steps_current, steps_target, calories_current, calories_target,
	       water_current, water_target, streak, weekly_goals, weekly_goal_target, active_minutes, recorded_at
	FROM progress_snapshots
	ORDER BY recorded_at DESC, rowid DESC
	LIMIT 1`).Scan(&p.ID, &p.StepsCurrent, &p.StepsTarget, &p.CaloriesCurrent, &p.CaloriesTarget,
		&p.WaterCurrent, &p.WaterTarget, &p.Streak, &p.WeeklyGoals, &p.WeeklyGoalTarget, &p.ActiveMinutes, &p.RecordedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return ProgressSnapshot{}, ErrNotFound
	}
	return p, err
}

// Week returns the weekly series in display order.
func (r *ProgressRepo) Week(ctx context.Context) ([]DaySteps, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT position, day, steps FROM weekly_steps ORDER BY position`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DaySteps
	for rows.Next() {
		var d DaySteps
		if err := rows.Scan(&d.Position, &d.Day, &d.Steps); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// ReplaceWeek swaps the whole series. Run it inside a transaction when the
// delete and inserts must land together.
func (r *ProgressRepo) ReplaceWeek(ctx context.Context, days []DaySteps) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM weekly_steps`); err != nil {
		return err
	}
	for i, d := range days {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO weekly_steps(position, day, steps) VALUES (?, ?, ?)`, i, d.Day, d.Steps); err != nil {
			return err
		}
	}
	return nil
}
