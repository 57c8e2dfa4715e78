package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/fitcoach/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes the chat journal. It keeps the schema and the progress data
// intact so the app can continue running.
func (s *MaintenanceService) Reset(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		tables := []string{
			"messages",
			"conversations",
		}
		for _, t := range tables {
			res, err := tx.ExecContext(ctx, "DELETE FROM "+t)
			if err != nil {
				return fmt.Errorf("reset table %s: %w", t, err)
			}
			if t == "conversations" {
				removed, _ = res.RowsAffected()
			}
		}
		return nil
	}); err != nil {
		return 0, err
	}
	return removed, nil
}

// Compact reclaims the pages freed by Reset. It runs outside any transaction
// since sqlite refuses VACUUM inside one.
func (s *MaintenanceService) Compact(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if _, err := s.DB.ExecContext(ctx, "VACUUM"); err != nil {
		return fmt.Errorf("vacuum: %w", err)
	}
	return nil
}
