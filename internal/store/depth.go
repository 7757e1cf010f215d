package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const baseDepthLevel = 1.0

// DepthLevel returns the persisted feedback depth level, or the base
// level when none has been saved yet.
func (s *Store) DepthLevel(ctx context.Context) (float64, error) {
	var level float64
	err := s.db.QueryRowContext(ctx, `SELECT level FROM depth_state WHERE id = 1`).Scan(&level)
	if err == sql.ErrNoRows {
		return baseDepthLevel, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load depth level: %w", err)
	}
	return level, nil
}

// SaveDepthLevel persists the feedback depth level so it carries across
// invocations.
func (s *Store) SaveDepthLevel(ctx context.Context, level float64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO depth_state (id, level, updated_at) VALUES (1, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET level = excluded.level, updated_at = excluded.updated_at`,
		level, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save depth level: %w", err)
	}
	return nil
}
