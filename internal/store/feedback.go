package store

import (
	"context"
	"fmt"
	"time"
)

// Feedback is one learner feedback row. QuestionID is empty for
// session-level feedback. Ratings are 1 to 5; zero means not given.
type Feedback struct {
	ID               int64
	QuestionID       string
	DifficultyRating int
	RelevanceRating  int
	QualityRating    int
	Comment          string
	CreatedAt        time.Time
}

// SaveFeedback validates the ratings and persists the feedback.
func (s *Store) SaveFeedback(ctx context.Context, fb Feedback) (int64, error) {
	for name, rating := range map[string]int{
		"difficulty": fb.DifficultyRating,
		"relevance":  fb.RelevanceRating,
		"quality":    fb.QualityRating,
	} {
		if rating != 0 && (rating < 1 || rating > 5) {
			return 0, fmt.Errorf("%s rating must be between 1 and 5, got %d", name, rating)
		}
	}

	var questionID any
	if fb.QuestionID != "" {
		questionID = fb.QuestionID
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO feedback (question_id, difficulty_rating, relevance_rating, quality_rating, comment, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		questionID, fb.DifficultyRating, fb.RelevanceRating, fb.QualityRating, fb.Comment, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("save feedback: %w", err)
	}
	return res.LastInsertId()
}

// ListFeedback returns the most recent feedback entries, newest first.
func (s *Store) ListFeedback(ctx context.Context, limit int) ([]Feedback, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, COALESCE(question_id, ''), difficulty_rating, relevance_rating, quality_rating, comment, created_at
		 FROM feedback ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	defer rows.Close()

	var out []Feedback
	for rows.Next() {
		var fb Feedback
		if err := rows.Scan(&fb.ID, &fb.QuestionID, &fb.DifficultyRating, &fb.RelevanceRating, &fb.QualityRating, &fb.Comment, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		out = append(out, fb)
	}
	return out, rows.Err()
}
