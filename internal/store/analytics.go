package store

import (
	"context"
	"fmt"
)

// QuestionStats aggregates answer accuracy for one question.
type QuestionStats struct {
	QuestionID string
	Question   string
	Answers    int
	Correct    int
}

// Accuracy is the fraction of correct answers, 0 when unanswered.
func (qs QuestionStats) Accuracy() float64 {
	if qs.Answers == 0 {
		return 0
	}
	return float64(qs.Correct) / float64(qs.Answers)
}

// RatingAverages aggregates feedback ratings across all entries.
// Zero-valued (not given) ratings are excluded from the averages.
type RatingAverages struct {
	Entries       int
	AvgDifficulty float64
	AvgRelevance  float64
	AvgQuality    float64
}

// UsageStats aggregates LLM usage for one purpose and model pair.
type UsageStats struct {
	Purpose      string
	Model        string
	Requests     int
	Failures     int
	InputTokens  int64
	OutputTokens int64
	AvgLatencyMs float64
}

// QuestionAccuracy returns per-question answer counts for questions
// with at least one recorded response, hardest first.
func (s *Store) QuestionAccuracy(ctx context.Context, limit int) ([]QuestionStats, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT q.id, q.question, COUNT(r.id), COALESCE(SUM(r.correct), 0)
		 FROM questions q
		 JOIN responses r ON r.question_id = q.id
		 GROUP BY q.id, q.question
		 ORDER BY CAST(COALESCE(SUM(r.correct), 0) AS REAL) / COUNT(r.id) ASC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("question accuracy: %w", err)
	}
	defer rows.Close()

	var out []QuestionStats
	for rows.Next() {
		var qs QuestionStats
		if err := rows.Scan(&qs.QuestionID, &qs.Question, &qs.Answers, &qs.Correct); err != nil {
			return nil, fmt.Errorf("scan question stats: %w", err)
		}
		out = append(out, qs)
	}
	return out, rows.Err()
}

// FeedbackAverages computes the average of each non-zero rating column.
func (s *Store) FeedbackAverages(ctx context.Context) (*RatingAverages, error) {
	var avg RatingAverages
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
		        COALESCE(AVG(CASE WHEN difficulty_rating > 0 THEN difficulty_rating END), 0),
		        COALESCE(AVG(CASE WHEN relevance_rating > 0 THEN relevance_rating END), 0),
		        COALESCE(AVG(CASE WHEN quality_rating > 0 THEN quality_rating END), 0)
		 FROM feedback`).
		Scan(&avg.Entries, &avg.AvgDifficulty, &avg.AvgRelevance, &avg.AvgQuality)
	if err != nil {
		return nil, fmt.Errorf("feedback averages: %w", err)
	}
	return &avg, nil
}

// LLMUsage aggregates request counts, token totals and latency by
// purpose and model, busiest first.
func (s *Store) LLMUsage(ctx context.Context) ([]UsageStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT purpose, model, COUNT(*),
		        SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END),
		        COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0),
		        COALESCE(AVG(latency_ms), 0)
		 FROM llm_events
		 GROUP BY purpose, model
		 ORDER BY COUNT(*) DESC`)
	if err != nil {
		return nil, fmt.Errorf("llm usage: %w", err)
	}
	defer rows.Close()

	var out []UsageStats
	for rows.Next() {
		var us UsageStats
		if err := rows.Scan(&us.Purpose, &us.Model, &us.Requests, &us.Failures, &us.InputTokens, &us.OutputTokens, &us.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan usage stats: %w", err)
		}
		out = append(out, us)
	}
	return out, rows.Err()
}
