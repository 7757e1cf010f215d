package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// Question is a persisted question row.
type Question struct {
	ID           string
	SourceName   string
	Difficulty   string
	Question     string
	Options      []string
	CorrectIndex int
	Explanation  string
	QualityScore float64
	Issues       []string
	CreatedAt    time.Time
}

// SaveQuestions persists a generated batch and returns the stored rows
// with their assigned IDs.
func (s *Store) SaveQuestions(ctx context.Context, sourceName string, difficulty quizgen.Difficulty, questions []quizgen.ValidatedQuestion) ([]Question, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	saved := make([]Question, 0, len(questions))
	for _, q := range questions {
		options, err := json.Marshal(q.Options)
		if err != nil {
			return nil, fmt.Errorf("encode options: %w", err)
		}
		issues, err := json.Marshal(q.Issues)
		if err != nil {
			return nil, fmt.Errorf("encode issues: %w", err)
		}

		row := Question{
			ID:           uuid.NewString(),
			SourceName:   sourceName,
			Difficulty:   string(difficulty),
			Question:     q.Question,
			Options:      q.Options,
			CorrectIndex: q.CorrectIndex,
			Explanation:  q.Explanation,
			QualityScore: q.QualityScore,
			Issues:       q.Issues,
			CreatedAt:    now,
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO questions (id, source_name, difficulty, question, options, correct_option, explanation, quality_score, issues, created_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			row.ID, row.SourceName, row.Difficulty, row.Question, string(options), row.CorrectIndex, row.Explanation, row.QualityScore, string(issues), row.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("insert question: %w", err)
		}
		saved = append(saved, row)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit questions: %w", err)
	}
	return saved, nil
}

// GetQuestion fetches one question by ID.
func (s *Store) GetQuestion(ctx context.Context, id string) (*Question, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_name, difficulty, question, options, correct_option, explanation, quality_score, issues, created_at
		 FROM questions WHERE id = ?`, id)

	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("get question: %w", err)
	}
	return q, nil
}

// ListQuestions returns the most recent questions, newest first.
func (s *Store) ListQuestions(ctx context.Context, limit int) ([]Question, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_name, difficulty, question, options, correct_option, explanation, quality_score, issues, created_at
		 FROM questions ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	defer rows.Close()

	var out []Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		out = append(out, *q)
	}
	return out, rows.Err()
}

// RecordResponse stores one answer to a question.
func (s *Store) RecordResponse(ctx context.Context, questionID string, selected int, correct bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO responses (question_id, selected_option, correct, answered_at) VALUES (?, ?, ?, ?)`,
		questionID, selected, correct, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record response: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(r rowScanner) (*Question, error) {
	var q Question
	var options, issues string
	if err := r.Scan(&q.ID, &q.SourceName, &q.Difficulty, &q.Question, &options, &q.CorrectIndex, &q.Explanation, &q.QualityScore, &issues, &q.CreatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(options), &q.Options); err != nil {
		return nil, fmt.Errorf("decode options: %w", err)
	}
	if issues != "" && issues != "null" {
		if err := json.Unmarshal([]byte(issues), &q.Issues); err != nil {
			return nil, fmt.Errorf("decode issues: %w", err)
		}
	}
	return &q, nil
}
