package store

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
)

// LLMEvent is one persisted LLM API call record.
type LLMEvent struct {
	ID           int64
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	CreatedAt    time.Time
}

// RecordLLMRequest persists one request event. Implements llm.EventSink.
func (s *Store) RecordLLMRequest(ctx context.Context, ev llm.RequestEvent) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO llm_events (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.Provider, ev.Model, ev.Purpose, ev.InputTokens, ev.OutputTokens, ev.LatencyMs, ev.Success, ev.ErrorMessage, ev.RequestBody, ev.ResponseBody, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("record llm event: %w", err)
	}
	return nil
}

// ListLLMEvents returns the most recent events, newest first.
func (s *Store) ListLLMEvents(ctx context.Context, limit int) ([]LLMEvent, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, COALESCE(error_message, ''), COALESCE(request_body, ''), COALESCE(response_body, ''), created_at
		 FROM llm_events ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEvent
	for rows.Next() {
		var ev LLMEvent
		if err := rows.Scan(&ev.ID, &ev.Provider, &ev.Model, &ev.Purpose, &ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan llm event: %w", err)
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

// GetLLMEvent fetches one event by ID.
func (s *Store) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, COALESCE(error_message, ''), COALESCE(request_body, ''), COALESCE(response_body, ''), created_at
		 FROM llm_events WHERE id = ?`, id)

	var ev LLMEvent
	if err := row.Scan(&ev.ID, &ev.Provider, &ev.Model, &ev.Purpose, &ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs, &ev.Success, &ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody, &ev.CreatedAt); err != nil {
		return nil, fmt.Errorf("get llm event %d: %w", id, err)
	}
	return &ev, nil
}
