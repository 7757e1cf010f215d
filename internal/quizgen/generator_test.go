package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
)

const sourceText = `The water cycle describes how water moves through Earth's atmosphere,
surface and underground. Solar energy drives evaporation from oceans and lakes, the vapor
condenses into clouds, and precipitation returns water to the surface where it collects
in rivers, soil and aquifers before the cycle repeats.`

// fastConfig avoids the 2s inter-attempt wait in tests.
func fastConfig() Config {
	cfg := DefaultConfig()
	cfg.RetryWait = time.Millisecond
	return cfg
}

func batchContent(t *testing.T) json.RawMessage {
	t.Helper()
	return json.RawMessage(goodBatch)
}

func TestGenerateSuccess(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchContent(t)})
	g := NewGenerator(mock, fastConfig())

	questions, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: sourceText,
		Count:      2,
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 model call, got %d", mock.CallCount())
	}

	req := mock.Calls[0]
	if req.Schema == nil || req.Schema.Name != "quiz-questions" {
		t.Error("expected the batch schema on the request")
	}
	user := req.Messages[0].Content
	if !strings.Contains(user, "Generate 2 multiple-choice questions") {
		t.Errorf("user message missing count: %q", user)
	}
	if !strings.Contains(user, "water cycle") {
		t.Error("user message missing source text")
	}
}

func TestGenerateShortInputFailsFast(t *testing.T) {
	mock := llm.NewMockProvider()
	g := NewGenerator(mock, fastConfig())

	_, err := g.Generate(context.Background(), GenerationRequest{SourceText: "too short"})
	var ierr *InsufficientInputError
	if !errors.As(err, &ierr) {
		t.Fatalf("expected InsufficientInputError, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("short input must not reach the model, got %d calls", mock.CallCount())
	}
}

func TestGenerateRecoversWithinBudget(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("503")}},
		llm.MockResponse{Content: json.RawMessage(`not json at all`)},
		llm.MockResponse{Content: batchContent(t)},
	)
	g := NewGenerator(mock, fastConfig())

	questions, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: sourceText,
		Count:      2,
		Difficulty: DifficultyEasy,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected 2 questions, got %d", len(questions))
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 attempts, got %d", mock.CallCount())
	}
}

func TestGenerateExhaustsRetryBudget(t *testing.T) {
	mock := llm.NewMockProvider()
	for range 5 {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(`garbage`)})
	}
	g := NewGenerator(mock, fastConfig())

	_, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: sourceText,
		Count:      1,
		Difficulty: DifficultyHard,
	})
	var gerr *GenerationExhaustedError
	if !errors.As(err, &gerr) {
		t.Fatalf("expected GenerationExhaustedError, got %v", err)
	}
	if gerr.Attempts != 3 {
		t.Errorf("expected 3 attempts recorded, got %d", gerr.Attempts)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected exactly 3 model calls, got %d", mock.CallCount())
	}
	var perr *ParseError
	if !errors.As(gerr.LastErr, &perr) {
		t.Errorf("expected last error to be a ParseError, got %v", gerr.LastErr)
	}
}

func TestGenerateDropsInvalidKeepsValid(t *testing.T) {
	mixed := `[
  {"question": "Valid one?", "options": ["a", "b", "c", "d"], "correct_option": 3, "explanation": "Sure."},
  {"question": "Bad count?", "options": ["a", "b"], "correct_option": 0, "explanation": "Nope."},
  {"question": "Bad index?", "options": ["a", "b", "c", "d"], "correct_option": 7, "explanation": "Nope."}
]`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(mixed)})
	g := NewGenerator(mock, fastConfig())

	questions, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: sourceText,
		Count:      3,
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(questions) != 1 {
		t.Fatalf("expected invalid drafts dropped, got %d questions", len(questions))
	}
	if questions[0].Question != "Valid one?" {
		t.Errorf("kept the wrong draft: %q", questions[0].Question)
	}
}

func TestGenerateAllInvalidRetries(t *testing.T) {
	allBad := `[{"question": "Q?", "options": ["a", "b"], "correct_option": 0, "explanation": "E."}]`
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(allBad)},
		llm.MockResponse{Content: batchContent(t)},
	)
	g := NewGenerator(mock, fastConfig())

	questions, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: sourceText,
		Count:      2,
		Difficulty: DifficultyMedium,
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(questions) != 2 {
		t.Errorf("expected retry to recover, got %d questions", len(questions))
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 attempts, got %d", mock.CallCount())
	}
}

func TestGenerateContextCancelled(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: json.RawMessage(`garbage`)},
		llm.MockResponse{Content: batchContent(t)},
	)
	cfg := fastConfig()
	cfg.RetryWait = time.Minute
	g := NewGenerator(mock, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := g.Generate(ctx, GenerationRequest{
		SourceText: sourceText,
		Count:      1,
		Difficulty: DifficultyMedium,
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected cancellation during the retry wait, got %d calls", mock.CallCount())
	}
}

func TestGenerateTruncatesLongSource(t *testing.T) {
	long := strings.Repeat("All work and no play makes for dull quizzes. ", 400)
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchContent(t)})
	cfg := fastConfig()
	g := NewGenerator(mock, cfg)

	if _, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: long,
		Count:      2,
		Difficulty: DifficultyMedium,
	}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	user := mock.Calls[0].Messages[0].Content
	if len(user) > cfg.MaxSourceChars+500 {
		t.Errorf("prompt not truncated: %d chars", len(user))
	}
}

func TestGenerateDepthLevelInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: batchContent(t)})
	g := NewGenerator(mock, fastConfig())

	if _, err := g.Generate(context.Background(), GenerationRequest{
		SourceText: sourceText,
		Count:      2,
		Difficulty: DifficultyMedium,
		DepthLevel: 2.5,
	}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	user := mock.Calls[0].Messages[0].Content
	if !strings.Contains(user, "Depth level: 2.5") {
		t.Errorf("expected depth level in prompt, got %q", user)
	}
}
