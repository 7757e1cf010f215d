package quizgen

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
)

// Generator turns source text into validated multiple-choice questions
// via a structured LLM call with a bounded whole-chain retry loop.
type Generator struct {
	provider llm.Provider
	config   Config
}

// NewGenerator builds a Generator on top of the given provider.
func NewGenerator(provider llm.Provider, config Config) *Generator {
	return &Generator{provider: provider, config: config}
}

// Generate produces a batch of validated questions from req.SourceText.
// Source shorter than Config.MinSourceChars fails immediately with
// InsufficientInputError. Transient failures (model call, parse, empty
// batch after validation) retry the whole build-call-parse-validate
// chain up to Config.MaxRetries times with a fixed wait in between;
// exhaustion surfaces as GenerationExhaustedError wrapping the last
// failure. Invalid drafts inside an otherwise usable batch are dropped,
// not retried.
func (g *Generator) Generate(ctx context.Context, req GenerationRequest) ([]ValidatedQuestion, error) {
	source := strings.TrimSpace(req.SourceText)
	if len(source) < g.config.MinSourceChars {
		return nil, &InsufficientInputError{Length: len(source), Min: g.config.MinSourceChars}
	}
	source = truncateChars(source, g.config.MaxSourceChars)

	count := req.Count
	if count < 1 {
		count = 1
	}
	difficulty := req.Difficulty
	if !difficulty.Valid() {
		difficulty = DifficultyMedium
	}

	var lastErr error
	for attempt := 1; attempt <= g.config.MaxRetries; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(g.config.RetryWait):
			}
		}

		questions, err := g.attempt(ctx, source, count, difficulty, req.DepthLevel)
		if err == nil {
			return questions, nil
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		lastErr = err
	}

	return nil, &GenerationExhaustedError{Attempts: g.config.MaxRetries, LastErr: lastErr}
}

// attempt runs one build-call-parse-validate cycle.
func (g *Generator) attempt(ctx context.Context, source string, count int, difficulty Difficulty, depth float64) ([]ValidatedQuestion, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: generationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildGenerationUserMessage(source, count, difficulty, depth)},
		},
		Schema:      QuestionBatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	drafts, err := Parse(string(resp.Content))
	if err != nil {
		return nil, err
	}

	var questions []ValidatedQuestion
	var lastInvalid *ValidationError
	for _, d := range drafts {
		if verr := Validate(d); verr != nil {
			lastInvalid = verr
			continue
		}
		questions = append(questions, ValidatedQuestion{QuestionDraft: d})
	}
	if len(questions) == 0 {
		if lastInvalid != nil {
			return nil, lastInvalid
		}
		return nil, &ParseError{Reason: "response contained no questions"}
	}
	return questions, nil
}
