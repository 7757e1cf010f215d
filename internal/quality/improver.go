package quality

import (
	"context"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
)

// Improver rewrites a flawed question with a single model call. It never
// retries and never fails the caller: when the call, parse or validation
// goes wrong the original question is returned untouched.
type Improver struct {
	provider    llm.Provider
	maxExcerpt  int
	maxTokens   int
	temperature float64
}

// NewImprover builds an Improver on top of the given provider.
func NewImprover(provider llm.Provider, gen quizgen.Config) *Improver {
	return &Improver{
		provider:    provider,
		maxExcerpt:  gen.MaxExcerptChars,
		maxTokens:   gen.MaxTokens,
		temperature: gen.Temperature,
	}
}

// Improve asks the model to revise q, addressing the listed issues.
// The bool result reports whether the revision was applied; false means
// the returned question is the original.
func (im *Improver) Improve(ctx context.Context, q quizgen.QuestionDraft, sourceText string, issues []string) (quizgen.QuestionDraft, bool) {
	ctx = llm.WithPurpose(ctx, "question-improve")

	resp, err := im.provider.Generate(ctx, llm.Request{
		System: quizgen.ImprovementSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: quizgen.BuildImprovementUserMessage(q, sourceText, issues, im.maxExcerpt)},
		},
		Schema:      quizgen.QuestionSchema,
		MaxTokens:   im.maxTokens,
		Temperature: im.temperature,
	})
	if err != nil {
		return q, false
	}

	drafts, err := quizgen.Parse(string(resp.Content))
	if err != nil || len(drafts) == 0 {
		return q, false
	}
	revised := drafts[0]
	if quizgen.Validate(revised) != nil {
		return q, false
	}
	return revised, true
}
