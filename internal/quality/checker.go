package quality

import (
	"context"
	"time"

	"github.com/abhisek/quizforge/internal/quizgen"
)

// Checker runs the full assess-improve-reassess cycle over a batch of
// validated questions.
type Checker struct {
	assessor Assessor
	improver *Improver
	config   Config
}

// NewChecker builds a Checker. A nil improver disables the improvement
// step: low-scoring questions keep their original text and score.
func NewChecker(improver *Improver, config Config) *Checker {
	return &Checker{improver: improver, config: config}
}

// Check assesses every question, sends those scoring below the repair
// threshold through the improver, and re-assesses the revisions. The
// input slice is not modified; results come back in input order with
// scores and issues attached. Questions are processed in batches with a
// delay in between so improvement calls do not burst.
func (c *Checker) Check(ctx context.Context, questions []quizgen.ValidatedQuestion, sourceText string) ([]quizgen.ValidatedQuestion, error) {
	out := make([]quizgen.ValidatedQuestion, 0, len(questions))

	batchSize := c.config.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}

	for start := 0; start < len(questions); start += batchSize {
		if start > 0 && c.config.BatchDelay > 0 {
			select {
			case <-ctx.Done():
				return out, ctx.Err()
			case <-time.After(c.config.BatchDelay):
			}
		}

		end := min(start+batchSize, len(questions))
		for _, q := range questions[start:end] {
			out = append(out, c.checkOne(ctx, q, sourceText))
		}
	}

	return out, nil
}

func (c *Checker) checkOne(ctx context.Context, q quizgen.ValidatedQuestion, sourceText string) quizgen.ValidatedQuestion {
	a := c.assessor.Assess(q.QuestionDraft, sourceText)
	q.QualityScore = a.Score
	q.Issues = a.Issues

	if a.Score >= c.config.RepairThreshold || c.improver == nil {
		return q
	}

	revised, improved := c.improver.Improve(ctx, q.QuestionDraft, sourceText, a.Issues)
	if !improved {
		return q
	}

	ra := c.assessor.Assess(revised, sourceText)
	q.QuestionDraft = revised
	q.QualityScore = ra.Score
	q.Issues = ra.Issues
	return q
}
