package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/quizgen"
)

const depthSystemPrompt = `You rate the cognitive depth of a batch of multiple-choice quiz questions.

Score the batch as a whole on a 1 to 3 scale: 1 = pure recall of directly
stated facts, 2 = application of a single concept, 3 = analysis or reasoning
across concepts. Fractional scores are fine. Respond with a single JSON
object in the fields "depth_score" (number between 1 and 3) and "reasoning"
(one sentence).`

var depthSchema = &llm.Schema{
	Name:        "depth-rating",
	Description: "Cognitive depth rating for a batch of quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"depth_score": map[string]any{
				"type":    "number",
				"minimum": 1,
				"maximum": 3,
			},
			"reasoning": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"depth_score", "reasoning"},
		"additionalProperties": false,
	},
}

// RateDepth scores a question batch on the 1-3 depth scale consumed by
// Adapter.RecordLowQuality. This is not the 0-1 structural quality
// score; the two scales never convert.
func (c *Classifier) RateDepth(ctx context.Context, questions []quizgen.ValidatedQuestion) (float64, error) {
	if len(questions) == 0 {
		return minDepth, nil
	}
	ctx = llm.WithPurpose(ctx, "depth-rate")

	var b strings.Builder
	b.WriteString("Rate the cognitive depth of these questions:\n")
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:    depthSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		Schema:    depthSchema,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return 0, err
	}

	var payload struct {
		DepthScore float64 `json:"depth_score"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return 0, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return clampDepth(payload.DepthScore), nil
}

var (
	analysisWords    = []string{"why", "explain", "compare", "evaluate", "analy", "justify", "implication"}
	applicationWords = []string{"how", "apply", "calculate", "predict", "cause", "result in", "happens if"}
)

// HeuristicDepth estimates the batch depth from question phrasing when
// no model is available. Recall phrasing scores 1, application 2,
// analysis 3; the result is the batch average.
func HeuristicDepth(questions []quizgen.ValidatedQuestion) float64 {
	if len(questions) == 0 {
		return minDepth
	}
	var total float64
	for _, q := range questions {
		lower := strings.ToLower(q.Question)
		switch {
		case matchesAny(lower, analysisWords):
			total += 3
		case matchesAny(lower, applicationWords):
			total += 2
		default:
			total += 1
		}
	}
	return total / float64(len(questions))
}
