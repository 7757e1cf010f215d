package feedback

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/abhisek/quizforge/internal/llm"
)

const classifySystemPrompt = `You classify learner feedback about quiz questions.

Decide which category best describes the feedback: the questions were too
shallow, too difficult, irrelevant to the material, or poorly worded. Use
"neutral" when none apply. Propose a depth adjustment between -0.5 and 0.5
(positive = make future questions deeper and more analytical, negative = make
them more basic; irrelevance and wording problems do not change depth).
Respond with a single JSON object in the fields "analysis" (one of
"too_shallow", "too_difficult", "irrelevant", "poorly_worded", "neutral"),
"depth_adjustment" (number) and "reasoning" (one sentence).`

var analysisSchema = &llm.Schema{
	Name:        "feedback-analysis",
	Description: "Classification of learner feedback with a proposed depth adjustment",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"analysis": map[string]any{
				"type": "string",
				"enum": []any{"too_shallow", "too_difficult", "irrelevant", "poorly_worded", "neutral"},
			},
			"depth_adjustment": map[string]any{
				"type":    "number",
				"minimum": -0.5,
				"maximum": 0.5,
			},
			"reasoning": map[string]any{
				"type": "string",
			},
		},
		"required":             []any{"analysis", "depth_adjustment", "reasoning"},
		"additionalProperties": false,
	},
}

// Classifier interprets free-text feedback with a structured model call.
type Classifier struct {
	provider  llm.Provider
	maxTokens int
}

// NewClassifier builds a Classifier on top of the given provider.
func NewClassifier(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider, maxTokens: 256}
}

// Classify asks the model to interpret one feedback message.
func (c *Classifier) Classify(ctx context.Context, text string) (AnalysisResult, error) {
	ctx = llm.WithPurpose(ctx, "feedback-classify")

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: classifySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Learner feedback: " + text},
		},
		Schema:    analysisSchema,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return AnalysisResult{}, err
	}

	var payload struct {
		Analysis        string  `json:"analysis"`
		DepthAdjustment float64 `json:"depth_adjustment"`
		Reasoning       string  `json:"reasoning"`
	}
	if err := json.Unmarshal(resp.Content, &payload); err != nil {
		return AnalysisResult{}, &llm.ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	return AnalysisResult{
		Analysis:        payload.Analysis,
		DepthAdjustment: payload.DepthAdjustment,
		Reasoning:       payload.Reasoning,
	}, nil
}

var (
	shallowSignals    = []string{"too easy", "too simple", "too basic", "too shallow", "obvious", "not challenging"}
	difficultSignals  = []string{"too hard", "too difficult", "too complex", "confusing", "overwhelming", "too advanced"}
	irrelevantSignals = []string{"irrelevant", "off topic", "off-topic", "not related", "nothing to do with"}
	wordingSignals    = []string{"poorly worded", "badly worded", "wording", "typo", "grammar", "unclear"}
)

// heuristicClassify is the keyword fallback used when no model is
// available or the classification call fails.
func heuristicClassify(text string) AnalysisResult {
	lower := strings.ToLower(text)

	if matchesAny(lower, shallowSignals) {
		return AnalysisResult{
			Analysis:        "too_shallow",
			DepthAdjustment: maxAdjustment,
			Reasoning:       "feedback matched a low-challenge keyword",
		}
	}
	if matchesAny(lower, difficultSignals) {
		return AnalysisResult{
			Analysis:        "too_difficult",
			DepthAdjustment: -maxAdjustment,
			Reasoning:       "feedback matched a high-difficulty keyword",
		}
	}
	if matchesAny(lower, irrelevantSignals) {
		return AnalysisResult{
			Analysis:  "irrelevant",
			Reasoning: "feedback matched a relevance keyword",
		}
	}
	if matchesAny(lower, wordingSignals) {
		return AnalysisResult{
			Analysis:  "poorly_worded",
			Reasoning: "feedback matched a wording keyword",
		}
	}
	return AnalysisResult{
		Analysis:  "neutral",
		Reasoning: "no difficulty signal detected in the feedback",
	}
}

func matchesAny(text string, signals []string) bool {
	for _, s := range signals {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}
