package quizgen

import "github.com/abhisek/quizforge/internal/llm"

// questionProperties is the shared JSON schema for a single question object.
var questionProperties = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"question": map[string]any{
			"type":        "string",
			"description": "The question text shown to the learner",
		},
		"options": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Exactly 4 answer options, one correct",
		},
		"correct_option": map[string]any{
			"type":        "integer",
			"minimum":     0,
			"maximum":     3,
			"description": "Index of the correct option (0-3, A-D)",
		},
		"explanation": map[string]any{
			"type":        "string",
			"description": "Detailed rationale for the correct answer",
		},
	},
	"required":             []any{"question", "options", "correct_option", "explanation"},
	"additionalProperties": false,
}

// QuestionBatchSchema is the structured-output schema for generation calls:
// a JSON array of question objects.
var QuestionBatchSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A batch of multiple-choice quiz questions derived from source text",
	Definition: map[string]any{
		"type":  "array",
		"items": questionProperties,
	},
}

// QuestionSchema is the structured-output schema for improvement calls:
// a single revised question object.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single revised multiple-choice quiz question",
	Definition:  questionProperties,
}
