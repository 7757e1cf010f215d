package quizgen

import "fmt"

// InsufficientInputError indicates the source text fails the minimum-length
// precondition. It is fatal and never retried.
type InsufficientInputError struct {
	Length int
	Min    int
}

func (e *InsufficientInputError) Error() string {
	return fmt.Sprintf("source text too short to generate meaningful questions: %d chars (minimum %d)", e.Length, e.Min)
}

// ParseError indicates no well-formed question payload could be located in
// the model output. Counted against the generation retry budget.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse model response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse model response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationReason enumerates why a draft failed structural validation.
type ValidationReason string

const (
	ReasonMissingField       ValidationReason = "missing_field"
	ReasonWrongOptionCount   ValidationReason = "wrong_option_count"
	ReasonInvalidAnswerIndex ValidationReason = "invalid_answer_index"
)

// ValidationError describes a single draft's structural failure.
// Invalid drafts are dropped from the batch; the error only reaches the
// caller when an entire batch ends up empty.
type ValidationError struct {
	Reason  ValidationReason
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question (%s): %s", e.Reason, e.Message)
}

// GenerationExhaustedError indicates the whole-chain retry budget ran out.
// Fatal for the batch: no partial results accompany it.
type GenerationExhaustedError struct {
	Attempts int
	LastErr  error
}

func (e *GenerationExhaustedError) Error() string {
	return fmt.Sprintf("question generation failed after %d attempts: %v", e.Attempts, e.LastErr)
}

func (e *GenerationExhaustedError) Unwrap() error { return e.LastErr }
