package quizgen

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// MaxRetries is the number of end-to-end build→call→parse→validate
	// attempts before giving up with GenerationExhaustedError.
	MaxRetries int

	// RetryWait is the fixed delay between attempts.
	RetryWait time.Duration

	// MinSourceChars is the minimum source text length. Shorter input
	// fails immediately with InsufficientInputError, bypassing retries.
	MinSourceChars int

	// MaxSourceChars caps the source text embedded in the prompt to stay
	// within model context limits.
	MaxSourceChars int

	// MaxExcerptChars caps the source excerpt in improvement prompts.
	MaxExcerptChars int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns a Config with the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxRetries:      3,
		RetryWait:       2 * time.Second,
		MinSourceChars:  50,
		MaxSourceChars:  6000,
		MaxExcerptChars: 1000,
		MaxTokens:       2048,
		Temperature:     0.7,
	}
}
