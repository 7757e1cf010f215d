package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration.
// The returned provider is wrapped with retry and, when sink is non-nil,
// event logging middleware.
func NewProvider(ctx context.Context, cfg Config, sink EventSink) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "deepseek":
		base, err = NewDeepSeekProvider(cfg.DeepSeek)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller -> retry -> logging -> timeout -> base.
	// The timeout sits inside retry so each attempt gets a fresh budget.
	wrapped := WithTimeout(base, cfg.Timeout)
	if sink != nil {
		wrapped = WithLogging(wrapped, sink)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}
