package llm

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// NewProvider builds the configured provider wrapped in logging and
// retry middleware, so every caller gets backoff and request logs for
// free.
func NewProvider(ctx context.Context, cfg Config, log *zap.Logger) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
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

	// caller → retry → logging → base
	return WithRetry(WithLogging(base, log), cfg.Retry), nil
}

// NewProviderFromEnv builds a provider from environment configuration.
// STUDYGROUP_-prefixed variables win; the bare API key variables
// (GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY,
// OPENROUTER_API_KEY) are probed as a fallback.
func NewProviderFromEnv(ctx context.Context, log *zap.Logger) (Provider, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		discovered, ok := DiscoverConfig()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return NewProvider(ctx, cfg, log)
}

// expandAlias maps a friendly model name through the provider's alias
// table; unlisted names pass through so exact model IDs keep working.
func expandAlias(name string, aliases map[string]string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}
