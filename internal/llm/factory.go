package llm

import (
	"context"
	"fmt"
	"log/slog"
)

// NewProvider creates a Provider from configuration, wrapped with the
// standard middleware: caller → timeout → retry → logging → base.
// recorder and logger may be nil.
func NewProvider(ctx context.Context, cfg Config, recorder Recorder, logger *slog.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, cfg.Provider, recorder, logger)
	retried := WithRetry(logged, cfg.Retry)
	return WithTimeout(retried, cfg.Timeout), nil
}

// NewProviderFromEnv resolves configuration from the environment and builds
// a provider. It returns (nil, nil) when no provider is configured.
func NewProviderFromEnv(ctx context.Context, recorder Recorder, logger *slog.Logger) (Provider, error) {
	cfg, ok := ResolveConfig()
	if !ok {
		return nil, nil
	}
	return NewProvider(ctx, cfg, recorder, logger)
}
