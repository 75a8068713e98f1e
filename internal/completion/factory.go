package completion

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/flashcards/internal/config"
	"github.com/five82/flashcards/internal/state"
)

// Backend builds the bare completer for cfg.Provider.
func Backend(ctx context.Context, cfg config.Config) (Completer, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		key := cfg.APIKey()
		if key == "" {
			return nil, fmt.Errorf("openai: %w (set %s)", ErrNoAPIKey, cfg.APIKeyEnv)
		}
		return NewOpenAI(key, cfg.Model, cfg.BaseURL), nil
	case config.ProviderGemini:
		key := cfg.APIKey()
		if key == "" {
			return nil, fmt.Errorf("gemini: %w (set %s)", ErrNoAPIKey, cfg.APIKeyEnv)
		}
		return NewGemini(ctx, key, cfg.Model, cfg.BaseURL)
	case config.ProviderOllama:
		return NewOllama(cfg.BaseURL, cfg.Model)
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}

// Build returns the backend for cfg wrapped with a per-call timeout, the
// circuit breaker and health recording into store.
func Build(ctx context.Context, cfg config.Config, store *state.Store, logger *slog.Logger) (Completer, error) {
	base, err := Backend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Wrap(base, cfg, store, logger), nil
}

// Wrap applies the timeout, breaker and instrumentation layers to base.
func Wrap(base Completer, cfg config.Config, store *state.Store, logger *slog.Logger) Completer {
	c := WithTimeout(base, cfg.Timeout)
	c = WithBreaker(c, cfg.BreakerFailures, cfg.BreakerCooldown, logger)
	return Instrument(c, store)
}
