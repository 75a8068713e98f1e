package completion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/five82/flashcards/internal/state"
)

var (
	// ErrNoAPIKey is returned when a hosted backend has no API key.
	ErrNoAPIKey = errors.New("api key not set")
	// ErrEmptyResponse is returned when the backend answered with no text.
	ErrEmptyResponse = errors.New("backend returned an empty response")
	// ErrBackendUnavailable is returned while the circuit breaker is open.
	ErrBackendUnavailable = errors.New("backend temporarily unavailable")
)

// Completer turns a prompt into raw completion text. Any error is a backend
// failure; implementations never retry.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Func adapts a function to the Completer interface.
type Func func(ctx context.Context, prompt string) (string, error)

// Complete implements Completer.
func (f Func) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// WithTimeout bounds each call to d. A non-positive d returns next unchanged.
func WithTimeout(next Completer, d time.Duration) Completer {
	if d <= 0 {
		return next
	}
	return Func(func(ctx context.Context, prompt string) (string, error) {
		ctx, cancel := context.WithTimeout(ctx, d)
		defer cancel()
		out, err := next.Complete(ctx, prompt)
		if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("completion timed out after %s: %w", d, err)
		}
		return out, err
	})
}

// Instrument records the latency and outcome of every call in store.
func Instrument(next Completer, store *state.Store) Completer {
	if store == nil {
		return next
	}
	return Func(func(ctx context.Context, prompt string) (string, error) {
		start := time.Now()
		out, err := next.Complete(ctx, prompt)
		store.Record(time.Since(start), err)
		return out, err
	})
}
