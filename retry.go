package gopidgin

import (
	"context"
	"errors"
	"time"
)

// RetryConfig holds configuration for retry behavior.
type RetryConfig struct {
	MaxRetries int           // Maximum number of retry attempts
	BaseDelay  time.Duration // Initial delay between retries
	MaxDelay   time.Duration // Maximum delay between retries
}

// DefaultRetryConfig returns sensible defaults for retry behavior.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries: 3,
		BaseDelay:  200 * time.Millisecond,
		MaxDelay:   5 * time.Second,
	}
}

// backoff returns the delay before retry number attempt (zero-based).
func (c RetryConfig) backoff(attempt int) time.Duration {
	delay := c.BaseDelay << attempt
	if delay <= 0 || (c.MaxDelay > 0 && delay > c.MaxDelay) {
		return c.MaxDelay
	}
	return delay
}

// RetryFunc is a function that can be retried.
type RetryFunc[T any] func() (T, error)

// WithRetry runs fn until it succeeds, returns a non-retryable error, or
// MaxRetries retries are spent. Delays grow exponentially up to MaxDelay.
func WithRetry[T any](ctx context.Context, cfg RetryConfig, fn RetryFunc[T]) (T, error) {
	var zero T
	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		if !IsRetryable(err) || attempt >= cfg.MaxRetries {
			return zero, err
		}

		timer := time.NewTimer(cfg.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}
}

// IsRetryable checks if an error is retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	// Context errors are not retryable
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Retryable
	}

	var cacheErr *CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.Retryable
	}

	return false
}

// RetryableSource wraps a LexiconSource with retry logic.
type RetryableSource struct {
	source LexiconSource
	config RetryConfig
}

// NewRetryableSource creates a lexicon source that retries transient failures.
func NewRetryableSource(source LexiconSource, cfg RetryConfig) *RetryableSource {
	return &RetryableSource{
		source: source,
		config: cfg,
	}
}

// Load implements LexiconSource with retry logic.
func (s *RetryableSource) Load(ctx context.Context) (Lexicon, error) {
	return WithRetry(ctx, s.config, func() (Lexicon, error) {
		return s.source.Load(ctx)
	})
}
