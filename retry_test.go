package gopidgin

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(max int) RetryConfig {
	return RetryConfig{
		MaxRetries: max,
		BaseDelay:  5 * time.Millisecond,
		MaxDelay:   20 * time.Millisecond,
	}
}

func TestWithRetry_Success(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), fastRetry(3), func() (string, error) {
		callCount++
		return "pau", nil
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if result != "pau" {
		t.Errorf("Expected 'pau', got %q", result)
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call, got %d", callCount)
	}
}

func TestWithRetry_RetryableStoreError(t *testing.T) {
	callCount := 0
	result, err := WithRetry(context.Background(), fastRetry(3), func() (int, error) {
		callCount++
		if callCount < 3 {
			return 0, &StoreError{Message: "database is locked", Retryable: true}
		}
		return 42, nil
	})

	if err != nil {
		t.Fatalf("Expected no error after retries, got: %v", err)
	}
	if result != 42 {
		t.Errorf("Expected 42, got %d", result)
	}
	if callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", callCount)
	}
}

func TestWithRetry_NonRetryableError(t *testing.T) {
	callCount := 0
	_, err := WithRetry(context.Background(), fastRetry(3), func() (string, error) {
		callCount++
		return "", &StoreError{Message: "no such table", Retryable: false}
	})

	if err == nil {
		t.Fatal("Expected error for non-retryable error")
	}
	if callCount != 1 {
		t.Errorf("Expected 1 call for non-retryable error, got %d", callCount)
	}
}

func TestWithRetry_MaxRetriesExceeded(t *testing.T) {
	callCount := 0
	_, err := WithRetry(context.Background(), fastRetry(2), func() (string, error) {
		callCount++
		return "", &CacheError{Message: "connection refused", Retryable: true}
	})

	if err == nil {
		t.Fatal("Expected error after max retries")
	}

	// Initial attempt + 2 retries = 3 calls
	if callCount != 3 {
		t.Errorf("Expected 3 calls (1 + 2 retries), got %d", callCount)
	}
}

func TestWithRetry_ContextCanceled(t *testing.T) {
	cfg := RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(30 * time.Millisecond)
		cancel()
	}()

	_, err := WithRetry(ctx, cfg, func() (string, error) {
		return "", &StoreError{Message: "busy", Retryable: true}
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got: %v", err)
	}
}

func TestRetryConfig_Backoff(t *testing.T) {
	cfg := RetryConfig{BaseDelay: 100 * time.Millisecond, MaxDelay: 350 * time.Millisecond}

	want := []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 350 * time.Millisecond, 350 * time.Millisecond}
	for attempt, w := range want {
		if got := cfg.backoff(attempt); got != w {
			t.Errorf("backoff(%d) = %v, want %v", attempt, got, w)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"nil error", nil, false},
		{"retryable store error", &StoreError{Retryable: true}, true},
		{"non-retryable store error", &StoreError{Retryable: false}, false},
		{"retryable cache error", &CacheError{Retryable: true}, true},
		{"lexicon error", &LexiconError{Kind: "entry"}, false},
		{"not ready", &NotReadyError{}, false},
		{"generic error", errors.New("some error"), false},
		{"context canceled", context.Canceled, false},
		{"context deadline", context.DeadlineExceeded, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsRetryable(tt.err)
			if result != tt.expected {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, result, tt.expected)
			}
		})
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()

	if cfg.MaxRetries != 3 {
		t.Errorf("Expected MaxRetries 3, got %d", cfg.MaxRetries)
	}
	if cfg.BaseDelay != 200*time.Millisecond {
		t.Errorf("Expected BaseDelay 200ms, got %v", cfg.BaseDelay)
	}
	if cfg.MaxDelay != 5*time.Second {
		t.Errorf("Expected MaxDelay 5s, got %v", cfg.MaxDelay)
	}
}

type flakySource struct {
	failCount int
	callCount int
}

func (s *flakySource) Load(ctx context.Context) (Lexicon, error) {
	s.callCount++
	if s.callCount <= s.failCount {
		return Lexicon{}, &StoreError{Message: "database is locked", Retryable: true}
	}
	return testLexicon(), nil
}

func TestRetryableSource(t *testing.T) {
	inner := &flakySource{failCount: 2}
	src := NewRetryableSource(inner, fastRetry(3))

	lex, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Expected success after retries, got: %v", err)
	}
	if len(lex.Entries) == 0 {
		t.Error("Expected entries from source")
	}
	if inner.callCount != 3 {
		t.Errorf("Expected 3 calls, got %d", inner.callCount)
	}

	engine := NewEngine()
	if err := engine.LoadFrom(context.Background(), NewRetryableSource(&flakySource{failCount: 1}, fastRetry(2))); err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if !engine.Ready() {
		t.Error("Expected engine to be ready after LoadFrom")
	}
}
