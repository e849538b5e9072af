package gopidgin

import (
	"errors"
	"fmt"
)

// ErrNotReady is returned when Translate is called before an index is published.
var ErrNotReady = errors.New("translation engine not ready: lexicon index has not been built")

// NotReadyError wraps ErrNotReady with the operation that was refused.
type NotReadyError struct {
	Op string
}

func (e *NotReadyError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %v", e.Op, ErrNotReady)
	}
	return ErrNotReady.Error()
}

func (e *NotReadyError) Unwrap() error {
	return ErrNotReady
}

// LexiconError describes one malformed lexicon record found at build time.
type LexiconError struct {
	Kind    string // "entry", "phrase" or "sentence"
	Index   int    // Position within its source slice
	Field   string
	Message string
}

func (e *LexiconError) Error() string {
	return fmt.Sprintf("lexicon %s %d: %s: %s", e.Kind, e.Index, e.Field, e.Message)
}

// DirectionError indicates an unknown translation direction.
type DirectionError struct {
	Value string
}

func (e *DirectionError) Error() string {
	return fmt.Sprintf("unknown translation direction %q (want %q or %q)", e.Value, EnglishToPidgin, PidginToEnglish)
}

// StoreError indicates a lexicon store failure (open, query, decode).
type StoreError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// CacheError indicates a cache operation failure.
type CacheError struct {
	Message   string
	Cause     error
	Retryable bool
}

func (e *CacheError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cache error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("cache error: %s", e.Message)
}

func (e *CacheError) Unwrap() error {
	return e.Cause
}

// ProcessorError indicates a content processing failure (parse error, etc.).
type ProcessorError struct {
	Message     string
	Cause       error
	ContentType string // The type of content that failed to process
}

func (e *ProcessorError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("processor error (%s): %s: %v", e.ContentType, e.Message, e.Cause)
	}
	return fmt.Sprintf("processor error (%s): %s", e.ContentType, e.Message)
}

func (e *ProcessorError) Unwrap() error {
	return e.Cause
}
