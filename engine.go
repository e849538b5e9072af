package gopidgin

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultMaxAlternatives caps the alternatives returned on the chunking path.
const DefaultMaxAlternatives = 3

// LexiconSource supplies a complete lexicon, e.g. from a file or database.
type LexiconSource interface {
	Load(ctx context.Context) (Lexicon, error)
}

// Engine is the translation entry point. It owns the current Index and swaps
// it atomically on reload, so Translate never observes a half-built index.
// An Engine is safe for concurrent use.
type Engine struct {
	current         atomic.Pointer[Index]
	loadMu          sync.Mutex // serializes Load; readers never take it
	logger          zerolog.Logger
	maxAlternatives int
}

// EngineOption is a functional option for configuring the Engine.
type EngineOption func(*Engine)

// WithLogger sets the logger used for index builds and reloads.
func WithLogger(logger zerolog.Logger) EngineOption {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMaxAlternatives sets how many alternatives the chunking path returns.
func WithMaxAlternatives(n int) EngineOption {
	return func(e *Engine) {
		if n >= 0 {
			e.maxAlternatives = n
		}
	}
}

// NewEngine creates an Engine with no index. Translate returns ErrNotReady
// until Load succeeds.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger:          zerolog.Nop(),
		maxAlternatives: DefaultMaxAlternatives,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewEngineFromLexicon creates an Engine and loads lex into it.
func NewEngineFromLexicon(lex Lexicon, opts ...EngineOption) (*Engine, error) {
	e := NewEngine(opts...)
	if err := e.Load(lex); err != nil {
		return nil, err
	}
	return e, nil
}

// Load builds a new index from lex and publishes it. On error the previous
// index, if any, stays in service.
func (e *Engine) Load(lex Lexicon) error {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	start := time.Now()
	idx, err := BuildIndex(lex)
	if err != nil {
		e.logger.Error().Err(err).Msg("lexicon rejected")
		return err
	}

	stats := idx.Stats()
	event := e.logger.Info().
		Str("fingerprint", idx.Fingerprint()).
		Int("entries", stats.Entries).
		Int("phrases", stats.Phrases).
		Int("sentences", stats.Sentences).
		Dur("build", time.Since(start))

	if prev := e.current.Load(); prev != nil {
		diff := DiffLexicon(prev.Entries(), idx.Entries())
		ds := diff.Stats()
		event = event.
			Str("previous", prev.Fingerprint()).
			Int("added", ds.Added).
			Int("removed", ds.Removed).
			Int("modified", ds.Modified)
	}

	e.current.Store(idx)
	event.Msg("lexicon index published")
	return nil
}

// LoadFrom reads a lexicon from src and loads it.
func (e *Engine) LoadFrom(ctx context.Context, src LexiconSource) error {
	lex, err := src.Load(ctx)
	if err != nil {
		e.logger.Error().Err(err).Msg("lexicon source failed")
		return err
	}
	return e.Load(lex)
}

// Ready reports whether an index has been published.
func (e *Engine) Ready() bool {
	return e.current.Load() != nil
}

// Index returns the published index.
func (e *Engine) Index() (*Index, error) {
	idx := e.current.Load()
	if idx == nil {
		return nil, &NotReadyError{Op: "index"}
	}
	return idx, nil
}

// Fingerprint identifies the published lexicon, or "" before the first load.
func (e *Engine) Fingerprint() string {
	if idx := e.current.Load(); idx != nil {
		return idx.Fingerprint()
	}
	return ""
}

// Translate translates text in the given direction.
//
// It fails only when no index has been loaded or dir is unknown. Unknown
// words are not errors: they pass through with zero confidence.
func (e *Engine) Translate(text string, dir Direction) (*TranslationResult, error) {
	idx := e.current.Load()
	if idx == nil {
		return nil, &NotReadyError{Op: "translate"}
	}
	if !dir.Valid() {
		return nil, &DirectionError{Value: string(dir)}
	}
	return idx.Translate(text, dir, e.maxAlternatives), nil
}

// Translate runs the pipeline against this index: exact match, then
// chunking, grammar normalization and confidence aggregation.
func (idx *Index) Translate(text string, dir Direction, maxAlternatives int) *TranslationResult {
	if strings.TrimSpace(text) == "" {
		return &TranslationResult{
			Method:       MethodExactSentenceMatch,
			Direction:    dir,
			Alternatives: []string{},
		}
	}

	if res, ok := idx.ResolveExact(text, dir); ok {
		return res
	}

	chunks := idx.Chunk(text, dir)
	translation := NormalizeSentence(Assemble(chunks), text, dir)
	confidence, variants := Aggregate(chunks)

	alternatives := []string{}
	seen := map[string]bool{translation: true}
	for _, v := range variants {
		if len(alternatives) >= maxAlternatives {
			break
		}
		alt := NormalizeSentence(v, text, dir)
		if seen[alt] {
			continue
		}
		seen[alt] = true
		alternatives = append(alternatives, alt)
	}

	res := &TranslationResult{
		Translation:  translation,
		Confidence:   confidence,
		Method:       MethodSentenceChunking,
		Direction:    dir,
		Alternatives: alternatives,
		Chunks:       chunks,
	}
	for _, c := range chunks {
		if c.Category != "" {
			res.Category = c.Category
			res.Difficulty = c.Difficulty
			break
		}
	}
	return res
}
