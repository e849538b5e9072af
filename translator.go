package gopidgin

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Translator binds an Engine to one direction and adds result caching and
// document processing on top of it.
type Translator struct {
	engine            *Engine
	direction         Direction
	cache             TranslationCache
	processors        map[string]ContentProcessor
	parallelThreshold int // Minimum nodes to trigger parallel cache lookup
}

// TranslationCache is the interface for translation caching.
type TranslationCache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}

// ContentProcessor is the interface for content processing.
type ContentProcessor interface {
	Extract(content string) (interface{}, []TextNode, error)
	Apply(parsed interface{}, nodes []TextNode, translations map[string]string) (string, error)
	ContentType() string
}

// TranslatorOption is a functional option for configuring the Translator.
type TranslatorOption func(*Translator)

// WithCache sets the translation cache.
func WithCache(cache TranslationCache) TranslatorOption {
	return func(t *Translator) {
		t.cache = cache
	}
}

// WithProcessor registers a content processor.
func WithProcessor(processor ContentProcessor) TranslatorOption {
	return func(t *Translator) {
		t.processors[processor.ContentType()] = processor
	}
}

// WithParallelThreshold sets the minimum batch size for parallel cache lookups.
func WithParallelThreshold(n int) TranslatorOption {
	return func(t *Translator) {
		t.parallelThreshold = n
	}
}

// NewTranslator creates a Translator for one direction over engine.
func NewTranslator(engine *Engine, dir Direction, opts ...TranslatorOption) *Translator {
	t := &Translator{
		engine:            engine,
		direction:         dir,
		processors:        make(map[string]ContentProcessor),
		parallelThreshold: 5,
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Translate translates a single text, consulting the cache first.
func (t *Translator) Translate(ctx context.Context, text string) (*TranslationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key := t.cacheKey(HashText(text))
	if res, ok := t.cached(key); ok {
		return res, nil
	}

	res, err := t.engine.Translate(text, t.direction)
	if err != nil {
		return nil, err
	}
	t.store(key, res)
	return res, nil
}

// Process translates content of the specified type.
func (t *Translator) Process(ctx context.Context, content string, contentType string) (*ProcessedContent, error) {
	processor, ok := t.processors[contentType]
	if !ok {
		return nil, &ProcessorError{
			Message:     "no processor registered for content type",
			ContentType: contentType,
		}
	}

	// Extract text nodes
	parsed, nodes, err := processor.Extract(content)
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return &ProcessedContent{Content: content}, nil
	}

	results, cachedCount, translatedCount, err := t.translateNodes(ctx, nodes)
	if err != nil {
		return nil, err
	}

	translations := make(map[string]string, len(results))
	for hash, res := range results {
		translations[hash] = res.Translation
	}

	sum := 0.0
	for _, node := range nodes {
		if res, ok := results[node.Hash]; ok {
			sum += res.Confidence
		}
	}

	// Apply translations
	out, err := processor.Apply(parsed, nodes, translations)
	if err != nil {
		return nil, err
	}

	if contentType == "html" {
		out = t.setHTMLAttributes(out)
	}

	return &ProcessedContent{
		Content:         out,
		TranslatedCount: translatedCount,
		CachedCount:     cachedCount,
		TotalNodes:      len(nodes),
		Confidence:      sum / float64(len(nodes)),
	}, nil
}

// ProcessHTML is a convenience method for processing HTML content.
func (t *Translator) ProcessHTML(ctx context.Context, html string) (*ProcessedContent, error) {
	return t.Process(ctx, html, "html")
}

// translateNodes translates nodes by hash, using the cache where possible.
func (t *Translator) translateNodes(ctx context.Context, nodes []TextNode) (map[string]*TranslationResult, int, int, error) {
	var (
		results map[string]*TranslationResult
		misses  []TextNode
	)
	if t.cache != nil && len(nodes) >= t.parallelThreshold {
		results, misses = ParallelCacheLookup(t.cache, nodes, t.direction, t.engine.Fingerprint())
	} else {
		results, misses = t.sequentialLookup(nodes)
	}

	cachedCount := 0
	for _, node := range nodes {
		if _, ok := results[node.Hash]; ok {
			cachedCount++
		}
	}

	translatedCount := 0
	for _, node := range misses {
		if err := ctx.Err(); err != nil {
			return nil, 0, 0, err
		}
		res, err := t.engine.Translate(node.Text, t.direction)
		if err != nil {
			return nil, 0, 0, err
		}
		results[node.Hash] = res
		t.store(t.cacheKey(node.Hash), res)
		translatedCount++
	}

	return results, cachedCount, translatedCount, nil
}

// sequentialLookup checks the cache node by node and dedupes misses.
func (t *Translator) sequentialLookup(nodes []TextNode) (map[string]*TranslationResult, []TextNode) {
	results := make(map[string]*TranslationResult)
	seen := make(map[string]bool)
	var misses []TextNode

	for _, node := range nodes {
		if seen[node.Hash] {
			continue
		}
		seen[node.Hash] = true
		if res, ok := t.cached(t.cacheKey(node.Hash)); ok {
			results[node.Hash] = res
			continue
		}
		misses = append(misses, node)
	}
	return results, misses
}

func (t *Translator) cacheKey(hash string) string {
	return CacheKey(hash, t.direction, t.engine.Fingerprint())
}

func (t *Translator) cached(key string) (*TranslationResult, bool) {
	if t.cache == nil {
		return nil, false
	}
	raw, ok := t.cache.Get(key)
	if !ok {
		return nil, false
	}
	return decodeResult(raw)
}

func (t *Translator) store(key string, res *TranslationResult) {
	if t.cache == nil {
		return
	}
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := t.cache.Set(key, string(data)); err != nil {
		t.engine.logger.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func decodeResult(raw string) (*TranslationResult, bool) {
	var res TranslationResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		return nil, false
	}
	if res.Alternatives == nil {
		res.Alternatives = []string{}
	}
	return &res, true
}

// setHTMLAttributes sets the lang attribute on the <html> tag.
func (t *Translator) setHTMLAttributes(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	htmlTag := doc.Find("html")
	if htmlTag.Length() > 0 {
		htmlTag.SetAttr("lang", t.direction.TargetLang())
	}

	result, err := doc.Html()
	if err != nil {
		return html
	}

	return result
}

// Direction returns the translation direction.
func (t *Translator) Direction() Direction {
	return t.direction
}

// Engine returns the underlying engine.
func (t *Translator) Engine() *Engine {
	return t.engine
}
