package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	gopidgin "github.com/ZaguanLabs/gopidgin"
	"github.com/ZaguanLabs/gopidgin/processor"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
)

// Handlers implements the MCP tools over one engine.
type Handlers struct {
	engine      *gopidgin.Engine
	translators map[gopidgin.Direction]*gopidgin.Translator
	direction   gopidgin.Direction
	limiter     *gopidgin.RateLimiter
	logger      zerolog.Logger
}

// Option configures Handlers.
type Option func(*handlerConfig)

type handlerConfig struct {
	cache     gopidgin.TranslationCache
	limiter   *gopidgin.RateLimiter
	logger    zerolog.Logger
	direction gopidgin.Direction
}

// WithCache shares cache between both directions' translators.
func WithCache(cache gopidgin.TranslationCache) Option {
	return func(c *handlerConfig) { c.cache = cache }
}

// WithRateLimiter rejects tool calls once the limiter is drained.
func WithRateLimiter(l *gopidgin.RateLimiter) Option {
	return func(c *handlerConfig) { c.limiter = l }
}

// WithLogger sets the request logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *handlerConfig) { c.logger = logger }
}

// WithDirection sets the direction used when a call names none.
func WithDirection(d gopidgin.Direction) Option {
	return func(c *handlerConfig) { c.direction = d }
}

// NewHandlers creates the tool handlers.
func NewHandlers(engine *gopidgin.Engine, opts ...Option) *Handlers {
	cfg := handlerConfig{
		logger:    zerolog.Nop(),
		direction: gopidgin.EnglishToPidgin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &Handlers{
		engine:      engine,
		translators: make(map[gopidgin.Direction]*gopidgin.Translator, 2),
		direction:   cfg.direction,
		limiter:     cfg.limiter,
		logger:      cfg.logger,
	}
	for _, dir := range []gopidgin.Direction{gopidgin.EnglishToPidgin, gopidgin.PidginToEnglish} {
		topts := []gopidgin.TranslatorOption{gopidgin.WithProcessor(processor.NewHTMLProcessor())}
		if cfg.cache != nil {
			topts = append(topts, gopidgin.WithCache(cfg.cache))
		}
		h.translators[dir] = gopidgin.NewTranslator(engine, dir, topts...)
	}
	return h
}

// begin assigns a request id and applies the rate limit.
func (h *Handlers) begin(tool string) (zerolog.Logger, *mcp.CallToolResult) {
	logger := h.logger.With().Str("request_id", uuid.New().String()).Str("tool", tool).Logger()
	if h.limiter != nil && !h.limiter.TryAcquire() {
		logger.Warn().Msg("rate limit exceeded")
		return logger, mcp.NewToolResultError("rate limit exceeded, try again shortly")
	}
	logger.Debug().Msg("tool call")
	return logger, nil
}

func (h *Handlers) requestDirection(request mcp.CallToolRequest) (gopidgin.Direction, error) {
	raw := request.GetString("direction", "")
	if raw == "" {
		return h.direction, nil
	}
	return gopidgin.ParseDirection(raw)
}

// index returns the published index or a tool error for callers.
func (h *Handlers) index() (*gopidgin.Index, *mcp.CallToolResult) {
	idx, err := h.engine.Index()
	if err != nil {
		return nil, mcp.NewToolResultError(err.Error())
	}
	return idx, nil
}

// Translate handles the translate tool.
func (h *Handlers) Translate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger, limited := h.begin("translate")
	if limited != nil {
		return limited, nil
	}

	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	dir, err := h.requestDirection(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := h.translators[dir].Translate(ctx, text)
	if err != nil {
		logger.Error().Err(err).Msg("translate failed")
		return mcp.NewToolResultError(fmt.Sprintf("translation failed: %v", err)), nil
	}

	out := *res
	if !request.GetBool("include_chunks", false) {
		out.Chunks = nil
	}
	logger.Debug().Float64("confidence", out.Confidence).Str("method", string(out.Method)).Msg("translated")
	return jsonResult(out)
}

// TranslateHTML handles the translate_html tool.
func (h *Handlers) TranslateHTML(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger, limited := h.begin("translate_html")
	if limited != nil {
		return limited, nil
	}

	content, err := request.RequireString("html")
	if err != nil {
		return mcp.NewToolResultError("html argument is required and must be a string"), nil
	}
	dir, err := h.requestDirection(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, err := h.translators[dir].ProcessHTML(ctx, content)
	if err != nil {
		logger.Error().Err(err).Msg("html translation failed")
		return mcp.NewToolResultError(fmt.Sprintf("html translation failed: %v", err)), nil
	}
	return jsonResult(res)
}

// Pronounce handles the pronounce tool.
func (h *Handlers) Pronounce(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, limited := h.begin("pronounce"); limited != nil {
		return limited, nil
	}

	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	idx, notReady := h.index()
	if notReady != nil {
		return notReady, nil
	}

	hints := idx.Pronunciations(text)
	if hints == nil {
		hints = []gopidgin.Pronunciation{}
	}
	guide, _ := idx.Pronunciation(text)
	return jsonResult(map[string]interface{}{
		"guide": guide,
		"terms": hints,
		"text":  gopidgin.FormatPronunciations(hints),
	})
}

// Suggest handles the suggest tool.
func (h *Handlers) Suggest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, limited := h.begin("suggest"); limited != nil {
		return limited, nil
	}

	prefix, err := request.RequireString("prefix")
	if err != nil {
		return mcp.NewToolResultError("prefix argument is required and must be a string"), nil
	}
	dir, err := h.requestDirection(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	idx, notReady := h.index()
	if notReady != nil {
		return notReady, nil
	}

	suggestions := idx.Suggest(prefix, dir, request.GetInt("limit", gopidgin.DefaultSuggestionLimit))
	if suggestions == nil {
		suggestions = []gopidgin.Suggestion{}
	}
	return jsonResult(map[string]interface{}{"suggestions": suggestions})
}

// Lookup handles the lookup tool.
func (h *Handlers) Lookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, limited := h.begin("lookup"); limited != nil {
		return limited, nil
	}

	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	dir, err := h.requestDirection(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	idx, notReady := h.index()
	if notReady != nil {
		return notReady, nil
	}

	out := make(map[string][]gopidgin.TranslationCandidate, 3)
	for _, g := range []gopidgin.Granularity{gopidgin.GranularityWord, gopidgin.GranularityPhrase, gopidgin.GranularitySentence} {
		if cands := idx.Lookup(dir, g, text); len(cands) > 0 {
			out[g.String()] = cands
		}
	}
	return jsonResult(map[string]interface{}{"direction": dir, "candidates": out})
}

// IsSentence handles the is_sentence tool.
func (h *Handlers) IsSentence(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, limited := h.begin("is_sentence"); limited != nil {
		return limited, nil
	}

	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}
	return jsonResult(map[string]bool{"is_sentence": gopidgin.IsSentence(text)})
}

// LexiconInfo handles the lexicon_info tool.
func (h *Handlers) LexiconInfo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if _, limited := h.begin("lexicon_info"); limited != nil {
		return limited, nil
	}

	idx, notReady := h.index()
	if notReady != nil {
		return notReady, nil
	}
	stats := idx.Stats()
	return jsonResult(map[string]interface{}{
		"fingerprint": idx.Fingerprint(),
		"entries":     stats.Entries,
		"phrases":     stats.Phrases,
		"sentences":   stats.Sentences,
		"categories":  idx.Categories(),
	})
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
