// Command gopidgin translates text and documents between English and
// Hawaiian Pidgin.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	gopidgin "github.com/ZaguanLabs/gopidgin"
	"github.com/ZaguanLabs/gopidgin/cache"
	"github.com/ZaguanLabs/gopidgin/internal/config"
	"github.com/ZaguanLabs/gopidgin/lexicon"
	"github.com/ZaguanLabs/gopidgin/processor"
	"github.com/rs/zerolog"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = gopidgin.Version
	commit    = gopidgin.GitCommit
	buildDate = gopidgin.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gopidgin", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: gopidgin [flags] [text...]\n\n")
		fmt.Fprintf(stderr, "Translates the arguments, or -file, or stdin.\n\nFlags:\n")
		fs.PrintDefaults()
	}

	dirFlag := fs.String("dir", string(gopidgin.EnglishToPidgin), "Direction: eng-to-pidgin or pidgin-to-eng")
	lexPath := fs.String("lexicon", "", "Lexicon file (.json, .yaml, .db); default: built-in seed")
	inputFile := fs.String("file", "", "Read input from file instead of arguments/stdin")
	htmlMode := fs.Bool("html", false, "Treat input as an HTML document")
	linesMode := fs.Bool("lines", false, "Translate input line by line")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	showChunks := fs.Bool("chunks", false, "Show the chunk breakdown")
	cacheTTL := fs.Int("cache-ttl", 3600, "Cache TTL in seconds (0 to disable)")
	redisURL := fs.String("redis", "", "Redis URL for a shared result cache")
	cacheFile := fs.String("cache-file", "", "Load and save the in-memory cache at this JSON path")
	pronounce := fs.Bool("pronounce", false, "Show a pronunciation guide for the input")
	suggest := fs.Bool("suggest", false, "Suggest phrases starting with the input")
	diffFile := fs.String("diff", "", "Compare the lexicon with a previous lexicon file")
	showVersion := fs.Bool("version", false, "Show version")
	quiet := fs.Bool("quiet", false, "Suppress progress output")
	verbose := fs.Bool("v", false, "Debug logging")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", gopidgin.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}
	if *htmlMode && *linesMode {
		return fmt.Errorf("--html and --lines are mutually exclusive")
	}

	dir, err := gopidgin.ParseDirection(*dirFlag)
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := config.NewLogger(stderr, level)

	ctx := context.Background()
	engine, current, err := loadEngine(ctx, *lexPath, logger)
	if err != nil {
		return err
	}

	if *diffFile != "" {
		return runDiff(*diffFile, current, stdout, *jsonOutput)
	}

	input, inputName, err := readInput(fs.Args(), *inputFile)
	if err != nil {
		return err
	}

	idx, err := engine.Index()
	if err != nil {
		return err
	}
	if *pronounce {
		return runPronounce(idx, input, stdout, *jsonOutput)
	}
	if *suggest {
		return runSuggest(idx, input, dir, stdout, *jsonOutput)
	}

	opts := []gopidgin.TranslatorOption{
		gopidgin.WithProcessor(processor.NewHTMLProcessor()),
		gopidgin.WithProcessor(processor.NewTextProcessor()),
	}
	tc, saveCache, err := buildCache(*redisURL, *cacheTTL, *cacheFile, engine.Fingerprint(), logger)
	if err != nil {
		return err
	}
	if tc != nil {
		opts = append(opts, gopidgin.WithCache(tc))
	}
	translator := gopidgin.NewTranslator(engine, dir, opts...)

	var out io.Writer = stdout
	if *output != "" {
		f, err := os.Create(*output) // #nosec G304 - CLI tool writes user-specified files
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	start := time.Now()
	switch {
	case *htmlMode || *linesMode:
		contentType := "text"
		if *htmlMode {
			contentType = "html"
		}
		if !*quiet {
			fmt.Fprintf(stderr, "Translating %s (%s)...\n", inputName, dir)
		}
		result, err := translator.Process(ctx, input, contentType)
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		if err := writeDocument(out, stderr, result, time.Since(start), *jsonOutput, *quiet); err != nil {
			return err
		}
	default:
		result, err := translator.Translate(ctx, strings.TrimSpace(input))
		if err != nil {
			return fmt.Errorf("translation failed: %w", err)
		}
		if err := writeResult(out, result, time.Since(start), *jsonOutput, *showChunks); err != nil {
			return err
		}
	}

	return saveCache()
}

// loadEngine builds the engine from the lexicon at path.
func loadEngine(ctx context.Context, path string, logger zerolog.Logger) (*gopidgin.Engine, gopidgin.Lexicon, error) {
	src, closeSrc, err := lexicon.Open(path)
	if err != nil {
		return nil, gopidgin.Lexicon{}, fmt.Errorf("opening lexicon: %w", err)
	}
	defer closeSrc()

	lex, err := gopidgin.NewRetryableSource(src, gopidgin.DefaultRetryConfig()).Load(ctx)
	if err != nil {
		return nil, gopidgin.Lexicon{}, fmt.Errorf("loading lexicon: %w", err)
	}
	engine := gopidgin.NewEngine(gopidgin.WithLogger(logger))
	if err := engine.Load(lex); err != nil {
		return nil, gopidgin.Lexicon{}, fmt.Errorf("building lexicon index: %w", err)
	}
	return engine, lex, nil
}

// readInput returns the text to work on and a display name for it.
func readInput(args []string, path string) (string, string, error) {
	switch {
	case path != "":
		data, err := os.ReadFile(path) // #nosec G304 - CLI tool reads user-specified files
		if err != nil {
			return "", "", fmt.Errorf("reading file: %w", err)
		}
		return string(data), filepath.Base(path), nil
	case len(args) > 0:
		return strings.Join(args, " "), "arguments", nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), "stdin", nil
	}
}

// buildCache picks Redis, in-memory or no cache. The returned save function
// persists an in-memory cache to cacheFile, if one was given.
func buildCache(redisURL string, ttl int, cacheFile, fingerprint string, logger zerolog.Logger) (gopidgin.TranslationCache, func() error, error) {
	noop := func() error { return nil }

	if redisURL != "" {
		rc, err := cache.NewRedisCache(cache.RedisConfig{URL: redisURL, TTL: ttl, Logger: &logger})
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return rc, rc.Close, nil
	}
	if ttl <= 0 && cacheFile == "" {
		return nil, noop, nil
	}

	mc := cache.NewInMemoryCache(ttl)
	if cacheFile == "" {
		return mc, noop, nil
	}

	if _, err := os.Stat(cacheFile); err == nil {
		res, err := cache.NewImporter(mc, fingerprint).ImportFromFile(cacheFile)
		if err != nil {
			return nil, nil, fmt.Errorf("loading cache file: %w", err)
		}
		logger.Debug().Int("imported", res.Imported).Int("stale", res.Skipped).Msg("cache file loaded")
	}
	save := func() error {
		if err := cache.NewExporter(mc, fingerprint).ExportToFile(cacheFile, map[string]string{"fingerprint": fingerprint}); err != nil {
			return fmt.Errorf("saving cache file: %w", err)
		}
		return nil
	}
	return mc, save, nil
}

// JSONOutput is the -json shape of a single translation.
type JSONOutput struct {
	*gopidgin.TranslationResult
	ElapsedMs int64 `json:"elapsed_ms"`
}

func writeResult(w io.Writer, result *gopidgin.TranslationResult, elapsed time.Duration, jsonOut, chunks bool) error {
	if jsonOut {
		out := *result
		if !chunks {
			out.Chunks = nil
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(JSONOutput{TranslationResult: &out, ElapsedMs: elapsed.Milliseconds()})
	}

	fmt.Fprintln(w, result.Translation)
	fmt.Fprintf(w, "  confidence: %.2f (%s)\n", result.Confidence, result.Method)
	for _, alt := range result.Alternatives {
		fmt.Fprintf(w, "  alternative: %s\n", alt)
	}
	if chunks {
		for _, c := range result.Chunks {
			fmt.Fprintf(w, "  [%s] %q -> %q (%.2f)\n", c.Source, c.SourceText, c.TargetText, c.Confidence)
		}
	}
	return nil
}

// DocumentOutput is the -json shape of a processed document.
type DocumentOutput struct {
	Content         string  `json:"content"`
	TotalNodes      int     `json:"total_nodes"`
	TranslatedCount int     `json:"translated_count"`
	CachedCount     int     `json:"cached_count"`
	Confidence      float64 `json:"confidence"`
	ElapsedMs       int64   `json:"elapsed_ms"`
}

func writeDocument(w, stderr io.Writer, result *gopidgin.ProcessedContent, elapsed time.Duration, jsonOut, quiet bool) error {
	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(DocumentOutput{
			Content:         result.Content,
			TotalNodes:      result.TotalNodes,
			TranslatedCount: result.TranslatedCount,
			CachedCount:     result.CachedCount,
			Confidence:      result.Confidence,
			ElapsedMs:       elapsed.Milliseconds(),
		})
	}

	fmt.Fprint(w, result.Content)

	if !quiet {
		fmt.Fprintf(stderr, "\nDone in %v\n", elapsed.Round(time.Millisecond))
		fmt.Fprintf(stderr, "  Nodes found:  %d\n", result.TotalNodes)
		fmt.Fprintf(stderr, "  Translated:   %d\n", result.TranslatedCount)
		fmt.Fprintf(stderr, "  From cache:   %d\n", result.CachedCount)
		fmt.Fprintf(stderr, "  Confidence:   %.2f\n", result.Confidence)
	}
	return nil
}

func runPronounce(idx *gopidgin.Index, input string, stdout io.Writer, jsonOut bool) error {
	hints := idx.Pronunciations(input)
	if jsonOut {
		if hints == nil {
			hints = []gopidgin.Pronunciation{}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hints)
	}
	if len(hints) == 0 {
		fmt.Fprintln(stdout, "No known terms found.")
		return nil
	}
	fmt.Fprintln(stdout, gopidgin.FormatPronunciations(hints))
	return nil
}

func runSuggest(idx *gopidgin.Index, input string, dir gopidgin.Direction, stdout io.Writer, jsonOut bool) error {
	suggestions := idx.Suggest(input, dir, gopidgin.DefaultSuggestionLimit)
	if jsonOut {
		if suggestions == nil {
			suggestions = []gopidgin.Suggestion{}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}
	for _, s := range suggestions {
		fmt.Fprintf(stdout, "%s -> %s\n", s.Text, s.Target)
	}
	return nil
}

// runDiff compares the loaded lexicon with a previous lexicon file.
func runDiff(oldPath string, current gopidgin.Lexicon, stdout io.Writer, jsonOut bool) error {
	old, err := lexicon.ReadFile(oldPath)
	if err != nil {
		return fmt.Errorf("reading previous lexicon: %w", err)
	}

	diff := gopidgin.DiffLexicon(old.Entries, current.Entries)
	stats := diff.Stats()

	if jsonOut {
		type diffOutput struct {
			PreviousFile string   `json:"previous_file"`
			Added        int      `json:"added"`
			Removed      int      `json:"removed"`
			Modified     int      `json:"modified"`
			Unchanged    int      `json:"unchanged"`
			Changed      []string `json:"changed"`
		}
		out := diffOutput{
			PreviousFile: filepath.Base(oldPath),
			Added:        stats.Added,
			Removed:      stats.Removed,
			Modified:     stats.Modified,
			Unchanged:    stats.Unchanged,
			Changed:      diff.ChangedForms(),
		}
		if out.Changed == nil {
			out.Changed = []string{}
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(stdout, "Lexicon diff against %s\n\n", filepath.Base(oldPath))
	fmt.Fprintf(stdout, "Summary:\n")
	fmt.Fprintf(stdout, "  Unchanged: %d\n", stats.Unchanged)
	fmt.Fprintf(stdout, "  Added:     %d\n", stats.Added)
	fmt.Fprintf(stdout, "  Removed:   %d\n", stats.Removed)
	fmt.Fprintf(stdout, "  Modified:  %d\n", stats.Modified)

	if !diff.HasChanges() {
		fmt.Fprintf(stdout, "\nNo changes detected.\n")
		return nil
	}
	fmt.Fprintln(stdout)
	for _, e := range diff.Added {
		fmt.Fprintf(stdout, "  + %s = %s\n", e.PidginForm, strings.Join(e.EnglishMeanings, ", "))
	}
	for _, m := range diff.Modified {
		fmt.Fprintf(stdout, "  ~ %s: %s -> %s\n", m.New.PidginForm,
			strings.Join(m.Old.EnglishMeanings, ", "), strings.Join(m.New.EnglishMeanings, ", "))
	}
	for _, e := range diff.Removed {
		fmt.Fprintf(stdout, "  - %s\n", e.PidginForm)
	}
	return nil
}
