// Command pidgin-mcp serves the translation engine over MCP, on stdio or
// streamable HTTP. SIGHUP reloads the lexicon without dropping requests.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gopidgin "github.com/ZaguanLabs/gopidgin"
	"github.com/ZaguanLabs/gopidgin/cache"
	"github.com/ZaguanLabs/gopidgin/internal/config"
	"github.com/ZaguanLabs/gopidgin/internal/mcpserver"
	"github.com/ZaguanLabs/gopidgin/lexicon"
	mcpgo "github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := cfg.Logger()

	if err := serve(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}

func serve(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := gopidgin.NewEngine(
		gopidgin.WithLogger(logger),
		gopidgin.WithMaxAlternatives(cfg.MaxAlternatives),
	)
	if err := reload(ctx, engine, cfg.LexiconPath); err != nil {
		return err
	}

	opts := []mcpserver.Option{
		mcpserver.WithLogger(logger),
		mcpserver.WithDirection(cfg.Direction),
		mcpserver.WithRateLimiter(gopidgin.NewRateLimiter(gopidgin.RateLimitConfig{
			RequestsPerMinute: cfg.RateLimitRPM,
			BurstSize:         cfg.RateLimitBurst,
		})),
	}
	switch {
	case cfg.RedisURL != "":
		rc, err := cache.NewRedisCache(cache.RedisConfig{
			URL:       cfg.RedisURL,
			TTL:       cfg.CacheTTLSeconds(),
			KeyPrefix: cfg.RedisPrefix,
			Logger:    &logger,
		})
		if err != nil {
			return fmt.Errorf("connecting to redis: %w", err)
		}
		defer rc.Close()
		opts = append(opts, mcpserver.WithCache(rc))
	case cfg.CacheTTL > 0:
		mc := cache.NewInMemoryCache(cfg.CacheTTLSeconds())
		opts = append(opts, mcpserver.WithCache(mc))
		go pruneLoop(ctx, mc, engine, cfg.CacheTTL, logger)
	}

	go watchReload(ctx, engine, cfg.LexiconPath, logger)

	server := mcpserver.NewServer(gopidgin.Name, gopidgin.FullVersion(), mcpserver.NewHandlers(engine, opts...))

	if cfg.HTTPAddr == "" {
		logger.Info().Msg("serving MCP on stdio")
		errCh := make(chan error, 1)
		go func() { errCh <- mcpgo.ServeStdio(server) }()
		select {
		case <-ctx.Done():
			logger.Info().Msg("shutdown signal received")
			return nil
		case err := <-errCh:
			return err
		}
	}

	httpServer := mcpgo.NewStreamableHTTPServer(server)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.HTTPAddr).Msg("serving MCP over HTTP")
		errCh <- httpServer.Start(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info().Msg("shutting down HTTP server")
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// reload loads the lexicon at path and publishes a new index. On failure
// the previously published index keeps serving.
func reload(ctx context.Context, engine *gopidgin.Engine, path string) error {
	src, closeSrc, err := lexicon.Open(path)
	if err != nil {
		return fmt.Errorf("opening lexicon: %w", err)
	}
	defer closeSrc()

	return engine.LoadFrom(ctx, gopidgin.NewRetryableSource(src, gopidgin.DefaultRetryConfig()))
}

func watchReload(ctx context.Context, engine *gopidgin.Engine, path string, logger zerolog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := reload(ctx, engine, path); err != nil {
				logger.Error().Err(err).Msg("lexicon reload failed, keeping current index")
			}
		}
	}
}

// pruneLoop evicts expired results and results of superseded lexicons.
func pruneLoop(ctx context.Context, mc *cache.InMemoryCache, engine *gopidgin.Engine, every time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := mc.Prune(engine.Fingerprint()); n > 0 {
				logger.Debug().Int("removed", n).Msg("cache pruned")
			}
		}
	}
}
