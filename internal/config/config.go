// Package config loads gopidgin server and CLI settings from the
// environment, with optional .env support.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	gopidgin "github.com/ZaguanLabs/gopidgin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config holds all runtime configuration.
type Config struct {
	// Lexicon
	LexiconPath     string // JSON, YAML or SQLite (.db); empty = embedded seed
	Direction       gopidgin.Direction
	MaxAlternatives int

	// Cache
	CacheTTL    time.Duration
	RedisURL    string
	RedisPrefix string

	// Server edge
	RateLimitRPM   int
	RateLimitBurst int
	HTTPAddr       string // empty = stdio

	LogLevel zerolog.Level
}

// Load reads an optional .env file, then the environment.
func Load() (*Config, error) {
	// a missing .env is normal in production
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (*Config, error) {
	dir, err := gopidgin.ParseDirection(getEnv("PIDGIN_DIRECTION", string(gopidgin.EnglishToPidgin)))
	if err != nil {
		return nil, fmt.Errorf("PIDGIN_DIRECTION: %w", err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(getEnv("PIDGIN_LOG_LEVEL", "info")))
	if err != nil {
		return nil, fmt.Errorf("PIDGIN_LOG_LEVEL: %w", err)
	}

	rpm := getEnvInt("PIDGIN_RATE_LIMIT_RPM", 600)
	cfg := &Config{
		LexiconPath:     os.Getenv("PIDGIN_LEXICON"),
		Direction:       dir,
		MaxAlternatives: getEnvInt("PIDGIN_MAX_ALTERNATIVES", gopidgin.DefaultMaxAlternatives),
		CacheTTL:        time.Duration(getEnvInt("PIDGIN_CACHE_TTL", 3600)) * time.Second,
		RedisURL:        os.Getenv("PIDGIN_REDIS_URL"),
		RedisPrefix:     getEnv("PIDGIN_REDIS_PREFIX", "gopidgin:"),
		RateLimitRPM:    rpm,
		RateLimitBurst:  getEnvInt("PIDGIN_RATE_LIMIT_BURST", rpm),
		HTTPAddr:        os.Getenv("PIDGIN_HTTP_ADDR"),
		LogLevel:        level,
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges.
func (c *Config) Validate() error {
	if c.MaxAlternatives < 0 || c.MaxAlternatives > 10 {
		return fmt.Errorf("PIDGIN_MAX_ALTERNATIVES must be 0-10, got %d", c.MaxAlternatives)
	}
	if c.CacheTTL < 0 {
		return fmt.Errorf("PIDGIN_CACHE_TTL must be >= 0, got %v", c.CacheTTL)
	}
	if c.RateLimitRPM <= 0 {
		return fmt.Errorf("PIDGIN_RATE_LIMIT_RPM must be positive, got %d", c.RateLimitRPM)
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("PIDGIN_RATE_LIMIT_BURST must be positive, got %d", c.RateLimitBurst)
	}
	if c.RedisURL != "" && !strings.HasPrefix(c.RedisURL, "redis://") && !strings.HasPrefix(c.RedisURL, "rediss://") {
		return fmt.Errorf("PIDGIN_REDIS_URL must start with redis:// or rediss://, got %q", c.RedisURL)
	}
	return nil
}

// CacheTTLSeconds returns the TTL in the whole seconds the cache constructors take.
func (c *Config) CacheTTLSeconds() int {
	return int(c.CacheTTL / time.Second)
}

// Logger builds the console logger binaries write to stderr.
func (c *Config) Logger() zerolog.Logger {
	return NewLogger(os.Stderr, c.LogLevel)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
