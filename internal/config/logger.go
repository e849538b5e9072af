package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger returns a human-readable zerolog logger on w.
func NewLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
