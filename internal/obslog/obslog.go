// Package obslog wires the application's zerolog logger: a console writer
// with a configurable level, minus any HTTP-specific middleware this module
// has no use for. Only cmd/ooosplits and the auto-splitter's script-unload
// path import zerolog directly; everything else returns errors.
package obslog

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is an alias so callers don't need their own zerolog import just
// to hold a reference.
type Logger = zerolog.Logger

func init() {
	zerolog.TimestampFieldName = "ts"
}

// New builds a console-friendly logger writing to os.Stderr at level,
// falling back to zerolog.InfoLevel on an unparsable level string.
func New(level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// WithTopic returns a child logger tagging every record with topic, so a
// single log stream can be filtered by concern (e.g. "store", "autosplit",
// "timer").
func WithTopic(l Logger, topic string) Logger {
	return l.With().Str("topic", topic).Logger()
}
