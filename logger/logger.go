// Package logger configures zerolog for the catalog binaries and bridges
// gorm's SQL logging into it.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds a logger writing to out. format is "json" or "console";
// an unparsable level falls back to info.
func New(level, format string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if format != "json" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Init replaces the global logger and returns it.
func Init(level, format string) zerolog.Logger {
	l := New(level, format, os.Stdout)
	log.Logger = l
	return l
}
