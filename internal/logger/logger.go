package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process logger. It stays disabled until Init is called, which
// keeps package tests quiet.
var Log = zerolog.Nop()

// Init configures Log. format "json" writes one JSON object per line,
// anything else uses the human readable console writer.
func Init(level, format string) {
	Log = New(os.Stdout, level, format)
	Log.Info().Str("level", Log.GetLevel().String()).Msg("logger inicializado")
}

func New(out io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	w := out
	if format != "json" {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(w).
		With().
		Timestamp().
		Logger().
		Level(lvl)
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return Log.With().Str("component", name).Logger()
}
