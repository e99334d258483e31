package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Setup initializes the global zerolog logger writing to stdout.
//   - level: log level string (trace, debug, info, warn, error, fatal, panic)
//   - format: "json" for machine output, "pretty" for human-readable output,
//     "auto" to use pretty only when stdout is a terminal
//
// Returns the configured logger instance.
func Setup(level, format string) zerolog.Logger {
	if format == "auto" {
		format = "json"
		if term.IsTerminal(int(os.Stdout.Fd())) {
			format = "pretty"
		}
	}
	return SetupWriter(os.Stdout, level, format)
}

// SetupWriter is Setup with an explicit destination.
func SetupWriter(out io.Writer, level, format string) zerolog.Logger {
	var writer io.Writer

	if format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	} else {
		writer = out
	}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(lvl)

	log := zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Caller().
		Logger()

	return log
}
