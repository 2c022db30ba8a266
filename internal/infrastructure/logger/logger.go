package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName tags every entry written by loggers from New.
const ServiceName = "quickledger"

// Config holds logger configuration.
type Config struct {
	Level  string // trace, debug, info, warn, error, disabled
	Format string // json, console
	Caller bool   // annotate entries with file:line

	// Output defaults to stdout.
	Output io.Writer
}

// New creates a zerolog logger. Unknown levels fall back to info and unknown
// formats to json.
func New(cfg Config) zerolog.Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	if strings.EqualFold(cfg.Format, "console") {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.RFC3339,
			NoColor:    cfg.Output != nil,
		}
	}

	ctx := zerolog.New(output).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", ServiceName)
	if cfg.Caller {
		ctx = ctx.Caller()
	}

	return ctx.Logger()
}

// Component returns a child logger tagged with a component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}

func parseLevel(level string) zerolog.Level {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "warning" {
		level = "warn"
	}

	parsed, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		return zerolog.InfoLevel
	}
	return parsed
}
