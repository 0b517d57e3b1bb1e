package logging

import (
	"log/slog"
	"os"
	"strings"
)

// Config controls how the service logger is constructed.
type Config struct {
	Level   string
	Format  string
	Service string
	Version string
}

// NewLogger returns a structured logger with sane defaults.
// Level defaults to info, format to text; service/version are attached to every record.
func NewLogger(cfg Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With(slog.String(FieldService, cfg.Service))
	}
	if cfg.Version != "" {
		logger = logger.With(slog.String(FieldVersion, cfg.Version))
	}
	return logger
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
