package config

import (
	"log/slog"
	"os"
	"strings"
)

// NewLogger builds the application logger. Production emits JSON records,
// everything else uses the text handler. LOG_LEVEL selects the minimum
// level (debug, info, warn, error); unknown values fall back to info.
func NewLogger(environment string) *slog.Logger {
	level := parseLevel(os.Getenv("LOG_LEVEL"))
	opts := &slog.HandlerOptions{Level: level}
	if environment == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
