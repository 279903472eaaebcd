package server

import (
	"log/slog"
	"os"
	"strings"
)

// Logger is the global structured logger.
var Logger *slog.Logger

func init() {
	// Structured JSON logging with source locations from the start, so
	// nothing logged before InitLogger is lost to a default handler.
	opts := &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(Logger)
}

// InitLogger reconfigures the global logger with the configured level.
// Request-scoped attributes are not added here: the request logger
// middleware and the central error responder attach the request ID at the
// HTTP boundary.
func InitLogger(level string) {
	var slogLevel slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: true,
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, opts))
	slog.SetDefault(Logger)
}
