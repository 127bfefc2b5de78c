// Package logger installs the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-battle/internal/config"
)

// Setup configures the global slog logger based on environment.
// Logs go to w so they never mix with the narration on stdout.
func Setup(cfg *config.Config, w io.Writer) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}

	if cfg.Environment == config.EnvProduction {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}
