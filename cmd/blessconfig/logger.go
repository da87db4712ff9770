package main

import (
	"io"
	"log/slog"

	"github.com/phrazzld/bless-config/internal/config"
	"github.com/phrazzld/bless-config/internal/platform/logger"
)

// setupAppLogger configures the application logger from logging_level.
// An unusable level falls back to INFO and is reported through the new logger.
func setupAppLogger(store *config.Store, out io.Writer) *slog.Logger {
	level, err := store.LoggingLevel()
	if err != nil {
		level = config.LogLevelInfo
	}

	l := logger.Setup(logger.LoggerConfig{
		Level:  string(level),
		Output: out,
	})
	if err != nil {
		l.Warn("unusable logging_level, using INFO", "error", err)
	}
	return l
}
