package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelCritical sits above slog.LevelError for CRITICAL and FATAL.
const LevelCritical = slog.Level(12)

// LoggerConfig holds the settings needed to build the application logger.
type LoggerConfig struct {
	// Level is a logging_level name such as INFO or WARNING.
	Level string
	// Output receives JSON log lines. Defaults to os.Stdout.
	Output io.Writer
}

// ParseLevel maps a logging_level name to a slog level, case-insensitively.
// ok is false for unknown names.
func ParseLevel(name string) (level slog.Level, ok bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "NOTSET", "DEBUG":
		return slog.LevelDebug, true
	case "INFO":
		return slog.LevelInfo, true
	case "WARNING", "WARN":
		return slog.LevelWarn, true
	case "ERROR":
		return slog.LevelError, true
	case "CRITICAL", "FATAL":
		return LevelCritical, true
	}
	return slog.LevelInfo, false
}

// Setup builds a JSON logger at the configured level, wraps it in a
// RedactHandler and installs it as the slog default.
//
// An unknown level falls back to INFO and logs a warning through the new logger.
func Setup(cfg LoggerConfig) *slog.Logger {
	level, ok := ParseLevel(cfg.Level)

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceLevelName,
	}

	l := slog.New(NewRedactHandler(out, opts))
	slog.SetDefault(l)

	if !ok {
		l.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "INFO")
	}

	return l
}

// replaceLevelName renders LevelCritical as CRITICAL instead of ERROR+4.
func replaceLevelName(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if lvl, ok := a.Value.Any().(slog.Level); ok && lvl >= LevelCritical {
			return slog.String(slog.LevelKey, "CRITICAL")
		}
	}
	return a
}
