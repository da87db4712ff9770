// Package logger provides structured logging for the application.
//
// It uses the standard library log/slog package with a JSON handler. Levels
// are configured with the Python-style names found in logging_level, and a
// redacting handler keeps region passwords and other secrets out of the output.
package logger
