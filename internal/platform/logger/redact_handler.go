package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/phrazzld/bless-config/internal/redact"
)

// RedactHandler is a slog.Handler that scrubs secrets from records before
// passing them to a JSON handler. Attributes under sensitive keys, such as
// "us-east-1_password", are replaced entirely; other string values and
// errors go through redact.String.
type RedactHandler struct {
	handler slog.Handler
}

// NewRedactHandler creates a RedactHandler writing JSON to out.
func NewRedactHandler(out io.Writer, opts *slog.HandlerOptions) *RedactHandler {
	var handlerOpts slog.HandlerOptions
	if opts != nil {
		handlerOpts = *opts
	}
	return &RedactHandler{handler: slog.NewJSONHandler(out, &handlerOpts)}
}

// Enabled implements the slog.Handler interface.
func (h *RedactHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// WithAttrs implements the slog.Handler interface.
func (h *RedactHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		clean[i] = redactAttr(a)
	}
	return &RedactHandler{handler: h.handler.WithAttrs(clean)}
}

// WithGroup implements the slog.Handler interface.
func (h *RedactHandler) WithGroup(name string) slog.Handler {
	return &RedactHandler{handler: h.handler.WithGroup(name)}
}

// Handle implements the slog.Handler interface.
func (h *RedactHandler) Handle(ctx context.Context, record slog.Record) error {
	clean := slog.NewRecord(record.Time, record.Level, redact.String(record.Message), record.PC)
	record.Attrs(func(a slog.Attr) bool {
		clean.AddAttrs(redactAttr(a))
		return true
	})
	return h.handler.Handle(ctx, clean)
}

func redactAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		clean := make([]slog.Attr, len(group))
		for i, g := range group {
			clean[i] = redactAttr(g)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(clean...)}
	}

	if a.Value.Kind() == slog.KindAny {
		if err, ok := a.Value.Any().(error); ok {
			a.Value = slog.StringValue(err.Error())
		}
	}

	if a.Value.Kind() == slog.KindString || redact.IsSensitiveKey(a.Key) {
		return slog.String(a.Key, redact.Value(a.Key, a.Value.String()))
	}
	return a
}
