package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewSlog wraps the logger in a slog.Logger so packages written against
// log/slog share the same zap core and encoder.
func NewSlog(l *Logger) *slog.Logger {
	if l == nil {
		l = Default()
	}
	return slog.New(&slogHandler{core: l.Zap().Core()})
}

// SlogLevel converts a zap level to its slog equivalent.
func SlogLevel(level Level) slog.Level {
	switch {
	case level <= LevelDebug:
		return slog.LevelDebug
	case level == LevelInfo:
		return slog.LevelInfo
	case level == LevelWarn:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

type slogHandler struct {
	core   zapcore.Core
	fields []zapcore.Field
	group  string
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.core.Enabled(zapLevelFromSlog(level))
}

func (h *slogHandler) Handle(ctx context.Context, rec slog.Record) error {
	entry := zapcore.Entry{
		Level:   zapLevelFromSlog(rec.Level),
		Time:    rec.Time,
		Message: rec.Message,
	}

	fields := make([]zapcore.Field, 0, len(h.fields)+rec.NumAttrs()+2)
	fields = append(fields, h.fields...)
	rec.Attrs(func(attr slog.Attr) bool {
		fields = append(fields, h.zapField(attr))
		return true
	})
	fields = append(fields, traceFields(ctx)...)

	ce := h.core.Check(entry, nil)
	if ce == nil {
		return nil
	}
	ce.Write(fields...)

	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}

	fields := make([]zapcore.Field, 0, len(h.fields)+len(attrs))
	fields = append(fields, h.fields...)
	for _, attr := range attrs {
		fields = append(fields, h.zapField(attr))
	}

	return &slogHandler{core: h.core, fields: fields, group: h.group}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	group := name
	if h.group != "" {
		group = h.group + "." + name
	}

	return &slogHandler{core: h.core, fields: h.fields, group: group}
}

func (h *slogHandler) zapField(attr slog.Attr) zapcore.Field {
	key := attr.Key
	if h.group != "" {
		key = h.group + "." + key
	}

	return zap.Any(key, attr.Value.Resolve().Any())
}

func zapLevelFromSlog(level slog.Level) zapcore.Level {
	switch {
	case level < slog.LevelInfo:
		return zapcore.DebugLevel
	case level < slog.LevelWarn:
		return zapcore.InfoLevel
	case level < slog.LevelError:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}
