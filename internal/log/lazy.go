package log

import (
	"context"
	"fmt"
	"log/slog"
)

// Lazy wraps a fmt.Stringer as a slog.LogValuer so that it is only
// rendered if the record is actually written
func Lazy(s fmt.Stringer) slog.LogValuer {
	return stringerLogValuer{s}
}

type stringerLogValuer struct{ fmt.Stringer }

func (l stringerLogValuer) LogValue() slog.Value {
	return slog.StringValue(l.String())
}

// StringerHandler wraps underlying so that any fmt.Stringer attribute is rendered lazily
func StringerHandler(underlying slog.Handler) slog.Handler {
	return &stringerHandler{underlying: underlying}
}

type stringerHandler struct {
	underlying slog.Handler
}

func lazyAttr(attr slog.Attr) slog.Attr {
	if attr.Value.Kind() != slog.KindAny {
		return attr
	}
	switch v := attr.Value.Any().(type) {
	case slog.LogValuer, error:
		return attr
	case fmt.Stringer:
		return slog.Any(attr.Key, Lazy(v))
	}
	return attr
}

func (l *stringerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *stringerHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		newRecord.AddAttrs(lazyAttr(attr))
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *stringerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for i, attr := range attrs {
		attrs[i] = lazyAttr(attr)
	}
	return StringerHandler(l.underlying.WithAttrs(attrs))
}

func (l *stringerHandler) WithGroup(name string) slog.Handler {
	return StringerHandler(l.underlying.WithGroup(name))
}
