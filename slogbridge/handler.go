package slogbridge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/anindyasen/stumpless/entry"
	"github.com/anindyasen/stumpless/target"
)

// Handler implements slog.Handler by dispatching every record as an
// entry through a wrapped Target.
type Handler struct {
	t       *target.Target
	minimum slog.Level
	attrs   []entry.Param
	group   string
}

// New wraps t as an slog.Handler. Records below minimum are dropped
// before ever reaching the target.
func New(t *target.Target, minimum slog.Level) *Handler {
	return &Handler{t: t, minimum: minimum}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.minimum
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	e := entry.New().WithSeverity(slogLevelToSeverity(record.Level)).WithMessage(record.Message)

	el := entry.NewElement("slog")
	for _, p := range h.attrs {
		el = el.AddParam(p.Name, p.Value)
	}
	record.Attrs(func(a slog.Attr) bool {
		el = el.AddParam(attrKey(h.group, a), attrValue(a))
		return true
	})
	if len(el.Params) > 0 {
		e.AddElement(el)
	}

	_, err := target.AddEntry(h.t, e)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]entry.Param, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = append(newAttrs, entry.Param{Name: attrKey(h.group, a), Value: attrValue(a)})
	}
	return &Handler{t: h.t, minimum: h.minimum, attrs: newAttrs, group: h.group}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	group := name
	if h.group != "" {
		group = h.group + "." + name
	}
	newAttrs := make([]entry.Param, len(h.attrs))
	copy(newAttrs, h.attrs)
	return &Handler{t: h.t, minimum: h.minimum, attrs: newAttrs, group: group}
}

func slogLevelToSeverity(level slog.Level) entry.Severity {
	switch {
	case level >= slog.LevelError:
		return entry.SeverityErr
	case level >= slog.LevelWarn:
		return entry.SeverityWarn
	case level >= slog.LevelInfo:
		return entry.SeverityInfo
	default:
		return entry.SeverityDebug
	}
}

func attrKey(group string, a slog.Attr) string {
	if group == "" {
		return a.Key
	}
	return group + "." + a.Key
}

func attrValue(a slog.Attr) string {
	return fmt.Sprint(a.Value.Resolve().Any())
}
