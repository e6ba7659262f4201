// ABOUTME: slog.Handler that routes formatted log records above the region
// ABOUTME: Formats "time - LEVEL - message key=value"; one Print call per record

package bottombar

import (
	"context"
	"log/slog"
	"strings"
)

// Printer is the sink a log handler hands finished lines to. Both *Bar and
// *Queue satisfy it.
type Printer interface {
	Print(text string) error
}

const timeFormat = "2006-01-02 15:04:05"

// Handler adapts a Printer into a slog.Handler so existing slog call sites
// can scroll their output above the region unchanged. Formatting happens
// here; the Printer receives exactly one finished line per record. Level
// filtering is the only logic applied; there is no buffering.
type Handler struct {
	printer Printer
	level   slog.Leveler
	attrs   []slog.Attr
	groups  []string
}

// NewHandler returns a Handler writing to p. Records below level are
// dropped; a nil level means slog.LevelInfo. Pass a *slog.LevelVar to
// adjust the level at runtime.
func NewHandler(p Printer, level slog.Leveler) *Handler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &Handler{printer: p, level: level}
}

// Enabled reports whether records at l should be handled.
func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

// Handle formats the record and hands it to the Printer.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.Grow(len(r.Message) + 40)

	if !r.Time.IsZero() {
		sb.WriteString(r.Time.Format(timeFormat))
		sb.WriteString(" - ")
	}
	sb.WriteString(r.Level.String())
	sb.WriteString(" - ")
	sb.WriteString(r.Message)

	for _, a := range h.attrs {
		h.appendAttr(&sb, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(&sb, a)
		return true
	})

	return h.printer.Print(sb.String())
}

func (h *Handler) appendAttr(sb *strings.Builder, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	sb.WriteByte(' ')
	for _, g := range h.groups {
		sb.WriteString(g)
		sb.WriteByte('.')
	}
	sb.WriteString(a.Key)
	sb.WriteByte('=')
	sb.WriteString(a.Value.String())
}

// WithAttrs returns a Handler that includes attrs on every record.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &nh
}

// WithGroup returns a Handler that prefixes attribute keys with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string{}, h.groups...), name)
	return &nh
}
