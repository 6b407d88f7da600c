package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/kiln/internal/ui/output"
	"go.trai.ch/kiln/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one human-readable line per record.
// Warnings and errors carry an icon; attributes follow the message as key=value.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	attrs  []string
}

// NewPrettyHandler creates a PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := decoration(r.Level)

	var b strings.Builder
	if icon != "" {
		b.WriteString(icon)
		b.WriteByte(' ')
	}
	b.WriteString(r.Message)

	parts := append([]string(nil), h.attrs...)
	r.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, h.prefix, attr)
		return true
	})
	for _, part := range parts {
		b.WriteByte(' ')
		b.WriteString(part)
	}

	line := h.out.String(b.String()).Foreground(style.RGB(color)).String()
	_, err := io.WriteString(h.out, line+"\n")
	return err
}

// WithAttrs returns a handler that appends attrs to every record.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := h.clone()
	for _, attr := range attrs {
		next.attrs = appendAttr(next.attrs, h.prefix, attr)
	}
	return next
}

// WithGroup returns a handler that qualifies subsequent keys with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := h.clone()
	next.prefix = h.prefix + name + "."
	return next
}

func (h *PrettyHandler) clone() *PrettyHandler {
	return &PrettyHandler{
		out:    h.out,
		level:  h.level,
		prefix: h.prefix,
		attrs:  append([]string(nil), h.attrs...),
	}
}

// decoration returns the icon and colour for a level.
func decoration(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Failure
	case level >= slog.LevelWarn:
		return style.Warning, style.Caution
	default:
		return "", style.Ash
	}
}

// appendAttr formats attr as key=value, flattening groups into dotted keys.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}

	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, groupPrefix, member)
		}
		return parts
	}

	return append(parts, prefix+attr.Key+"="+attr.Value.String())
}
