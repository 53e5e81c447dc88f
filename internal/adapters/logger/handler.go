package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/swatch/internal/ui/output"
	"go.trai.ch/swatch/internal/ui/style"
)

// PrettyHandler is a slog.Handler writing one colored line per record.
// The level decides the icon and tint of the message; attributes follow as
// muted key=value pairs, and color valued attributes get a swatch.
type PrettyHandler struct {
	out    *termenv.Output
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewPrettyHandler creates a new PrettyHandler writing to the provided writer.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	return newPrettyHandler(output.New(w), opts)
}

func newPrettyHandler(out *termenv.Output, opts *slog.HandlerOptions) *PrettyHandler {
	if out == nil {
		out = output.New(os.Stderr)
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{out: out, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, tint := levelStyle(r.Level)

	var sb strings.Builder
	if icon != "" {
		sb.WriteString(icon + " ")
	}
	sb.WriteString(r.Message)
	line := h.out.String(sb.String()).Foreground(h.out.Color(tint)).String()

	pairs := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		pairs = h.appendAttr(pairs, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		a.Key = qualify(h.groups, a.Key)
		pairs = h.appendAttr(pairs, a)
		return true
	})
	if len(pairs) > 0 {
		line += " " + strings.Join(pairs, " ")
	}

	_, err := io.WriteString(h.out, line+"\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
// Attributes are qualified with the current groups up front.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = slices.Clip(h.attrs)
	for _, a := range attrs {
		a.Key = qualify(h.groups, a.Key)
		next.attrs = append(next.attrs, a)
	}
	return &next
}

// WithGroup returns a new Handler nesting later attributes under name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.groups = append(slices.Clip(h.groups), name)
	return &next
}

// appendAttr renders a with its already qualified key.
func (h *PrettyHandler) appendAttr(pairs []string, a slog.Attr) []string {
	if a.Key == "" {
		return pairs
	}

	value := a.Value.Resolve().String()
	muted := h.out.String(a.Key + "=").Foreground(h.out.Color(string(style.Slate))).String()
	pair := muted + value
	if isColorKey(a.Key) && h.out.Profile != termenv.Ascii {
		pair += " " + h.out.String(style.SwatchBlock).Foreground(h.out.Color(value)).String()
	}
	return append(pairs, pair)
}

func levelStyle(level slog.Level) (icon string, tint string) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, string(style.Red)
	case level >= slog.LevelWarn:
		return style.Warning, string(style.Yellow)
	default:
		return "", string(style.Slate)
	}
}

func isColorKey(key string) bool {
	leaf := key[strings.LastIndex(key, ".")+1:]
	return leaf == "hex" || leaf == "color"
}

func qualify(groups []string, key string) string {
	if len(groups) == 0 {
		return key
	}
	return strings.Join(groups, ".") + "." + key
}
