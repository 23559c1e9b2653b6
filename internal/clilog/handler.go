package clilog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/fatih/color"

	"github.com/leofalp/laxjson/internal/textutil"
)

// Handler is a minimal slog.Handler producing compact single-line output:
//
//	15:04:05  WARN parse failed → {"error":"...","input":"..."}
type Handler struct {
	level  slog.Level
	output io.Writer
	colors bool
	mu     sync.Mutex
	attrs  []slog.Attr
	groups []string
}

// HandlerOptions configures a Handler.
type HandlerOptions struct {
	// Level is the minimum level to emit.
	Level slog.Level
	// Output is where lines are written. Nil means os.Stderr.
	Output io.Writer
	// Colors forces colored level tags on. When false, colors are still
	// enabled automatically if Output is a terminal.
	Colors bool
}

// NewHandler creates a Handler with the given options.
func NewHandler(opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	colors := opts.Colors
	if !colors {
		if f, ok := output.(*os.File); ok {
			colors = isTerminal(f)
		}
	}

	return &Handler{
		level:  opts.Level,
		output: output,
		colors: colors,
	}
}

// Enabled reports whether the handler emits records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle formats and writes a single record.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := make([]byte, 0, 128)
	line = append(line, r.Time.Format("15:04:05")...)
	line = append(line, ' ')
	line = append(line, h.levelTag(r.Level)...)
	line = append(line, ' ')
	line = append(line, r.Message...)

	if attrs := h.collectAttrs(r); len(attrs) > 0 {
		line = append(line, " → "...)
		line = append(line, textutil.CompactJSON(attrs)...)
	}
	line = append(line, '\n')

	_, err := h.output.Write(line)
	return err
}

// WithAttrs returns a copy of the handler carrying additional attributes.
// Keys are qualified with the groups open at the time of the call, so
// attributes added before WithGroup stay unprefixed.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, attr := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: h.qualify(attr.Key), Value: attr.Value})
	}
	return clone
}

// WithGroup returns a copy of the handler with a group name prefix.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.groups = append(clone.groups, name)
	return clone
}

func (h *Handler) clone() *Handler {
	return &Handler{
		level:  h.level,
		output: h.output,
		colors: h.colors,
		attrs:  append([]slog.Attr{}, h.attrs...),
		groups: append([]string{}, h.groups...),
	}
}

func (h *Handler) collectAttrs(r slog.Record) map[string]any {
	attrs := make(map[string]any)
	for _, attr := range h.attrs {
		attrs[attr.Key] = attr.Value.Any()
	}
	r.Attrs(func(attr slog.Attr) bool {
		attrs[h.qualify(attr.Key)] = attr.Value.Any()
		return true
	})
	return attrs
}

// qualify prefixes key with the open group names, outermost first.
func (h *Handler) qualify(key string) string {
	for i := len(h.groups) - 1; i >= 0; i-- {
		key = h.groups[i] + "." + key
	}
	return key
}

// levelTag renders a fixed-width level name, colored when enabled.
func (h *Handler) levelTag(level slog.Level) string {
	name := levelName(level)
	for len(name) < 5 {
		name = " " + name
	}
	if !h.colors {
		return name
	}
	return levelColor(level).Sprint(name)
}

func levelName(level slog.Level) string {
	switch {
	case level < slog.LevelInfo:
		return "DEBUG"
	case level < slog.LevelWarn:
		return "INFO"
	case level < slog.LevelError:
		return "WARN"
	default:
		return "ERROR"
	}
}

func levelColor(level slog.Level) *color.Color {
	switch {
	case level < slog.LevelInfo:
		return color.New(color.FgBlue)
	case level < slog.LevelWarn:
		return color.New(color.FgGreen)
	case level < slog.LevelError:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// isTerminal reports whether f is connected to a terminal device.
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
