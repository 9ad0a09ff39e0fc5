package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/npmbridge/internal/ui/output"
	"go.trai.ch/npmbridge/internal/ui/style"
)

type levelStyle struct {
	icon  string
	color lipgloss.Color
}

var levelStyles = map[slog.Level]levelStyle{
	slog.LevelWarn:  {icon: style.Warning, color: style.Yellow},
	slog.LevelError: {icon: style.Cross, color: style.Red},
}

var defaultStyle = levelStyle{color: style.Slate}

// PrettyHandler is a slog.Handler writing one colored line per record.
// Attributes follow the message as key=value pairs, grouped keys joined with dots.
type PrettyHandler struct {
	out    *termenv.Output
	mu     *sync.Mutex
	level  slog.Level
	prefix string
	attrs  string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level.Level()
	}

	return &PrettyHandler{
		out:   output.New(w),
		mu:    &sync.Mutex{},
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	st, ok := levelStyles[r.Level]
	if !ok {
		st = defaultStyle
	}

	var line strings.Builder
	if st.icon != "" {
		line.WriteString(st.icon)
		line.WriteByte(' ')
	}
	line.WriteString(r.Message)
	line.WriteString(h.attrs)
	r.Attrs(func(attr slog.Attr) bool {
		appendAttr(&line, h.prefix, attr)
		return true
	})

	styled := h.out.String(line.String()).Foreground(termenv.RGBColor(string(st.color)))

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns a new Handler with the given attributes rendered after every message.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		appendAttr(&b, h.prefix, attr)
	}

	clone := *h
	clone.attrs = b.String()
	return &clone
}

// WithGroup returns a new Handler qualifying later attributes with name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func appendAttr(b *strings.Builder, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	if attr.Value.Kind() == slog.KindGroup {
		if attr.Key != "" {
			prefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			appendAttr(b, prefix, member)
		}
		return
	}

	value := attr.Value.String()
	if value == "" || strings.ContainsAny(value, " \t\n\"=") {
		value = strconv.Quote(value)
	}

	b.WriteByte(' ')
	b.WriteString(prefix)
	b.WriteString(attr.Key)
	b.WriteByte('=')
	b.WriteString(value)
}
