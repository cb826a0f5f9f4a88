package logutils

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"sort"
	"strings"
)

const MessageDelimiter = "|"

// Handler prints records as `[time] LEVEL | message | key="value"; ...`.
type Handler struct {
	slog.Handler
	l      *log.Logger
	attrs  []slog.Attr
	prefix string // open groups, e.g. "req.db."
}

func NewHandler(out io.Writer, opts *slog.HandlerOptions) *Handler {
	return &Handler{
		Handler: slog.NewTextHandler(out, opts),
		l:       log.New(out, "", 0),
	}
}

// New returns a logger writing to out at Info, or Debug when verbose is set.
func New(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(NewHandler(out, &slog.HandlerOptions{Level: level}))
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	fields := make([]string, 0, r.NumAttrs()+len(h.attrs))
	for _, a := range h.attrs {
		fields = append(fields, fmt.Sprintf(`%s="%v"`, a.Key, a.Value.Any()))
	}
	r.Attrs(func(a slog.Attr) bool {
		fields = append(fields, fmt.Sprintf(`%s%s="%v"`, h.prefix, a.Key, a.Value.Any()))
		return true
	})
	sort.Strings(fields)

	line := []string{r.Time.Format("[15:04:05.000]"), r.Level.String(), MessageDelimiter, r.Message}
	if len(fields) > 0 {
		line = append(line, MessageDelimiter, strings.Join(fields, "; "))
	}
	h.l.Println(strings.Join(line, " "))
	return nil
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := append([]slog.Attr{}, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slog.Attr{Key: h.prefix + a.Key, Value: a.Value})
	}
	return &Handler{
		Handler: h.Handler.WithAttrs(attrs),
		l:       h.l,
		attrs:   merged,
		prefix:  h.prefix,
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{
		Handler: h.Handler.WithGroup(name),
		l:       h.l,
		attrs:   h.attrs,
		prefix:  h.prefix + name + ".",
	}
}
