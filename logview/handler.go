package logview

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// AppendedMsg tells the program that the Log grew and the view is stale.
type AppendedMsg struct{}

type HandlerOptions struct {
	// Level defaults to slog.LevelInfo.
	Level slog.Leveler
	// Source prefixes every line with the caller's file:line.
	Source bool
	// Root is the directory source paths are made relative to. Empty keeps
	// the base name only.
	Root string
}

// Handler is a slog.Handler that appends one summary line per record to a
// Log and pokes the program so the log view redraws.
//
// All handlers derived via WithAttrs/WithGroup share the program pointer, so a
// single SetProgram call reaches every derived handler.
type Handler struct {
	log     *Log
	opts    HandlerOptions
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
	groups  []string
}

var _ slog.Handler = (*Handler)(nil)

func NewHandler(log *Log, opts HandlerOptions) *Handler {
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}
	return &Handler{
		log:     log,
		opts:    opts,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the program notified on every appended line. Records are
// still collected before it is called.
func (h *Handler) SetProgram(p *tea.Program) {
	h.program.Store(p)
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level.Level()
}

// Handle formats the record as "message (key=value, ...)" and appends it.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	line := h.format(r)
	if !h.log.Append(line) {
		return nil
	}
	if p := h.program.Load(); p != nil {
		// Records are usually emitted from inside Update; a synchronous Send
		// would block on the program's own event loop.
		go p.Send(AppendedMsg{})
	}
	return nil
}

func (h *Handler) format(r slog.Record) string {
	var sb strings.Builder
	if h.opts.Source && r.PC != 0 {
		sb.WriteString(h.source(r.PC))
		sb.WriteString(" >> ")
	}
	if r.Level != slog.LevelInfo {
		sb.WriteString(r.Level.String())
		sb.WriteByte(' ')
	}
	sb.WriteString(r.Message)

	var parts []string
	for _, a := range h.attrs {
		parts = appendAttr(parts, "", a)
	}
	prefix := strings.Join(h.groups, ".")
	r.Attrs(func(a slog.Attr) bool {
		parts = appendAttr(parts, prefix, a)
		return true
	})
	if len(parts) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(parts, ", "))
		sb.WriteByte(')')
	}
	return sb.String()
}

func (h *Handler) source(pc uintptr) string {
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	file := filepath.Base(f.File)
	if h.opts.Root != "" {
		if rel, err := filepath.Rel(h.opts.Root, f.File); err == nil {
			file = rel
		}
	}
	return fmt.Sprintf("%s:%d", file, f.Line)
}

func appendAttr(parts []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return parts
	}
	key := a.Key
	if prefix != "" && key != "" {
		key = prefix + "." + key
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			parts = appendAttr(parts, key, ga)
		}
		return parts
	}
	return append(parts, fmt.Sprintf("%s=%s", key, a.Value))
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := strings.Join(h.groups, ".")
	qualified := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		if prefix != "" {
			a.Key = prefix + "." + a.Key
		}
		qualified = append(qualified, a)
	}
	return &Handler{
		log:     h.log,
		opts:    h.opts,
		program: h.program,
		attrs:   append(sliceClone(h.attrs), qualified...),
		groups:  sliceClone(h.groups),
	}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &Handler{
		log:     h.log,
		opts:    h.opts,
		program: h.program,
		attrs:   sliceClone(h.attrs),
		groups:  append(sliceClone(h.groups), name),
	}
}

func sliceClone[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
