package input

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/internal/grapheme"
)

// updateKey consumes every key while focused; nothing is left for the host to
// handle except what the host intercepts before calling Update.
func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.Focused() || m.buf == nil {
		return m, nil
	}

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.buf.Insert(sanitize(string(msg.Runes)))
		return m.afterKey("paste")
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Submit):
		text := m.buf.Text()
		m.log.Debug("input submitted", slog.Int("len", m.buf.Len()))
		m.submitted.Emit(text)
		if !m.cfg.KeepFocusOnSubmit {
			m = m.Blur()
		}
		return m, nil
	case key.Matches(msg, km.Cancel):
		m = m.Blur()
		m.log.Debug("input cancelled")
		m.cancelled.Emit(struct{}{})
		return m, nil
	case key.Matches(msg, km.Next):
		if scope := m.focus.Scope(); scope != nil {
			scope.Next()
		}
		return m, nil
	case key.Matches(msg, km.Prev):
		if scope := m.focus.Scope(); scope != nil {
			scope.Prev()
		}
		return m, nil

	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.DirRight)
	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.DirWordLeft)
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.DirWordRight)
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.DirStart)
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.DirEnd)

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteLeft()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteRight()
	case key.Matches(msg, km.Clear):
		m.buf.Clear()

	case key.Matches(msg, km.Undo):
		m.buf.Undo()
	case key.Matches(msg, km.Redo):
		m.buf.Redo()
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	default:
		switch {
		case msg.Type == tea.KeySpace:
			m.buf.Add(" ")
		case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
			m.buf.Insert(sanitize(string(msg.Runes)))
		}
	}

	return m.afterKey(msg.String())
}

func (m Model) afterKey(name string) (Model, tea.Cmd) {
	changed := m.sync()
	m.log.Debug("input key", slog.String("key", name), slog.Bool("changed", changed))
	if !changed {
		return m, nil
	}
	return m.StartBlink()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.log.Warn("clipboard read failed", slog.Any("error", err))
		return
	}
	m.buf.Insert(sanitize(s))
}

// sanitize flattens text for a single-line field: line breaks and tabs become
// spaces, other control characters are dropped.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	var sb strings.Builder
	for _, g := range grapheme.Split(s) {
		switch {
		case g == "\n" || g == "\r" || g == "\t":
			sb.WriteByte(' ')
		case grapheme.IsPrintable(g):
			sb.WriteString(g)
		}
	}
	return sb.String()
}
