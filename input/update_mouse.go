package input

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// updateMouse handles a left press inside the input: focus is gained and the
// cursor placed under the pointer. The index is computed against the layout
// that was visible when the user clicked.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.buf == nil {
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.inBounds(msg.X, msg.Y) {
		return m, nil
	}

	idx := m.cellToIndex(msg.X - m.cfg.padding())
	gained := m.focus.Focus()
	m.buf.Activate(idx)
	changed := m.sync()
	m.log.Debug("input click", slog.Int("x", msg.X), slog.Int("index", m.buf.Index()), slog.Bool("changed", changed))

	if !gained && !changed {
		return m, nil
	}
	if gained && !changed {
		m.followCursor()
	}
	return m.StartBlink()
}
