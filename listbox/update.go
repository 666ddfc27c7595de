package listbox

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.updateKey(msg)
	case tea.MouseMsg:
		m.updateMouse(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) {
	if !m.Focused() {
		return
	}
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Up):
		m.Previous()
	case key.Matches(msg, km.Down):
		m.Next()
	case key.Matches(msg, km.Top):
		m.Select(0)
	case key.Matches(msg, km.Bottom):
		m.Select(len(m.l.items) - 1)
	case key.Matches(msg, km.Next):
		if scope := m.focus.Scope(); scope != nil {
			scope.Next()
		}
	case key.Matches(msg, km.Prev):
		if scope := m.focus.Scope(); scope != nil {
			scope.Prev()
		}
	case key.Matches(msg, km.Blur):
		m.focus.Blur()
	}
}

// updateMouse takes widget-local coordinates: (0, 0) is the top-left corner
// of the frame.
func (m Model) updateMouse(msg tea.MouseMsg) {
	row, ok := m.rowAt(msg.X, msg.Y)

	switch msg.Action { //nolint:exhaustive
	case tea.MouseActionMotion:
		if !ok {
			row = -1
		}
		m.l.highlighted = row

	case tea.MouseActionPress:
		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			if !ok {
				return
			}
			m.focus.Focus()
			m.Select(row)
		case tea.MouseButtonWheelUp:
			if m.l.start > 0 {
				m.l.start--
			}
		case tea.MouseButtonWheelDown:
			if m.l.start+m.visibleRows() < len(m.l.items) {
				m.l.start++
			}
		}
	}
}

// rowAt maps a widget-local cell onto an absolute item index.
func (m Model) rowAt(x, y int) (int, bool) {
	st := m.cfg.Style.Frame
	top := st.GetBorderTopSize() + st.GetPaddingTop()
	if m.cfg.Title != "" {
		top++
	}
	if x < 0 || (m.cfg.Width > 0 && x >= m.cfg.Width+st.GetHorizontalFrameSize()) {
		return 0, false
	}
	rel := y - top
	if rel < 0 || rel >= m.visibleRows() {
		return 0, false
	}
	return m.l.start + rel, true
}
