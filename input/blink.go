package input

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type blinkMsg struct {
	id  int
	seq int
}

// StartBlink shows the cursor and restarts the blink loop. Ticks from an
// earlier loop are dropped.
func (m Model) StartBlink() (Model, tea.Cmd) {
	m.buf.ResetBlink()
	if !m.cfg.Blink {
		return m, nil
	}
	m.blinkSeq++
	return m, m.blinkCmd()
}

func (m Model) blinkCmd() tea.Cmd {
	id, seq := m.id, m.blinkSeq
	return tea.Tick(m.cfg.blinkInterval(), func(time.Time) tea.Msg {
		return blinkMsg{id: id, seq: seq}
	})
}

// updateBlink flips the cursor phase while focused. Blurred inputs keep the
// cursor visible and keep ticking, so focus gained through a scope picks the
// loop up without the host restarting it.
func (m Model) updateBlink(msg blinkMsg) (Model, tea.Cmd) {
	if !m.cfg.Blink || msg.id != m.id || msg.seq != m.blinkSeq {
		return m, nil
	}
	if m.Focused() {
		m.buf.ToggleBlink()
	} else {
		m.buf.ResetBlink()
	}
	return m, m.blinkCmd()
}
