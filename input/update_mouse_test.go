package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sprig/buffer"
)

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestMouse_ClickFocusesAndActivates(t *testing.T) {
	m := New(Config{Text: "hello", Padding: 1})

	m, _ = m.Update(click(3, 0))
	if !m.Focused() {
		t.Fatalf("click did not focus the input")
	}
	if got := m.Buffer().Index(); got != 2 {
		t.Fatalf("index after click: got %d, want %d", got, 2)
	}
}

func TestMouse_ClickPastTextClampsToEnd(t *testing.T) {
	m := New(Config{Text: "hi", Padding: 1, Width: 10})
	m, _ = m.Update(click(8, 0))
	if got := m.Buffer().Index(); got != 2 {
		t.Fatalf("index: got %d, want %d", got, 2)
	}
}

func TestMouse_ClickOnLeftPaddingGoesToStart(t *testing.T) {
	m := focused(Config{Text: "hi", Padding: 2})
	m, _ = m.Update(keyMsg(tea.KeyEnd))
	m, _ = m.Update(click(0, 0))
	if got := m.Buffer().Index(); got != 0 {
		t.Fatalf("index: got %d, want %d", got, 0)
	}
}

func TestMouse_IgnoresOutOfBoundsAndOtherButtons(t *testing.T) {
	m := New(Config{Text: "hi"})

	m, _ = m.Update(click(1, 1))
	m, _ = m.Update(click(5, 0))
	m, _ = m.Update(tea.MouseMsg{X: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = m.Update(tea.MouseMsg{X: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.Focused() {
		t.Fatalf("input focused by an ignored mouse event")
	}
}

func TestMouse_LineCaretOccupiesACell(t *testing.T) {
	m := focused(Config{Text: "abcd", Shape: buffer.ShapeLine})
	// On screen: "│abcd"; column 3 is "c".
	m, _ = m.Update(click(3, 0))
	if got := m.Buffer().Index(); got != 2 {
		t.Fatalf("index: got %d, want %d", got, 2)
	}
}

func TestMouse_ClickUsesScrolledLayout(t *testing.T) {
	m := focused(Config{Width: 4})
	m = typeText(m, "abcdef")
	// On screen: "def " with the cursor past the end.
	m, _ = m.Update(click(0, 0))
	if got := m.Buffer().Index(); got != 3 {
		t.Fatalf("index: got %d, want %d", got, 3)
	}
}
