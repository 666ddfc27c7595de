package listbox

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"

	"github.com/iw2rmb/sprig/focus"
)

func TestNextPrevious_FromNoSelection(t *testing.T) {
	m := New(Config{Items: []string{"a", "b", "c"}})
	if _, ok := m.Selected(); ok {
		t.Fatalf("new list has a selection")
	}

	if !m.Next() {
		t.Fatalf("Next from no selection: want changed")
	}
	if sel, _ := m.Selected(); sel.Index != 0 {
		t.Fatalf("selected after Next: got %d, want 0", sel.Index)
	}
	if m.Previous() {
		t.Fatalf("Previous at the top: got changed")
	}

	m.Next()
	m.Next()
	if m.Next() {
		t.Fatalf("Next at the bottom: got changed")
	}
	if sel, _ := m.Selected(); sel != (Selection{Index: 2, Item: "c"}) {
		t.Fatalf("selected: got %+v", sel)
	}
}

func TestSelectedSignal_OnlyOnChange(t *testing.T) {
	var got []Selection
	m := New(Config{
		Items:    []string{"a", "b"},
		OnSelect: func(s Selection) { got = append(got, s) },
	})

	m.Select(1)
	m.Select(1)
	m.Select(5)
	m.Select(-1)
	m.Previous()

	want := []Selection{{Index: 1, Item: "b"}, {Index: 0, Item: "a"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("selections (-want +got):\n%s", diff)
	}
}

func TestEmptyList(t *testing.T) {
	m := New(Config{})
	if m.Next() || m.Previous() || m.Select(0) {
		t.Fatalf("operations on an empty list reported a change")
	}
}

func TestScroll_KeepsSelectionVisible(t *testing.T) {
	m := New(Config{Items: []string{"a", "b", "c", "d", "e"}, Height: 2})
	m.Select(3)
	if got, want := ansi.Strip(m.View()), "  c\n> d"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
	m.Select(0)
	if got, want := ansi.Strip(m.View()), "> a\n  b"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestAdd_NegativeIndexCountsFromEnd(t *testing.T) {
	var added []Selection
	m := New(Config{Items: []string{"a", "b"}})
	m.Added().Connect(func(s Selection) { added = append(added, s) })
	m.Select(1)

	if got := m.Add("z", -1); got != 2 {
		t.Fatalf("append index: got %d, want 2", got)
	}
	if got := m.Add("x", 0); got != 0 {
		t.Fatalf("insert index: got %d, want 0", got)
	}
	if diff := cmp.Diff([]string{"x", "a", "b", "z"}, m.Items()); diff != "" {
		t.Fatalf("items (-want +got):\n%s", diff)
	}
	if sel, _ := m.Selected(); sel.Item != "b" {
		t.Fatalf("selection moved off its item: got %+v", sel)
	}
	if len(added) != 2 {
		t.Fatalf("added events: got %d, want 2", len(added))
	}
}

func TestAdd_AboveSelectionKeepsItVisible(t *testing.T) {
	m := New(Config{Items: []string{"a", "b", "c"}, Height: 2})
	m.Select(1)

	m.Add("x", 0)
	if got, want := ansi.Strip(m.View()), "  a\n> b"; got != want {
		t.Fatalf("view: got %q, want %q", got, want)
	}
}

func TestView_IndicesAndTitle(t *testing.T) {
	m := New(Config{Items: []string{"one", "two"}, ShowIndices: true, Title: "Pick"})
	m.Select(1)
	want := strings.Join([]string{"Pick", "  1. one", "> 2. two"}, "\n")
	if got := trimLines(ansi.Strip(m.View())); got != want {
		t.Fatalf("view:\n got: %q\nwant: %q", got, want)
	}
}

func TestUpdate_KeysWhileFocused(t *testing.T) {
	m := New(Config{Items: []string{"a", "b", "c"}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if _, ok := m.Selected(); ok {
		t.Fatalf("unfocused list handled a key")
	}

	m = m.Focus()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if sel, _ := m.Selected(); sel.Index != 1 {
		t.Fatalf("after down, j: got %d, want 1", sel.Index)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	if sel, _ := m.Selected(); sel.Index != 2 {
		t.Fatalf("after G: got %d, want 2", sel.Index)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if sel, _ := m.Selected(); sel.Index != 1 {
		t.Fatalf("after up: got %d, want 1", sel.Index)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.Focused() {
		t.Fatalf("esc did not blur")
	}
}

func TestUpdate_ClickSelectsRowAndFocuses(t *testing.T) {
	scope := focus.NewScope()
	m := New(Config{Items: []string{"a", "b", "c"}, Title: "T", Scope: scope, Style: DefaultStyle()})

	// Row 0 is the border, row 1 the title.
	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Focused() {
		t.Fatalf("click did not focus")
	}
	if sel, _ := m.Selected(); sel.Index != 1 {
		t.Fatalf("clicked row: got %d, want 1", sel.Index)
	}

	m, _ = m.Update(tea.MouseMsg{X: 2, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if sel, _ := m.Selected(); sel.Index != 1 {
		t.Fatalf("click on title changed selection to %d", sel.Index)
	}
}

func TestUpdate_TabThroughScope(t *testing.T) {
	scope := focus.NewScope()
	a := New(Config{Items: []string{"a"}, Scope: scope})
	b := New(Config{Items: []string{"b"}, Scope: scope})

	a = a.Focus()
	a, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	if a.Focused() || !b.Focused() {
		t.Fatalf("after tab: a=%v b=%v", a.Focused(), b.Focused())
	}
}

func TestClose_LeavesScope(t *testing.T) {
	scope := focus.NewScope()
	a := New(Config{Items: []string{"a"}, Scope: scope})
	New(Config{Items: []string{"b"}, Scope: scope})

	a = a.Focus()
	a = a.Close()
	if a.Focused() || scope.Len() != 1 {
		t.Fatalf("after close: focused=%v len=%d", a.Focused(), scope.Len())
	}
}

// trimLines drops the padding lipgloss adds to align short lines.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
