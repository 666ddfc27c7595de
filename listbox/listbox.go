// Package listbox provides a scrollable, single-selection list of strings for
// Bubble Tea programs.
//
// Nothing is selected until the user or the host picks a row; the first Next
// or Previous from that state selects the first visible row.
package listbox

import (
	"log/slog"

	"github.com/iw2rmb/sprig/focus"
	"github.com/iw2rmb/sprig/signal"
)

// Selection identifies a list row by absolute index.
type Selection struct {
	Index int
	Item  string
}

type Config struct {
	Items []string

	// Height is the number of visible rows. Zero shows every item.
	Height int
	// Width truncates rows to this many cells. Zero disables truncation.
	Width int
	// Title is rendered above the rows.
	Title string
	// ShowIndices prefixes each row with its 1-based number.
	ShowIndices bool

	KeyMap KeyMap
	Style  Style

	Scope  *focus.Scope
	Logger *slog.Logger

	OnSelect func(Selection)
}

// list is the state shared between copies of a Model.
type list struct {
	items       []string
	selected    int // absolute index, -1 for none
	highlighted int // absolute index under the pointer, -1 for none
	start       int // first visible row
}

type Model struct {
	cfg   Config
	l     *list
	focus *focus.State
	log   *slog.Logger

	selected *signal.Signal[Selection]
	added    *signal.Signal[Selection]
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Height < 0 {
		cfg.Height = 0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	items := make([]string, len(cfg.Items))
	copy(items, cfg.Items)

	m := Model{
		cfg:      cfg,
		l:        &list{items: items, selected: -1, highlighted: -1},
		focus:    focus.NewState(cfg.Scope),
		log:      logger.With(slog.String("widget", "listbox")),
		selected: &signal.Signal[Selection]{},
		added:    &signal.Signal[Selection]{},
	}
	m.selected.Connect(cfg.OnSelect)
	return m
}

// SelectedChanged fires whenever the selection moves to a different row.
func (m Model) SelectedChanged() *signal.Signal[Selection] { return m.selected }

// Added fires after Add with the position the item was inserted at.
func (m Model) Added() *signal.Signal[Selection] { return m.added }

func (m Model) FocusState() *focus.State { return m.focus }

func (m Model) Focused() bool { return m.focus.Focused() }

func (m Model) Focus() Model {
	m.focus.Focus()
	return m
}

func (m Model) Blur() Model {
	m.focus.Blur()
	return m
}

// Close removes the list from its focus scope.
func (m Model) Close() Model {
	m.focus.Detach()
	return m
}

func (m Model) Len() int { return len(m.l.items) }

// Items returns a copy of the items.
func (m Model) Items() []string {
	out := make([]string, len(m.l.items))
	copy(out, m.l.items)
	return out
}

// Selected returns the selected row.
func (m Model) Selected() (Selection, bool) {
	i := m.l.selected
	if i < 0 || i >= len(m.l.items) {
		return Selection{Index: -1}, false
	}
	return Selection{Index: i, Item: m.l.items[i]}, true
}

// Highlighted returns the index of the row under the pointer.
func (m Model) Highlighted() (int, bool) {
	i := m.l.highlighted
	return i, i >= 0 && i < len(m.l.items)
}

// Select selects the row at index and scrolls it into view. Out of range
// indexes and the current selection are no-ops.
func (m Model) Select(index int) bool {
	if index < 0 || index >= len(m.l.items) || index == m.l.selected {
		return false
	}
	m.setSelected(index)
	return true
}

// Next moves the selection down one row, scrolling at the bottom edge.
func (m Model) Next() bool {
	if len(m.l.items) == 0 {
		return false
	}
	if m.l.selected < 0 {
		m.setSelected(m.l.start)
		return true
	}
	return m.Select(m.l.selected + 1)
}

// Previous moves the selection up one row, scrolling at the top edge.
func (m Model) Previous() bool {
	if len(m.l.items) == 0 {
		return false
	}
	if m.l.selected < 0 {
		m.setSelected(m.l.start)
		return true
	}
	return m.Select(m.l.selected - 1)
}

// Add inserts item at index and returns the position used. A negative index
// counts from the end: -1 appends, -2 inserts before the last item. Indexes
// past either end are clamped.
func (m Model) Add(item string, index int) int {
	n := len(m.l.items)
	if index < 0 {
		index = n + index + 1
	}
	index = clampInt(index, 0, n)

	m.l.items = append(m.l.items, "")
	copy(m.l.items[index+1:], m.l.items[index:])
	m.l.items[index] = item
	if m.l.selected >= index {
		m.l.selected++
		m.scrollTo(m.l.selected)
	}

	m.log.Debug("listbox add", slog.Int("index", index), slog.String("item", item))
	m.added.Emit(Selection{Index: index, Item: item})
	return index
}

// Reset clears the selection and scroll position. Items are kept.
func (m Model) Reset() {
	m.l.selected = -1
	m.l.highlighted = -1
	m.l.start = 0
}

func (m Model) setSelected(index int) {
	m.l.selected = index
	m.scrollTo(index)
	sel, _ := m.Selected()
	m.log.Debug("listbox select", slog.Int("index", sel.Index), slog.String("item", sel.Item))
	m.selected.Emit(sel)
}

func (m Model) scrollTo(index int) {
	h := m.visibleRows()
	switch {
	case index < m.l.start:
		m.l.start = index
	case index >= m.l.start+h:
		m.l.start = index - h + 1
	}
}

func (m Model) visibleRows() int {
	n := len(m.l.items)
	if m.cfg.Height > 0 && m.cfg.Height < n {
		return m.cfg.Height
	}
	return n
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
