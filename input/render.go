package input

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/internal/grapheme"
)

const caretGlyph = "│"

type viewKey struct {
	version uint64
	focused bool
	visible bool
	width   int
	xOffset int
}

// viewCache is shared between copies of a Model so a no-op update does not
// redraw.
type viewCache struct {
	key     viewKey
	content string
	valid   bool
	renders int
}

// cell is one display unit of the focused layout: a grapheme, the synthesized
// space past the end, or the line caret.
type cell struct {
	text   string
	width  int
	cursor bool
}

func (m Model) View() string {
	if m.buf == nil {
		return ""
	}
	key := viewKey{
		version: m.buf.Version(),
		focused: m.Focused(),
		visible: m.buf.Cursor().Visible(),
		width:   m.cfg.Width,
		xOffset: m.xOffset,
	}
	if m.view.valid && m.view.key == key {
		return m.view.content
	}
	m.view.key = key
	m.view.content = m.render()
	m.view.valid = true
	m.view.renders++
	return m.view.content
}

func (m Model) render() string {
	st := m.cfg.Style
	cw := m.contentWidth()

	var body string
	var used int
	switch {
	case m.Focused():
		body, used = m.renderFocused(cw)
	case m.buf.IsEmpty() && m.cfg.Placeholder != "":
		text, w := clip(grapheme.Split(m.cfg.Placeholder), cw)
		body, used = renderNonEmpty(st.Placeholder, text), w
	default:
		text, w := clip(m.buf.Graphemes(), cw)
		body, used = renderNonEmpty(st.Text, text), w
	}

	pad := renderNonEmpty(st.Field, strings.Repeat(" ", m.cfg.padding()))
	var fill string
	if cw > used {
		fill = renderNonEmpty(st.Field, strings.Repeat(" ", cw-used))
	}
	return pad + body + fill + pad
}

func (m Model) renderFocused(limit int) (string, int) {
	st := m.cfg.Style
	cur := m.buf.Cursor()
	cells := m.focusedCells()

	var sb, run strings.Builder
	flush := func() {
		sb.WriteString(renderNonEmpty(st.Text, run.String()))
		run.Reset()
	}

	used := 0
	for _, c := range cells[clampInt(m.xOffset, 0, len(cells)):] {
		if limit > 0 && used+c.width > limit {
			if !c.cursor || used > 0 {
				break
			}
			// A cursor grapheme wider than the field is drawn as blanks.
			c = cell{text: strings.Repeat(" ", limit), width: limit, cursor: true}
		}
		used += c.width
		if !c.cursor {
			run.WriteString(c.text)
			continue
		}
		if !cur.Visible() {
			if cur.Shape() == buffer.ShapeLine {
				run.WriteString(" ")
			} else {
				run.WriteString(c.text)
			}
			continue
		}
		flush()
		sb.WriteString(st.cursor(cur.Shape(), cur.Bold()).Render(c.text))
	}
	flush()
	return sb.String(), used
}

// focusedCells lays the buffer out the way it is drawn while focused.
func (m Model) focusedCells() []cell {
	seg := m.buf.Split()
	cells := make([]cell, 0, len(seg.Before)+len(seg.After)+1)
	for _, g := range seg.Before {
		cells = append(cells, cell{text: g, width: grapheme.Width(g)})
	}
	if m.buf.Cursor().Shape() == buffer.ShapeLine {
		cells = append(cells, cell{text: caretGlyph, width: 1, cursor: true})
	} else {
		w := grapheme.Width(seg.At)
		if w < 1 {
			w = 1
		}
		cells = append(cells, cell{text: seg.At, width: w, cursor: true})
	}
	for _, g := range seg.After {
		cells = append(cells, cell{text: g, width: grapheme.Width(g)})
	}
	return cells
}

// followCursor scrolls horizontally so the cursor cell stays inside the
// content width, and scrolls back when the text no longer needs the offset.
func (m *Model) followCursor() {
	cw := m.contentWidth()
	if cw == 0 || m.buf == nil {
		m.xOffset = 0
		return
	}
	cells := m.focusedCells()
	cur := m.buf.Index()

	if m.xOffset > cur {
		m.xOffset = cur
	}
	for m.xOffset < cur && spanWidth(cells[m.xOffset:cur+1]) > cw {
		m.xOffset++
	}
	for m.xOffset > 0 && spanWidth(cells[m.xOffset-1:]) <= cw {
		m.xOffset--
	}
}

func (m Model) naturalWidth() int {
	switch {
	case m.Focused():
		return spanWidth(m.focusedCells())
	case m.buf.IsEmpty() && m.cfg.Placeholder != "":
		return grapheme.WidthOf(grapheme.Split(m.cfg.Placeholder))
	default:
		return grapheme.WidthOf(m.buf.Graphemes())
	}
}

func spanWidth(cells []cell) int {
	w := 0
	for _, c := range cells {
		w += c.width
	}
	return w
}

// clip joins graphemes until limit cells are used. A non-positive limit
// keeps everything.
func clip(chars []string, limit int) (string, int) {
	var sb strings.Builder
	used := 0
	for _, g := range chars {
		w := grapheme.Width(g)
		if limit > 0 && used+w > limit {
			break
		}
		sb.WriteString(g)
		used += w
	}
	return sb.String(), used
}

func renderNonEmpty(st lipgloss.Style, s string) string {
	if s == "" {
		return ""
	}
	return st.Render(s)
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
