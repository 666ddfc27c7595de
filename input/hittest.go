package input

import (
	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/internal/grapheme"
)

// cellToIndex maps a column relative to the first content cell onto a buffer
// index, using the layout currently on screen. A click on a grapheme places
// the cursor before it; a click past the text places it at the end.
func (m Model) cellToIndex(x int) int {
	if m.buf == nil || x < 0 {
		return 0
	}
	chars := m.buf.Graphemes()
	focused := m.Focused()
	caret := focused && m.buf.Cursor().Shape() == buffer.ShapeLine
	cur := m.buf.Index()

	i := 0
	if focused {
		i = clampInt(m.xOffset, 0, len(chars))
	}
	col := 0
	for ; i < len(chars); i++ {
		if caret && i == cur {
			if x < col+1 {
				return i
			}
			col++
		}
		w := grapheme.Width(chars[i])
		if x < col+w {
			return i
		}
		col += w
	}
	return len(chars)
}

func (m Model) inBounds(x, y int) bool {
	return y == 0 && x >= 0 && x < m.Width()
}
