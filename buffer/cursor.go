package buffer

// Cursor is an insertion point plus its rendering rule.
//
// The cursor does not know the length of the text it points into; callers
// pass the limit to the bounded moves. Index 0 is before the first grapheme.
type Cursor struct {
	index  int
	shape  Shape
	bold   bool
	hidden bool // blink phase; true while the decoration is off
}

// NewCursor returns a cursor at index 0. Unknown shapes fall back to
// ShapeUnderline.
func NewCursor(shape Shape, bold bool) Cursor {
	return Cursor{shape: normalizeShape(shape), bold: bold}
}

func (c Cursor) Index() int   { return c.index }
func (c Cursor) Shape() Shape { return c.shape }
func (c Cursor) Bold() bool   { return c.bold }

// Visible reports whether the current blink phase shows the decoration.
func (c Cursor) Visible() bool { return !c.hidden }

// Columns is the number of display columns the cursor adds on top of the
// text it decorates.
func (c Cursor) Columns() int {
	if c.shape == ShapeLine {
		return 1
	}
	return 0
}

// ToLeft moves one position left unless already at 0.
func (c *Cursor) ToLeft() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// ToRight moves one position right without a bound. It is meant for callers
// that just grew the text and know the new position is valid.
func (c *Cursor) ToRight() bool {
	c.index++
	return true
}

// ToRightLimit moves one position right only while index < limit.
func (c *Cursor) ToRightLimit(limit int) bool {
	if c.index >= limit {
		return false
	}
	c.index++
	return true
}

func (c *Cursor) ToStart() bool {
	if c.index == 0 {
		return false
	}
	c.index = 0
	return true
}

func (c *Cursor) ToEnd(limit int) bool {
	if limit < 0 {
		limit = 0
	}
	if c.index == limit {
		return false
	}
	c.index = limit
	return true
}

// Activate places the cursor at x, clamped into [0, limit]. It is used to map
// a pointer offset onto the text.
func (c *Cursor) Activate(x, limit int) bool {
	next := clampInt(x, 0, limit)
	if next == c.index {
		return false
	}
	c.index = next
	return true
}

// ToggleBlink flips the blink phase. The index is never touched.
func (c *Cursor) ToggleBlink() {
	c.hidden = !c.hidden
}

// ResetBlink makes the decoration visible again and reports whether the phase
// changed.
func (c *Cursor) ResetBlink() bool {
	if !c.hidden {
		return false
	}
	c.hidden = false
	return true
}

func (c *Cursor) setIndex(i int) {
	c.index = i
}
