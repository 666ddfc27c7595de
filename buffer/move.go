package buffer

import (
	"fmt"

	"github.com/iw2rmb/sprig/internal/grapheme"
)

// Move navigates the cursor. Right and End are bounded by the current length.
//
// Move panics on a Direction outside the defined constants: that is a caller
// bug, never the result of user input.
func (b *Buffer) Move(dir Direction) bool {
	var changed bool
	switch dir {
	case DirStart:
		changed = b.cursor.ToStart()
	case DirLeft:
		changed = b.cursor.ToLeft()
	case DirRight:
		changed = b.cursor.ToRightLimit(len(b.chars))
	case DirEnd:
		changed = b.cursor.ToEnd(len(b.chars))
	case DirWordLeft:
		changed = b.moveTo(prevWordBoundary(b.chars, b.cursor.index))
	case DirWordRight:
		changed = b.moveTo(nextWordBoundary(b.chars, b.cursor.index))
	default:
		panic(fmt.Sprintf("buffer: invalid move direction %v", dir))
	}
	if changed {
		b.version++
	}
	return changed
}

// Activate maps a horizontal offset, in graphemes, to a cursor index. Offsets
// past the end clamp to Len().
func (b *Buffer) Activate(x int) bool {
	if !b.cursor.Activate(x, len(b.chars)) {
		return false
	}
	b.version++
	return true
}

func (b *Buffer) moveTo(i int) bool {
	i = clampInt(i, 0, len(b.chars))
	if i == b.cursor.index {
		return false
	}
	b.cursor.setIndex(i)
	return true
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
func prevWordBoundary(chars []string, col int) int {
	i := clampInt(col, 0, len(chars))
	for i > 0 && grapheme.IsSpace(chars[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(chars[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(chars []string, col int) int {
	i := clampInt(col, 0, len(chars))
	for i < len(chars) && grapheme.IsSpace(chars[i]) {
		i++
	}
	for i < len(chars) && !grapheme.IsSpace(chars[i]) {
		i++
	}
	return i
}
