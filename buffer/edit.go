package buffer

import "github.com/iw2rmb/sprig/internal/grapheme"

// Add inserts one typed character at the cursor and moves the cursor past it.
// A string holding several graphemes is inserted as Insert would.
func (b *Buffer) Add(char string) bool {
	return b.Insert(char)
}

// Insert inserts text at the cursor, grapheme by grapheme, and leaves the
// cursor after the inserted text. Only the empty string is a no-op.
func (b *Buffer) Insert(text string) bool {
	ins := grapheme.Split(text)
	if len(ins) == 0 {
		return false
	}

	prev := b.snapshot()
	i := b.cursor.index
	if b.atEnd() {
		b.chars = append(b.chars, ins...)
	} else {
		next := make([]string, 0, len(b.chars)+len(ins))
		next = append(next, b.chars[:i]...)
		next = append(next, ins...)
		next = append(next, b.chars[i:]...)
		b.chars = next
	}
	for range ins {
		b.cursor.ToRight()
	}
	b.commit(prev)
	return true
}

// DeleteLeft removes the grapheme before the cursor (backspace).
func (b *Buffer) DeleteLeft() bool {
	if len(b.chars) == 0 || b.cursor.index == 0 {
		return false
	}

	prev := b.snapshot()
	if b.atEnd() {
		b.chars = b.chars[:len(b.chars)-1]
	} else {
		i := b.cursor.index - 1
		b.chars = append(b.chars[:i:i], b.chars[i+1:]...)
	}
	b.cursor.ToLeft()
	b.commit(prev)
	return true
}

// DeleteRight removes the grapheme under the cursor (forward delete). The
// cursor index stays put and the tail shifts left under it.
func (b *Buffer) DeleteRight() bool {
	if len(b.chars) == 0 || b.atEnd() {
		return false
	}

	prev := b.snapshot()
	i := b.cursor.index
	b.chars = append(b.chars[:i:i], b.chars[i+1:]...)
	b.commit(prev)
	return true
}

// Clear empties the buffer and moves the cursor to the start.
func (b *Buffer) Clear() bool {
	if len(b.chars) == 0 {
		return false
	}

	prev := b.snapshot()
	b.chars = nil
	b.cursor.ToStart()
	b.commit(prev)
	return true
}

// SetText replaces the content and puts the cursor at the end. Setting the
// current text again is a no-op.
func (b *Buffer) SetText(text string) bool {
	if text == b.Text() {
		return false
	}

	prev := b.snapshot()
	b.chars = grapheme.Split(text)
	b.cursor.ToEnd(len(b.chars))
	b.commit(prev)
	return true
}

func (b *Buffer) commit(prev snapshot) {
	b.version++
	b.recordUndo(prev)
}
