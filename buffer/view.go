package buffer

import (
	"slices"

	"github.com/iw2rmb/sprig/internal/grapheme"
)

// Segments is the buffer split around the cursor.
//
// For ShapeUnderline and ShapeBlock, At is the grapheme the cursor decorates.
// At the end of the buffer there is no such grapheme, so At is a synthesized
// space and Synthesized is true. For ShapeLine, At is empty: the caret sits
// between Before and After.
type Segments struct {
	Before      []string
	At          string
	After       []string
	Synthesized bool
}

// Split returns the graphemes before, under and after the cursor according to
// the cursor shape. The slices are copies.
func (b *Buffer) Split() Segments {
	i := b.cursor.index
	seg := Segments{Before: slices.Clone(b.chars[:i])}

	if b.cursor.shape == ShapeLine {
		seg.After = slices.Clone(b.chars[i:])
		return seg
	}
	if i >= len(b.chars) {
		seg.At = " "
		seg.Synthesized = true
		return seg
	}
	seg.At = b.chars[i]
	seg.After = slices.Clone(b.chars[i+1:])
	return seg
}

// TextWithCursor returns the undecorated characters a focused field occupies
// on screen: the text with a "|" spliced in for ShapeLine, or the text plus a
// trailing space when a block or underline cursor sits past the end.
func (b *Buffer) TextWithCursor() string {
	seg := b.Split()
	if b.cursor.shape == ShapeLine {
		return grapheme.Join(seg.Before) + "|" + grapheme.Join(seg.After)
	}
	return grapheme.Join(seg.Before) + seg.At + grapheme.Join(seg.After)
}
