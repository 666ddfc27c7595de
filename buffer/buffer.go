package buffer

import "github.com/iw2rmb/sprig/internal/grapheme"

type Options struct {
	Shape Shape
	Bold  bool

	HistoryLimit int // default: 100; negative disables undo
}

// Buffer owns the typed graphemes and the cursor that points into them.
type Buffer struct {
	chars   []string
	cursor  Cursor
	version uint64

	opt  Options
	hist historyState
}

// New returns a buffer holding text with the cursor at index 0.
func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 100
	}
	return &Buffer{
		chars:  grapheme.Split(text),
		cursor: NewCursor(opt.Shape, opt.Bold),
		opt:    opt,
	}
}

func (b *Buffer) Text() string { return grapheme.Join(b.chars) }

// Len returns the number of graphemes.
func (b *Buffer) Len() int { return len(b.chars) }

func (b *Buffer) IsEmpty() bool { return len(b.chars) == 0 }

func (b *Buffer) Index() int { return b.cursor.index }

// Cursor returns a copy of the cursor state.
func (b *Buffer) Cursor() Cursor { return b.cursor }

// Version increases on every effective change of text or cursor index.
func (b *Buffer) Version() uint64 { return b.version }

// Graphemes returns a copy of the grapheme clusters.
func (b *Buffer) Graphemes() []string {
	if len(b.chars) == 0 {
		return nil
	}
	out := make([]string, len(b.chars))
	copy(out, b.chars)
	return out
}

func (b *Buffer) atEnd() bool { return b.cursor.index == len(b.chars) }

// ToggleBlink flips the cursor blink phase. Text, index and version are left
// alone.
func (b *Buffer) ToggleBlink() { b.cursor.ToggleBlink() }

// ResetBlink makes the cursor visible and reports whether that changed.
func (b *Buffer) ResetBlink() bool { return b.cursor.ResetBlink() }
