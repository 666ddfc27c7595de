package buffer

import "fmt"

// Shape is the visual form of the cursor.
type Shape uint8

const (
	// ShapeUnderline underlines the grapheme under the cursor.
	ShapeUnderline Shape = iota
	// ShapeBlock draws the grapheme under the cursor on a solid background.
	ShapeBlock
	// ShapeLine draws a caret between two graphemes. It occupies a display
	// column of its own.
	ShapeLine
)

func (s Shape) String() string {
	switch s {
	case ShapeUnderline:
		return "underline"
	case ShapeBlock:
		return "block"
	case ShapeLine:
		return "line"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the defined shapes.
func (s Shape) Valid() bool {
	return s <= ShapeLine
}

// ParseShape accepts a shape name or its glyph ("_", "▉", "|").
func ParseShape(s string) (Shape, error) {
	switch s {
	case "underline", "_":
		return ShapeUnderline, nil
	case "block", "▉":
		return ShapeBlock, nil
	case "line", "caret", "|":
		return ShapeLine, nil
	default:
		return ShapeUnderline, fmt.Errorf("unknown cursor shape %q", s)
	}
}

func normalizeShape(s Shape) Shape {
	if s.Valid() {
		return s
	}
	return ShapeUnderline
}

// Direction is a cursor navigation command.
type Direction uint8

const (
	DirStart Direction = iota
	DirLeft
	DirRight
	DirEnd
	DirWordLeft
	DirWordRight
)

func (d Direction) String() string {
	switch d {
	case DirStart:
		return "start"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirEnd:
		return "end"
	case DirWordLeft:
		return "word-left"
	case DirWordRight:
		return "word-right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
