package buffer

import "testing"

func TestCursor_BoundedMoves(t *testing.T) {
	c := NewCursor(ShapeUnderline, false)

	if c.ToLeft() {
		t.Fatalf("ToLeft at 0: got changed, want no-op")
	}
	if !c.ToRightLimit(2) || !c.ToRightLimit(2) {
		t.Fatalf("ToRightLimit below limit: want changed")
	}
	if c.ToRightLimit(2) {
		t.Fatalf("ToRightLimit at limit: got changed, want no-op")
	}
	if got := c.Index(); got != 2 {
		t.Fatalf("index: got %d, want %d", got, 2)
	}

	if !c.ToStart() {
		t.Fatalf("ToStart from 2: want changed")
	}
	if c.ToStart() {
		t.Fatalf("ToStart at 0: got changed, want no-op")
	}
	if !c.ToEnd(5) {
		t.Fatalf("ToEnd(5): want changed")
	}
	if c.ToEnd(5) {
		t.Fatalf("second ToEnd(5): got changed, want no-op")
	}
}

func TestCursor_ToRightIsUnbounded(t *testing.T) {
	c := NewCursor(ShapeBlock, false)
	for i := 0; i < 3; i++ {
		if !c.ToRight() {
			t.Fatalf("ToRight #%d: want changed", i)
		}
	}
	if got := c.Index(); got != 3 {
		t.Fatalf("index: got %d, want %d", got, 3)
	}
}

func TestCursor_ActivateClamps(t *testing.T) {
	c := NewCursor(ShapeUnderline, false)

	if !c.Activate(10, 4) {
		t.Fatalf("Activate(10,4): want changed")
	}
	if got := c.Index(); got != 4 {
		t.Fatalf("index after Activate(10,4): got %d, want %d", got, 4)
	}
	if c.Activate(4, 4) {
		t.Fatalf("Activate to same index: got changed, want no-op")
	}
	c.Activate(-3, 4)
	if got := c.Index(); got != 0 {
		t.Fatalf("index after negative Activate: got %d, want %d", got, 0)
	}
}

func TestCursor_BlinkDoesNotMoveIndex(t *testing.T) {
	c := NewCursor(ShapeUnderline, true)
	c.ToRight()

	if !c.Visible() {
		t.Fatalf("new cursor should be visible")
	}
	c.ToggleBlink()
	if c.Visible() {
		t.Fatalf("after toggle: want hidden")
	}
	if got := c.Index(); got != 1 {
		t.Fatalf("index after toggle: got %d, want %d", got, 1)
	}
	if !c.ResetBlink() {
		t.Fatalf("ResetBlink while hidden: want changed")
	}
	if c.ResetBlink() {
		t.Fatalf("ResetBlink while visible: got changed, want no-op")
	}
	if !c.Bold() {
		t.Fatalf("bold: got false, want true")
	}
}

func TestCursor_ShapeNormalizationAndColumns(t *testing.T) {
	if got := NewCursor(Shape(42), false).Shape(); got != ShapeUnderline {
		t.Fatalf("invalid shape: got %v, want %v", got, ShapeUnderline)
	}
	if got := NewCursor(ShapeLine, false).Columns(); got != 1 {
		t.Fatalf("line columns: got %d, want %d", got, 1)
	}
	if got := NewCursor(ShapeBlock, false).Columns(); got != 0 {
		t.Fatalf("block columns: got %d, want %d", got, 0)
	}
}

func TestParseShape(t *testing.T) {
	cases := []struct {
		in   string
		want Shape
		ok   bool
	}{
		{in: "underline", want: ShapeUnderline, ok: true},
		{in: "_", want: ShapeUnderline, ok: true},
		{in: "block", want: ShapeBlock, ok: true},
		{in: "▉", want: ShapeBlock, ok: true},
		{in: "line", want: ShapeLine, ok: true},
		{in: "|", want: ShapeLine, ok: true},
		{in: "__", ok: false},
	}
	for _, tc := range cases {
		got, err := ParseShape(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("ParseShape(%q) err: got %v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("ParseShape(%q): got %v, want %v", tc.in, got, tc.want)
		}
	}
}
