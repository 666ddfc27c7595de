package buffer

import "testing"

func TestMove_StartThenEndLandsAtLength(t *testing.T) {
	b := New("abcd", Options{})
	b.Activate(2)

	b.Move(DirStart)
	b.Move(DirEnd)
	if got, want := b.Index(), b.Len(); got != want {
		t.Fatalf("index after start,end: got %d, want %d", got, want)
	}
}

func TestMove_EndIsIdempotent(t *testing.T) {
	b := New("abcd", Options{})

	if !b.Move(DirEnd) {
		t.Fatalf("first End: want changed")
	}
	if b.Move(DirEnd) {
		t.Fatalf("second End: got changed, want no-op")
	}
}

func TestMove_HomeAtStartIsNoOp(t *testing.T) {
	b := New("abcd", Options{})
	ver := b.Version()
	if b.Move(DirStart) {
		t.Fatalf("Start at 0: got changed, want no-op")
	}
	if got := b.Version(); got != ver {
		t.Fatalf("version: got %d, want %d", got, ver)
	}
}

func TestMove_RightIsBoundedByLength(t *testing.T) {
	b := New("ab", Options{})
	b.Move(DirRight)
	b.Move(DirRight)
	if b.Move(DirRight) {
		t.Fatalf("Right at end: got changed, want no-op")
	}
	if got, want := b.Index(), 2; got != want {
		t.Fatalf("index: got %d, want %d", got, want)
	}
}

func TestMove_Words(t *testing.T) {
	b := New("one  two three", Options{})

	b.Move(DirWordRight)
	if got, want := b.Index(), 3; got != want {
		t.Fatalf("index after word right: got %d, want %d", got, want)
	}
	b.Move(DirWordRight)
	if got, want := b.Index(), 8; got != want {
		t.Fatalf("index after second word right: got %d, want %d", got, want)
	}

	b.Move(DirEnd)
	b.Move(DirWordLeft)
	if got, want := b.Index(), 9; got != want {
		t.Fatalf("index after word left: got %d, want %d", got, want)
	}
	b.Move(DirWordLeft)
	if got, want := b.Index(), 5; got != want {
		t.Fatalf("index after second word left: got %d, want %d", got, want)
	}
}

func TestMove_InvalidDirectionPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Move(invalid): want panic")
		}
	}()
	New("a", Options{}).Move(Direction(99))
}

func TestActivate_ClampsPastLength(t *testing.T) {
	for _, x := range []int{3, 4, 100} {
		b := New("abc", Options{})
		b.Activate(x)
		if got, want := b.Index(), 3; got != want {
			t.Fatalf("Activate(%d): got %d, want %d", x, got, want)
		}
	}
}
