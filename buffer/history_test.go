package buffer

import "testing"

func TestHistory_UndoRedo(t *testing.T) {
	b := New("", Options{})
	b.Add("a")
	b.Add("b")

	if !b.Undo() {
		t.Fatalf("Undo: want changed")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text after undo: got %q, want %q", got, want)
	}
	if got, want := b.Index(), 1; got != want {
		t.Fatalf("index after undo: got %d, want %d", got, want)
	}

	if !b.Redo() {
		t.Fatalf("Redo: want changed")
	}
	if got, want := b.Text(), "ab"; got != want {
		t.Fatalf("text after redo: got %q, want %q", got, want)
	}
	if b.Redo() {
		t.Fatalf("Redo with empty stack: got changed")
	}
}

func TestHistory_EditClearsRedo(t *testing.T) {
	b := New("", Options{})
	b.Add("a")
	b.Undo()
	if !b.CanRedo() {
		t.Fatalf("CanRedo after undo: got false")
	}
	b.Add("z")
	if b.CanRedo() {
		t.Fatalf("CanRedo after new edit: got true")
	}
}

func TestHistory_MovesAreNotRecorded(t *testing.T) {
	b := New("abc", Options{})
	b.Move(DirEnd)
	if b.CanUndo() {
		t.Fatalf("CanUndo after move: got true")
	}
}

func TestHistory_Limit(t *testing.T) {
	b := New("", Options{HistoryLimit: 2})
	b.Add("a")
	b.Add("b")
	b.Add("c")

	b.Undo()
	b.Undo()
	if b.Undo() {
		t.Fatalf("third Undo past limit: got changed")
	}
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestHistory_Disabled(t *testing.T) {
	b := New("", Options{HistoryLimit: -1})
	b.Add("a")
	if b.CanUndo() {
		t.Fatalf("CanUndo with history disabled: got true")
	}
}
