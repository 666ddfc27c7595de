package buffer

type snapshot struct {
	chars []string
	index int
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{
		chars: b.Graphemes(),
		index: b.cursor.index,
	}
}

func (b *Buffer) restore(s snapshot) {
	b.chars = s.chars
	b.cursor.setIndex(clampInt(s.index, 0, len(b.chars)))
}

func (b *Buffer) recordUndo(prev snapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	b.hist.undo = append(b.hist.undo, prev)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the text and cursor from before the last edit.
func (b *Buffer) Undo() bool {
	if len(b.hist.undo) == 0 {
		return false
	}
	cur := b.snapshot()
	prev := b.hist.undo[len(b.hist.undo)-1]
	b.hist.undo = b.hist.undo[:len(b.hist.undo)-1]
	b.hist.redo = append(b.hist.redo, cur)

	b.restore(prev)
	b.version++
	return true
}

// Redo re-applies the last undone edit.
func (b *Buffer) Redo() bool {
	if len(b.hist.redo) == 0 {
		return false
	}
	cur := b.snapshot()
	next := b.hist.redo[len(b.hist.redo)-1]
	b.hist.redo = b.hist.redo[:len(b.hist.redo)-1]
	b.hist.undo = append(b.hist.undo, cur)

	b.restore(next)
	b.version++
	return true
}
