package input

import "github.com/iw2rmb/sprig/buffer"

// ChangeEvent is emitted after every effective change of text or cursor.
type ChangeEvent struct {
	Version uint64
	Index   int
	Text    string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Version: b.Version(),
		Index:   b.Index(),
		Text:    b.Text(),
	}
}
