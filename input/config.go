package input

import (
	"log/slog"
	"time"

	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/focus"
)

// DefaultBlinkInterval is the blink phase length used when Config.Blink is
// set without an interval.
const DefaultBlinkInterval = 600 * time.Millisecond

// Config configures the input Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string
	// Shown in Style.Placeholder while unfocused and empty.
	Placeholder string

	// Padding is the number of blank cells on each side of the text.
	Padding int
	// Width is the total rendered width including padding. Zero fits the
	// content.
	Width int

	// Cursor appearance.
	Shape         buffer.Shape
	CursorBold    bool
	Blink         bool
	BlinkInterval time.Duration

	// KeepFocusOnSubmit keeps the input focused after enter. By default a
	// submit releases focus.
	KeepFocusOnSubmit bool

	// Forwarded to buffer.Options.
	HistoryLimit int

	// Zero KeyMap means DefaultKeyMap(). A zero Style renders plain text.
	KeyMap KeyMap
	Style  Style

	// Scope, when set, registers the input for tab navigation and exclusive
	// focus.
	Scope *focus.Scope
	// Logger receives debug records for handled input. Nil discards.
	Logger *slog.Logger
	// Clipboard backs the paste binding. Nil disables it.
	Clipboard Clipboard

	// Connected to the Model's signals at construction.
	OnChange func(ChangeEvent)
	OnSubmit func(string)
	OnCancel func()
}

func (c Config) blinkInterval() time.Duration {
	if c.BlinkInterval > 0 {
		return c.BlinkInterval
	}
	return DefaultBlinkInterval
}

func (c Config) padding() int {
	if c.Padding < 0 {
		return 0
	}
	return c.Padding
}
