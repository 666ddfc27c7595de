package input

import (
	"log/slog"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/sprig/buffer"
	"github.com/iw2rmb/sprig/focus"
	"github.com/iw2rmb/sprig/signal"
)

var lastID atomic.Int64

func nextID() int { return int(lastID.Add(1)) }

// Model is a Bubble Tea component that renders and edits a single-line buffer.
//
// Copies of a Model share the buffer, focus state, signals and render cache.
type Model struct {
	cfg Config
	id  int

	buf   *buffer.Buffer
	focus *focus.State
	log   *slog.Logger

	changed   *signal.Signal[ChangeEvent]
	submitted *signal.Signal[string]
	cancelled *signal.Signal[struct{}]

	xOffset     int // first visible grapheme while focused
	blinkSeq    int
	lastVersion uint64

	view *viewCache
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	m := Model{
		cfg: cfg,
		id:  nextID(),
		buf: buffer.New(cfg.Text, buffer.Options{
			Shape:        cfg.Shape,
			Bold:         cfg.CursorBold,
			HistoryLimit: cfg.HistoryLimit,
		}),
		focus:     focus.NewState(cfg.Scope),
		changed:   &signal.Signal[ChangeEvent]{},
		submitted: &signal.Signal[string]{},
		cancelled: &signal.Signal[struct{}]{},
		view:      &viewCache{},
	}
	m.log = logger.With(slog.Int("input", m.id))
	m.lastVersion = m.buf.Version()

	m.changed.Connect(cfg.OnChange)
	m.submitted.Connect(cfg.OnSubmit)
	if cfg.OnCancel != nil {
		onCancel := cfg.OnCancel
		m.cancelled.Connect(func(struct{}) { onCancel() })
	}
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Value returns the typed text.
func (m Model) Value() string { return m.buf.Text() }

// SetValue replaces the text and moves the cursor to the end.
func (m Model) SetValue(text string) Model {
	if m.buf.SetText(text) {
		m.sync()
	}
	return m
}

// Reset clears the text.
func (m Model) Reset() Model {
	if m.buf.Clear() {
		m.sync()
	}
	return m
}

// Changed fires after every effective edit or cursor move.
func (m Model) Changed() *signal.Signal[ChangeEvent] { return m.changed }

// Submitted fires with the current text when the submit binding is pressed.
func (m Model) Submitted() *signal.Signal[string] { return m.submitted }

// Cancelled fires when the cancel binding releases focus.
func (m Model) Cancelled() *signal.Signal[struct{}] { return m.cancelled }

// FocusState exposes the focus collaborator held by the input.
func (m Model) FocusState() *focus.State { return m.focus }

func (m Model) Focused() bool { return m.focus != nil && m.focus.Focused() }

// Focus gains focus and starts the blink timer when enabled.
func (m Model) Focus() (Model, tea.Cmd) {
	m.focus.Focus()
	return m.StartBlink()
}

// Blur releases focus.
func (m Model) Blur() Model {
	m.focus.Blur()
	m.buf.ResetBlink()
	return m
}

// Close removes the input from its focus scope. Call it when the input is
// discarded so it leaves the tab order.
func (m Model) Close() Model {
	m.focus.Detach()
	m.buf.ResetBlink()
	return m
}

// SetWidth sets the total rendered width, padding included. Zero fits the
// content.
func (m Model) SetWidth(width int) Model {
	if width < 0 {
		width = 0
	}
	m.cfg.Width = width
	m.followCursor()
	return m
}

// Width returns the width of the rendered view in cells.
func (m Model) Width() int {
	if w := m.contentWidth(); w > 0 {
		return w + 2*m.cfg.padding()
	}
	return m.naturalWidth() + 2*m.cfg.padding()
}

// Init starts the blink loop when Config.Blink is set.
func (m Model) Init() tea.Cmd {
	if !m.cfg.Blink || m.buf == nil {
		return nil
	}
	return m.blinkCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	case blinkMsg:
		return m.updateBlink(msg)
	default:
		// Hosts may mutate the buffer directly; pick that up here.
		m.sync()
		return m, nil
	}
}

// sync reconciles derived state with the buffer after an operation and
// reports whether the buffer changed.
func (m *Model) sync() bool {
	if m.buf == nil {
		return false
	}
	ver := m.buf.Version()
	if ver == m.lastVersion {
		return false
	}
	m.lastVersion = ver
	m.followCursor()
	m.changed.Emit(buildChangeEvent(m.buf))
	return true
}

// contentWidth is the text area width, or 0 when the input fits its content.
func (m Model) contentWidth() int {
	if m.cfg.Width <= 0 {
		return 0
	}
	w := m.cfg.Width - 2*m.cfg.padding()
	if w < 1 {
		w = 1
	}
	return w
}
