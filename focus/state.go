package focus

import "github.com/iw2rmb/sprig/signal"

// State is the focus flag a widget holds by composition. When attached to a
// Scope, Focus and Blur go through the scope so the previous holder is
// blurred first.
type State struct {
	// Changed fires with the new value whenever the flag flips.
	Changed signal.Signal[bool]

	focused bool
	scope   *Scope
	id      ID
}

var _ Focusable = (*State)(nil)

// NewState returns an unfocused state registered with scope. A nil scope
// gives a standalone state.
func NewState(scope *Scope) *State {
	s := &State{scope: scope}
	if scope != nil {
		s.id = scope.Register(s)
	}
	return s
}

// ID returns the scope member ID, or 0 for a standalone state.
func (s *State) ID() ID { return s.id }

// Scope returns the scope the state is registered with, if any.
func (s *State) Scope() *Scope { return s.scope }

func (s *State) Focused() bool { return s.focused }

// Focus gains focus and reports whether the flag changed.
func (s *State) Focus() bool {
	if s.scope != nil {
		return s.scope.Focus(s.id)
	}
	return s.set(true)
}

// Blur loses focus and reports whether the flag changed.
func (s *State) Blur() bool {
	if s.scope != nil {
		if cur, ok := s.scope.Current(); ok && cur == s.id {
			return s.scope.Blur()
		}
	}
	return s.set(false)
}

// Detach removes the state from its scope, blurring it if it held focus.
// The state is standalone afterwards.
func (s *State) Detach() {
	if s.scope == nil {
		return
	}
	s.scope.Unregister(s.id)
	s.scope = nil
	s.id = 0
}

// SetFocused implements Focusable. Only a Scope should call it.
func (s *State) SetFocused(focused bool) {
	s.set(focused)
}

func (s *State) set(focused bool) bool {
	if s.focused == focused {
		return false
	}
	s.focused = focused
	s.Changed.Emit(focused)
	return true
}
