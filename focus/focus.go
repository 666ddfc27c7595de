// Package focus arbitrates which widget receives keyboard input.
//
// A Scope holds an ordered set of members and guarantees at most one of them
// is focused. Widgets do not inherit focus behaviour; they hold a *State and
// delegate to it.
package focus

import "github.com/iw2rmb/sprig/signal"

// ID identifies a scope member. IDs start at 1; 0 means "none".
type ID int

// Focusable is a scope member. SetFocused is called by the scope only and must
// not call back into it.
type Focusable interface {
	SetFocused(focused bool)
	Focused() bool
}

// Change describes a focus transfer. Previous or Current is 0 when there was
// no holder before or after.
type Change struct {
	Previous ID
	Current  ID
}

// Scope tracks the single focused member out of an ordered set.
type Scope struct {
	// Changed fires after every effective focus transfer.
	Changed signal.Signal[Change]

	lastID  ID
	order   []ID
	members map[ID]Focusable
	current ID
}

func NewScope() *Scope {
	return &Scope{members: make(map[ID]Focusable)}
}

// Register appends f to the tab order and returns its ID.
func (s *Scope) Register(f Focusable) ID {
	s.lastID++
	s.order = append(s.order, s.lastID)
	s.members[s.lastID] = f
	return s.lastID
}

// Unregister removes a member. Removing the focused member leaves the scope
// without a holder.
func (s *Scope) Unregister(id ID) {
	f, ok := s.members[id]
	if !ok {
		return
	}
	if s.current == id {
		f.SetFocused(false)
		s.current = 0
		s.Changed.Emit(Change{Previous: id})
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i:i], s.order[i+1:]...)
			break
		}
	}
}

// Focus moves focus to id, blurring the previous holder. Focusing the current
// holder or an unknown id is a no-op.
func (s *Scope) Focus(id ID) bool {
	next, ok := s.members[id]
	if !ok || s.current == id {
		return false
	}

	prev := s.current
	if f, ok := s.members[prev]; ok {
		f.SetFocused(false)
	}
	s.current = id
	next.SetFocused(true)
	s.Changed.Emit(Change{Previous: prev, Current: id})
	return true
}

// Blur clears focus.
func (s *Scope) Blur() bool {
	if s.current == 0 {
		return false
	}
	prev := s.current
	if f, ok := s.members[prev]; ok {
		f.SetFocused(false)
	}
	s.current = 0
	s.Changed.Emit(Change{Previous: prev})
	return true
}

// Next focuses the member after the current one, wrapping around. With no
// holder it focuses the first member.
func (s *Scope) Next() bool { return s.step(1) }

// Prev focuses the member before the current one, wrapping around. With no
// holder it focuses the last member.
func (s *Scope) Prev() bool { return s.step(-1) }

func (s *Scope) step(delta int) bool {
	n := len(s.order)
	if n == 0 {
		return false
	}
	pos := s.position(s.current)
	if pos < 0 {
		if delta > 0 {
			return s.Focus(s.order[0])
		}
		return s.Focus(s.order[n-1])
	}
	return s.Focus(s.order[((pos+delta)%n+n)%n])
}

func (s *Scope) position(id ID) int {
	for i, v := range s.order {
		if v == id {
			return i
		}
	}
	return -1
}

// Current returns the focused member's ID.
func (s *Scope) Current() (ID, bool) {
	return s.current, s.current != 0
}

// Len returns the number of members.
func (s *Scope) Len() int { return len(s.order) }
