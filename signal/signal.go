// Package signal provides a typed, explicitly connected event emitter.
//
// Slots run synchronously on the emitting goroutine, in connection order.
// A Signal is not safe for concurrent use; widgets emit from the Bubble Tea
// update loop only.
package signal

// Connection identifies a connected slot. The zero value is never issued.
type Connection uint64

type slot[T any] struct {
	id Connection
	fn func(T)
}

// Signal fans a value out to connected slots. The zero value is ready to use.
type Signal[T any] struct {
	next  Connection
	slots []slot[T]
}

// Connect registers fn and returns a handle for Disconnect. A nil fn is
// ignored and yields the zero Connection.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	if fn == nil {
		return 0
	}
	s.next++
	s.slots = append(s.slots, slot[T]{id: s.next, fn: fn})
	return s.next
}

// Disconnect removes the slot and reports whether it was connected.
func (s *Signal[T]) Disconnect(c Connection) bool {
	for i, sl := range s.slots {
		if sl.id != c {
			continue
		}
		next := make([]slot[T], 0, len(s.slots)-1)
		next = append(next, s.slots[:i]...)
		next = append(next, s.slots[i+1:]...)
		s.slots = next
		return true
	}
	return false
}

// Emit calls every slot connected at the time of the call. Slots may connect
// or disconnect during Emit; the change applies to the next Emit.
func (s *Signal[T]) Emit(v T) {
	if s == nil {
		return
	}
	for _, sl := range s.slots {
		sl.fn(v)
	}
}

// Len returns the number of connected slots.
func (s *Signal[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.slots)
}
