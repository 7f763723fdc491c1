package window

// Event is a list of handlers notified in subscription order.
type Event[T any] struct {
	next     int
	handlers []handler[T]
}

type handler[T any] struct {
	id int
	fn func(T)
}

// Subscribe adds fn and returns a function that removes it again.
func (e *Event[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	e.next++
	id := e.next
	e.handlers = append(e.handlers, handler[T]{id: id, fn: fn})
	return func() {
		for i, h := range e.handlers {
			if h.id == id {
				e.handlers = append(e.handlers[:i:i], e.handlers[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribed handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

func (e *Event[T]) emit(v T) {
	// Handlers may unsubscribe while being notified.
	for _, h := range append([]handler[T](nil), e.handlers...) {
		h.fn(v)
	}
}
