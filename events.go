package trackline

// Listener wraps a notification handler. Listeners are compared by pointer, so
// the same *Listener subscribed twice to one event is delivered once.
type Listener[P any] struct {
	fn func(P)
}

// NewListener wraps fn in a Listener.
func NewListener[P any](fn func(P)) *Listener[P] {
	return &Listener[P]{fn: fn}
}

// Hub is a synchronous publish/subscribe dispatcher keyed by event name.
// It knows nothing about timelines; P is the payload type every listener
// receives.
//
// Listeners run in registration order on the publishing goroutine. A listener
// that panics aborts delivery for that Publish call: the panic propagates to
// the caller and later listeners are not invoked.
//
// All methods return the hub so calls can be chained. The zero value is ready
// to use.
type Hub[P any] struct {
	listeners map[string][]*Listener[P]
}

// Subscribe registers l for event. Subscribing a listener that is already
// registered for event is a no-op. A nil listener, or one wrapping a nil
// func, is ignored.
func (h *Hub[P]) Subscribe(event string, l *Listener[P]) *Hub[P] {
	if l == nil || l.fn == nil {
		return h
	}
	if h.listeners == nil {
		h.listeners = make(map[string][]*Listener[P])
	}
	for _, existing := range h.listeners[event] {
		if existing == l {
			return h
		}
	}
	h.listeners[event] = append(h.listeners[event], l)
	return h
}

// Publish invokes every listener registered for event with payload.
// Publishing an event with no listeners is a no-op.
func (h *Hub[P]) Publish(event string, payload P) *Hub[P] {
	ls := h.listeners[event]
	if len(ls) == 0 {
		return h
	}
	// Snapshot so listeners may subscribe or unsubscribe while we iterate.
	snapshot := make([]*Listener[P], len(ls))
	copy(snapshot, ls)
	for _, l := range snapshot {
		l.fn(payload)
	}
	return h
}

// Unsubscribe removes l from event. If l is nil, every listener for event is
// removed. Removing a listener that is not registered is a no-op.
func (h *Hub[P]) Unsubscribe(event string, l *Listener[P]) *Hub[P] {
	ls, ok := h.listeners[event]
	if !ok {
		return h
	}
	if l == nil {
		delete(h.listeners, event)
		return h
	}
	for i, existing := range ls {
		if existing == l {
			copy(ls[i:], ls[i+1:])
			ls[len(ls)-1] = nil
			h.listeners[event] = ls[:len(ls)-1]
			break
		}
	}
	return h
}

// Len reports how many listeners are registered for event.
func (h *Hub[P]) Len(event string) int {
	return len(h.listeners[event])
}
