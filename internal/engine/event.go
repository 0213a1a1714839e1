package engine

// Event is a Unity-style multi-cast event.
// Listeners are tracked by handle so they can be removed individually.
type Event struct {
	nextID    ListenerHandle
	listeners []listener
}

// ListenerHandle identifies a registered listener for removal.
type ListenerHandle uint64

type listener struct {
	id ListenerHandle
	fn func()
}

// AddListener registers a callback invoked when the event fires and returns
// a handle for RemoveListener.
func (e *Event) AddListener(callback func()) ListenerHandle {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listener{id: e.nextID, fn: callback})
	return e.nextID
}

// RemoveListener unregisters the callback identified by handle.
func (e *Event) RemoveListener(handle ListenerHandle) {
	for i, l := range e.listeners {
		if l.id == handle {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners
func (e *Event) Invoke() {
	for _, l := range e.listeners {
		l.fn()
	}
}

// ListenerCount returns the number of registered listeners (for debugging)
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	nextID    ListenerHandle
	listeners []listenerArg[T]
}

type listenerArg[T any] struct {
	id ListenerHandle
	fn func(T)
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerHandle {
	if callback == nil {
		return 0
	}
	e.nextID++
	e.listeners = append(e.listeners, listenerArg[T]{id: e.nextID, fn: callback})
	return e.nextID
}

func (e *EventWithArg[T]) RemoveListener(handle ListenerHandle) {
	for i, l := range e.listeners {
		if l.id == handle {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
