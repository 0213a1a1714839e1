package engine

import "testing"

func TestEventInvoke(t *testing.T) {
	var e Event
	count := 0

	e.AddListener(func() { count++ })
	e.AddListener(func() { count++ })

	e.Invoke()
	if count != 2 {
		t.Errorf("Expected 2 listener calls, got %d", count)
	}
	if e.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount())
	}
}

func TestEventNilListener(t *testing.T) {
	var e Event
	handle := e.AddListener(nil)

	if handle != 0 {
		t.Error("Nil listener should return the zero handle")
	}
	if e.ListenerCount() != 0 {
		t.Error("Nil listener should not be registered")
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	a, b := 0, 0

	handleA := e.AddListener(func() { a++ })
	e.AddListener(func() { b++ })

	e.RemoveListener(handleA)
	e.Invoke()

	if a != 0 {
		t.Error("Removed listener should not fire")
	}
	if b != 1 {
		t.Errorf("Remaining listener should fire once, got %d", b)
	}
}

func TestEventRemoveAllListeners(t *testing.T) {
	var e Event
	count := 0
	e.AddListener(func() { count++ })

	e.RemoveAllListeners()
	e.Invoke()

	if count != 0 {
		t.Error("No listeners should fire after RemoveAllListeners")
	}
}

func TestEventWithArg(t *testing.T) {
	var e EventWithArg[*GameObject]
	var received *GameObject

	handle := e.AddListener(func(g *GameObject) { received = g })

	obj := NewGameObject("Target")
	e.Invoke(obj)

	if received != obj {
		t.Error("Listener should receive the invoked argument")
	}

	e.RemoveListener(handle)
	received = nil
	e.Invoke(obj)
	if received != nil {
		t.Error("Removed listener should not fire")
	}
}
