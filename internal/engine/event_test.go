package engine

import "testing"

func TestEventInvokesInOrder(t *testing.T) {
	var e EventWithArg[int]
	var got []int

	e.AddListener(func(v int) { got = append(got, v) })
	e.AddListener(func(v int) { got = append(got, v*10) })
	e.AddListener(nil)
	e.Invoke(2)

	if len(got) != 2 || got[0] != 2 || got[1] != 20 {
		t.Errorf("Expected [2 20], got %v", got)
	}

	if e.ListenerCount() != 2 {
		t.Errorf("Expected 2 listeners, got %d", e.ListenerCount())
	}
}

func TestEventRemoveListener(t *testing.T) {
	var e Event
	calls := 0

	first := e.AddListener(func() { calls++ })
	e.AddListener(func() { calls += 10 })
	e.RemoveListener(first)
	e.Invoke()

	if calls != 10 {
		t.Errorf("Expected only the second listener to run, got %d", calls)
	}

	e.RemoveAllListeners()
	e.Invoke()
	if calls != 10 || e.ListenerCount() != 0 {
		t.Error("RemoveAllListeners left listeners behind")
	}
}

func TestEventRemoveDuringInvoke(t *testing.T) {
	var e EventWithArg[string]
	calls := 0

	var id ListenerID
	id = e.AddListener(func(string) {
		calls++
		e.RemoveListener(id)
	})
	e.AddListener(func(string) { calls++ })

	e.Invoke("a")
	e.Invoke("b")

	if calls != 3 {
		t.Errorf("Expected 3 calls, got %d", calls)
	}
}
