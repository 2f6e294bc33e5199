package frame

import "testing"

func TestTickRunsCallbacksWhileRunning(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Add(func() { calls++ })

	s.Start()
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	if calls != 5 {
		t.Fatalf("expected 5 callback runs, got %d", calls)
	}
	if s.Ticks() != 5 {
		t.Fatalf("expected 5 ticks, got %d", s.Ticks())
	}
}

func TestStartIsIdempotent(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Add(func() { calls++ })

	// Double start must not duplicate the chain: one tick, one run.
	s.Start()
	s.Start()
	s.Tick()

	if calls != 1 {
		t.Fatalf("expected exactly 1 callback run per tick after double start, got %d", calls)
	}
}

func TestStoppedSchedulerSkipsFrames(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Add(func() { calls++ })

	s.Tick() // never started
	s.Start()
	s.Tick()
	s.Stop()
	s.Tick()
	s.Tick()

	if calls != 1 {
		t.Fatalf("expected 1 callback run, got %d", calls)
	}
	if s.Running() {
		t.Fatal("expected scheduler to be stopped")
	}
}

func TestStopStartResumesWithoutDuplication(t *testing.T) {
	s := NewScheduler()
	calls := 0
	s.Add(func() { calls++ })

	// Rapid visibility-style toggling must not leak extra chains.
	for i := 0; i < 3; i++ {
		s.Start()
		s.Stop()
	}
	s.Start()
	s.Tick()

	if calls != 1 {
		t.Fatalf("expected 1 callback run per tick after toggling, got %d", calls)
	}
	if s.Ticks() != 1 {
		t.Fatalf("expected 1 executed tick, got %d", s.Ticks())
	}
}

func TestCallbacksRunInRegistrationOrder(t *testing.T) {
	s := NewScheduler()
	var order []int
	s.Add(func() { order = append(order, 1) })
	s.Add(func() { order = append(order, 2) })

	s.Start()
	s.Tick()

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected callbacks in order [1 2], got %v", order)
	}
}
