package rain

import (
	"testing"
	"time"

	"github.com/gogpu/rain/frame"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateIdle, "idle"},
		{StateRunning, "running"},
		{StateCancelled, "cancelled"},
		{State(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("State(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestSchedulerTransitions(t *testing.T) {
	clock := &frame.Manual{}
	steps := 0
	s := newScheduler(clock, func() { steps++ })

	if s.state != StateIdle {
		t.Fatalf("initial state = %v, want idle", s.state)
	}

	s.start()
	if s.state != StateRunning || clock.Pending() != 1 {
		t.Fatalf("after start: state %v pending %d", s.state, clock.Pending())
	}
	if steps != 0 {
		t.Errorf("start ran %d steps synchronously, want 0", steps)
	}

	s.start() // no-op while running
	if clock.Pending() != 1 {
		t.Errorf("second start left %d frames pending", clock.Pending())
	}

	clock.Step(time.Now())
	clock.Step(time.Now())
	if steps != 2 || s.ticks != 2 {
		t.Errorf("steps = %d ticks = %d, want 2", steps, s.ticks)
	}

	s.cancel()
	s.cancel()
	if s.state != StateCancelled || clock.Pending() != 0 {
		t.Errorf("after cancel: state %v pending %d", s.state, clock.Pending())
	}

	s.start() // cancelled is terminal
	if s.state != StateCancelled || clock.Pending() != 0 {
		t.Error("start revived a cancelled scheduler")
	}
}

// TestSchedulerLateTick covers a frame that was already dispatched when
// the loop was cancelled.
func TestSchedulerLateTick(t *testing.T) {
	clock := &frame.Manual{}
	steps := 0
	s := newScheduler(clock, func() { steps++ })
	s.start()
	s.cancel()

	s.tick(time.Now())
	if steps != 0 || clock.Pending() != 0 {
		t.Errorf("late tick ran %d steps and left %d pending", steps, clock.Pending())
	}
}

// TestSchedulerCancelDuringStep covers a step that tears its own loop
// down: the paint completes but no further frame is requested.
func TestSchedulerCancelDuringStep(t *testing.T) {
	clock := &frame.Manual{}
	var s *scheduler
	steps := 0
	s = newScheduler(clock, func() {
		steps++
		s.cancel()
	})
	s.start()

	clock.Step(time.Now())
	if steps != 1 || clock.Pending() != 0 || s.state != StateCancelled {
		t.Errorf("steps %d pending %d state %v", steps, clock.Pending(), s.state)
	}
}

// TestSchedulerLongRunDoesNotGrowStack runs many frames through the
// recurring chain; each frame returns before the next one starts.
func TestSchedulerLongRunDoesNotGrowStack(t *testing.T) {
	clock := &frame.Manual{}
	steps := 0
	s := newScheduler(clock, func() { steps++ })
	s.start()

	for range 100000 {
		clock.Step(time.Time{})
	}
	if steps != 100000 || clock.Pending() != 1 {
		t.Errorf("steps %d pending %d", steps, clock.Pending())
	}
}
