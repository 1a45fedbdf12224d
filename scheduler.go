package rain

import (
	"time"

	"github.com/gogpu/rain/frame"
)

// State is the frame loop state of a renderer.
type State uint8

const (
	// StateIdle means no frame loop is running: not mounted yet, or
	// mounted on a host without an element or drawing surface.
	StateIdle State = iota

	// StateRunning means a frame is always pending.
	StateRunning

	// StateCancelled means the loop was torn down. It is terminal for
	// that loop; a restart creates a new one.
	StateCancelled
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// scheduler is the recurring frame chain of one mount. Each tick runs the
// step and then requests the next frame, keeping only the latest handle
// so that cancel can revoke it.
type scheduler struct {
	frames FrameRequester
	step   func()
	state  State
	handle frame.Handle
	ticks  uint64
}

func newScheduler(frames FrameRequester, step func()) *scheduler {
	return &scheduler{frames: frames, step: step}
}

// start moves Idle to Running and requests the first frame.
func (s *scheduler) start() {
	if s.state != StateIdle {
		return
	}
	s.state = StateRunning
	s.handle = s.frames.RequestFrame(s.tick)
}

func (s *scheduler) tick(time.Time) {
	// A frame delivered after cancel must not paint or reschedule.
	if s.state != StateRunning {
		return
	}
	s.ticks++
	s.step()
	if s.state != StateRunning {
		return
	}
	s.handle = s.frames.RequestFrame(s.tick)
}

// cancel stops the chain. A frame already executing finishes its paint
// but cannot request another.
func (s *scheduler) cancel() {
	if s.state == StateCancelled {
		return
	}
	s.state = StateCancelled
	if s.handle != 0 {
		s.frames.CancelFrame(s.handle)
		s.handle = 0
	}
}
