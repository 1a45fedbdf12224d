package frame

import "time"

// Manual is a frame clock advanced explicitly by Step.
// The zero value is ready to use.
type Manual struct {
	q queue
}

// RequestFrame queues fn for the next Step.
func (m *Manual) RequestFrame(fn Callback) Handle {
	return m.q.request(fn)
}

// CancelFrame prevents the callback identified by h from running.
// Cancelling an unknown or already-fired handle is a no-op.
func (m *Manual) CancelFrame(h Handle) {
	m.q.cancel(h)
}

// Step runs one frame at time now and returns the number of callbacks run.
func (m *Manual) Step(now time.Time) int {
	return m.q.run(now)
}

// Pending returns the number of callbacks waiting for the next Step.
func (m *Manual) Pending() int {
	return m.q.len()
}
