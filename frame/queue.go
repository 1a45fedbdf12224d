// Package frame provides per-frame scheduling primitives for hosts of the
// rain effect.
//
// The contract mirrors a browser's single-shot animation-frame request:
// RequestFrame returns a Handle and queues a callback for the next frame;
// CancelFrame with that Handle prevents the callback from running and is a
// no-op once it has run. A callback that requests another frame while it is
// running is queued for the following frame, never the current one.
//
// Two clocks implement the contract:
//   - Loop drives frames from a ticker on a single goroutine, serializing
//     frame callbacks with other host work posted to it.
//   - Manual runs one frame per Step call, for tests and headless hosts.
package frame

import (
	"sync"
	"time"
)

// Handle identifies a requested frame callback. The zero Handle is never
// issued and is safe to cancel.
type Handle uint64

// Callback is invoked once for the frame it was requested for.
type Callback func(now time.Time)

type request struct {
	h  Handle
	fn Callback
}

// queue holds pending callbacks for the next frame.
// It is safe for concurrent use so that hosts may request frames from
// outside the frame goroutine.
type queue struct {
	mu      sync.Mutex
	next    Handle
	pending []request
	live    map[Handle]struct{}
}

func (q *queue) request(fn Callback) Handle {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.live == nil {
		q.live = make(map[Handle]struct{})
	}
	q.next++
	h := q.next
	q.pending = append(q.pending, request{h: h, fn: fn})
	q.live[h] = struct{}{}
	return h
}

func (q *queue) cancel(h Handle) {
	q.mu.Lock()
	delete(q.live, h)
	q.mu.Unlock()
}

// take detaches the current batch. Requests made while the batch runs
// land in a fresh pending slice.
func (q *queue) take() []request {
	q.mu.Lock()
	defer q.mu.Unlock()

	batch := q.pending
	q.pending = nil
	return batch
}

// claim reports whether h is still live and marks it as fired.
func (q *queue) claim(h Handle) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if _, ok := q.live[h]; !ok {
		return false
	}
	delete(q.live, h)
	return true
}

// len returns the number of live callbacks waiting for a frame.
func (q *queue) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.live)
}

// run fires one frame and returns how many callbacks ran.
func (q *queue) run(now time.Time) int {
	n := 0
	for _, r := range q.take() {
		// A callback earlier in the batch may have cancelled this one.
		if !q.claim(r.h) {
			continue
		}
		r.fn(now)
		n++
	}
	return n
}
