package frame

import (
	"context"
	"sync"
	"time"
)

// Default and bounds for the Loop frame rate.
const (
	DefaultFPS = 60
	MinFPS     = 1
	MaxFPS     = 240
)

// Option configures a Loop during creation.
type Option func(*loopOptions)

type loopOptions struct {
	fps   int
	clock func() time.Time
}

func defaultOptions() loopOptions {
	return loopOptions{
		fps:   DefaultFPS,
		clock: time.Now,
	}
}

// WithFPS sets the target frame rate. Values are clamped to [MinFPS, MaxFPS].
func WithFPS(fps int) Option {
	return func(o *loopOptions) {
		o.fps = min(max(fps, MinFPS), MaxFPS)
	}
}

// WithClock sets the time source passed to frame callbacks.
func WithClock(now func() time.Time) Option {
	return func(o *loopOptions) {
		if now != nil {
			o.clock = now
		}
	}
}

// Loop is a single-goroutine host loop. Frame callbacks, functions given to
// Post and frame-done hooks all run on the goroutine that called Run, so
// none of them ever execute concurrently with each other.
//
// RequestFrame, CancelFrame and Post are safe to call from any goroutine.
type Loop struct {
	q        queue
	interval time.Duration
	clock    func() time.Time

	posts chan func()
	done  chan struct{}

	hookMu sync.Mutex
	hooks  []Callback

	runOnce  sync.Once
	stopOnce sync.Once
}

// NewLoop creates a Loop. Call Run to start delivering frames.
func NewLoop(opts ...Option) *Loop {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Loop{
		interval: time.Second / time.Duration(o.fps),
		clock:    o.clock,
		posts:    make(chan func(), 64),
		done:     make(chan struct{}),
	}
}

// Interval returns the time between frames.
func (l *Loop) Interval() time.Duration {
	return l.interval
}

// RequestFrame queues fn for the next frame.
func (l *Loop) RequestFrame(fn Callback) Handle {
	return l.q.request(fn)
}

// CancelFrame prevents the callback identified by h from running.
// Cancelling an unknown or already-fired handle is a no-op.
func (l *Loop) CancelFrame(h Handle) {
	l.q.cancel(h)
}

// Pending returns the number of callbacks waiting for the next frame.
func (l *Loop) Pending() int {
	return l.q.len()
}

// OnFrameDone registers fn to run after every frame's callbacks.
// Hosts use it to present what the callbacks painted.
func (l *Loop) OnFrameDone(fn Callback) {
	l.hookMu.Lock()
	l.hooks = append(l.hooks, fn)
	l.hookMu.Unlock()
}

// Post schedules fn to run on the loop goroutine between frames.
// It reports false if the loop has already stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.posts <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run delivers frames until ctx is cancelled. It returns nil on
// cancellation. Run may only be called once; later calls return
// immediately.
func (l *Loop) Run(ctx context.Context) error {
	started := false
	l.runOnce.Do(func() { started = true })
	if !started {
		return nil
	}
	defer l.stopOnce.Do(func() { close(l.done) })

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.posts:
			fn()
		case <-ticker.C:
			l.tick(l.clock())
		}
	}
}

// tick runs one frame: queued callbacks in request order, then hooks.
func (l *Loop) tick(now time.Time) {
	l.q.run(now)

	l.hookMu.Lock()
	hooks := l.hooks
	l.hookMu.Unlock()
	for _, fn := range hooks {
		fn(now)
	}
}
