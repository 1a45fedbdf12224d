package frame

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWithFPSClamps(t *testing.T) {
	tests := []struct {
		fps  int
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second / MinFPS},
		{-5, time.Second / MinFPS},
		{1000, time.Second / MaxFPS},
	}

	for _, tt := range tests {
		l := NewLoop(WithFPS(tt.fps))
		if l.Interval() != tt.want {
			t.Errorf("WithFPS(%d) interval = %v, want %v", tt.fps, l.Interval(), tt.want)
		}
	}
}

func TestLoopDeliversFramesAndHooks(t *testing.T) {
	l := NewLoop(WithFPS(MaxFPS))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var frames, hooks atomic.Int32
	var tick Callback
	tick = func(time.Time) {
		if frames.Add(1) < 5 {
			l.RequestFrame(tick)
		}
	}
	l.RequestFrame(tick)
	l.OnFrameDone(func(time.Time) {
		if hooks.Add(1) >= 5 {
			cancel()
		}
	})

	errc := make(chan error, 1)
	go func() { errc <- l.Run(ctx) }()

	select {
	case err := <-errc:
		if err != nil {
			t.Fatalf("Run() = %v, want nil", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("loop did not stop")
	}

	if got := frames.Load(); got != 5 {
		t.Errorf("frames = %d, want 5", got)
	}
}

func TestLoopPostRunsOnLoop(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())

	go func() { _ = l.Run(ctx) }()

	done := make(chan struct{})
	if !l.Post(func() { close(done) }) {
		t.Fatal("Post() = false on a running loop")
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("posted function did not run")
	}

	cancel()
	<-l.Done()
	if l.Post(func() {}) {
		t.Error("Post() = true after the loop stopped")
	}
}

func TestLoopRunOnce(t *testing.T) {
	l := NewLoop()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := l.Run(ctx); err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("second Run() = %v", err)
	}
}
