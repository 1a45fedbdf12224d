package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/frame"
)

// ErrQuit is returned by Run when the user presses a quit key.
var ErrQuit = errors.New("term: quit")

// Option configures a Screen during creation.
type Option func(*Screen)

// WithNarrowGlyphs folds glyphs to their half-width forms so that every
// rain column occupies a single cell. Use it on terminals that render
// full-width katakana poorly.
func WithNarrowGlyphs() Option {
	return func(s *Screen) {
		s.narrow = true
		s.cellW = rain.GlyphSize
	}
}

// Screen lays panes out on a tcell screen and presents them every frame.
type Screen struct {
	scr    tcell.Screen
	loop   *frame.Loop
	narrow bool
	cellW  int
	panes  []*Pane
}

// NewScreen wraps an initialized tcell screen. The loop drives rendering;
// the screen presents after every frame it runs.
func NewScreen(scr tcell.Screen, loop *frame.Loop, opts ...Option) *Screen {
	s := &Screen{
		scr:   scr,
		loop:  loop,
		cellW: rain.GlyphSize / 2,
	}
	for _, opt := range opts {
		opt(s)
	}

	scr.HideCursor()
	loop.OnFrameDone(s.present)
	return s
}

// Narrow reports whether glyphs are folded to half-width.
func (s *Screen) Narrow() bool {
	return s.narrow
}

// AddPane appends a pane with the given background and re-lays out the
// screen. Call it before Run, or from a function posted to the loop.
func (s *Screen) AddPane(background rain.RGBA) *Pane {
	p := newPane(s, background)
	s.panes = append(s.panes, p)
	s.relayout()
	return p
}

// Panes returns the panes from left to right.
func (s *Screen) Panes() []*Pane {
	return append([]*Pane(nil), s.panes...)
}

// relayout splits the screen width equally between the panes. The last
// pane takes the remainder.
func (s *Screen) relayout() {
	w, h := s.scr.Size()
	n := len(s.panes)
	if n == 0 {
		return
	}

	each := w / n
	x := 0
	for i, p := range s.panes {
		cols := each
		if i == n-1 {
			cols = w - x
		}
		p.place(x, cols, h)
		x += cols
	}
	s.scr.Clear()
	rain.Logger().Debug("term: layout", "width", w, "height", h, "panes", n)
}

func (s *Screen) present(time.Time) {
	for _, p := range s.panes {
		p.present(s.scr)
	}
	s.scr.Show()
}

// Run runs the frame loop and polls terminal events until ctx is
// cancelled or a quit key is pressed. Esc, q and Ctrl-C quit, in which
// case Run returns ErrQuit. Run may only be called once.
func (s *Screen) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.loop.Run(ctx)
	})
	g.Go(func() error {
		return s.poll(ctx)
	})
	g.Go(func() error {
		<-ctx.Done()
		// Wake PollEvent so poll can observe the cancellation.
		_ = s.scr.PostEvent(tcell.NewEventInterrupt(nil))
		return nil
	})

	return g.Wait()
}

func (s *Screen) poll(ctx context.Context) error {
	for {
		ev := s.scr.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}

		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.loop.Post(s.relayout)
		case *tcell.EventKey:
			if isQuit(ev) {
				return ErrQuit
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
