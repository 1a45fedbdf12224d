package rain

import (
	"image/color"
	"time"

	"github.com/gogpu/rain/frame"
	"github.com/gogpu/rain/surface"
)

// fakeElement is a host element double that counts listener registrations.
type fakeElement struct {
	w, h      int
	surf      surface.Surface
	next      ListenerID
	listeners map[ListenerID]func()
	adds      int
	removes   int
}

func newFakeElement(w, h int, s surface.Surface) *fakeElement {
	return &fakeElement{w: w, h: h, surf: s, listeners: make(map[ListenerID]func())}
}

func (e *fakeElement) Size() (int, int) { return e.w, e.h }

func (e *fakeElement) Context() surface.Surface {
	if e.surf == nil {
		return nil
	}
	return e.surf
}

func (e *fakeElement) AddResizeListener(fn func()) ListenerID {
	e.adds++
	e.next++
	e.listeners[e.next] = fn
	return e.next
}

func (e *fakeElement) RemoveResizeListener(id ListenerID) {
	if _, ok := e.listeners[id]; ok {
		e.removes++
		delete(e.listeners, id)
	}
}

// resize changes the layout box and notifies listeners.
func (e *fakeElement) resize(w, h int) {
	e.w, e.h = w, h
	for _, fn := range e.listeners {
		fn()
	}
}

type glyphCall struct {
	r    rune
	x, y float64
	size float64
	c    color.Color
}

type fillCall struct {
	x, y, w, h float64
	c          color.Color
}

// recordingSurface is a surface double that records drawing calls.
type recordingSurface struct {
	width, height int
	opacity       float64
	resizes       int
	fills         []fillCall
	glyphs        []glyphCall
	closed        bool
}

func (s *recordingSurface) Width() int  { return s.width }
func (s *recordingSurface) Height() int { return s.height }

func (s *recordingSurface) Resize(w, h int) error {
	if err := surface.CheckDimensions(w, h); err != nil {
		return err
	}
	s.width, s.height = w, h
	s.resizes++
	s.fills = nil
	s.glyphs = nil
	return nil
}

func (s *recordingSurface) FillRect(x, y, w, h float64, c color.Color) {
	s.fills = append(s.fills, fillCall{x, y, w, h, c})
}

func (s *recordingSurface) DrawGlyph(r rune, x, y, size float64, c color.Color) {
	s.glyphs = append(s.glyphs, glyphCall{r, x, y, size, c})
}

func (s *recordingSurface) SetOpacity(a float64) { s.opacity = a }
func (s *recordingSurface) Opacity() float64     { return s.opacity }
func (s *recordingSurface) Close() error         { s.closed = true; return nil }

// fixedRand returns the same draws every time.
type fixedRand struct {
	index int
	value float64
	draws int
}

func (f *fixedRand) IntN(n int) int {
	return min(f.index, n-1)
}

func (f *fixedRand) Float64() float64 {
	f.draws++
	return f.value
}

// never is a source whose reset draw never passes the threshold.
func never() *fixedRand { return &fixedRand{value: 0} }

// mounted returns a renderer mounted on a w×h recording surface driven by
// a manual clock.
func mounted(t interface{ Helper() }, cfg Config, w, h int, opts ...Option) (*Renderer, *fakeElement, *recordingSurface, *frame.Manual) {
	t.Helper()
	s := &recordingSurface{}
	el := newFakeElement(w, h, s)
	clock := &frame.Manual{}
	r := New(cfg, opts...)
	r.Mount(el, clock)
	return r, el, s, clock
}

// stepN advances the clock n frames.
func stepN(m *frame.Manual, n int) {
	now := time.Unix(0, 0)
	for i := 0; i < n; i++ {
		now = now.Add(16 * time.Millisecond)
		m.Step(now)
	}
}
