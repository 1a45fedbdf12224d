package rain

import (
	"image/color"
	"math"

	"github.com/gogpu/rain/surface"
)

// fadeColor is the per-frame overlay. The alpha is rounded, not truncated,
// the way a canvas converts rgba(0, 0, 0, 0.05).
var fadeColor = color.NRGBA{A: uint8(math.Round(FadeAlpha * 255))}

// Renderer draws the rain effect for one element.
//
// A Renderer is NOT safe for concurrent use. All methods, and the resize
// listener and frame callbacks it registers, must run on the host's frame
// goroutine. Independent renderers share nothing and may be mounted on the
// same FrameRequester.
type Renderer struct {
	cfg     Config
	rand    Rand
	palette Palette

	mounted bool
	el      Element
	frames  FrameRequester

	surf      surface.Surface
	cols      []float64
	sched     *scheduler
	listener  ListenerID
	listening bool
}

// New creates an unmounted renderer. The config is normalized; see
// Config.Normalized.
func New(cfg Config, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Renderer{
		cfg:     cfg.Normalized(),
		rand:    o.rand,
		palette: o.palette,
	}
}

// Config returns the current configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// State returns the state of the current frame loop.
func (r *Renderer) State() State {
	if r.sched == nil {
		return StateIdle
	}
	return r.sched.state
}

// Frames returns how many frame steps the current loop has run.
func (r *Renderer) Frames() uint64 {
	if r.sched == nil {
		return 0
	}
	return r.sched.ticks
}

// ColumnCount returns the size of the column table.
func (r *Renderer) ColumnCount() int {
	return len(r.cols)
}

// Columns returns a copy of the column fall positions, in glyph-height
// units.
func (r *Renderer) Columns() []float64 {
	return append([]float64(nil), r.cols...)
}

// Mount attaches the renderer to an element and starts the frame loop.
// A nil element, a nil frame requester or an element without a drawing
// surface leaves the renderer idle. Mounting an already mounted renderer
// unmounts it first.
func (r *Renderer) Mount(el Element, frames FrameRequester) {
	if r.mounted {
		r.Unmount()
	}
	r.mounted = true
	r.el = el
	r.frames = frames
	r.initialize()
}

// Unmount cancels the pending frame and detaches the resize listener.
// It is safe to call more than once.
func (r *Renderer) Unmount() {
	if !r.mounted {
		return
	}
	r.teardown()
	r.mounted = false
	r.el = nil
	r.frames = nil
	r.surf = nil
	Logger().Debug("rain: unmounted")
}

// SetConfig applies a new configuration. While mounted, a change of color
// or speed restarts the effect with a fresh column table; a change of
// opacity alone only updates the surface.
func (r *Renderer) SetConfig(cfg Config) {
	prev := r.cfg
	r.cfg = cfg.Normalized()
	if !r.mounted {
		return
	}

	switch {
	case prev.restartRequired(r.cfg):
		Logger().Debug("rain: config changed, restarting",
			"speed", r.cfg.Speed, "color", r.cfg.Color)
		r.teardown()
		r.initialize()
	case prev.Opacity != r.cfg.Opacity && r.surf != nil:
		r.surf.SetOpacity(r.cfg.Opacity)
	}
}

// initialize sizes the surface, sizes the column table from it, attaches
// the resize listener and starts a new frame loop.
func (r *Renderer) initialize() {
	log := Logger()
	if r.el == nil {
		log.Debug("rain: idle, no host element")
		return
	}
	if r.frames == nil {
		log.Debug("rain: idle, no frame requester")
		return
	}
	s := r.el.Context()
	if s == nil {
		log.Debug("rain: idle, no drawing context")
		return
	}

	r.surf = s
	r.resize()
	r.surf.SetOpacity(r.cfg.Opacity)
	r.listener = r.el.AddResizeListener(r.resize)
	r.listening = true

	r.cols = newColumns(r.surf.Width())
	r.sched = newScheduler(r.frames, r.step)
	// Mount paints nothing; the first step runs on the first frame, so
	// every column reads 1 until then.
	r.sched.start()

	log.Debug("rain: running",
		"width", r.surf.Width(), "height", r.surf.Height(), "columns", len(r.cols))
}

// teardown cancels the loop and detaches the listener. The column table
// and the surface contents are left as they are.
func (r *Renderer) teardown() {
	if r.listening {
		r.el.RemoveResizeListener(r.listener)
		r.listening = false
	}
	if r.sched != nil {
		r.sched.cancel()
	}
}

// resize re-reads the layout box and resets the surface to it, which
// clears it. The column table is intentionally left alone.
func (r *Renderer) resize() {
	if r.surf == nil {
		return
	}
	w, h := r.el.Size()
	if err := r.surf.Resize(w, h); err != nil {
		Logger().Debug("rain: resize ignored", "err", err)
	}
}

// step paints one frame and advances every column.
func (r *Renderer) step() {
	s := r.surf
	height := float64(s.Height())

	s.FillRect(0, 0, float64(s.Width()), height, fadeColor)

	paint := r.cfg.Color.Color()
	advance := r.cfg.Speed * StepScale
	for i := range r.cols {
		g := r.palette.Pick(r.rand)
		x := float64(i * GlyphSize)
		y := r.cols[i] * GlyphSize

		s.DrawGlyph(g, x, y, GlyphSize, paint)

		if y > height && r.rand.Float64() > ResetThreshold {
			r.cols[i] = 0
		}
		r.cols[i] += advance
	}
}
