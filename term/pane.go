package term

import (
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/surface"
)

// Pane is a vertical strip of the screen that a renderer can be mounted
// on. It implements rain.Element.
//
// Pane methods must be called on the loop goroutine once the screen is
// running.
type Pane struct {
	screen *Screen
	bg     rain.RGBA
	surf   *CellSurface

	x, cols, rows int

	next      rain.ListenerID
	listeners map[rain.ListenerID]func()
}

func newPane(s *Screen, bg rain.RGBA) *Pane {
	return &Pane{
		screen:    s,
		bg:        bg,
		surf:      NewCellSurface(s.cellW, rain.GlyphSize, s.narrow),
		listeners: make(map[rain.ListenerID]func()),
	}
}

// Size returns the pane's box in virtual pixels.
func (p *Pane) Size() (int, int) {
	return p.cols * p.screen.cellW, p.rows * rain.GlyphSize
}

// Context returns the pane's cell surface.
func (p *Pane) Context() surface.Surface {
	return p.surf
}

// Surface returns the pane's cell surface with its concrete type.
func (p *Pane) Surface() *CellSurface {
	return p.surf
}

// Bounds returns the pane's cell rectangle on the screen.
func (p *Pane) Bounds() (x, cols, rows int) {
	return p.x, p.cols, p.rows
}

// AddResizeListener registers fn to run after the pane is re-laid out.
func (p *Pane) AddResizeListener(fn func()) rain.ListenerID {
	p.next++
	p.listeners[p.next] = fn
	return p.next
}

// RemoveResizeListener unregisters a listener.
func (p *Pane) RemoveResizeListener(id rain.ListenerID) {
	delete(p.listeners, id)
}

// Listeners returns the number of registered resize listeners.
func (p *Pane) Listeners() int {
	return len(p.listeners)
}

// Background returns the color the surface is composited over.
func (p *Pane) Background() rain.RGBA {
	return p.bg
}

// SetBackground changes the color the surface is composited over.
func (p *Pane) SetBackground(bg rain.RGBA) {
	p.bg = bg
}

// place moves the pane to a new cell rectangle and notifies listeners
// when its size changed.
func (p *Pane) place(x, cols, rows int) {
	resized := cols != p.cols || rows != p.rows
	p.x, p.cols, p.rows = x, cols, rows
	if !resized {
		return
	}

	ids := make([]rain.ListenerID, 0, len(p.listeners))
	for id := range p.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		if fn, ok := p.listeners[id]; ok {
			fn()
		}
	}
}

// present writes the pane to scr. Every cell is the surface composited
// over the pane background at the surface opacity; cells beyond the
// surface grid show the bare background.
func (p *Pane) present(scr tcell.Screen) {
	page := toColorful(p.bg)
	plain := tcell.StyleDefault.Background(toTcell(page))
	alpha := p.surf.Opacity()

	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			c, ok := p.surf.at(col, row)
			if !ok {
				scr.SetContent(p.x+col, row, ' ', nil, plain)
				continue
			}

			bg := page.BlendRgb(c.ground.c, c.ground.a*alpha)
			fg := page.BlendRgb(c.ink.c, c.ink.a*alpha)
			style := tcell.StyleDefault.Background(toTcell(bg)).Foreground(toTcell(fg))

			glyph := c.glyph
			if glyph == 0 || sameRGB(fg, bg) || (c.wide && col+1 >= p.cols) {
				glyph = ' '
			}
			scr.SetContent(p.x+col, row, glyph, nil, style)
			if glyph != ' ' && c.wide {
				col++
			}
		}
	}
}

func toColorful(c rain.RGBA) colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// sameRGB reports whether two colors are indistinguishable at 8 bits.
func sameRGB(a, b colorful.Color) bool {
	ar, ag, ab := a.Clamped().RGB255()
	br, bg, bb := b.Clamped().RGB255()
	return ar == br && ag == bg && ab == bb
}

var _ rain.Element = (*Pane)(nil)
