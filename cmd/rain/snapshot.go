package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"golang.org/x/image/draw"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/frame"
	"github.com/gogpu/rain/surface"
)

// imageElement is a fixed-size element around an image surface.
type imageElement struct {
	w, h int
	surf *surface.ImageSurface
}

func (e *imageElement) Size() (int, int) { return e.w, e.h }

func (e *imageElement) Context() surface.Surface { return e.surf }

// The snapshot never resizes, so listeners are never called.
func (e *imageElement) AddResizeListener(func()) rain.ListenerID { return 1 }

func (e *imageElement) RemoveResizeListener(rain.ListenerID) {}

// runSnapshot renders the first pane of the layout headlessly and writes
// it as a PNG.
func runSnapshot(s settings) error {
	l, err := loadLayout(s)
	if err != nil {
		return err
	}
	w, h, err := parseSize(s.size)
	if err != nil {
		return err
	}

	var surfOpts []surface.ImageOption
	opts := rendererOptions(s)
	if s.fontPath != "" {
		data, err := os.ReadFile(s.fontPath)
		if err != nil {
			return fmt.Errorf("font: %w", err)
		}
		f, err := surface.ParseFont(data)
		if err != nil {
			return err
		}
		surfOpts = append(surfOpts, surface.WithFont(f))
	} else if s.palette == "" {
		// The built-in font has no katakana.
		opts = append(opts, rain.WithPalette(rain.NewPalette("01")))
	}

	surf := surface.NewImageSurface(w, h, surfOpts...)
	defer surf.Close()

	pane := l.Panes[0]
	img := render(&imageElement{w: w, h: h, surf: surf}, pane.Config(), pane.BackgroundColor(), l.FPS, s.frames, opts...)
	return writePNG(s.snapshot, img)
}

// render runs frames steps on a manual clock and composites the surface
// over the background.
func render(el *imageElement, cfg rain.Config, bg rain.RGBA, fps, frames int, opts ...rain.Option) *image.RGBA {
	clock := &frame.Manual{}
	r := rain.New(cfg, opts...)
	r.Mount(el, clock)
	defer r.Unmount()

	now := time.Now()
	interval := time.Second / time.Duration(max(fps, 1))
	for range frames {
		now = now.Add(interval)
		clock.Step(now)
	}

	bounds := image.Rect(0, 0, el.w, el.h)
	out := image.NewRGBA(bounds)
	draw.Draw(out, bounds, image.NewUniform(bg.Color()), image.Point{}, draw.Src)
	draw.Draw(out, bounds, el.surf.Composite(), image.Point{}, draw.Over)
	return out
}

func parseSize(s string) (int, int, error) {
	var w, h int
	if _, err := fmt.Sscanf(s, "%dx%d", &w, &h); err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: dimensions must be positive", s)
	}
	return w, h, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return f.Close()
}
