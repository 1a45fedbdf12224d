// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/rain/internal/blend"
	"github.com/gogpu/rain/internal/cache"
)

// glyphCacheSize bounds the rasterized masks kept per surface. The
// default palette at one size needs 48.
const glyphCacheSize = 256

type glyphKey struct {
	r    rune
	size float64
}

// glyphMask is a rasterized glyph. bounds is relative to the baseline
// origin; a nil mask means the glyph has no ink.
type glyphMask struct {
	bounds image.Rectangle
	mask   *image.Alpha
}

// ImageSurface is a CPU-based surface that renders to a premultiplied
// *image.RGBA, the same layout an HTML canvas backing store uses.
//
// Glyphs are rasterized with golang.org/x/image/font. The default font is
// Go Mono; it has no katakana, so hosts that want the full default palette
// should pass a CJK-capable font with WithFont.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.FillRect(0, 0, 800, 600, color.NRGBA{A: 13})
//	img := s.Composite()
type ImageSurface struct {
	width   int
	height  int
	img     *image.RGBA
	opacity float64

	font   *opentype.Font
	faces  map[float64]font.Face
	glyphs *cache.Cache[glyphKey, glyphMask]

	// closed tracks if Close has been called
	closed bool
}

// ImageOption configures an ImageSurface during creation.
type ImageOption func(*ImageSurface)

// WithFont sets the font used by DrawGlyph.
func WithFont(f *opentype.Font) ImageOption {
	return func(s *ImageSurface) {
		if f != nil {
			s.font = f
		}
	}
}

// defaultFont is parsed once from the embedded Go Mono TTF.
var defaultFont = mustParseFont(gomono.TTF)

func mustParseFont(data []byte) *opentype.Font {
	f, err := opentype.Parse(data)
	if err != nil {
		panic(fmt.Sprintf("surface: failed to parse built-in font: %v", err))
	}
	return f
}

// ParseFont parses TrueType or OpenType font data for use with WithFont.
func ParseFont(data []byte) (*opentype.Font, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("surface: failed to parse font: %w", err)
	}
	return f, nil
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Negative dimensions are treated as zero.
func NewImageSurface(width, height int, opts ...ImageOption) *ImageSurface {
	s := &ImageSurface{
		opacity: 1,
		font:    defaultFont,
		faces:   make(map[float64]font.Face),
		glyphs:  cache.New[glyphKey, glyphMask](glyphCacheSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.alloc(max(width, 0), max(height, 0))
	return s
}

func (s *ImageSurface) alloc(width, height int) {
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Resize reallocates the pixel buffer. The new buffer is fully transparent
// even when the dimensions are unchanged.
func (s *ImageSurface) Resize(width, height int) error {
	if err := CheckDimensions(width, height); err != nil {
		return err
	}
	if s.closed {
		return nil
	}
	if width == s.width && height == s.height {
		clear(s.img.Pix)
		return nil
	}
	s.alloc(width, height)
	return nil
}

// FillRect composites c over the pixel-aligned rectangle covering
// (x, y, w, h), clipped to the surface.
func (s *ImageSurface) FillRect(x, y, w, h float64, c color.Color) {
	if s.closed || w <= 0 || h <= 0 {
		return
	}

	x0 := max(int(math.Floor(x)), 0)
	y0 := max(int(math.Floor(y)), 0)
	x1 := min(int(math.Ceil(x+w)), s.width)
	y1 := min(int(math.Ceil(y+h)), s.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	r, g, b, a := Premultiplied(c)
	for row := y0; row < y1; row++ {
		start := s.img.PixOffset(x0, row)
		end := s.img.PixOffset(x1, row)
		blend.SourceOverSpan(s.img.Pix[start:end], r, g, b, a)
	}
}

// DrawGlyph draws r with its baseline-left corner at (x, y). Masks are
// rasterized once per rune and size and composited source-over.
func (s *ImageSurface) DrawGlyph(r rune, x, y, size float64, c color.Color) {
	if s.closed || size <= 0 || s.width == 0 || s.height == 0 {
		return
	}
	g := s.glyphs.GetOrCreate(glyphKey{r, size}, func() glyphMask {
		return s.rasterize(r, size)
	})
	if g.mask == nil {
		return
	}

	dot := image.Pt(int(math.Floor(x)), int(math.Floor(y)))
	draw.DrawMask(s.img, g.bounds.Add(dot), image.NewUniform(c), image.Point{}, g.mask, image.Point{}, draw.Over)
}

// rasterize renders r at the origin into a mask it owns; faces reuse
// their own mask buffer between calls.
func (s *ImageSurface) rasterize(r rune, size float64) glyphMask {
	face := s.face(size)
	if face == nil {
		return glyphMask{}
	}
	dr, mask, mp, _, ok := face.Glyph(fixed.Point26_6{}, r)
	if !ok || dr.Empty() {
		return glyphMask{}
	}

	a := image.NewAlpha(image.Rect(0, 0, dr.Dx(), dr.Dy()))
	draw.Draw(a, a.Rect, mask, mp, draw.Src)
	return glyphMask{bounds: dr, mask: a}
}

// face returns a cached face for the pixel size, creating it on first use.
func (s *ImageSurface) face(size float64) font.Face {
	if f, ok := s.faces[size]; ok {
		return f
	}
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72, // 1pt == 1px
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil
	}
	s.faces[size] = f
	return f
}

// SetOpacity sets the surface-level alpha used by Composite.
func (s *ImageSurface) SetOpacity(alpha float64) {
	s.opacity = ClampOpacity(alpha)
}

// Opacity returns the surface-level alpha.
func (s *ImageSurface) Opacity() float64 {
	return s.opacity
}

// Snapshot returns a copy of the raw surface contents, without opacity.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(s.img.Rect)
	copy(result.Pix, s.img.Pix)
	return result
}

// Composite returns a copy of the surface as a host would display it:
// every pixel scaled by the surface opacity.
func (s *ImageSurface) Composite() *image.RGBA {
	result := s.Snapshot()
	if result == nil {
		return nil
	}
	//nolint:gosec // G115: opacity is clamped to [0, 1]
	blend.Scale(result.Pix, uint8(math.Round(s.opacity*255)))
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for _, f := range s.faces {
		_ = f.Close()
	}
	s.faces = nil
	s.glyphs.Clear()
	s.img = nil
	return nil
}

// Verify ImageSurface implements Surface interface.
var _ Surface = (*ImageSurface)(nil)
