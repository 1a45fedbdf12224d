package term

import (
	"image/color"
	"math"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/width"

	"github.com/gogpu/rain/surface"
)

// layer is a straight-alpha color.
type layer struct {
	c colorful.Color
	a float64
}

// over composites src with alpha sa onto l.
func (l layer) over(src colorful.Color, sa float64) layer {
	out := sa + l.a*(1-sa)
	if out == 0 {
		return layer{}
	}
	return layer{c: l.c.BlendRgb(src, sa/out), a: out}
}

// cell is one terminal cell. The ground layer stands for the pixels around
// a glyph and the ink layer for the glyph strokes themselves.
type cell struct {
	ground layer
	ink    layer
	glyph  rune
	wide   bool
}

// CellSurface is a surface.Surface backed by a grid of terminal cells.
// Coordinates are virtual pixels; a cell covers cellW×cellH of them.
type CellSurface struct {
	width, height int
	cellW, cellH  int
	narrow        bool

	cols, rows int
	cells      []cell
	opacity    float64
}

// NewCellSurface creates an empty surface whose cells measure cellW×cellH
// virtual pixels. With narrow set, drawn glyphs are folded to half-width.
func NewCellSurface(cellW, cellH int, narrow bool) *CellSurface {
	return &CellSurface{
		cellW:   max(cellW, 1),
		cellH:   max(cellH, 1),
		narrow:  narrow,
		opacity: 1,
	}
}

// Width returns the width in virtual pixels.
func (s *CellSurface) Width() int { return s.width }

// Height returns the height in virtual pixels.
func (s *CellSurface) Height() int { return s.height }

// Grid returns the number of whole cells across and down.
func (s *CellSurface) Grid() (cols, rows int) { return s.cols, s.rows }

// Resize sets the virtual pixel size and clears every cell.
func (s *CellSurface) Resize(w, h int) error {
	if err := surface.CheckDimensions(w, h); err != nil {
		return err
	}
	s.width, s.height = w, h
	s.cols, s.rows = w/s.cellW, h/s.cellH
	s.cells = make([]cell, s.cols*s.rows)
	return nil
}

// FillRect composites c over every cell whose area intersects the
// rectangle.
func (s *CellSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	src, sa := straight(c)
	if sa == 0 {
		return
	}

	c0 := max(int(math.Floor(x/float64(s.cellW))), 0)
	r0 := max(int(math.Floor(y/float64(s.cellH))), 0)
	c1 := min(int(math.Ceil((x+w)/float64(s.cellW))), s.cols)
	r1 := min(int(math.Ceil((y+h)/float64(s.cellH))), s.rows)

	for row := r0; row < r1; row++ {
		line := s.cells[row*s.cols : (row+1)*s.cols]
		for col := c0; col < c1; col++ {
			line[col].ground = line[col].ground.over(src, sa)
			line[col].ink = line[col].ink.over(src, sa)
		}
	}
}

// DrawGlyph places r in the cell holding the glyph's center. A wide rune
// claims the cell to its right as well; in narrow mode every glyph is
// folded to a single cell. Glyphs whose cell lies outside
// the grid are dropped.
func (s *CellSurface) DrawGlyph(r rune, x, y, size float64, c color.Color) {
	src, sa := straight(c)
	if sa == 0 || size <= 0 {
		return
	}
	if s.narrow {
		r = fold(r)
	}

	col := int(math.Floor(x / float64(s.cellW)))
	row := int(math.Floor((y - size/2) / float64(s.cellH)))
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return
	}

	i := row*s.cols + col
	s.cells[i].glyph = r
	s.cells[i].ink = s.cells[i].ink.over(src, sa)
	s.cells[i].wide = runewidth.RuneWidth(r) == 2 && col+1 < s.cols
	if s.cells[i].wide {
		s.cells[i+1].glyph = 0
		s.cells[i+1].wide = false
	}
}

// SetOpacity sets the alpha applied when the surface is presented.
func (s *CellSurface) SetOpacity(alpha float64) {
	s.opacity = surface.ClampOpacity(alpha)
}

// Opacity returns the presentation alpha.
func (s *CellSurface) Opacity() float64 { return s.opacity }

// Close is a no-op; the grid is garbage collected.
func (s *CellSurface) Close() error { return nil }

func (s *CellSurface) at(col, row int) (cell, bool) {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return cell{}, false
	}
	return s.cells[row*s.cols+col], true
}

// straight converts c to a straight-alpha color.
func straight(c color.Color) (colorful.Color, float64) {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return colorful.Color{}, 0
	}
	_, _, _, a := c.RGBA()
	return col, float64(a) / 0xffff
}

// narrowFallback stands in for runes that stay two cells wide after
// folding, such as CJK ideographs.
const narrowFallback = '*'

// fold maps a full-width rune to its half-width form. Runes without one
// become narrowFallback so that a glyph never spills into the next column.
func fold(r rune) rune {
	n, _ := utf8.DecodeRuneInString(width.Narrow.String(string(r)))
	if runewidth.RuneWidth(n) == 2 {
		return narrowFallback
	}
	return n
}

var _ surface.Surface = (*CellSurface)(nil)
