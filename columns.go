package rain

// columnCount returns floor(width / GlyphSize), or 0 for surfaces narrower
// than one glyph.
func columnCount(width int) int {
	if width < GlyphSize {
		return 0
	}
	return width / GlyphSize
}

// newColumns allocates the fall-position table for a surface width. Every
// column starts one glyph below the top edge.
func newColumns(width int) []float64 {
	cols := make([]float64, columnCount(width))
	for i := range cols {
		cols[i] = 1
	}
	return cols
}
