// Package term hosts rain renderers in a terminal.
//
// A Screen splits a tcell screen into side-by-side panes. Each Pane is a
// rain.Element whose drawing surface is a CellSurface: a grid of terminal
// cells addressed in virtual pixels, one glyph row per GlyphSize pixels.
//
// In the default wide mode a cell is GlyphSize/2 pixels wide, so the
// full-width katakana of the default palette span two cells exactly as
// they span one column on a canvas. WithNarrowGlyphs folds glyphs to their
// half-width forms and gives every column a single cell.
//
// All rendering happens on the frame.Loop goroutine: renderers step in
// frame callbacks and the Screen presents the panes in the loop's
// OnFrameDone hook.
package term
