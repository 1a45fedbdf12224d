// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing surface the rain effect paints on.
//
// Surface is the rendering target abstraction that decouples the frame step
// from whatever displays it. The same renderer code works with:
//
//   - ImageSurface: a CPU pixel buffer with font-rendered glyphs
//   - term.CellSurface: a terminal cell grid (package term)
//   - test doubles recording the calls made by a frame
//
// # Semantics
//
// The contract follows an HTML canvas 2D context, restricted to what the
// effect needs:
//
//   - Resize sets the buffer size and always clears it, even when the
//     size does not change.
//   - FillRect composites with source-over; a translucent fill darkens
//     what is already there instead of replacing it.
//   - DrawGlyph draws one character with its baseline at y. Coordinates
//     are floored to whole pixels.
//   - Opacity is a property of the whole surface, applied when the surface
//     is presented, never per glyph.
//
// # Usage
//
//	s := surface.NewImageSurface(140, 100)
//	defer s.Close()
//
//	s.FillRect(0, 0, 140, 100, color.NRGBA{A: 13})
//	s.DrawGlyph('ア', 0, 14, 14, color.NRGBA{G: 255, A: 255})
//	img := s.Composite()
package surface
