// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Surface is the drawing target of a rain renderer.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Resize sets the pixel dimensions and discards all content.
	// A zero dimension is allowed and yields an empty surface.
	Resize(width, height int) error

	// FillRect composites c over the rectangle using source-over.
	FillRect(x, y, w, h float64, c color.Color)

	// DrawGlyph draws r with its baseline-left corner at (x, y), using a
	// font of the given pixel size.
	DrawGlyph(r rune, x, y, size float64, c color.Color)

	// SetOpacity sets the surface-level alpha in [0, 1].
	SetOpacity(alpha float64)

	// Opacity returns the surface-level alpha.
	Opacity() float64

	// Close releases all resources associated with the surface.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// ErrInvalidDimensions is returned by Resize for negative sizes.
var ErrInvalidDimensions = errors.New("surface: invalid dimensions")

// CheckDimensions validates a Resize request.
func CheckDimensions(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// ClampOpacity restricts alpha to [0, 1]. NaN becomes 1.
func ClampOpacity(alpha float64) float64 {
	switch {
	case math.IsNaN(alpha):
		return 1
	case alpha < 0:
		return 0
	case alpha > 1:
		return 1
	}
	return alpha
}

// Premultiplied converts c to 8-bit premultiplied components.
func Premultiplied(c color.Color) (r, g, b, a uint8) {
	cr, cg, cb, ca := c.RGBA()
	//nolint:gosec // G115: safe - x>>8 is always in [0, 255]
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8), uint8(ca >> 8)
}
