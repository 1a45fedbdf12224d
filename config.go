package rain

import "math"

// Effect constants. Glyph metrics and fade strength are fixed per effect,
// not configurable.
const (
	// GlyphSize is the glyph cell size in pixels, both the column width
	// and the row height.
	GlyphSize = 14

	// FadeAlpha is the alpha of the black fill painted each frame.
	FadeAlpha = 0.05

	// ResetThreshold is the value a uniform draw must exceed for a column
	// past the bottom edge to restart.
	ResetThreshold = 0.975

	// StepScale multiplies Config.Speed to give the per-frame advance in
	// glyph-height units.
	StepScale = 0.5
)

// Config holds the per-instance parameters of the effect.
type Config struct {
	// Color is the paint color of glyphs.
	Color RGBA

	// Opacity is the alpha of the whole surface in [0, 1].
	Opacity float64

	// Speed multiplies the per-frame descent. Must be non-negative.
	Speed float64
}

// DefaultConfig returns a mid-green effect at 40% opacity and unit speed.
func DefaultConfig() Config {
	return Config{
		Color:   Green,
		Opacity: 0.4,
		Speed:   1,
	}
}

// Normalized returns a copy with opacity clamped to [0, 1] and speed
// clamped to be non-negative. NaN opacity becomes 1, NaN speed becomes 0.
func (c Config) Normalized() Config {
	switch {
	case math.IsNaN(c.Opacity):
		c.Opacity = 1
	case c.Opacity < 0:
		c.Opacity = 0
	case c.Opacity > 1:
		c.Opacity = 1
	}
	if math.IsNaN(c.Speed) || c.Speed < 0 {
		c.Speed = 0
	}
	return c
}

// restartRequired reports whether moving from c to next must tear down the
// frame loop. Opacity is a passive surface property and never does.
func (c Config) restartRequired(next Config) bool {
	return c.Color != next.Color || c.Speed != next.Speed
}
