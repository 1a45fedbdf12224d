package rain

import "math/rand/v2"

// Rand is the source of uniform random draws used by a frame step:
// one IntN per column for the glyph and one Float64 per column past the
// bottom edge for the restart decision.
//
// *math/rand/v2.Rand satisfies Rand, so tests can inject a seeded
// generator.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// globalRand draws from the process-wide math/rand/v2 source.
type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }
