package rain

// Palette is an immutable ordered sequence of glyphs.
type Palette struct {
	runes []rune
}

// DefaultPalette holds the digits 0 and 1 followed by the katakana
// syllabary.
var DefaultPalette = NewPalette("01アイウエオカキクケコサシスセソタチツテトナニヌネノハヒフヘホマミムメモヤユヨラリルレロワヲン")

// NewPalette creates a palette from the runes of s.
func NewPalette(s string) Palette {
	return Palette{runes: []rune(s)}
}

// Len returns the number of glyphs.
func (p Palette) Len() int {
	return len(p.runes)
}

// At returns the i-th glyph.
func (p Palette) At(i int) rune {
	return p.runes[i]
}

// String returns the glyphs in order.
func (p Palette) String() string {
	return string(p.runes)
}

// Pick returns a glyph chosen uniformly at random. An empty palette yields
// a space.
func (p Palette) Pick(r Rand) rune {
	if len(p.runes) == 0 {
		return ' '
	}
	return p.runes[r.IntN(len(p.runes))]
}
