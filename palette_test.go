package rain

import (
	"math/rand/v2"
	"testing"
)

func TestDefaultPalette(t *testing.T) {
	if DefaultPalette.Len() != 48 {
		t.Errorf("Len() = %d, want 48", DefaultPalette.Len())
	}
	if DefaultPalette.At(0) != '0' || DefaultPalette.At(1) != '1' {
		t.Errorf("palette starts with %q, want 01", DefaultPalette.String()[:2])
	}
	if DefaultPalette.At(2) != 'ア' || DefaultPalette.At(47) != 'ン' {
		t.Errorf("katakana range = %q..%q", DefaultPalette.At(2), DefaultPalette.At(47))
	}
}

func TestPalettePick(t *testing.T) {
	p := NewPalette("ab")
	if got := p.Pick(&fixedRand{index: 1}); got != 'b' {
		t.Errorf("Pick = %q, want 'b'", got)
	}
	if got := NewPalette("").Pick(&fixedRand{}); got != ' ' {
		t.Errorf("empty palette Pick = %q, want space", got)
	}
}

// TestPalettePickUniform checks every glyph is reachable with roughly
// equal frequency.
func TestPalettePickUniform(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 5))
	counts := make(map[rune]int)
	const draws = 48000
	for range draws {
		counts[DefaultPalette.Pick(rnd)]++
	}
	if len(counts) != DefaultPalette.Len() {
		t.Fatalf("saw %d distinct glyphs, want %d", len(counts), DefaultPalette.Len())
	}
	for r, n := range counts {
		if n < 800 || n > 1200 {
			t.Errorf("glyph %q drawn %d times, want about 1000", r, n)
		}
	}
}

func TestWithPaletteIgnoresEmpty(t *testing.T) {
	r := New(DefaultConfig(), WithPalette(NewPalette("")), WithRand(nil))
	if r.palette.Len() != DefaultPalette.Len() {
		t.Errorf("palette len = %d, want default", r.palette.Len())
	}
	if _, ok := r.rand.(globalRand); !ok {
		t.Errorf("rand = %T, want globalRand", r.rand)
	}

	r = New(DefaultConfig(), WithPalette(NewPalette("xy")))
	if r.palette.String() != "xy" {
		t.Errorf("palette = %q, want xy", r.palette.String())
	}
}
