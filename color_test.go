package rain

import (
	"image/color"
	"math"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"six digits", "#00ff00", RGBA{0, 1, 0, 1}},
		{"no hash", "ff0000", RGBA{1, 0, 0, 1}},
		{"short", "#fff", RGBA{1, 1, 1, 1}},
		{"short with alpha", "#0008", RGBA{0, 0, 0, 136.0 / 255}},
		{"eight digits", "#00000000", RGBA{0, 0, 0, 0}},
		{"malformed", "#zzz", RGBA{0, 0, 0, 1}},
		{"wrong length", "#12345", RGBA{0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Hex(tt.in)
			if !colorNear(got, tt.want) {
				t.Errorf("Hex(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGBA
		wantErr bool
	}{
		{in: "green", want: RGBA{0, 1, 0, 1}},
		{in: " Cyan ", want: Hex("#00d4ff")},
		{in: "#ff0033", want: Hex("#ff0033")},
		{in: "purple-ish", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !colorNear(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA_ColorRoundTrip(t *testing.T) {
	c := RGBA{R: 0.2, G: 0.4, B: 0.6, A: 0.8}
	got := FromColor(c.Color())
	if !colorNear(got, c) {
		t.Errorf("FromColor(Color()) = %+v, want %+v", got, c)
	}

	n, ok := c.Color().(color.NRGBA)
	if !ok {
		t.Fatalf("Color() returned %T, want color.NRGBA", c.Color())
	}
	if n.A != 204 {
		t.Errorf("alpha = %d, want 204", n.A)
	}
}

func TestRGBA_ColorClamps(t *testing.T) {
	n := RGBA{R: 2, G: -1, B: 0.5, A: 1}.Color().(color.NRGBA)
	if n.R != 255 || n.G != 0 {
		t.Errorf("Color() = %+v, want R=255 G=0", n)
	}
}

func colorNear(a, b RGBA) bool {
	const eps = 1.0 / 255
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps &&
		math.Abs(a.B-b.B) <= eps && math.Abs(a.A-b.A) <= eps
}
