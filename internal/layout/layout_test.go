package layout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/frame"
)

func TestParse(t *testing.T) {
	data := []byte(`
fps: 30
narrow: true
panes:
  - color: cyan
    background: "#001f3f"
    opacity: 0.5
    speed: 1.2
  - background: "#4a0000"
`)
	l, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.FPS != 30 || !l.Narrow || len(l.Panes) != 2 {
		t.Fatalf("layout = %+v", l)
	}

	got := l.Panes[0].Config()
	want := rain.Config{Color: rain.Hex("#00d4ff"), Opacity: 0.5, Speed: 1.2}
	if got != want {
		t.Errorf("pane 0 Config() = %+v, want %+v", got, want)
	}
	if bg := l.Panes[0].BackgroundColor(); bg != rain.Hex("#001f3f") {
		t.Errorf("pane 0 background = %+v", bg)
	}

	// Omitted fields fall back to the renderer defaults.
	if got := l.Panes[1].Config(); got != rain.DefaultConfig() {
		t.Errorf("pane 1 Config() = %+v, want defaults", got)
	}
}

func TestParseDefaultFPS(t *testing.T) {
	l, err := Parse([]byte("panes: [{}]"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if l.FPS != frame.DefaultFPS {
		t.Errorf("FPS = %d, want %d", l.FPS, frame.DefaultFPS)
	}
	if l.Panes[0].BackgroundColor() != rain.Hex("#000000") {
		t.Errorf("default background = %+v, want black", l.Panes[0].BackgroundColor())
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		is      error
	}{
		{"no panes", "fps: 30", "", ErrNoPanes},
		{"empty pane list", "panes: []", "", ErrNoPanes},
		{"bad yaml", "panes: [", "parse", nil},
		{"fps too high", "fps: 1000\npanes: [{}]", "fps 1000", nil},
		{"bad color", "panes: [{}, {color: mauve}]", "pane 1: color", nil},
		{"bad background", "panes: [{background: '#12'}]", "pane 0: background", nil},
		{"opacity", "panes: [{opacity: 1.5}]", "pane 0: opacity", nil},
		{"speed", "panes: [{speed: -1}]", "pane 0: speed", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if err == nil {
				t.Fatal("Parse succeeded, want error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rain.yaml")
	if err := os.WriteFile(path, []byte("panes: [{color: amber}]"), 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if l.Panes[0].Config().Color != rain.Hex("#ffbf00") {
		t.Errorf("color = %+v, want amber", l.Panes[0].Config().Color)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) = %v, want ErrNotExist", err)
	}
}

func TestDefault(t *testing.T) {
	l := Default()
	if err := l.Validate(); err != nil {
		t.Fatalf("Default() is invalid: %v", err)
	}
	if len(l.Panes) != 2 {
		t.Fatalf("Default() has %d panes, want 2", len(l.Panes))
	}
	if c := l.Panes[1].Config(); c.Color != rain.Hex("#ff0033") || c.Speed != 1.2 || c.Opacity != 0.5 {
		t.Errorf("second pane = %+v", c)
	}
}

func TestOverride(t *testing.T) {
	l := Default()
	l.Override(func(p *Pane) { p.Speed = 3 })
	for i, p := range l.Panes {
		if p.Speed != 3 {
			t.Errorf("pane %d speed = %v, want 3", i, p.Speed)
		}
	}
}
