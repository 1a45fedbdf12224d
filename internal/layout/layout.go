// Package layout reads the YAML file that describes a terminal rain
// screen: the frame rate, the glyph mode and one entry per pane.
//
// Example file:
//
//	fps: 30
//	narrow: false
//	panes:
//	  - color: "#00d4ff"
//	    background: "#001f3f"
//	    opacity: 0.5
//	    speed: 1.2
//	  - color: red
//	    background: "#4a0000"
package layout

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/frame"
)

// ErrNoPanes is returned when a layout defines no panes.
var ErrNoPanes = errors.New("layout: no panes")

// Layout is a parsed layout file.
type Layout struct {
	FPS    int    `yaml:"fps"`
	Narrow bool   `yaml:"narrow"`
	Panes  []Pane `yaml:"panes"`
}

// Pane is one rain pane. Omitted fields take the renderer defaults on a
// black background.
type Pane struct {
	Color      string  `yaml:"color"`
	Background string  `yaml:"background"`
	Opacity    float64 `yaml:"opacity"`
	Speed      float64 `yaml:"speed"`
}

func defaultPane() Pane {
	return Pane{
		Color:      "#00ff00",
		Background: "#000000",
		Opacity:    0.4,
		Speed:      1,
	}
}

// UnmarshalYAML decodes a pane on top of the defaults.
func (p *Pane) UnmarshalYAML(node *yaml.Node) error {
	type plain Pane
	v := plain(defaultPane())
	if err := node.Decode(&v); err != nil {
		return err
	}
	*p = Pane(v)
	return nil
}

// Config returns the renderer configuration for the pane. The pane must
// have been validated.
func (p Pane) Config() rain.Config {
	c, _ := rain.ParseColor(p.Color)
	return rain.Config{Color: c, Opacity: p.Opacity, Speed: p.Speed}
}

// BackgroundColor returns the parsed background.
func (p Pane) BackgroundColor() rain.RGBA {
	c, _ := rain.ParseColor(p.Background)
	return c
}

// Validate checks the pane's colors and ranges.
func (p Pane) Validate() error {
	if _, err := rain.ParseColor(p.Color); err != nil {
		return fmt.Errorf("color: %w", err)
	}
	if _, err := rain.ParseColor(p.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if math.IsNaN(p.Opacity) || p.Opacity < 0 || p.Opacity > 1 {
		return fmt.Errorf("opacity %v out of range [0, 1]", p.Opacity)
	}
	if math.IsNaN(p.Speed) || p.Speed < 0 {
		return fmt.Errorf("speed %v must not be negative", p.Speed)
	}
	return nil
}

// Default returns the two-pane layout: cyan rain on navy beside red rain
// on maroon.
func Default() *Layout {
	return &Layout{
		FPS: frame.DefaultFPS,
		Panes: []Pane{
			{Color: "#00d4ff", Background: "#001f3f", Opacity: 0.5, Speed: 1.2},
			{Color: "#ff0033", Background: "#4a0000", Opacity: 0.5, Speed: 1.2},
		},
	}
}

// Parse decodes and validates a layout. A zero fps selects the default
// frame rate.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("layout: parse: %w", err)
	}
	if l.FPS == 0 {
		l.FPS = frame.DefaultFPS
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Load reads and parses the layout file at path.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("layout: read %s: %w", path, err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Validate checks the frame rate and every pane.
func (l *Layout) Validate() error {
	if l.FPS < frame.MinFPS || l.FPS > frame.MaxFPS {
		return fmt.Errorf("layout: fps %d out of range [%d, %d]", l.FPS, frame.MinFPS, frame.MaxFPS)
	}
	if len(l.Panes) == 0 {
		return ErrNoPanes
	}
	for i, p := range l.Panes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("layout: pane %d: %w", i, err)
		}
	}
	return nil
}

// Override applies fn to every pane.
func (l *Layout) Override(fn func(*Pane)) {
	for i := range l.Panes {
		fn(&l.Panes[i])
	}
}
