// Command rain shows the digital rain effect in the terminal, one pane per
// layout entry, or renders a single pane to a PNG file.
//
// Usage:
//
//	rain [-layout file.yaml] [-fps n] [-narrow] [-color c] [-speed s] [-opacity a]
//	rain -snapshot out.png [-size 800x600] [-frames 120] [-font file.ttf]
//
// In the terminal, Esc, q or Ctrl-C quits and SIGHUP reloads the layout
// file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/rain"
	"github.com/gogpu/rain/internal/layout"
	"github.com/gogpu/rain/term"
)

// settings holds the parsed command line.
type settings struct {
	layoutPath string
	fps        int
	narrow     bool
	color      string
	speed      float64
	opacity    float64
	palette    string

	snapshot string
	size     string
	frames   int
	fontPath string

	// set records which flags were given explicitly.
	set map[string]bool
}

func main() {
	var s settings
	flag.StringVar(&s.layoutPath, "layout", "", "YAML layout file (default: two panes, cyan and red)")
	flag.IntVar(&s.fps, "fps", 0, "frames per second, overrides the layout")
	flag.BoolVar(&s.narrow, "narrow", false, "fold glyphs to half-width, one cell per column")
	flag.StringVar(&s.color, "color", "", "glyph color for every pane (hex or name)")
	flag.Float64Var(&s.speed, "speed", 1, "fall speed for every pane")
	flag.Float64Var(&s.opacity, "opacity", 0.4, "surface opacity for every pane")
	flag.StringVar(&s.palette, "palette", "", "glyphs to draw (default: 01 and katakana)")
	logPath := flag.String("log", "", "write debug logs to this file")

	flag.StringVar(&s.snapshot, "snapshot", "", "render to this PNG file instead of the terminal")
	flag.StringVar(&s.size, "size", "800x600", "snapshot size in pixels")
	flag.IntVar(&s.frames, "frames", 120, "frames to run before the snapshot")
	flag.StringVar(&s.fontPath, "font", "", "TrueType or OpenType font for snapshots")
	flag.Parse()

	s.set = make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { s.set[f.Name] = true })

	closeLog, err := setupLogging(*logPath)
	if err != nil {
		log.Fatalf("rain: %v", err)
	}
	defer closeLog()

	if s.snapshot != "" {
		err = runSnapshot(s)
	} else {
		err = runTerminal(s)
	}
	if err != nil && !errors.Is(err, term.ErrQuit) {
		closeLog()
		log.Fatalf("rain: %v", err)
	}
}

// setupLogging routes library logs to path at debug level. Without a path
// the library stays silent.
func setupLogging(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	rain.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return func() { _ = f.Close() }, nil
}

// loadLayout reads the layout file, or the default layout, and applies the
// flags that override it.
func loadLayout(s settings) (*layout.Layout, error) {
	l := layout.Default()
	if s.layoutPath != "" {
		var err error
		if l, err = layout.Load(s.layoutPath); err != nil {
			return nil, err
		}
	}

	if s.set["fps"] {
		l.FPS = s.fps
	}
	if s.set["narrow"] {
		l.Narrow = s.narrow
	}
	l.Override(func(p *layout.Pane) {
		if s.set["color"] {
			p.Color = s.color
		}
		if s.set["speed"] {
			p.Speed = s.speed
		}
		if s.set["opacity"] {
			p.Opacity = s.opacity
		}
	})

	if err := l.Validate(); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return l, nil
}

// rendererOptions returns the options shared by every renderer.
func rendererOptions(s settings) []rain.Option {
	if s.palette == "" {
		return nil
	}
	return []rain.Option{rain.WithPalette(rain.NewPalette(s.palette))}
}
