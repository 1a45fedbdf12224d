// Package rain renders a column-based falling-glyph effect ("digital rain")
// onto a 2D drawing surface.
//
// # Overview
//
// A Renderer owns a table of column fall positions and a frame loop. On
// every frame it darkens the whole surface with a faint black fill (the
// trailing fade), draws one random glyph per column, advances each column
// and, once a column has left the bottom edge, restarts it with a small
// random probability so columns drift out of lockstep.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/rain"
//	    "github.com/gogpu/rain/frame"
//	)
//
//	loop := frame.NewLoop(frame.WithFPS(60))
//	r := rain.New(rain.Config{Color: rain.Hex("#00d4ff"), Opacity: 0.5, Speed: 1.2})
//	r.Mount(element, loop) // element provides size, surface, resize events
//	go loop.Run(ctx)
//
// # Host Model
//
// The renderer never owns a thread. The host supplies:
//   - an Element: pixel size, a drawing surface and resize notifications
//   - a FrameRequester: single-shot request/cancel of the next frame
//
// All calls into a Renderer, including resize listeners and frame
// callbacks, must happen on one goroutine. frame.Loop provides such a
// goroutine; term and cmd/rain show complete hosts.
//
// # Lifecycle
//
// Mount initializes the surface and starts the frame loop. SetConfig
// restarts everything when color or speed change, and only updates the
// surface when opacity alone changes. Unmount cancels the pending frame
// and detaches the resize listener.
//
// Resizing the element clears the surface but deliberately does not
// recompute the column count; the table keeps its size until the next
// (re-)initialization.
package rain
