package rain

import (
	"github.com/gogpu/rain/frame"
	"github.com/gogpu/rain/surface"
)

// ListenerID identifies a resize listener registered on an Element.
type ListenerID uint64

// Element is the host object a renderer is mounted on: a layout box with a
// drawing surface.
type Element interface {
	// Size returns the current layout box in pixels.
	Size() (width, height int)

	// Context returns the element's drawing surface, or nil when none is
	// available.
	Context() surface.Surface

	// AddResizeListener registers fn to run whenever the layout box
	// changes size.
	AddResizeListener(fn func()) ListenerID

	// RemoveResizeListener unregisters a listener. Unknown IDs are ignored.
	RemoveResizeListener(id ListenerID)
}

// FrameRequester schedules single-shot frame callbacks.
// frame.Loop and frame.Manual implement it.
type FrameRequester interface {
	RequestFrame(fn frame.Callback) frame.Handle
	CancelFrame(h frame.Handle)
}

var (
	_ FrameRequester = (*frame.Loop)(nil)
	_ FrameRequester = (*frame.Manual)(nil)
)
