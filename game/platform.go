package game

import (
	"errors"
	"time"
)

// Initialization failures. Run wraps these together with the platform's own
// error so callers can match with errors.Is and still print the cause.
var (
	ErrPlatformInit   = errors.New("platform init failed")
	ErrWindowCreate   = errors.New("window creation failed")
	ErrRendererCreate = errors.New("renderer creation failed")
)

//go:generate go tool stringer -type=Event -trimprefix=Event

// Event is a window-system event as seen by the loop.
type Event int

const (
	// EventOther is any event the loop does not act on.
	EventOther Event = iota
	// EventQuit asks the loop to stop after the current frame.
	EventQuit
)

// Clock is a monotonic tick source with the ability to block.
type Clock interface {
	// Ticks returns the time elapsed since an arbitrary fixed origin.
	Ticks() time.Duration
	Sleep(d time.Duration)
}

// Platform is the windowing and rendering library the driver runs on.
type Platform interface {
	KeyState
	Clock

	// Init sets up global library state. Quit undoes it.
	Init() error
	Quit()
	CreateWindow(title string, width, height int) (Window, error)
	// PollEvent returns the next pending event, or false once drained.
	PollEvent() (Event, bool)
}

// Window is an open platform window.
type Window interface {
	CreateRenderer() (Renderer, error)
	Destroy() error
}

// Renderer is an accelerated drawing context bound to a window.
type Renderer interface {
	Surface
	Present()
	Destroy() error
}

// SystemClock is a Clock backed by the runtime's monotonic clock.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock creates a clock whose origin is now.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

func (c *SystemClock) Ticks() time.Duration {
	return time.Since(c.origin)
}

func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
