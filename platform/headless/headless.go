// Package headless provides a windowless game.Platform for soak runs and
// tests. Input comes from a script and drawing is observed through hooks.
package headless

import (
	"image"
	"image/color"

	"github.com/plus3/square/game"
)

// Platform runs the driver without a display. The zero value is not usable;
// create one with New.
type Platform struct {
	game.Clock
	*game.Keys

	// MaxFrames, when positive, emits a quit event during that many-th frame.
	MaxFrames int
	// Script is called before each frame's events are polled and may change
	// the held keys.
	Script func(frame int, keys *game.Keys)
	// OnFill observes every filled rectangle.
	OnFill func(frame int, r image.Rectangle)
	// OnPresent is called after each frame is presented.
	OnPresent func(frame int)

	frames int
	// polled is one past the frame whose events were last delivered.
	polled int
}

// New creates a headless platform on the given clock.
func New(clock game.Clock) *Platform {
	return &Platform{
		Clock: clock,
		Keys:  game.NewKeys(),
	}
}

// Frames returns the number of presented frames.
func (p *Platform) Frames() int {
	return p.frames
}

func (p *Platform) Init() error {
	return nil
}

func (p *Platform) Quit() {}

func (p *Platform) CreateWindow(title string, width, height int) (game.Window, error) {
	return &window{platform: p}, nil
}

func (p *Platform) PollEvent() (game.Event, bool) {
	if p.polled == p.frames+1 {
		return game.EventOther, false
	}
	p.polled = p.frames + 1

	if p.Script != nil {
		p.Script(p.frames, p.Keys)
	}
	if p.MaxFrames > 0 && p.frames == p.MaxFrames-1 {
		return game.EventQuit, true
	}
	return game.EventOther, false
}

type window struct {
	platform *Platform
}

func (w *window) CreateRenderer() (game.Renderer, error) {
	return &renderer{platform: w.platform}, nil
}

func (w *window) Destroy() error {
	return nil
}

type renderer struct {
	platform *Platform
}

func (r *renderer) SetDrawColor(c color.RGBA) {}

func (r *renderer) Clear() {}

func (r *renderer) FillRect(rect image.Rectangle) {
	if r.platform.OnFill != nil {
		r.platform.OnFill(r.platform.frames, rect)
	}
}

func (r *renderer) Present() {
	frame := r.platform.frames
	r.platform.frames++
	if r.platform.OnPresent != nil {
		r.platform.OnPresent(frame)
	}
}

func (r *renderer) Destroy() error {
	return nil
}
