package game_test

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/plus3/square/game"
)

// recordingSurface logs every drawing call as a short string.
type recordingSurface struct {
	ops []string
}

func (s *recordingSurface) SetDrawColor(c color.RGBA) {
	s.ops = append(s.ops, fmt.Sprintf("color %d,%d,%d,%d", c.R, c.G, c.B, c.A))
}

func (s *recordingSurface) Clear() {
	s.ops = append(s.ops, "clear")
}

func (s *recordingSurface) FillRect(r image.Rectangle) {
	s.ops = append(s.ops, "fill "+r.String())
}

// fakePlatform is a scripted Platform with a manual clock. Ticks only move
// when a frame is presented (by work) or when the driver sleeps.
type fakePlatform struct {
	*game.Keys

	ticks time.Duration
	work  time.Duration

	// events[i] is delivered during iteration i.
	events map[int][]game.Event

	initErr     error
	windowErr   error
	rendererErr error
	destroyErr  error

	calls    []string
	sleeps   []time.Duration
	renderer *fakeRenderer
	title    string
	size     image.Point
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		Keys:   game.NewKeys(),
		events: make(map[int][]game.Event),
	}
}

func (p *fakePlatform) quitAt(iteration int) {
	p.events[iteration] = append(p.events[iteration], game.EventQuit)
}

func (p *fakePlatform) presented() int {
	if p.renderer == nil {
		return 0
	}
	return p.renderer.presents
}

func (p *fakePlatform) Init() error {
	p.calls = append(p.calls, "init")
	return p.initErr
}

func (p *fakePlatform) Quit() {
	p.calls = append(p.calls, "quit")
}

func (p *fakePlatform) CreateWindow(title string, width, height int) (game.Window, error) {
	p.calls = append(p.calls, "window")
	if p.windowErr != nil {
		return nil, p.windowErr
	}
	p.title = title
	p.size = image.Pt(width, height)
	return &fakeWindow{platform: p}, nil
}

func (p *fakePlatform) PollEvent() (game.Event, bool) {
	i := p.presented()
	queue := p.events[i]
	if len(queue) == 0 {
		return game.EventOther, false
	}
	p.events[i] = queue[1:]
	return queue[0], true
}

func (p *fakePlatform) Ticks() time.Duration {
	return p.ticks
}

func (p *fakePlatform) Sleep(d time.Duration) {
	p.sleeps = append(p.sleeps, d)
	p.ticks += d
}

type fakeWindow struct {
	platform *fakePlatform
}

func (w *fakeWindow) CreateRenderer() (game.Renderer, error) {
	p := w.platform
	p.calls = append(p.calls, "renderer")
	if p.rendererErr != nil {
		return nil, p.rendererErr
	}
	p.renderer = &fakeRenderer{platform: p}
	return p.renderer, nil
}

func (w *fakeWindow) Destroy() error {
	w.platform.calls = append(w.platform.calls, "window.destroy")
	return w.platform.destroyErr
}

type fakeRenderer struct {
	recordingSurface
	platform *fakePlatform
	presents int
}

func (r *fakeRenderer) Present() {
	r.presents++
	r.platform.ticks += r.platform.work
}

func (r *fakeRenderer) Destroy() error {
	r.platform.calls = append(r.platform.calls, "renderer.destroy")
	return r.platform.destroyErr
}

var errBoom = errors.New("boom")
