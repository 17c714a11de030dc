// Package sdlplatform runs the game loop on SDL2 through go-sdl2.
package sdlplatform

import (
	"image"
	"image/color"
	"time"

	"github.com/plus3/square/game"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
)

// DefaultBindings maps the directional keys to the arrow key scancodes.
func DefaultBindings() *game.Bindings[sdl.Scancode] {
	return game.NewBindings(map[game.Key]sdl.Scancode{
		game.KeyUp:    sdl.SCANCODE_UP,
		game.KeyDown:  sdl.SCANCODE_DOWN,
		game.KeyLeft:  sdl.SCANCODE_LEFT,
		game.KeyRight: sdl.SCANCODE_RIGHT,
	})
}

// Platform implements game.Platform with SDL2. SDL must be driven from the
// main OS thread; callers lock it before running the driver.
type Platform struct {
	log      *logrus.Entry
	bindings *game.Bindings[sdl.Scancode]
}

// New creates an SDL platform using the arrow key bindings.
func New(log *logrus.Entry) *Platform {
	return &Platform{
		log:      log,
		bindings: DefaultBindings(),
	}
}

func (p *Platform) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

func (p *Platform) Quit() {
	sdl.Quit()
}

// CreateWindow opens a centered, shown window.
func (p *Platform) CreateWindow(title string, width, height int) (game.Window, error) {
	window, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED),
		int32(sdl.WINDOWPOS_CENTERED),
		int32(width), int32(height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, err
	}
	return &Window{window: window, log: p.log}, nil
}

func (p *Platform) PollEvent() (game.Event, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return game.EventOther, false
	}
	if _, ok := event.(*sdl.QuitEvent); ok {
		return game.EventQuit, true
	}
	return game.EventOther, true
}

func (p *Platform) Pressed(k game.Key) bool {
	code, ok := p.bindings.Code(k)
	if !ok {
		return false
	}
	state := sdl.GetKeyboardState()
	return int(code) < len(state) && state[code] != 0
}

// Ticks returns the milliseconds since SDL was initialized.
func (p *Platform) Ticks() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

// Sleep blocks for d truncated to whole milliseconds.
func (p *Platform) Sleep(d time.Duration) {
	if ms := delayMillis(d); ms > 0 {
		sdl.Delay(ms)
	}
}

func delayMillis(d time.Duration) uint32 {
	if d <= 0 {
		return 0
	}
	return uint32(d / time.Millisecond)
}

// Window wraps an SDL window.
type Window struct {
	window *sdl.Window
	log    *logrus.Entry
}

// CreateRenderer creates an accelerated renderer for the window.
func (w *Window) CreateRenderer() (game.Renderer, error) {
	renderer, err := sdl.CreateRenderer(w.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: renderer, log: w.log}, nil
}

func (w *Window) Destroy() error {
	return w.window.Destroy()
}

// Renderer draws through an SDL renderer. Draw call failures are logged and
// otherwise ignored.
type Renderer struct {
	renderer *sdl.Renderer
	log      *logrus.Entry
}

func (r *Renderer) SetDrawColor(c color.RGBA) {
	r.check("set draw color", r.renderer.SetDrawColor(c.R, c.G, c.B, c.A))
}

func (r *Renderer) Clear() {
	r.check("clear", r.renderer.Clear())
}

func (r *Renderer) FillRect(rect image.Rectangle) {
	sr := toRect(rect)
	r.check("fill rect", r.renderer.FillRect(&sr))
}

func (r *Renderer) Present() {
	r.renderer.Present()
}

func (r *Renderer) Destroy() error {
	return r.renderer.Destroy()
}

func (r *Renderer) check(op string, err error) {
	if err != nil {
		r.log.WithError(err).WithField("op", op).Warn("draw call failed")
	}
}

func toRect(r image.Rectangle) sdl.Rect {
	return sdl.Rect{
		X: int32(r.Min.X),
		Y: int32(r.Min.Y),
		W: int32(r.Dx()),
		H: int32(r.Dy()),
	}
}
