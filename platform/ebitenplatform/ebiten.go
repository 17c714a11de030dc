// Package ebitenplatform runs the game on ebiten. Ebiten owns the loop, so
// the driver is stepped from ebiten.Game callbacks and the frame cap is the
// engine's tick rate.
package ebitenplatform

import (
	"context"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/square/game"
)

// OverlayToggleKey shows or hides the overlay.
const OverlayToggleKey = ebiten.KeyF3

// Overlay is drawn on top of the game, typically debug panels.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
	Toggle()
	WantsKeyboard() bool
}

// DefaultBindings maps the directional keys to the arrow keys.
func DefaultBindings() *game.Bindings[ebiten.Key] {
	return game.NewBindings(map[game.Key]ebiten.Key{
		game.KeyUp:    ebiten.KeyArrowUp,
		game.KeyDown:  ebiten.KeyArrowDown,
		game.KeyLeft:  ebiten.KeyArrowLeft,
		game.KeyRight: ebiten.KeyArrowRight,
	})
}

// Surface draws onto an ebiten image.
type Surface struct {
	Target *ebiten.Image
	color  color.RGBA
}

func (s *Surface) SetDrawColor(c color.RGBA) {
	s.color = c
}

func (s *Surface) Clear() {
	s.Target.Fill(s.color)
}

func (s *Surface) FillRect(r image.Rectangle) {
	vector.DrawFilledRect(s.Target,
		float32(r.Min.X), float32(r.Min.Y),
		float32(r.Dx()), float32(r.Dy()),
		s.color, false)
}

// Game implements ebiten.Game on top of a game.Driver.
type Game struct {
	ctx      context.Context
	driver   *game.Driver
	overlay  Overlay
	clock    game.Clock
	keys     *game.Keys
	bindings *game.Bindings[ebiten.Key]
	surface  *Surface
}

// NewGame wraps driver. overlay may be nil.
func NewGame(ctx context.Context, driver *game.Driver, overlay Overlay) *Game {
	return &Game{
		ctx:      ctx,
		driver:   driver,
		overlay:  overlay,
		clock:    game.NewSystemClock(),
		keys:     game.NewKeys(),
		bindings: DefaultBindings(),
		surface:  &Surface{},
	}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		g.driver.Stop()
	}
	if g.driver.State() != game.StateRunning {
		return ebiten.Termination
	}

	if g.overlay != nil {
		if inpututil.IsKeyJustPressed(OverlayToggleKey) {
			g.overlay.Toggle()
		}
		g.overlay.BeginFrame()
		defer g.overlay.EndFrame()
	}

	g.bindings.Sample(g.keys, ebiten.IsKeyPressed)
	if g.overlay != nil && g.overlay.WantsKeyboard() {
		g.keys.ReleaseAll()
	}

	g.driver.Update(g.clock.Ticks(), g.keys)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Target = screen
	g.driver.Draw(g.surface)
	g.driver.EndFrame(g.clock.Ticks())

	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	cfg := g.driver.Config()
	if g.overlay != nil {
		g.overlay.Layout(cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height
}

// Run opens the window and runs the driver until the window is closed or
// ctx is done.
func Run(ctx context.Context, driver *game.Driver, overlay Overlay) error {
	cfg := driver.Config()
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPSCap)

	g := NewGame(ctx, driver, overlay)
	driver.Start(g.clock.Ticks())
	defer driver.Stop()

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("%w: %w", game.ErrPlatformInit, err)
	}
	return nil
}
