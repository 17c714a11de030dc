package ebitenplatform

import (
	"context"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/square/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOverlay struct {
	layouts [][2]int
}

func (o *stubOverlay) BeginFrame()               {}
func (o *stubOverlay) EndFrame()                 {}
func (o *stubOverlay) Draw(screen *ebiten.Image) {}
func (o *stubOverlay) Toggle()                   {}
func (o *stubOverlay) WantsKeyboard() bool       { return false }

func (o *stubOverlay) Layout(width, height int) {
	o.layouts = append(o.layouts, [2]int{width, height})
}

func newDriver(t *testing.T) *game.Driver {
	t.Helper()
	d, err := game.NewDriver(game.DefaultConfig(), nil)
	require.NoError(t, err)
	return d
}

func TestGameLayoutUsesConfig(t *testing.T) {
	overlay := &stubOverlay{}
	g := NewGame(context.Background(), newDriver(t), overlay)

	w, h := g.Layout(1920, 1080)

	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, [][2]int{{1280, 720}}, overlay.layouts)
}

func TestGameUpdateTerminates(t *testing.T) {
	t.Run("driver not running", func(t *testing.T) {
		g := NewGame(context.Background(), newDriver(t), nil)
		assert.ErrorIs(t, g.Update(), ebiten.Termination)
	})

	t.Run("context done", func(t *testing.T) {
		d := newDriver(t)
		d.Start(0)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		g := NewGame(ctx, d, nil)
		assert.ErrorIs(t, g.Update(), ebiten.Termination)
		assert.Equal(t, game.StateShuttingDown, d.State())
	})
}

func TestDefaultBindings(t *testing.T) {
	code, ok := DefaultBindings().Code(game.KeyLeft)
	require.True(t, ok)
	assert.Equal(t, ebiten.KeyArrowLeft, code)
}

func TestSurfaceTracksColor(t *testing.T) {
	s := &Surface{}
	c := game.DefaultConfig().Background
	s.SetDrawColor(c)
	assert.Equal(t, c, s.color)
}
