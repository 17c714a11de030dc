// Package ebiten provides the Dear ImGui overlay for the ebiten frontend.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/square/debugui"
	"github.com/plus3/square/game"
	"github.com/plus3/square/world"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay draws the debugui panels on top of the game. It satisfies
// ebitenplatform.Overlay.
type Overlay struct {
	backend *ImguiBackend
	panels  *world.Singleton[debugui.Panels]
	input   *world.Singleton[debugui.ImguiInputState]
}

// NewOverlay creates the ImGui backend, sizes the window from the driver's
// config and installs the debug panels into the driver.
func NewOverlay(d *game.Driver) *Overlay {
	cfg := d.Config()

	backend := &ImguiBackend{EbitenBackend: ebitenbackend.NewEbitenBackend()}
	backend.CreateWindow(cfg.Title, cfg.Width, cfg.Height)
	imgui.CurrentIO().SetIniFilename("")

	debugui.Install(d)

	w := d.World()
	return &Overlay{
		backend: backend,
		panels:  world.NewSingleton[debugui.Panels](w),
		input:   world.NewSingleton[debugui.ImguiInputState](w),
	}
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

func (o *Overlay) EndFrame() {
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// Toggle shows or hides the panels.
func (o *Overlay) Toggle() {
	o.panels.Get().Toggle()
}

// WantsKeyboard reports whether a panel captured keyboard focus last frame.
func (o *Overlay) WantsKeyboard() bool {
	return o.input.Get().WantCaptureKeyboard
}
