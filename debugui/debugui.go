// Package debugui provides immediate-mode debug panels for a running game
// using Dear ImGui. Panels are queued by a world system and drawn when the
// frame's commands are flushed.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/square/game"
	"github.com/plus3/square/world"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Name   string
	Render func()
}

// Panels is the singleton list of debug panels and whether they are shown.
type Panels struct {
	Visible bool
	Items   []ImguiItem
}

// Toggle flips panel visibility.
func (p *Panels) Toggle() {
	p.Visible = !p.Visible
}

// ImguiInputState tracks Dear ImGui's input capture state as a singleton.
// Frontends use it to stop steering the square while a panel has focus.
type ImguiInputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem updates ImguiInputState and defers every visible panel's
// render function to the end of the frame.
type ImguiSystem struct {
	Panels     world.Singleton[Panels]
	InputState world.Singleton[ImguiInputState]
}

func (i *ImguiSystem) Execute(frame *world.UpdateFrame) {
	io := imgui.CurrentIO()
	state := i.InputState.Get()
	state.WantCaptureMouse = io.WantCaptureMouse()
	state.WantCaptureKeyboard = io.WantCaptureKeyboard()

	panels := i.Panels.Get()
	if !panels.Visible {
		return
	}
	for _, item := range panels.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Install adds the default panels to the driver's world and registers the
// ImguiSystem after the built-in systems. Panels start hidden.
func Install(d *game.Driver) {
	w := d.World()

	perf := NewPerformanceStats(w, d.Scheduler(), 120)
	inspector := NewSquareInspector(w)

	world.NewSingleton[ImguiInputState](w)
	world.NewSingleton[Panels](w, Panels{
		Items: []ImguiItem{
			{Name: "Performance Stats", Render: perf.Render},
			{Name: "Square", Render: inspector.Render},
		},
	})

	d.Scheduler().Register(&ImguiSystem{})
}
