package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/square/game"
	"github.com/plus3/square/world"
)

// SquareInspector shows the square's state and lets it be repositioned.
type SquareInspector struct {
	square *world.Singleton[game.Square]
	config *world.Singleton[game.Config]
}

func NewSquareInspector(w *world.World) *SquareInspector {
	return &SquareInspector{
		square: world.NewSingleton[game.Square](w),
		config: world.NewSingleton[game.Config](w),
	}
}

func (si *SquareInspector) Render() {
	sq := si.square.Get()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 180), imgui.CondOnce)
	if !imgui.BeginV("Square", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Rect: %s", sq.Rect()))
	imgui.Text(fmt.Sprintf("Color: %d,%d,%d,%d", sq.Color.R, sq.Color.G, sq.Color.B, sq.Color.A))

	x, y := float32(sq.X), float32(sq.Y)
	if imgui.InputFloat("X", &x) {
		sq.SetPosition(float64(x), sq.Y)
	}
	if imgui.InputFloat("Y", &y) {
		sq.SetPosition(sq.X, float64(y))
	}

	if imgui.Button("Reset") {
		start := si.config.Get().Square
		sq.SetPosition(start.X, start.Y)
	}

	imgui.End()
}
