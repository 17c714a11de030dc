package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/square/game"
	"github.com/plus3/square/world"
)

// PerformanceStats shows the frame rate, a frame-time graph and per-system
// timings.
type PerformanceStats struct {
	world     *world.World
	scheduler *world.Scheduler
	stats     *world.Singleton[game.FrameStats]

	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(w *world.World, scheduler *world.Scheduler, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		world:         w,
		scheduler:     scheduler,
		stats:         world.NewSingleton[game.FrameStats](w),
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *PerformanceStats) record(frameMillis float32) {
	ps.frameHistory[ps.frameIndex] = frameMillis
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

func (ps *PerformanceStats) averageFrameTime() float32 {
	var sum float32
	for _, ft := range ps.frameHistory {
		sum += ft
	}
	return sum / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render() {
	frame := ps.stats.Get()
	ps.record(float32(frame.Delta * 1000.0))

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Frames: %d", frame.Frames))
	imgui.Text(fmt.Sprintf("FPS (sampled): %.1f", frame.FPS))
	imgui.Text(fmt.Sprintf("Frame work: %s", frame.FrameTime))

	avg := ps.averageFrameTime()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Delta: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Delta Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Systems") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("SystemStatsTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableHeadersRow()

			for _, sys := range ps.scheduler.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Resources") {
		for _, name := range ps.world.CollectStats().ResourceTypes {
			imgui.BulletText(name)
		}
		imgui.TreePop()
	}

	imgui.End()
}
