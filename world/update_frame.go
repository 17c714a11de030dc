package world

// UpdateFrame is handed to every system during a single Scheduler.Once call.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, w *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     w,
	}
}
