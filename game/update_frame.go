package game

import "time"

// UpdateFrame is handed to every system during one scheduler pass.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}

// Delta returns DeltaTime as a duration.
func (f *UpdateFrame) Delta() time.Duration {
	return time.Duration(f.DeltaTime * float64(time.Second))
}
