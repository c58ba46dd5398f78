package game

import "github.com/plus3/blockfall/piece"

// InputSystem applies the intents pushed since the last frame. Moves and
// rotations that would collide are undone; a soft drop is one gravity step.
// While the clock is paused only the pause intent is honoured.
type InputSystem struct {
	Applied  int64
	Rejected int64
}

func (s *InputSystem) Execute(frame *UpdateFrame) {
	world := frame.World

	for _, intent := range world.drainIntents() {
		if intent == IntentPause {
			world.Clock.TogglePause()
			continue
		}

		if world.Clock.Paused() || world.Active == nil {
			s.Rejected++
			continue
		}

		var ok bool
		switch intent {
		case IntentMoveLeft:
			ok = world.Shift(piece.Left)
		case IntentMoveRight:
			ok = world.Shift(piece.Right)
		case IntentRotateCW:
			ok = world.Rotate(true)
		case IntentRotateCCW:
			ok = world.Rotate(false)
		case IntentSoftDrop:
			world.Fall(frame.Commands)
			ok = true
		}

		if ok {
			s.Applied++
		} else {
			s.Rejected++
		}
	}
}

// GravitySystem advances the clock and runs one fall step per gravity tick.
// Ticks that arrive after the piece was committed in the same frame are
// counted but wait for the next spawn.
type GravitySystem struct {
	Ticks int64
}

func (s *GravitySystem) Execute(frame *UpdateFrame) {
	world := frame.World

	ticks := world.Clock.Advance(frame.Delta())
	for range ticks {
		s.Ticks++
		if world.Active == nil {
			continue
		}
		world.Fall(frame.Commands)
	}
}

// SpawnSystem queues a random piece whenever none is active. The piece enters
// play when the frame's commands are flushed.
type SpawnSystem struct {
	Spawned int64
}

func (s *SpawnSystem) Execute(frame *UpdateFrame) {
	world := frame.World
	if world.Active != nil {
		return
	}

	frame.Commands.Spawn(world.NextVariant())
	s.Spawned++
}
