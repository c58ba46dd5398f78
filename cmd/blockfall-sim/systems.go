package main

import (
	"math/rand/v2"

	"github.com/plus3/blockfall/game"
)

var randomIntents = []game.Intent{
	game.IntentMoveLeft,
	game.IntentMoveRight,
	game.IntentRotateCW,
	game.IntentRotateCCW,
	game.IntentSoftDrop,
}

// RandomIntentSystem plays the game badly: each frame it pushes a random
// intent with probability Rate. Pushed intents are applied next frame.
type RandomIntentSystem struct {
	Rate   float64
	Pushed int64
	rng    *rand.Rand
}

// NewRandomIntentSystem seeds its intent source from the world's seed, so a
// run is reproducible from -seed alone.
func NewRandomIntentSystem(world *game.World, rate float64) *RandomIntentSystem {
	return &RandomIntentSystem{
		Rate: rate,
		rng:  rand.New(rand.NewPCG(world.Seed(), 0x5eed)),
	}
}

func (s *RandomIntentSystem) Execute(frame *game.UpdateFrame) {
	if s.rng.Float64() >= s.Rate {
		return
	}
	frame.World.Push(randomIntents[s.rng.IntN(len(randomIntents))])
	s.Pushed++
}

// SnapshotSystem publishes the world to Store once the frame's commands have
// been applied.
type SnapshotSystem struct {
	Store     *SnapshotStore
	Scheduler *game.Scheduler
}

func (s *SnapshotSystem) Execute(frame *game.UpdateFrame) {
	world := frame.World
	frame.Commands.Defer(func() {
		s.Store.Update(world, s.Scheduler.GetStats())
	})
}
