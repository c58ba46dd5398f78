package game

import "github.com/plus3/blockfall/piece"

// Commands buffers world changes that are applied once every system of the
// frame has run.
type Commands struct {
	spawns []piece.Variant
	events []Event
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues creation of a new active piece of variant v. It is dropped at
// flush time if a piece is already active.
func (c *Commands) Spawn(v piece.Variant) {
	c.spawns = append(c.spawns, v)
}

// Emit queues an event for the world's listeners.
func (c *Commands) Emit(ev Event) {
	c.events = append(c.events, ev)
}

// Defer queues a function execution operation.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush applies queued events, spawns and deferred functions to world, in that
// order, and resets the buffer.
func (c *Commands) Flush(world *World) {
	for _, ev := range c.events {
		world.dispatch(ev)
	}

	for _, v := range c.spawns {
		world.spawn(v)
	}

	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
