package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/piece"
)

func TestDropOnEmptyGrid(t *testing.T) {
	world := newTestWorld(t)
	scheduler := NewDefaultScheduler(world)

	scheduler.Once(0)
	require.NotNil(t, world.Active, "first frame spawns a piece")
	first := world.Active
	assert.Equal(t, piece.Position{}, first.Position)

	height := world.Grid.Height()
	pieceHeight := first.Table().Height()

	for tick := 1; tick <= height-pieceHeight; tick++ {
		scheduler.Once(1)
		require.Same(t, first, world.Active, "tick %d", tick)
		assert.Equal(t, tick, first.Position.Row)
	}
	assert.Equal(t, 0, world.Commits())

	scheduler.Once(1)
	assert.Equal(t, 1, world.Commits())
	assert.Equal(t, 4, world.Grid.Count())
	for _, c := range first.Cells() {
		assert.True(t, world.Grid.Occupied(c.Row, c.Col))
	}
	assert.Equal(t, height-pieceHeight, first.Position.Row)

	require.NotNil(t, world.Active, "replacement spawned in the same frame")
	assert.NotSame(t, first, world.Active)
	assert.Equal(t, world.Spawn, world.Active.Position)
}

func TestEventsDeliveredAtFlush(t *testing.T) {
	world := newTestWorld(t)
	scheduler := NewDefaultScheduler(world)

	var events []Event
	world.Subscribe(func(ev Event) { events = append(events, ev) })

	scheduler.Once(0)
	require.Len(t, events, 1)
	assert.Equal(t, EventSpawned, events[0].Kind)

	place(world, piece.O, 0, piece.Position{Row: 18, Col: 0})
	scheduler.Once(1)

	require.Len(t, events, 3)
	assert.Equal(t, EventCommitted, events[1].Kind)
	assert.Equal(t, piece.O, events[1].Variant)
	assert.Equal(t, EventSpawned, events[2].Kind)
}

func TestInputSystem(t *testing.T) {
	t.Run("moves and rotations", func(t *testing.T) {
		world := newTestWorld(t)
		scheduler := NewScheduler(world)
		input := &InputSystem{}
		scheduler.Register(input)

		p := place(world, piece.L, 0, piece.Position{Row: 4, Col: 4})
		world.Push(IntentMoveLeft)
		world.Push(IntentMoveLeft)
		world.Push(IntentMoveRight)
		world.Push(IntentRotateCW)
		scheduler.Once(0)

		assert.Equal(t, piece.Position{Row: 4, Col: 3}, p.Position)
		assert.Equal(t, 3, p.Rotation)
		assert.Equal(t, int64(4), input.Applied)
		assert.Empty(t, world.intents)
	})

	t.Run("blocked moves are rejected", func(t *testing.T) {
		world := newTestWorld(t)
		scheduler := NewScheduler(world)
		input := &InputSystem{}
		scheduler.Register(input)

		p := place(world, piece.O, 0, piece.Position{Row: 0, Col: 0})
		world.Push(IntentMoveLeft)
		scheduler.Once(0)

		assert.Equal(t, piece.Position{Row: 0, Col: 0}, p.Position)
		assert.Equal(t, int64(1), input.Rejected)
	})

	t.Run("soft drop follows gravity protocol", func(t *testing.T) {
		world := newTestWorld(t)
		scheduler := NewScheduler(world)
		scheduler.Register(&InputSystem{})

		p := place(world, piece.O, 0, piece.Position{Row: 17, Col: 0})
		world.Push(IntentSoftDrop)
		scheduler.Once(0)
		assert.Equal(t, 18, p.Position.Row)

		world.Push(IntentSoftDrop)
		world.Push(IntentMoveRight)
		scheduler.Once(0)
		assert.Nil(t, world.Active)
		assert.Equal(t, 1, world.Commits())
		assert.True(t, world.Grid.Occupied(18, 0), "move after commit is ignored")
	})

	t.Run("pause", func(t *testing.T) {
		world := newTestWorld(t)
		scheduler := NewDefaultScheduler(world)
		scheduler.Once(0)
		p := world.Active
		require.NotNil(t, p)
		p.Position = piece.Position{Row: 0, Col: 3}

		world.Push(IntentPause)
		world.Push(IntentMoveLeft)
		scheduler.Once(5)
		assert.True(t, world.Clock.Paused())
		assert.Equal(t, piece.Position{Row: 0, Col: 3}, p.Position)

		world.Push(IntentPause)
		scheduler.Once(1)
		assert.False(t, world.Clock.Paused())
		assert.Equal(t, piece.Position{Row: 1, Col: 3}, p.Position)
	})
}

func TestGravitySystem(t *testing.T) {
	t.Run("ticks after commit wait for spawn", func(t *testing.T) {
		world := newTestWorld(t)
		scheduler := NewScheduler(world)
		gravity := &GravitySystem{}
		scheduler.Register(gravity)

		place(world, piece.O, 0, piece.Position{Row: 17, Col: 0})
		scheduler.Once(5)

		assert.Equal(t, int64(5), gravity.Ticks)
		assert.Equal(t, 1, world.Commits())
		assert.Nil(t, world.Active)
		assert.True(t, world.Grid.Occupied(18, 0))
	})

	t.Run("no piece no commit", func(t *testing.T) {
		world := newTestWorld(t)
		scheduler := NewScheduler(world)
		scheduler.Register(&GravitySystem{})
		scheduler.Once(3)
		assert.Equal(t, 0, world.Grid.Count())
	})
}

func TestSpawnSystem(t *testing.T) {
	world := newTestWorld(t)
	scheduler := NewScheduler(world)
	spawn := &SpawnSystem{}
	scheduler.Register(spawn)

	scheduler.Once(0)
	scheduler.Once(0)
	assert.Equal(t, int64(1), spawn.Spawned)
	require.NotNil(t, world.Active)
	assert.Equal(t, 0, world.Active.Rotation)
}

func TestSpawnPosition(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn = piece.Position{Row: 0, Col: 3}
	world, err := NewWorld(cfg)
	require.NoError(t, err)

	NewDefaultScheduler(world).Once(0)
	require.NotNil(t, world.Active)
	assert.Equal(t, piece.Position{Row: 0, Col: 3}, world.Active.Position)
}

func TestLongRunStaysInBounds(t *testing.T) {
	world := newTestWorld(t)
	scheduler := NewDefaultScheduler(world)

	intents := []Intent{IntentMoveLeft, IntentMoveRight, IntentRotateCW, IntentRotateCCW, IntentSoftDrop}
	for frame := range 2000 {
		world.Push(intents[frame%len(intents)])
		if frame%3 == 0 {
			world.Push(intents[(frame/3)%len(intents)])
		}
		assert.NotPanics(t, func() { scheduler.Once(0.25) })

		if p := world.Active; p != nil {
			for _, c := range p.Cells() {
				assert.True(t, world.Grid.InBounds(c.Row, c.Col), "frame %d cell %s", frame, c)
			}
		}
	}
	assert.Positive(t, world.Commits())
}
