package main

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

func newSim(t *testing.T) (*game.World, *game.Scheduler, *SnapshotStore) {
	t.Helper()
	cfg := game.DefaultConfig()
	cfg.Seed = 11
	world, err := game.NewWorld(cfg)
	require.NoError(t, err)

	scheduler := game.NewDefaultScheduler(world)
	scheduler.Register(&RandomIntentSystem{Rate: 0.5, rng: rand.New(rand.NewPCG(1, 2))})
	store := &SnapshotStore{}
	scheduler.Register(&SnapshotSystem{Store: store, Scheduler: scheduler})
	return world, scheduler, store
}

func TestSnapshotAfterFlush(t *testing.T) {
	world, scheduler, store := newSim(t)

	scheduler.Once(0)
	snap := store.Get()
	require.NotNil(t, snap.Piece, "snapshot sees the piece spawned during flush")
	assert.Equal(t, world.Active.Variant.String(), snap.Piece.Variant)
	assert.Equal(t, world.Grid.String(), snap.Grid)
}

func TestRandomIntentSystem(t *testing.T) {
	world, scheduler, store := newSim(t)

	for range 5000 {
		scheduler.Once(1.0 / 60)
	}

	assert.Positive(t, world.Commits())
	// Pieces committed on top of the stack at the spawn point overlap
	// existing cells, so the grid can hold fewer than four per commit.
	assert.LessOrEqual(t, world.Grid.Count(), world.Commits()*4)
	assert.Equal(t, world.Grid.Count(), store.Get().Filled)
	assert.Equal(t, world.Commits(), store.Get().Commits)
}

func TestRandomIntentSeed(t *testing.T) {
	draw := func(s *RandomIntentSystem) []int {
		out := make([]int, 32)
		for i := range out {
			out[i] = s.rng.IntN(1 << 20)
		}
		return out
	}
	worldWithSeed := func(seed uint64) *game.World {
		cfg := game.DefaultConfig()
		cfg.Seed = seed
		world, err := game.NewWorld(cfg)
		require.NoError(t, err)
		return world
	}

	timeSeeded := worldWithSeed(0)
	replay := worldWithSeed(timeSeeded.Seed())
	other := worldWithSeed(timeSeeded.Seed() + 1)

	first := draw(NewRandomIntentSystem(timeSeeded, 1))
	assert.Equal(t, first, draw(NewRandomIntentSystem(replay, 1)))
	assert.NotEqual(t, first, draw(NewRandomIntentSystem(other, 1)))
}

func TestRouter(t *testing.T) {
	_, scheduler, store := newSim(t)
	scheduler.Once(0)
	router := NewRouter(store, nil)

	t.Run("grid", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/grid", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, store.Get().Grid, rec.Body.String())
	})

	t.Run("piece", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/piece", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var view PieceView
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
		assert.Equal(t, store.Get().Piece.Variant, view.Variant)
	})

	t.Run("stats", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "commits")
		assert.Contains(t, body, "stats")
	})

	t.Run("no piece", func(t *testing.T) {
		empty := NewRouter(&SnapshotStore{}, nil)
		rec := httptest.NewRecorder()
		empty.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/piece", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestReport(t *testing.T) {
	world, scheduler, _ := newSim(t)
	world.Active = nil
	scheduler.Once(0)
	world.Active = piece.New(piece.O)
	for world.Commits() == 0 {
		scheduler.Once(1)
	}

	report := &Report{Frames: 100, FrameDT: time.Second, Width: 10, Height: 20}
	report.UpdateTime.Samples = []time.Duration{time.Millisecond, 3 * time.Millisecond}
	report.UpdateTime.Finalize()
	report.Collect(world, scheduler)

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Board:** 10x20")
	assert.Contains(t, out, "**Pieces Committed:** 1")
	assert.Contains(t, out, "**Avg:** 2ms")
	assert.Contains(t, out, "- GravitySystem:")
	assert.Contains(t, out, world.Grid.String())
}
