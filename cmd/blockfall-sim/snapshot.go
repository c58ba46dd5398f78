package main

import (
	"sync"

	"github.com/plus3/blockfall/game"
)

// PieceView is the JSON shape of the active piece.
type PieceView struct {
	Variant  string `json:"variant"`
	Rotation int    `json:"rotation"`
	Row      int    `json:"row"`
	Col      int    `json:"col"`
}

// Snapshot is a copy of the world taken between frames.
type Snapshot struct {
	Grid    string
	Piece   *PieceView
	Commits int
	Filled  int
	Paused  bool
	Stats   *game.SchedulerStats
}

// SnapshotStore hands the latest snapshot from the simulation goroutine to
// HTTP handlers.
type SnapshotStore struct {
	mu   sync.RWMutex
	snap Snapshot
}

// Update replaces the stored snapshot with the current state of world.
func (s *SnapshotStore) Update(world *game.World, stats *game.SchedulerStats) {
	snap := Snapshot{
		Grid:    world.Grid.String(),
		Commits: world.Commits(),
		Filled:  world.Grid.Count(),
		Paused:  world.Clock.Paused(),
		Stats:   stats,
	}
	if p := world.Active; p != nil {
		snap.Piece = &PieceView{
			Variant:  p.Variant.String(),
			Rotation: p.Rotation,
			Row:      p.Position.Row,
			Col:      p.Position.Col,
		}
	}

	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

// Get returns the latest snapshot.
func (s *SnapshotStore) Get() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}
