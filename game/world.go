// Package game drives the board and the falling piece: it turns intents and
// gravity ticks into moves, rotations and commits, one scheduler frame at a
// time.
package game

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/kamstrup/intmap"

	"github.com/plus3/blockfall/board"
	"github.com/plus3/blockfall/piece"
)

// ErrInvalidConfig is returned by NewWorld for settings no game can run with.
var ErrInvalidConfig = errors.New("game: invalid config")

// Config holds the settings of a new world.
type Config struct {
	Width    int
	Height   int
	Interval time.Duration
	SpeedUp  float64
	Spawn    piece.Position
	// Seed for variant selection. Zero picks a time based seed.
	Seed uint64

	Logger *log.Logger
	// Verbose also logs the grid dump after every commit.
	Verbose bool
}

// DefaultConfig returns a 10x20 board with a one second gravity interval.
func DefaultConfig() Config {
	return Config{
		Width:    10,
		Height:   20,
		Interval: time.Second,
		SpeedUp:  0.0001,
	}
}

// EventKind tells listeners what happened.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventCommitted
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventCommitted:
		return "committed"
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// Event describes a piece entering play or settling into the grid.
type Event struct {
	Kind     EventKind
	Variant  piece.Variant
	Position piece.Position
	Cells    []piece.Position
}

// World is the state of one game: the grid, the active piece (nil between a
// commit and the next spawn) and the gravity clock.
type World struct {
	Grid   *board.Grid
	Active *piece.Piece
	Clock  *Clock
	Spawn  piece.Position

	rng       *rand.Rand
	intents   []Intent
	owners    *intmap.Map[int, piece.Variant]
	listeners []func(Event)
	logger    *log.Logger
	verbose   bool
	commits   int
	seed      uint64
}

// NewWorld builds a world with an empty grid and no active piece.
func NewWorld(cfg Config) (*World, error) {
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("%w: gravity interval %s", ErrInvalidConfig, cfg.Interval)
	}
	if cfg.SpeedUp < 0 {
		return nil, fmt.Errorf("%w: negative speed-up %g", ErrInvalidConfig, cfg.SpeedUp)
	}

	grid, err := board.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("game: new world: %w", err)
	}
	for _, v := range piece.Variants {
		if grid.Collides(piece.TableFor(v, 0), cfg.Spawn) {
			return nil, fmt.Errorf("%w: %s does not fit at spawn %s", ErrInvalidConfig, v, cfg.Spawn)
		}
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &World{
		Grid:    grid,
		Clock:   NewClock(cfg.Interval, cfg.SpeedUp),
		Spawn:   cfg.Spawn,
		rng:     rand.New(rand.NewPCG(seed, seed>>1|1)),
		owners:  intmap.New[int, piece.Variant](cfg.Width * cfg.Height),
		logger:  logger,
		verbose: cfg.Verbose,
		seed:    seed,
	}, nil
}

// Seed returns the seed variant selection was started from, after a zero
// Config.Seed has been replaced by a time based one.
func (w *World) Seed() uint64 {
	return w.seed
}

// Push queues an intent for the next frame's input pass.
func (w *World) Push(intent Intent) {
	w.intents = append(w.intents, intent)
}

func (w *World) drainIntents() []Intent {
	intents := w.intents
	w.intents = nil
	return intents
}

// Subscribe registers fn to receive every event, at the end of the frame that
// produced it.
func (w *World) Subscribe(fn func(Event)) {
	w.listeners = append(w.listeners, fn)
}

func (w *World) dispatch(ev Event) {
	for _, fn := range w.listeners {
		fn(ev)
	}
}

// Commits returns how many pieces have been committed.
func (w *World) Commits() int {
	return w.commits
}

// Owner returns the variant that filled the cell at (row, col).
func (w *World) Owner(row, col int) (piece.Variant, bool) {
	if !w.Grid.Occupied(row, col) {
		return 0, false
	}
	return w.owners.Get(w.cellKey(row, col))
}

func (w *World) cellKey(row, col int) int {
	return row*w.Grid.Width() + col
}

// NextVariant draws a uniformly random variant from the world's source.
func (w *World) NextVariant() piece.Variant {
	return piece.Random(w.rng)
}

func (w *World) spawn(v piece.Variant) {
	if w.Active != nil {
		return
	}

	p := piece.New(v)
	p.Position = w.Spawn
	w.Active = p

	w.dispatch(Event{
		Kind:     EventSpawned,
		Variant:  v,
		Position: p.Position,
		Cells:    p.Cells(),
	})
}

// Shift moves the active piece one cell in d and undoes the move if the new
// placement collides. It reports whether the piece moved.
func (w *World) Shift(d piece.Direction) bool {
	p := w.Active
	if p == nil {
		return false
	}

	p.Move(d)
	if w.Grid.Collides(p.Table(), p.Position) {
		p.Move(d.Opposite())
		return false
	}
	return true
}

// Rotate turns the active piece one step and turns it back if the new state
// collides. No alternative offsets are tried.
func (w *World) Rotate(clockwise bool) bool {
	p := w.Active
	if p == nil {
		return false
	}

	if clockwise {
		p.RotateCW()
	} else {
		p.RotateCCW()
	}

	if w.Grid.Collides(p.Table(), p.Position) {
		if clockwise {
			p.RotateCCW()
		} else {
			p.RotateCW()
		}
		return false
	}
	return true
}

// Fall applies one gravity step to the active piece. If moving down collides,
// the piece is moved back up, committed at that position and discarded, and
// a commit event is queued on cmds. It reports whether a commit happened.
func (w *World) Fall(cmds *Commands) bool {
	p := w.Active
	if p == nil {
		return false
	}

	p.Move(piece.Down)
	if !w.Grid.Collides(p.Table(), p.Position) {
		return false
	}

	p.Move(piece.Up)
	table := p.Table()
	w.Grid.Commit(table, p.Position)

	cells := p.Cells()
	for _, c := range cells {
		w.owners.Put(w.cellKey(c.Row, c.Col), p.Variant)
	}
	w.commits++
	w.Active = nil

	w.logger.Printf("commit %s rotation %d at %s", p.Variant, p.Rotation, p.Position)
	if w.verbose {
		w.logger.Printf("grid:\n%s", w.Grid)
	}

	cmds.Emit(Event{
		Kind:     EventCommitted,
		Variant:  p.Variant,
		Position: p.Position,
		Cells:    cells,
	})
	return true
}
