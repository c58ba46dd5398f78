package piece

import (
	"fmt"
	"math/rand/v2"
)

// Variant identifies one of the seven piece shapes.
type Variant uint8

const (
	O Variant = iota
	I
	L
	J
	S
	Z
	T
)

// VariantCount is the number of piece variants.
const VariantCount = 7

// Variants lists every variant in declaration order.
var Variants = [VariantCount]Variant{O, I, L, J, S, Z, T}

func (v Variant) String() string {
	switch v {
	case O:
		return "O"
	case I:
		return "I"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	case T:
		return "T"
	}
	return fmt.Sprintf("Variant(%d)", uint8(v))
}

// Random picks a variant uniformly using r.
func Random(r *rand.Rand) Variant {
	return Variants[r.IntN(VariantCount)]
}

// Position is a grid coordinate. Row grows downward, Col grows rightward.
type Position struct {
	Row, Col int
}

// Add returns p offset by d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is a unit step on the grid.
type Direction uint8

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Delta returns the position offset of a single step in d.
func (d Direction) Delta() Position {
	switch d {
	case Left:
		return Position{Col: -1}
	case Right:
		return Position{Col: 1}
	case Up:
		return Position{Row: -1}
	case Down:
		return Position{Row: 1}
	}
	return Position{}
}

// Opposite returns the direction that undoes d.
func (d Direction) Opposite() Direction {
	switch d {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Piece is the currently falling piece: which variant, which rotation state
// and where its table's origin sits on the grid. Rotating and moving never
// consult the grid; callers check placements with the board.
type Piece struct {
	Variant  Variant
	Rotation int
	Position Position
}

// New returns a piece of variant v at rotation 0, anchored at the origin.
func New(v Variant) *Piece {
	return &Piece{Variant: v}
}

// RotateCW moves to the previous rotation state.
func (p *Piece) RotateCW() {
	p.Rotation = NextClockwise(p.Rotation, Rotations(p.Variant))
}

// RotateCCW moves to the next rotation state.
func (p *Piece) RotateCCW() {
	p.Rotation = NextCounterClockwise(p.Rotation, Rotations(p.Variant))
}

// Move shifts the piece one cell in d.
func (p *Piece) Move(d Direction) {
	p.Position = p.Position.Add(d.Delta())
}

// Table returns the occupancy table of the current rotation state.
func (p *Piece) Table() Table {
	return TableFor(p.Variant, p.Rotation)
}

// Footprint returns the absolute grid cells the current table occupies when
// anchored at pos.
func (p *Piece) Footprint(pos Position) []Position {
	return Footprint(p.Table(), pos)
}

// Cells returns the footprint at the piece's own position.
func (p *Piece) Cells() []Position {
	return p.Footprint(p.Position)
}

// Footprint returns the absolute grid cells t occupies when anchored at pos,
// in row-major order.
func Footprint(t Table, pos Position) []Position {
	cells := make([]Position, 0, TableSize)
	for i := range TableSize {
		for j := range TableSize {
			if t[i][j] == 1 {
				cells = append(cells, Position{Row: pos.Row + i, Col: pos.Col + j})
			}
		}
	}
	return cells
}
