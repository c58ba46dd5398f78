// Package board holds the playfield: a fixed-size grid of occupied and empty
// cells, placement collision tests and committing settled pieces.
package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plus3/blockfall/piece"
)

const (
	MinWidth  = 7
	MinHeight = 10
)

// ErrTooSmall is returned by New when the requested grid is below the
// minimum playfield size.
var ErrTooSmall = errors.New("board: grid below minimum size")

// Grid is the playfield. Cells only ever go from empty to occupied, through
// Commit.
type Grid struct {
	width  int
	height int
	cells  [][]uint8
}

// New creates an empty grid of width columns by height rows.
// It returns nil and an error wrapping ErrTooSmall when width < MinWidth or
// height < MinHeight.
func New(width, height int) (*Grid, error) {
	if width < MinWidth || height < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, need at least %dx%d", ErrTooSmall, width, height, MinWidth, MinHeight)
	}

	cells := make([][]uint8, height)
	for i := range cells {
		cells[i] = make([]uint8, width)
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// Occupied reports whether the cell at (row, col) is occupied. Cells outside
// the grid report false.
func (g *Grid) Occupied(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col] == 1
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.cells {
		for _, c := range row {
			n += int(c)
		}
	}
	return n
}

// Collides reports whether table anchored at pos overlaps an occupied cell
// or leaves the grid. It never mutates the grid.
func (g *Grid) Collides(table piece.Table, pos piece.Position) bool {
	for i := piece.TableSize - 1; i >= 0; i-- {
		for j := range piece.TableSize {
			if table[i][j] == 0 {
				continue
			}

			row := pos.Row + i
			col := pos.Col + j

			if !g.InBounds(row, col) {
				return true
			}

			if g.cells[row][col] == 1 {
				return true
			}
		}
	}

	return false
}

// Commit marks every cell of table anchored at pos as occupied.
//
// Callers must only commit a placement Collides accepted. Commit does not
// check for overlap and panics, leaving the grid untouched, if any cell falls
// outside it.
func (g *Grid) Commit(table piece.Table, pos piece.Position) {
	cells := piece.Footprint(table, pos)
	for _, c := range cells {
		if !g.InBounds(c.Row, c.Col) {
			panic(fmt.Sprintf("board: commit outside %dx%d grid at (%d,%d)", g.width, g.height, c.Row, c.Col))
		}
	}
	for _, c := range cells {
		g.cells[c.Row][c.Col] = 1
	}
}

// String dumps the grid one row per line, each cell written as its digit
// followed by a space.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.height * (g.width*2 + 1))
	for _, row := range g.cells {
		for _, c := range row {
			b.WriteByte('0' + c)
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}
