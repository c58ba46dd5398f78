package piece

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCells(t Table) int {
	n := 0
	for i := range TableSize {
		for j := range TableSize {
			n += int(t[i][j])
		}
	}
	return n
}

func TestRotations(t *testing.T) {
	expected := map[Variant]int{O: 1, I: 2, L: 4, J: 4, S: 2, Z: 2, T: 4}
	for _, v := range Variants {
		assert.Equal(t, expected[v], Rotations(v), "variant %s", v)
	}
}

func TestTables(t *testing.T) {
	t.Run("every state has four cells", func(t *testing.T) {
		for _, v := range Variants {
			for r := range Rotations(v) {
				assert.Equal(t, 4, countCells(TableFor(v, r)), "variant %s rotation %d", v, r)
			}
		}
	})

	t.Run("cells are zero or one", func(t *testing.T) {
		for _, v := range Variants {
			for r := range Rotations(v) {
				table := TableFor(v, r)
				for i := range TableSize {
					for j := range TableSize {
						assert.LessOrEqual(t, table[i][j], uint8(1))
					}
				}
			}
		}
	})

	t.Run("states are anchored at the origin", func(t *testing.T) {
		for _, v := range Variants {
			for r := range Rotations(v) {
				cells := Footprint(TableFor(v, r), Position{})
				require.NotEmpty(t, cells)
				minRow, minCol := TableSize, TableSize
				for _, c := range cells {
					minRow = min(minRow, c.Row)
					minCol = min(minCol, c.Col)
				}
				assert.Equal(t, 0, minRow, "variant %s rotation %d", v, r)
				assert.Equal(t, 0, minCol, "variant %s rotation %d", v, r)
			}
		}
	})

	t.Run("states within a variant are distinct", func(t *testing.T) {
		for _, v := range Variants {
			seen := make(map[Table]int)
			for r := range Rotations(v) {
				table := TableFor(v, r)
				prev, dup := seen[table]
				assert.False(t, dup, "variant %s rotation %d repeats rotation %d", v, r, prev)
				seen[table] = r
			}
		}
	})

	t.Run("fixture data", func(t *testing.T) {
		assert.Equal(t, Table{
			{1, 1, 0, 0},
			{1, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(O, 0))
		assert.Equal(t, Table{
			{1, 1, 1, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(I, 1))
		assert.Equal(t, Table{
			{0, 0, 1, 0},
			{1, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(L, 1))
		assert.Equal(t, Table{
			{1, 0, 0, 0},
			{1, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(J, 3))
		assert.Equal(t, Table{
			{0, 1, 1, 0},
			{1, 1, 0, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(S, 0))
		assert.Equal(t, Table{
			{1, 1, 0, 0},
			{0, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(Z, 0))
		assert.Equal(t, Table{
			{0, 1, 0, 0},
			{1, 1, 1, 0},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
		}, TableFor(T, 2))
	})
}

func TestTableForWrapsIndex(t *testing.T) {
	assert.Equal(t, TableFor(L, 1), TableFor(L, 5))
	assert.Equal(t, TableFor(L, 3), TableFor(L, -1))
	assert.Equal(t, TableFor(O, 0), TableFor(O, 3))
}

func TestTableForUnknownVariantPanics(t *testing.T) {
	assert.Panics(t, func() { TableFor(Variant(42), 0) })
}

func TestNextClockwise(t *testing.T) {
	assert.Equal(t, 3, NextClockwise(0, 4))
	assert.Equal(t, 2, NextClockwise(3, 4))
	assert.Equal(t, 0, NextClockwise(1, 4))
	assert.Equal(t, 1, NextClockwise(0, 2))
	assert.Equal(t, 0, NextClockwise(0, 1))
}

func TestNextCounterClockwise(t *testing.T) {
	assert.Equal(t, 1, NextCounterClockwise(0, 4))
	assert.Equal(t, 0, NextCounterClockwise(3, 4))
	assert.Equal(t, 0, NextCounterClockwise(1, 2))
	assert.Equal(t, 0, NextCounterClockwise(0, 1))
}

func TestTableExtent(t *testing.T) {
	assert.Equal(t, 4, TableFor(I, 0).Height())
	assert.Equal(t, 1, TableFor(I, 0).Width())
	assert.Equal(t, 1, TableFor(I, 1).Height())
	assert.Equal(t, 4, TableFor(I, 1).Width())
	assert.Equal(t, 2, TableFor(T, 0).Height())
	assert.Equal(t, 3, TableFor(T, 0).Width())
	assert.Equal(t, 0, Table{}.Height())
	assert.Equal(t, 0, Table{}.Width())
}
