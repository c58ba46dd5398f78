package piece

// Table is one rotation state of a variant: a 4x4 occupancy grid in the
// piece's local frame, origin at the top-left. 1 is occupied, 0 is empty.
type Table [4][4]uint8

// TableSize is the edge length of every Table.
const TableSize = 4

var tablesO = []Table{
	{
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

var tablesI = []Table{
	{
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
	},
	{
		{1, 1, 1, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

var tablesL = []Table{
	{
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 0, 1, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 1, 1, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

var tablesJ = []Table{
	{
		{0, 1, 0, 0},
		{0, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 1, 1, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 1, 0, 0},
		{1, 0, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 0, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

var tablesS = []Table{
	{
		{0, 1, 1, 0},
		{1, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
}

var tablesZ = []Table{
	{
		{1, 1, 0, 0},
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 1, 0, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
	},
}

var tablesT = []Table{
	{
		{1, 1, 1, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{1, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 1, 0, 0},
		{1, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	},
	{
		{0, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 0, 0},
	},
}

func tables(v Variant) []Table {
	switch v {
	case O:
		return tablesO
	case I:
		return tablesI
	case L:
		return tablesL
	case J:
		return tablesJ
	case S:
		return tablesS
	case Z:
		return tablesZ
	case T:
		return tablesT
	}
	panic("piece: unknown variant " + v.String())
}

// Rotations returns the number of distinct rotation states of v.
func Rotations(v Variant) int {
	return len(tables(v))
}

// TableFor returns the occupancy table of v at the given rotation index.
// The index is reduced modulo the variant's rotation count.
func TableFor(v Variant, rotation int) Table {
	ts := tables(v)
	rotation %= len(ts)
	if rotation < 0 {
		rotation += len(ts)
	}
	return ts[rotation]
}

// NextClockwise returns the rotation index one clockwise step from rotation.
// Clockwise walks the table list backwards, wrapping from 0 to length-1.
func NextClockwise(rotation, length int) int {
	if rotation == 0 {
		return length - 1
	}
	return rotation - 1
}

// NextCounterClockwise returns the rotation index one counterclockwise step
// from rotation.
func NextCounterClockwise(rotation, length int) int {
	return (rotation + 1) % length
}

// Height returns the number of rows between the table's first and last
// occupied row, inclusive.
func (t Table) Height() int {
	first, last := -1, -1
	for i := range TableSize {
		for j := range TableSize {
			if t[i][j] == 0 {
				continue
			}
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 {
		return 0
	}
	return last - first + 1
}

// Width returns the number of columns between the table's first and last
// occupied column, inclusive.
func (t Table) Width() int {
	first, last := -1, -1
	for j := range TableSize {
		for i := range TableSize {
			if t[i][j] == 0 {
				continue
			}
			if first < 0 {
				first = j
			}
			last = j
			break
		}
	}
	if first < 0 {
		return 0
	}
	return last - first + 1
}
