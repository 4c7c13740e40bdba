package grid

import "fmt"

// Coord is a signed (row, col) pair. It is used both for cell positions and
// for movement deltas.
type Coord struct {
	Row, Col int
}

// Add returns c translated by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Sub returns the offset from d to c.
func (c Coord) Sub(d Coord) Coord {
	return Coord{Row: c.Row - d.Row, Col: c.Col - d.Col}
}

// Neg returns the opposite vector.
func (c Coord) Neg() Coord {
	return Coord{Row: -c.Row, Col: -c.Col}
}

// IsZero reports whether c is the zero vector.
func (c Coord) IsZero() bool {
	return c.Row == 0 && c.Col == 0
}

// Manhattan returns |Row| + |Col|.
func (c Coord) Manhattan() int {
	return abs(c.Row) + abs(c.Col)
}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
