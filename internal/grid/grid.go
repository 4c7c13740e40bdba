// Package grid provides a growable two-dimensional container of optional cells.
package grid

import "fmt"

// Edge names a side of a grid where a row or column can be inserted.
type Edge int

const (
	Top Edge = iota
	Bottom
	Left
	Right
)

// String returns a human-readable edge name.
func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// slot is a single cell. ok is false while the cell is empty.
type slot[T any] struct {
	value T
	ok    bool
}

// Grid is a row-major matrix of optional values.
//
// Storage is one flat buffer; width is its stride and height is derived from
// the buffer length, so the two can never disagree with the stored rows.
// Indexing outside the grid panics: callers bounds-check or grow first.
type Grid[T any] struct {
	cells []slot[T]
	width int
}

// New creates a grid of the given size with every cell empty.
func New[T any](height, width int) *Grid[T] {
	if height <= 0 || width <= 0 {
		panic(fmt.Sprintf("grid: invalid size %dx%d", height, width))
	}
	return &Grid[T]{
		cells: make([]slot[T], height*width),
		width: width,
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid[T]) Height() int {
	return len(g.cells) / g.width
}

// InBounds reports whether (row, col) addresses a cell of the grid.
func (g *Grid[T]) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height() && col >= 0 && col < g.width
}

func (g *Grid[T]) index(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %dx%d", row, col, g.Height(), g.width))
	}
	return row*g.width + col
}

// Get returns the value at (row, col) and whether the cell holds one.
func (g *Grid[T]) Get(row, col int) (T, bool) {
	s := g.cells[g.index(row, col)]
	return s.value, s.ok
}

// Set stores v at (row, col).
func (g *Grid[T]) Set(row, col int, v T) {
	g.cells[g.index(row, col)] = slot[T]{value: v, ok: true}
}

// Clear empties the cell at (row, col).
func (g *Grid[T]) Clear(row, col int) {
	g.cells[g.index(row, col)] = slot[T]{}
}

// Grow inserts one empty row or column at the given edge and returns the new
// width and height. Growing at Top or Left shifts every existing cell by one
// along that axis; the grid does not track coordinates held by callers.
func (g *Grid[T]) Grow(edge Edge) (width, height int) {
	h := g.Height()
	switch edge {
	case Top:
		g.cells = append(make([]slot[T], g.width, len(g.cells)+g.width), g.cells...)
	case Bottom:
		g.cells = append(g.cells, make([]slot[T], g.width)...)
	case Left, Right:
		grown := make([]slot[T], 0, h*(g.width+1))
		for r := 0; r < h; r++ {
			row := g.cells[r*g.width : (r+1)*g.width]
			if edge == Left {
				grown = append(grown, slot[T]{})
				grown = append(grown, row...)
			} else {
				grown = append(grown, row...)
				grown = append(grown, slot[T]{})
			}
		}
		g.cells = grown
		g.width++
	default:
		panic(fmt.Sprintf("grid: unknown edge %d", edge))
	}
	return g.width, g.Height()
}

// Find scans filled cells in row-major order (rows top to bottom, columns
// left to right) and returns the coordinate of the first one matching pred.
func (g *Grid[T]) Find(pred func(c Coord, v T) bool) (Coord, bool) {
	for i, s := range g.cells {
		if !s.ok {
			continue
		}
		c := Coord{Row: i / g.width, Col: i % g.width}
		if pred(c, s.value) {
			return c, true
		}
	}
	return Coord{}, false
}

// Each calls fn for every cell in row-major order, filled or not.
func (g *Grid[T]) Each(fn func(c Coord, v T, ok bool)) {
	for i, s := range g.cells {
		fn(Coord{Row: i / g.width, Col: i % g.width}, s.value, s.ok)
	}
}

// Any matches every filled cell. It is the predicate for "first candidate".
func Any[T any](Coord, T) bool { return true }
