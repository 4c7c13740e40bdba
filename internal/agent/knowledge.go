package agent

import (
	"github.com/samdwyer/wayfinder/internal/grid"
	"github.com/samdwyer/wayfinder/internal/world"
)

// Cell is a tile the explorer has seen, plus whether it has stood there.
type Cell struct {
	Tile     world.Tile
	Explored bool
}

// Knowledge is the explorer's private map. Its origin is local: it starts as
// a single cell at (0,0) and grows as the field of view passes its edges.
//
// A known cell is never overwritten; only its Explored flag changes. The cell
// at Position is always known and explored.
type Knowledge struct {
	cells    *grid.Grid[Cell]
	position grid.Coord
}

// NewKnowledge seeds the map with the explorer's own copy of the spawn tile.
func NewKnowledge(spawn world.Tile) *Knowledge {
	cells := grid.New[Cell](1, 1)
	cells.Set(0, 0, Cell{Tile: spawn, Explored: true})
	return &Knowledge{cells: cells}
}

// Width returns the number of known columns.
func (k *Knowledge) Width() int {
	return k.cells.Width()
}

// Height returns the number of known rows.
func (k *Knowledge) Height() int {
	return k.cells.Height()
}

// Position returns the explorer's local position.
func (k *Knowledge) Position() grid.Coord {
	return k.position
}

// Cell returns the knowledge at local (row, col). ok is false for unknown
// cells. It panics outside the map.
func (k *Knowledge) Cell(row, col int) (Cell, bool) {
	return k.cells.Get(row, col)
}

// Explored counts the cells the explorer has stood on.
func (k *Knowledge) Explored() int {
	n := 0
	k.cells.Each(func(_ grid.Coord, c Cell, ok bool) {
		if ok && c.Explored {
			n++
		}
	})
	return n
}

// Merge records every tile of nb that is not known yet, growing the map when
// a tile lies past its edge. Growing at the top or left shifts Position with
// the origin. Merge reports whether the map grew.
func (k *Knowledge) Merge(nb *world.Neighborhood) (grew bool) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			t := nb.At(dr, dc)
			if t == nil {
				continue
			}

			p := k.position.Add(grid.Coord{Row: dr, Col: dc})
			switch {
			case p.Row < 0:
				k.cells.Grow(grid.Top)
				k.position.Row++
				p.Row++
				grew = true
			case p.Row == k.cells.Height():
				k.cells.Grow(grid.Bottom)
				grew = true
			}
			switch {
			case p.Col < 0:
				k.cells.Grow(grid.Left)
				k.position.Col++
				p.Col++
				grew = true
			case p.Col == k.cells.Width():
				k.cells.Grow(grid.Right)
				grew = true
			}

			if _, known := k.cells.Get(p.Row, p.Col); !known {
				k.cells.Set(p.Row, p.Col, Cell{Tile: *t})
			}
		}
	}
	return grew
}

// window copies the known 3x3 cells around Position into a fresh grid whose
// (1,1) is the explorer.
func (k *Knowledge) window() *grid.Grid[Cell] {
	w := grid.New[Cell](3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			p := k.position.Add(grid.Coord{Row: r - 1, Col: c - 1})
			if !k.cells.InBounds(p.Row, p.Col) {
				continue
			}
			if cell, ok := k.cells.Get(p.Row, p.Col); ok {
				w.Set(r, c, cell)
			}
		}
	}
	return w
}

// move shifts Position by delta and marks the destination explored.
func (k *Knowledge) move(delta grid.Coord) {
	k.position = k.position.Add(delta)
	cell, ok := k.cells.Get(k.position.Row, k.position.Col)
	if !ok {
		panic("agent: moved onto an unknown cell " + k.position.String())
	}
	cell.Explored = true
	k.cells.Set(k.position.Row, k.position.Col, cell)
}
