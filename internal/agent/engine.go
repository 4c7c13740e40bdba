package agent

import (
	"github.com/samdwyer/wayfinder/internal/grid"
	"github.com/samdwyer/wayfinder/internal/world"
)

// center is the explorer's own cell in a decision window.
var center = grid.Coord{Row: 1, Col: 1}

// Outcome is the result of one exploration step.
type Outcome struct {
	// Delta is the movement applied this step; zero when nothing moved.
	Delta  grid.Coord
	Status Status
	// Grew reports whether the knowledge map gained a row or column.
	Grew bool
}

// Step runs one exploration tick: it merges nb into k, picks the next move
// and applies it to k and s. nb must be the world neighborhood around the
// explorer's absolute position; the caller applies Outcome.Delta to that
// position.
//
// Once s is terminal every call is a no-op.
func Step(k *Knowledge, s *State, nb world.Neighborhood) Outcome {
	if s.Status.Terminal() {
		return Outcome{Status: s.Status}
	}

	out := Outcome{Grew: k.Merge(&nb)}

	target, ok := decide(k.window(), s)
	if !ok {
		s.Status = StatusStuck
		out.Status = s.Status
		return out
	}

	out.Delta = target.Sub(center)
	k.move(out.Delta)
	s.recordMove(out.Delta)
	out.Status = s.Status
	return out
}

// decide picks the window cell to move to. It sets StatusFoundExit when the
// exit is chosen and returns false when no move is possible.
func decide(w *grid.Grid[Cell], s *State) (grid.Coord, bool) {
	// Only the four orthogonal neighbors are ever candidates.
	w.Each(func(c grid.Coord, cell Cell, ok bool) {
		if (c.Row+c.Col)%2 == 0 || (ok && cell.Tile.Kind == world.KindObstacle) {
			w.Clear(c.Row, c.Col)
		}
	})

	if c, ok := w.Find(isExit); ok {
		s.Status = StatusFoundExit
		return c, true
	}

	last, moved := s.LastMovement()
	if !moved {
		return w.Find(grid.Any[Cell])
	}

	if c, ok := w.Find(isFrontier); ok {
		return c, true
	}

	// Nothing new nearby: keep going anywhere except back, and only retreat
	// when the way back is the sole option.
	back := center.Add(last.Neg())
	_, hasBack := w.Get(back.Row, back.Col)
	w.Clear(back.Row, back.Col)
	if c, ok := w.Find(grid.Any[Cell]); ok {
		return c, true
	}
	return back, hasBack
}

func isExit(_ grid.Coord, c Cell) bool {
	return c.Tile.Kind == world.KindExit
}

func isFrontier(_ grid.Coord, c Cell) bool {
	return !c.Explored
}
