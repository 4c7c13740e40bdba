// Package agent implements the explorer: its private knowledge map and the
// heuristic that decides each move from a 3x3 view of the world.
package agent

import (
	"github.com/samdwyer/wayfinder/internal/world"
)

// Agent is a single explorer.
type Agent struct {
	Color         string // Render color for the explorer itself
	ExploredColor string // Render color for cells it has stood on

	Knowledge *Knowledge
	State     State
}

// New creates an explorer standing on its own copy of the spawn tile.
func New(spawn world.Tile, color, exploredColor string) *Agent {
	return &Agent{
		Color:         color,
		ExploredColor: exploredColor,
		Knowledge:     NewKnowledge(spawn),
		State:         State{Status: StatusExploring},
	}
}

// Status returns the current status.
func (a *Agent) Status() Status {
	return a.State.Status
}

// Step advances the explorer by one tick given the world around it.
func (a *Agent) Step(nb world.Neighborhood) Outcome {
	return Step(a.Knowledge, &a.State, nb)
}
