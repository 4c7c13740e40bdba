package agent

import "github.com/samdwyer/wayfinder/internal/grid"

// Status is the explorer's progress. Exploring is the only non-terminal value.
type Status int

const (
	// StatusExploring is the initial status.
	StatusExploring Status = iota
	// StatusFoundExit means the explorer stepped onto the exit.
	StatusFoundExit
	// StatusStuck means no legal move existed on the first decision.
	StatusStuck
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case StatusExploring:
		return "exploring"
	case StatusFoundExit:
		return "found_exit"
	case StatusStuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further ticks can change the status.
func (s Status) Terminal() bool {
	return s != StatusExploring
}

// State is the explorer's decision state between ticks.
type State struct {
	Status Status

	lastMove grid.Coord
	moved    bool
}

// LastMovement returns the most recent movement delta. ok is false until the
// first move has been made.
func (s *State) LastMovement() (delta grid.Coord, ok bool) {
	return s.lastMove, s.moved
}

func (s *State) recordMove(delta grid.Coord) {
	s.lastMove = delta
	s.moved = true
}
