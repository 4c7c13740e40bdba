package sim

import (
	"context"
	"time"

	"github.com/samdwyer/wayfinder/internal/agent"
	"github.com/samdwyer/wayfinder/internal/grid"
)

// Report describes where a run ended.
type Report struct {
	Ticks           int
	Status          agent.Status
	Position        grid.Coord
	KnowledgeWidth  int
	KnowledgeHeight int
	Explored        int // Cells the explorer has stood on
}

// Report snapshots the area.
func (a *Area) Report() Report {
	k := a.explorer.Knowledge
	return Report{
		Ticks:           a.ticks,
		Status:          a.Status(),
		Position:        a.position,
		KnowledgeWidth:  k.Width(),
		KnowledgeHeight: k.Height(),
		Explored:        k.Explored(),
	}
}

// Runner drives an area at a fixed cadence.
type Runner struct {
	Area *Area

	// Interval between ticks. Zero runs ticks back to back.
	Interval time.Duration
	// MaxTicks stops the run after that many ticks. Zero means no limit.
	MaxTicks int
	// OnTick, if set, receives every summary.
	OnTick func(Summary)
}

// Run ticks until the explorer reaches a terminal status, MaxTicks is hit,
// or ctx is done. Only the last case returns an error.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	var tick <-chan time.Time
	if r.Interval > 0 {
		ticker := time.NewTicker(r.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	for !r.done() {
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.Area.Report(), ctx.Err()
			case <-tick:
			}
		} else if err := ctx.Err(); err != nil {
			return r.Area.Report(), err
		}

		summary := r.Area.Tick(ctx)
		if r.OnTick != nil {
			r.OnTick(summary)
		}
	}
	return r.Area.Report(), nil
}

func (r *Runner) done() bool {
	if r.Area.Status().Terminal() {
		return true
	}
	return r.MaxTicks > 0 && r.Area.Ticks() >= r.MaxTicks
}

// Run ticks a back to back; see Runner.Run.
func Run(ctx context.Context, a *Area, maxTicks int) (Report, error) {
	r := &Runner{Area: a, MaxTicks: maxTicks}
	return r.Run(ctx)
}
