package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/wayfinder/internal/sim"
)

// Viewer runs a simulation on screen until the user quits.
type Viewer struct {
	screen   *Screen
	renderer *Renderer
}

// NewViewer creates a viewer for a screen and renderer.
func NewViewer(screen *Screen, renderer *Renderer) *Viewer {
	return &Viewer{screen: screen, renderer: renderer}
}

// Run drives runner and draws every tick. When the run ends the last frame
// stays up until the user presses q, Esc or Ctrl-C, or ctx is done; quitting
// early stops the run.
func (v *Viewer) Run(ctx context.Context, runner *sim.Runner) (sim.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	quit := make(chan struct{})
	go func() {
		defer close(quit)
		for ev := range v.screen.Events(ctx.Done()) {
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					return
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
		}
	}()

	v.renderer.Start()
	runner.OnTick = v.renderer.Update

	report, err := runner.Run(ctx)
	if err != nil {
		if ctx.Err() != nil {
			// Quit or cancelled: not a failure.
			return report, nil
		}
		return report, err
	}

	select {
	case <-quit:
	case <-ctx.Done():
	}
	return report, nil
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
