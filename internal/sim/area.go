// Package sim runs an explorer over a generated world, one tick at a time.
package sim

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfinder/internal/agent"
	"github.com/samdwyer/wayfinder/internal/grid"
	"github.com/samdwyer/wayfinder/internal/telemetry"
	"github.com/samdwyer/wayfinder/internal/world"
)

// Summary is what a renderer needs after a tick.
type Summary struct {
	Tick   int
	Status agent.Status
	From   grid.Coord // Absolute position before the tick
	To     grid.Coord // Absolute position after the tick
	// Grew reports whether the explorer's knowledge map changed size, which
	// means it has to be redrawn in full.
	Grew bool
}

// Area owns one world and the single explorer moving through it.
type Area struct {
	id       string
	world    *world.Map
	explorer *agent.Agent
	position grid.Coord
	ticks    int
	log      logrus.FieldLogger
}

// Option configures an Area.
type Option func(*Area)

// WithLogger sets the logger. By default an Area logs nothing.
func WithLogger(log logrus.FieldLogger) Option {
	return func(a *Area) {
		a.log = log
	}
}

// New generates the world from settings and places the explorer on its spawn.
func New(ctx context.Context, s Settings, src world.Source, opts ...Option) (*Area, error) {
	tracer := telemetry.Tracer("sim")
	ctx, span := tracer.Start(ctx, "area.init")
	defer span.End()

	m, err := world.Generate(ctx, s.World, src)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("generate world: %w", err)
	}

	spawnTile := s.World.SpawnTile
	spawnTile.Kind = world.KindSpawn

	a := FromMap(m, agent.New(spawnTile, s.ExplorerColor, s.ExploredColor), opts...)

	span.SetAttributes(
		attribute.String("run.id", a.id),
		attribute.String("area.spawn", m.Spawn().String()),
	)
	a.log.WithFields(logrus.Fields{
		"width":  m.Width(),
		"height": m.Height(),
		"spawn":  m.Spawn().String(),
	}).Info("World generated")

	return a, nil
}

// FromMap builds an area around an existing map and explorer. The explorer
// starts at the map's spawn coordinate.
func FromMap(m *world.Map, explorer *agent.Agent, opts ...Option) *Area {
	a := &Area{
		id:       uuid.NewString(),
		world:    m,
		explorer: explorer,
		position: m.Spawn(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		a.log = l
	}
	a.log = a.log.WithField("run_id", a.id)
	return a
}

// ID returns the run identifier attached to logs and spans.
func (a *Area) ID() string {
	return a.id
}

// World returns the world map.
func (a *Area) World() *world.Map {
	return a.world
}

// Explorer returns the explorer.
func (a *Area) Explorer() *agent.Agent {
	return a.explorer
}

// Position returns the explorer's absolute position.
func (a *Area) Position() grid.Coord {
	return a.position
}

// Ticks returns how many ticks have run.
func (a *Area) Ticks() int {
	return a.ticks
}

// Status returns the explorer's status.
func (a *Area) Status() agent.Status {
	return a.explorer.Status()
}

// Tick advances the simulation by one step.
func (a *Area) Tick(ctx context.Context) Summary {
	tracer := telemetry.Tracer("sim")
	_, span := tracer.Start(ctx, "area.tick")
	defer span.End()

	a.ticks++
	before := a.explorer.Status()
	from := a.position

	out := a.explorer.Step(a.world.Neighborhood(a.position))
	a.position = a.position.Add(out.Delta)

	summary := Summary{
		Tick:   a.ticks,
		Status: out.Status,
		From:   from,
		To:     a.position,
		Grew:   out.Grew,
	}

	knowledge := a.explorer.Knowledge
	span.SetAttributes(
		attribute.String("run.id", a.id),
		attribute.Int("tick", summary.Tick),
		attribute.String("explorer.status", summary.Status.String()),
		attribute.String("explorer.from", from.String()),
		attribute.String("explorer.to", summary.To.String()),
		attribute.Bool("knowledge.grew", summary.Grew),
		attribute.Int("knowledge.width", knowledge.Width()),
		attribute.Int("knowledge.height", knowledge.Height()),
	)

	a.log.WithFields(logrus.Fields{
		"tick":   summary.Tick,
		"status": summary.Status.String(),
		"from":   from.String(),
		"to":     summary.To.String(),
		"grew":   summary.Grew,
	}).Debug("Tick")

	if before != out.Status {
		a.log.WithFields(logrus.Fields{
			"tick":     summary.Tick,
			"status":   out.Status.String(),
			"position": a.position.String(),
		}).Info("Exploration finished")
	}

	return summary
}
