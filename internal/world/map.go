package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/wayfinder/internal/grid"
	"github.com/samdwyer/wayfinder/internal/telemetry"
)

// Settings holds everything needed to generate a map.
type Settings struct {
	Width  int
	Height int
	Biome  []Template

	// SpawnTile and ExitTile are placed after the biome pass. Their Kind is
	// forced to KindSpawn and KindExit.
	SpawnTile Tile
	ExitTile  Tile
}

// Validate checks the settings before any sampling happens.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%dx%d: %w", s.Width, s.Height, ErrInvalidSize)
	}
	_, err := NewPicker(s.Biome)
	return err
}

// Map is a fully populated tile world. It is never modified after generation.
type Map struct {
	tiles *grid.Grid[Tile]
	spawn grid.Coord
}

// Generate builds a map from settings, drawing every random value from src.
//
// Cells are filled in row-major order from the weighted biome. Then spawn and
// exit each get an independent uniform (row, col) draw and overwrite that
// cell. The two draws are not checked against each other: when they coincide
// the exit tile wins, while Spawn still reports the drawn coordinate.
func Generate(ctx context.Context, s Settings, src Source) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	if err := s.Validate(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	picker, err := NewPicker(s.Biome)
	if err != nil {
		return nil, err
	}

	tiles := grid.New[Tile](s.Height, s.Width)
	for r := 0; r < s.Height; r++ {
		for c := 0; c < s.Width; c++ {
			tiles.Set(r, c, picker.Pick(src).Tile())
		}
	}

	spawnTile := s.SpawnTile
	spawnTile.Kind = KindSpawn
	spawn := grid.Coord{Row: src.Intn(s.Height), Col: src.Intn(s.Width)}
	tiles.Set(spawn.Row, spawn.Col, spawnTile)

	exitTile := s.ExitTile
	exitTile.Kind = KindExit
	exit := grid.Coord{Row: src.Intn(s.Height), Col: src.Intn(s.Width)}
	tiles.Set(exit.Row, exit.Col, exitTile)

	span.SetAttributes(
		attribute.Int("world.width", s.Width),
		attribute.Int("world.height", s.Height),
		attribute.Int("world.biome_templates", len(s.Biome)),
		attribute.Int("world.total_weight", picker.Total()),
		attribute.String("world.spawn", spawn.String()),
		attribute.String("world.exit", exit.String()),
		attribute.Bool("world.spawn_exit_collision", spawn == exit),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return &Map{tiles: tiles, spawn: spawn}, nil
}

// FromTiles builds a map from explicit rows of tiles.
func FromTiles(rows [][]Tile, spawn grid.Coord) (*Map, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidSize
	}
	tiles := grid.New[Tile](len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != tiles.Width() {
			return nil, fmt.Errorf("row %d has %d tiles, want %d: %w", r, len(row), tiles.Width(), ErrRagged)
		}
		for c, t := range row {
			tiles.Set(r, c, t)
		}
	}
	if !tiles.InBounds(spawn.Row, spawn.Col) {
		return nil, fmt.Errorf("spawn %v: %w", spawn, ErrSpawnOutOfBounds)
	}
	return &Map{tiles: tiles, spawn: spawn}, nil
}

// Width returns the number of columns.
func (m *Map) Width() int {
	return m.tiles.Width()
}

// Height returns the number of rows.
func (m *Map) Height() int {
	return m.tiles.Height()
}

// Spawn returns the coordinate drawn for the spawn tile.
func (m *Map) Spawn() grid.Coord {
	return m.spawn
}

// InBounds reports whether c lies inside the map.
func (m *Map) InBounds(c grid.Coord) bool {
	return m.tiles.InBounds(c.Row, c.Col)
}

// TileAt returns the tile at c. It panics outside the map.
func (m *Map) TileAt(c grid.Coord) Tile {
	t, _ := m.tiles.Get(c.Row, c.Col)
	return t
}

// Neighborhood returns copies of the 3x3 tiles centered on c. Offsets that
// fall outside the map are nil.
func (m *Map) Neighborhood(c grid.Coord) Neighborhood {
	var n Neighborhood
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			p := c.Add(grid.Coord{Row: dr, Col: dc})
			if !m.InBounds(p) {
				continue
			}
			t := m.TileAt(p)
			n[dr+1][dc+1] = &t
		}
	}
	return n
}

// Neighborhood is a 3x3 window of optional tiles; [1][1] is the center.
type Neighborhood [3][3]*Tile

// At returns the tile at the offset (dr, dc), each in {-1, 0, 1}.
func (n *Neighborhood) At(dr, dc int) *Tile {
	return n[dr+1][dc+1]
}
