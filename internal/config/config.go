package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/samdwyer/wayfinder/internal/sim"
	"github.com/samdwyer/wayfinder/internal/world"
)

var (
	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrInvalidColor indicates a color that is not a hex RGB string.
	ErrInvalidColor = errors.New("config: invalid hex color")
)

// Config is the whole configuration file.
type Config struct {
	Name         string        `yaml:"name"`
	Seed         int64         `yaml:"seed"`          // 0 picks a time-based seed
	TickInterval time.Duration `yaml:"tick_interval"` // Delay between ticks in the viewer
	MaxTicks     int           `yaml:"max_ticks"`     // 0 means unlimited
	Area         Area          `yaml:"area"`
	Renderer     Renderer      `yaml:"renderer"`
}

// Area describes the world and its explorer.
type Area struct {
	Width     int       `yaml:"width"`
	Height    int       `yaml:"height"`
	Biome     []Biome   `yaml:"biome"`
	SpawnTile TileColor `yaml:"spawn_tile"`
	ExitTile  TileColor `yaml:"exit_tile"`
	Explorer  Explorer  `yaml:"explorer"`
}

// Biome is one weighted tile template.
type Biome struct {
	Color    string `yaml:"color"`
	Weight   int    `yaml:"weight"`
	Obstacle bool   `yaml:"obstacle"`
}

// TileColor configures a special tile.
type TileColor struct {
	Color string `yaml:"color"`
}

// Explorer configures how the explorer is drawn.
type Explorer struct {
	Color             string `yaml:"color"`
	ExploredTileColor string `yaml:"explored_tile_color"`
}

// Renderer configures the viewer.
type Renderer struct {
	Background string `yaml:"background"`
}

// Validate checks every value the simulation and viewer depend on.
func (c *Config) Validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval %s must be positive: %w", c.TickInterval, ErrInvalidConfig)
	}
	if c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks %d must not be negative: %w", c.MaxTicks, ErrInvalidConfig)
	}
	if err := c.Area.WorldSettings().Validate(); err != nil {
		return fmt.Errorf("area: %w", err)
	}

	colors := []struct{ field, value string }{
		{"area.spawn_tile.color", c.Area.SpawnTile.Color},
		{"area.exit_tile.color", c.Area.ExitTile.Color},
		{"area.explorer.color", c.Area.Explorer.Color},
		{"area.explorer.explored_tile_color", c.Area.Explorer.ExploredTileColor},
		{"renderer.background", c.Renderer.Background},
	}
	for i, b := range c.Area.Biome {
		colors = append(colors, struct{ field, value string }{fmt.Sprintf("area.biome[%d].color", i), b.Color})
	}
	for _, col := range colors {
		if _, err := ParseColor(col.value); err != nil {
			return fmt.Errorf("%s: %w", col.field, err)
		}
	}
	return nil
}

// WorldSettings converts the area section into generator settings.
func (a Area) WorldSettings() world.Settings {
	biome := make([]world.Template, len(a.Biome))
	for i, b := range a.Biome {
		biome[i] = world.Template{Color: b.Color, Weight: b.Weight, Obstacle: b.Obstacle}
	}
	return world.Settings{
		Width:     a.Width,
		Height:    a.Height,
		Biome:     biome,
		SpawnTile: world.Tile{Kind: world.KindSpawn, Color: a.SpawnTile.Color},
		ExitTile:  world.Tile{Kind: world.KindExit, Color: a.ExitTile.Color},
	}
}

// SimSettings converts the area section into simulation settings.
func (a Area) SimSettings() sim.Settings {
	return sim.Settings{
		World:         a.WorldSettings(),
		ExplorerColor: a.Explorer.Color,
		ExploredColor: a.Explorer.ExploredTileColor,
	}
}
