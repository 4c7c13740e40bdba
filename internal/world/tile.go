// Package world provides tile world generation and neighborhood queries.
package world

// Kind classifies a tile.
type Kind uint8

const (
	// KindNormal is a walkable biome tile.
	KindNormal Kind = iota
	// KindObstacle can never be entered.
	KindObstacle
	// KindSpawn marks where the explorer starts.
	KindSpawn
	// KindExit ends the exploration when entered.
	KindExit
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindObstacle:
		return "obstacle"
	case KindSpawn:
		return "spawn"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Tile is a single immutable map cell. Color is opaque to the simulation and
// only carried through for rendering.
type Tile struct {
	Kind  Kind
	Color string
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t.Kind != KindObstacle
}

// Template describes a weighted biome tile.
type Template struct {
	Color    string
	Weight   int
	Obstacle bool
}

// Tile returns the tile produced by the template.
func (t Template) Tile() Tile {
	if t.Obstacle {
		return Tile{Kind: KindObstacle, Color: t.Color}
	}
	return Tile{Kind: KindNormal, Color: t.Color}
}
