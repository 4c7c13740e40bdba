package world

import "errors"

var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("world: width and height must be positive")
	// ErrEmptyBiome indicates a biome without templates.
	ErrEmptyBiome = errors.New("world: biome must contain at least one template")
	// ErrInvalidWeight indicates a template with a non-positive weight.
	ErrInvalidWeight = errors.New("world: biome weights must be positive")
	// ErrRagged indicates fixed tile rows of differing lengths.
	ErrRagged = errors.New("world: all rows must have the same length")
	// ErrSpawnOutOfBounds indicates a spawn coordinate outside the map.
	ErrSpawnOutOfBounds = errors.New("world: spawn outside map bounds")
)
