package sim

import (
	"math/rand"
	"time"

	"github.com/samdwyer/wayfinder/internal/world"
)

// Settings holds everything needed to build an area.
type Settings struct {
	World world.Settings

	ExplorerColor string // Render color for the explorer
	ExploredColor string // Render color for explored knowledge cells
}

// NewRand returns a generator for seed. A seed of 0 means a time-based seed;
// the seed actually used is returned so a run can be reproduced.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}
