package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickerIntervals(t *testing.T) {
	p, err := NewPicker([]Template{
		{Color: "a", Weight: 2},
		{Color: "b", Weight: 3},
		{Color: "c", Weight: 1},
	})
	require.NoError(t, err)
	require.Equal(t, 6, p.Total())

	// Intervals are [0,2) [2,5) [5,6): a boundary roll belongs to the
	// interval it starts, never to the one it ends.
	want := []string{"a", "a", "b", "b", "b", "c"}
	for roll, color := range want {
		assert.Equal(t, color, p.Select(roll).Color, "roll %d", roll)
	}
}

func TestPickerSelectOutOfRangePanics(t *testing.T) {
	p, err := NewPicker([]Template{{Color: "a", Weight: 1}})
	require.NoError(t, err)
	assert.Panics(t, func() { p.Select(1) })
	assert.Panics(t, func() { p.Select(-1) })
}

func TestPickerDistribution(t *testing.T) {
	p, err := NewPicker([]Template{
		{Color: "a", Weight: 1},
		{Color: "b", Weight: 1},
	})
	require.NoError(t, err)

	// With equal weights every roll maps to exactly one template, so the
	// counts over the whole range are identical.
	counts := map[string]int{}
	for roll := 0; roll < p.Total(); roll++ {
		counts[p.Select(roll).Color]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, counts)

	rng := rand.New(rand.NewSource(7))
	counts = map[string]int{}
	for i := 0; i < 10000; i++ {
		counts[p.Pick(rng).Color]++
	}
	assert.InDelta(t, 5000, counts["a"], 300)
}

func TestTemplateTile(t *testing.T) {
	assert.Equal(t, Tile{Kind: KindObstacle, Color: "x"}, Template{Color: "x", Weight: 1, Obstacle: true}.Tile())
	assert.Equal(t, Tile{Kind: KindNormal, Color: "y"}, Template{Color: "y", Weight: 1}.Tile())
	assert.False(t, Tile{Kind: KindObstacle}.IsPassable())
	assert.True(t, Tile{Kind: KindExit}.IsPassable())
	assert.Equal(t, "spawn", KindSpawn.String())
}
