package world

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/wayfinder/internal/grid"
)

// scriptedSource replays fixed rolls, then keeps returning zero.
type scriptedSource struct {
	rolls []int
	next  int
}

func (s *scriptedSource) Intn(n int) int {
	if s.next >= len(s.rolls) {
		return 0
	}
	v := s.rolls[s.next]
	s.next++
	if v >= n {
		panic("scripted roll out of range")
	}
	return v
}

func testSettings(width, height int) Settings {
	return Settings{
		Width:  width,
		Height: height,
		Biome: []Template{
			{Color: "#00ff00", Weight: 70},
			{Color: "#555555", Weight: 30, Obstacle: true},
		},
		SpawnTile: Tile{Color: "#0000ff"},
		ExitTile:  Tile{Color: "#ff0000"},
	}
}

func TestMapReproducibility(t *testing.T) {
	seed := int64(12345)
	ctx := context.Background()

	m1, err := Generate(ctx, testSettings(40, 25), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	m2, err := Generate(ctx, testSettings(40, 25), rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if m1.Spawn() != m2.Spawn() {
		t.Fatalf("Spawn mismatch: %v != %v", m1.Spawn(), m2.Spawn())
	}

	for r := 0; r < m1.Height(); r++ {
		for c := 0; c < m1.Width(); c++ {
			p := grid.Coord{Row: r, Col: c}
			if m1.TileAt(p) != m2.TileAt(p) {
				t.Errorf("Tile mismatch at %v: %v != %v", p, m1.TileAt(p), m2.TileAt(p))
			}
		}
	}
}

func TestMapDifferentSeeds(t *testing.T) {
	ctx := context.Background()
	m1, err := Generate(ctx, testSettings(40, 25), rand.New(rand.NewSource(12345)))
	require.NoError(t, err)
	m2, err := Generate(ctx, testSettings(40, 25), rand.New(rand.NewSource(54321)))
	require.NoError(t, err)

	identical := true
	for r := 0; r < m1.Height() && identical; r++ {
		for c := 0; c < m1.Width(); c++ {
			p := grid.Coord{Row: r, Col: c}
			if m1.TileAt(p) != m2.TileAt(p) {
				identical = false
				break
			}
		}
	}
	assert.False(t, identical, "maps with different seeds should not be identical")
}

func TestGenerateFullyPopulated(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		w, h := 1+rng.Intn(30), 1+rng.Intn(30)

		m, err := Generate(context.Background(), testSettings(w, h), rng)
		require.NoError(t, err)
		require.Equal(t, w, m.Width())
		require.Equal(t, h, m.Height())

		exits := 0
		m.tiles.Each(func(c grid.Coord, tile Tile, ok bool) {
			require.True(t, ok, "seed %d: cell %v empty", seed, c)
			if tile.Kind == KindExit {
				exits++
			}
		})
		assert.Equal(t, 1, exits, "seed %d", seed)
		assert.True(t, m.InBounds(m.Spawn()))
	}
}

func TestGenerateSpawnAndExitPlacement(t *testing.T) {
	// 2x2 map: four biome rolls, then spawn (row, col), then exit (row, col).
	src := &scriptedSource{rolls: []int{0, 0, 0, 0, 1, 0, 0, 1}}
	m, err := Generate(context.Background(), testSettings(2, 2), src)
	require.NoError(t, err)

	assert.Equal(t, grid.Coord{Row: 1, Col: 0}, m.Spawn())
	assert.Equal(t, KindSpawn, m.TileAt(grid.Coord{Row: 1, Col: 0}).Kind)
	assert.Equal(t, "#0000ff", m.TileAt(grid.Coord{Row: 1, Col: 0}).Color)
	assert.Equal(t, KindExit, m.TileAt(grid.Coord{Row: 0, Col: 1}).Kind)
	assert.Equal(t, KindNormal, m.TileAt(grid.Coord{Row: 0, Col: 0}).Kind)
}

func TestGenerateSpawnExitCollision(t *testing.T) {
	// Spawn and exit both land on (0,1): the exit overwrites the spawn tile.
	src := &scriptedSource{rolls: []int{0, 0, 0, 0, 0, 1, 0, 1}}
	m, err := Generate(context.Background(), testSettings(2, 2), src)
	require.NoError(t, err)

	assert.Equal(t, grid.Coord{Row: 0, Col: 1}, m.Spawn())
	assert.Equal(t, KindExit, m.TileAt(m.Spawn()).Kind)

	spawns := 0
	m.tiles.Each(func(_ grid.Coord, tile Tile, _ bool) {
		if tile.Kind == KindSpawn {
			spawns++
		}
	})
	assert.Zero(t, spawns)
}

func TestGenerateInvalidSettings(t *testing.T) {
	ctx := context.Background()
	src := rand.New(rand.NewSource(1))

	tests := []struct {
		name   string
		mutate func(*Settings)
		err    error
	}{
		{"ZeroWidth", func(s *Settings) { s.Width = 0 }, ErrInvalidSize},
		{"NegativeHeight", func(s *Settings) { s.Height = -3 }, ErrInvalidSize},
		{"EmptyBiome", func(s *Settings) { s.Biome = nil }, ErrEmptyBiome},
		{"ZeroWeight", func(s *Settings) { s.Biome[1].Weight = 0 }, ErrInvalidWeight},
		{"NegativeWeight", func(s *Settings) { s.Biome[0].Weight = -5 }, ErrInvalidWeight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSettings(5, 5)
			tt.mutate(&s)
			_, err := Generate(ctx, s, src)
			assert.True(t, errors.Is(err, tt.err), "got %v, want %v", err, tt.err)
		})
	}
}

func TestNeighborhood(t *testing.T) {
	n := Tile{Kind: KindNormal, Color: "n"}
	o := Tile{Kind: KindObstacle, Color: "o"}
	m, err := FromTiles([][]Tile{
		{n, o, n},
		{o, n, n},
	}, grid.Coord{})
	require.NoError(t, err)

	corner := m.Neighborhood(grid.Coord{Row: 0, Col: 0})
	for dc := -1; dc <= 1; dc++ {
		assert.Nil(t, corner.At(-1, dc), "row above the map")
	}
	assert.Nil(t, corner.At(0, -1))
	assert.Nil(t, corner.At(1, -1))
	require.NotNil(t, corner.At(0, 0))
	assert.Equal(t, n, *corner.At(0, 0))
	assert.Equal(t, o, *corner.At(0, 1))
	assert.Equal(t, o, *corner.At(1, 0))
	assert.Equal(t, n, *corner.At(1, 1))

	middle := m.Neighborhood(grid.Coord{Row: 1, Col: 1})
	assert.Nil(t, middle.At(1, 0))
	assert.Equal(t, o, *middle.At(-1, 0))
	assert.Equal(t, n, *middle.At(0, 1))
}

func TestNeighborhoodReturnsCopies(t *testing.T) {
	n := Tile{Kind: KindNormal, Color: "n"}
	m, err := FromTiles([][]Tile{{n, n}}, grid.Coord{})
	require.NoError(t, err)

	hood := m.Neighborhood(grid.Coord{})
	hood.At(0, 1).Color = "changed"
	assert.Equal(t, "n", m.TileAt(grid.Coord{Row: 0, Col: 1}).Color)
}

func TestTileAtOutOfBoundsPanics(t *testing.T) {
	m, err := FromTiles([][]Tile{{{Kind: KindNormal}}}, grid.Coord{})
	require.NoError(t, err)
	assert.Panics(t, func() { m.TileAt(grid.Coord{Row: 1, Col: 0}) })
}

func TestFromTilesErrors(t *testing.T) {
	n := Tile{Kind: KindNormal}

	_, err := FromTiles(nil, grid.Coord{})
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = FromTiles([][]Tile{{n, n}, {n}}, grid.Coord{})
	assert.ErrorIs(t, err, ErrRagged)

	_, err = FromTiles([][]Tile{{n}}, grid.Coord{Row: 0, Col: 1})
	assert.ErrorIs(t, err, ErrSpawnOutOfBounds)
}
