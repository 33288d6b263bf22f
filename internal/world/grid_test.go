package world

import (
	"context"
	"errors"
	"testing"

	"github.com/samdwyer/treasurehunt/internal/tuning"
)

func buildTestGrid(t *testing.T, v Variant, seed int64) *Grid {
	t.Helper()
	return Build(context.Background(), NewGenerator(v, tuning.Default(), seed))
}

func TestGridReproducibility(t *testing.T) {
	// Generate two grids with the same seed
	g1 := buildTestGrid(t, Overworld, 12345)
	g2 := buildTestGrid(t, Overworld, 12345)

	for cx := 0; cx < GridWidth; cx++ {
		for cy := 0; cy < GridHeight; cy++ {
			c1, c2 := g1.Chunks[cx][cy], g2.Chunks[cx][cy]
			if c1.Tiles != c2.Tiles {
				t.Fatalf("Chunk %d,%d tiles differ between identical seeds", cx, cy)
			}
			if c1.Seeds != c2.Seeds {
				t.Fatalf("Chunk %d,%d island seeds differ between identical seeds", cx, cy)
			}
		}
	}
}

func TestGridDifferentSeeds(t *testing.T) {
	g1 := buildTestGrid(t, Overworld, 12345)
	g2 := buildTestGrid(t, Overworld, 54321)

	identical := true
	for cx := 0; cx < GridWidth && identical; cx++ {
		for cy := 0; cy < GridHeight; cy++ {
			if g1.Chunks[cx][cy].Tiles != g2.Chunks[cx][cy].Tiles {
				identical = false
				break
			}
		}
	}
	if identical {
		t.Error("Grids with different seeds should not be identical")
	}
}

func TestGridVariantsIndependent(t *testing.T) {
	over := buildTestGrid(t, Overworld, 7)
	under := buildTestGrid(t, Underworld, 7)

	if over.Chunks[0][0].Seeds == under.Chunks[0][0].Seeds &&
		over.Chunks[1][0].Seeds == under.Chunks[1][0].Seeds {
		t.Error("Overworld and underworld should draw from separate streams")
	}
}

func TestGridCoversEveryChunk(t *testing.T) {
	g := buildTestGrid(t, Overworld, 1)
	for cx := 0; cx < GridWidth; cx++ {
		for cy := 0; cy < GridHeight; cy++ {
			ch, err := g.Chunk(ChunkCoord{X: cx, Y: cy})
			if err != nil {
				t.Fatalf("Chunk(%d,%d) error = %v", cx, cy, err)
			}
			if ch.Coord != (ChunkCoord{X: cx, Y: cy}) {
				t.Errorf("Chunk(%d,%d).Coord = %v", cx, cy, ch.Coord)
			}
		}
	}

	stats := g.Stats()
	if want := GridWidth * GridHeight * ChunkWidth * ChunkHeight; stats.Tiles != want {
		t.Errorf("Stats().Tiles = %d, want %d", stats.Tiles, want)
	}
}

func TestGridLookupOutOfRange(t *testing.T) {
	g := buildTestGrid(t, Overworld, 1)

	tests := []struct {
		name string
		pos  Position
	}{
		{"chunk x negative", Position{Chunk: ChunkCoord{X: -1, Y: 0}}},
		{"chunk x too large", Position{Chunk: ChunkCoord{X: GridWidth, Y: 0}}},
		{"chunk y too large", Position{Chunk: ChunkCoord{X: 0, Y: GridHeight}}},
		{"local x too large", Position{Local: Coord{X: ChunkWidth, Y: 0}}},
		{"local y negative", Position{Local: Coord{X: 0, Y: -1}}},
	}
	for _, tt := range tests {
		if _, err := g.Tile(tt.pos); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("%s: Tile(%v) error = %v, want ErrOutOfRange", tt.name, tt.pos, err)
		}
	}
}

func TestGridTerrainAndFeatureConsistency(t *testing.T) {
	allowed := map[Variant]map[Terrain]Feature{
		Overworld: {
			TerrainLand:  FeatureTree | FeatureHole,
			TerrainShore: FeatureBazar,
			TerrainWater: FeatureCoin | FeatureFish | FeatureSeaweed | FeatureCoral | FeatureHermanos,
		},
		Underworld: {
			TerrainLand:  FeatureNone,
			TerrainWater: FeatureGoal,
		},
	}

	for _, seed := range []int64{1, 2, 3, 42, 9001} {
		for _, v := range []Variant{Overworld, Underworld} {
			g := buildTestGrid(t, v, seed)
			for cx := 0; cx < GridWidth; cx++ {
				for cy := 0; cy < GridHeight; cy++ {
					for x := 0; x < ChunkWidth; x++ {
						for y := 0; y < ChunkHeight; y++ {
							tile := g.Chunks[cx][cy].Tiles[x][y]
							mask, ok := allowed[v][tile.Terrain]
							if !ok {
								t.Fatalf("%s seed %d: unexpected terrain %v", v, seed, tile.Terrain)
							}
							if tile.Features&^mask != 0 {
								t.Fatalf("%s seed %d: tile %v on %v has features %v",
									v, seed, tile.Coord, tile.Terrain, tile.Features)
							}
						}
					}
				}
			}
		}
	}
}
