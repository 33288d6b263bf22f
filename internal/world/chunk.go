package world

import (
	"fmt"
	"math/rand"

	"github.com/samdwyer/treasurehunt/internal/tuning"
)

const (
	// Chunk dimensions in tiles.
	ChunkWidth  = 16
	ChunkHeight = 12

	// islandDrawMax bounds the island-seed draw to [1,1000).
	islandDrawMax = 1000
)

// ChunkCoord addresses a chunk within its grid.
type ChunkCoord struct {
	X, Y int
}

// Chunk is a fixed-size block of tiles, addressed [x][y].
type Chunk struct {
	Coord ChunkCoord
	Tiles [ChunkWidth][ChunkHeight]Tile

	// Seeds is the island-seed bit per cell. It is only read while the
	// chunk is generated.
	Seeds [ChunkWidth][ChunkHeight]uint8
}

// Tile returns the tile at a local coordinate.
func (c *Chunk) Tile(local Coord) (*Tile, error) {
	if local.X < 0 || local.X >= ChunkWidth || local.Y < 0 || local.Y >= ChunkHeight {
		return nil, fmt.Errorf("tile %d,%d in chunk %d,%d: %w",
			local.X, local.Y, c.Coord.X, c.Coord.Y, ErrOutOfRange)
	}
	return &c.Tiles[local.X][local.Y], nil
}

// Generator builds chunks for one world variant.
type Generator struct {
	Classifier Classifier
	Seed       int64
}

// NewGenerator creates a generator for the variant. Each chunk draws from
// its own random stream derived from seed and the chunk coordinate.
func NewGenerator(variant Variant, thresholds tuning.Thresholds, seed int64) *Generator {
	return &Generator{
		Classifier: Classifier{Variant: variant, Thresholds: thresholds},
		Seed:       seed,
	}
}

// Variant returns the world variant this generator produces.
func (g *Generator) Variant() Variant {
	return g.Classifier.Variant
}

// GenerateChunk builds the chunk at coord. The same seed and coordinate
// always produce the same chunk.
func (g *Generator) GenerateChunk(coord ChunkCoord) *Chunk {
	rng := rand.New(rand.NewSource(SeedFor(g.Seed, g.Variant(), coord)))
	ch := &Chunk{Coord: coord}

	cutoff := g.Classifier.Thresholds.IslandSeed
	for x := 0; x < ChunkWidth; x++ {
		for y := 0; y < ChunkHeight; y++ {
			if rng.Intn(islandDrawMax-1)+1 < cutoff {
				ch.Seeds[x][y] = 1
			}
		}
	}

	for x := 0; x < ChunkWidth; x++ {
		for y := 0; y < ChunkHeight; y++ {
			local := Coord{X: x, Y: y}
			ch.Tiles[x][y] = g.Classifier.Classify(rng, local, int(ch.Seeds[x][y]), neighbourSeeds(&ch.Seeds, x, y))
		}
	}
	return ch
}

// neighbourOffsets is the order neighbours are gathered in.
var neighbourOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// neighbourSeeds gathers the eight surrounding seed bits inside the same
// chunk. Cells outside the chunk count as 0; seeds never reach across a
// chunk boundary.
func neighbourSeeds(seeds *[ChunkWidth][ChunkHeight]uint8, x, y int) [8]int {
	var out [8]int
	for i, off := range neighbourOffsets {
		nx, ny := x+off[0], y+off[1]
		if nx < 0 || nx >= ChunkWidth || ny < 0 || ny >= ChunkHeight {
			continue
		}
		out[i] = int(seeds[nx][ny])
	}
	return out
}
