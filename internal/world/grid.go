package world

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/treasurehunt/internal/telemetry"
)

const (
	// Grid dimensions in chunks.
	GridWidth  = 16
	GridHeight = 12
)

// ErrOutOfRange is returned for chunk or tile lookups outside the grid.
var ErrOutOfRange = errors.New("world: coordinate out of range")

// Grid is one complete world variant. It owns its chunks; after Build
// only tile feature flags change.
type Grid struct {
	Variant Variant
	Seed    int64
	Chunks  [GridWidth][GridHeight]*Chunk
}

// Build generates every chunk of the variant up front.
func Build(ctx context.Context, gen *Generator) *Grid {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.build")
	defer span.End()

	startTime := time.Now()

	g := &Grid{
		Variant: gen.Variant(),
		Seed:    gen.Seed,
	}
	for cx := 0; cx < GridWidth; cx++ {
		for cy := 0; cy < GridHeight; cy++ {
			g.Chunks[cx][cy] = gen.GenerateChunk(ChunkCoord{X: cx, Y: cy})
		}
	}

	stats := g.Stats()
	span.SetAttributes(
		attribute.String("world.variant", g.Variant.String()),
		attribute.Int64("world.seed", g.Seed),
		attribute.Int("world.tiles", stats.Tiles),
		attribute.Int("world.land", stats.Terrain[TerrainLand]),
		attribute.Int("world.shore", stats.Terrain[TerrainShore]),
		attribute.Int("world.water", stats.Terrain[TerrainWater]),
		attribute.Int("world.bazars", stats.Features[FeatureBazar]),
		attribute.Int("world.holes", stats.Features[FeatureHole]),
		attribute.Int("world.goals", stats.Features[FeatureGoal]),
		attribute.Int64("world.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return g
}

// Chunk returns the chunk at c.
func (g *Grid) Chunk(c ChunkCoord) (*Chunk, error) {
	if c.X < 0 || c.X >= GridWidth || c.Y < 0 || c.Y >= GridHeight {
		return nil, fmt.Errorf("chunk %d,%d: %w", c.X, c.Y, ErrOutOfRange)
	}
	ch := g.Chunks[c.X][c.Y]
	if ch == nil {
		return nil, fmt.Errorf("chunk %d,%d not generated: %w", c.X, c.Y, ErrOutOfRange)
	}
	return ch, nil
}

// Tile returns the tile at p.
func (g *Grid) Tile(p Position) (*Tile, error) {
	ch, err := g.Chunk(p.Chunk)
	if err != nil {
		return nil, err
	}
	return ch.Tile(p.Local)
}

// Stats counts terrain kinds and features over a grid.
type Stats struct {
	Tiles    int
	Terrain  map[Terrain]int
	Features map[Feature]int
}

// Stats walks every tile and tallies terrain and feature counts.
func (g *Grid) Stats() Stats {
	s := Stats{
		Terrain:  make(map[Terrain]int),
		Features: make(map[Feature]int),
	}
	for cx := 0; cx < GridWidth; cx++ {
		for cy := 0; cy < GridHeight; cy++ {
			ch := g.Chunks[cx][cy]
			if ch == nil {
				continue
			}
			for x := 0; x < ChunkWidth; x++ {
				for y := 0; y < ChunkHeight; y++ {
					t := &ch.Tiles[x][y]
					s.Tiles++
					s.Terrain[t.Terrain]++
					for _, f := range AllFeatures {
						if t.Has(f) {
							s.Features[f]++
						}
					}
				}
			}
		}
	}
	return s
}
