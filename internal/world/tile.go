// Package world provides seed-driven world generation and chunk navigation.
package world

import "strings"

// Variant selects which world a grid, generator or position belongs to.
type Variant uint8

const (
	// Overworld is the sea with islands, shores and the merchant.
	Overworld Variant = iota
	// Underworld is reached through a hole and holds the goal.
	Underworld
)

// String returns a human-readable variant name.
func (v Variant) String() string {
	switch v {
	case Overworld:
		return "overworld"
	case Underworld:
		return "underworld"
	default:
		return "unknown"
	}
}

// Terrain is the base kind of a tile.
type Terrain uint8

const (
	// TerrainLand is solid ground, walkable only under land-walk.
	TerrainLand Terrain = iota
	// TerrainShore is the sandy ring between land and water (overworld only).
	TerrainShore
	// TerrainWater is open water, always walkable.
	TerrainWater
)

// String returns a human-readable terrain name.
func (t Terrain) String() string {
	switch t {
	case TerrainLand:
		return "Land"
	case TerrainShore:
		return "Shore"
	case TerrainWater:
		return "Water"
	default:
		return "Unknown"
	}
}

// Feature is a set of per-tile flags.
type Feature uint16

const (
	FeatureCoin Feature = 1 << iota
	FeatureFish
	FeatureSeaweed
	FeatureCoral
	FeatureHermanos // companion creature that talks and advances the quest
	FeatureBazar    // merchant stall
	FeatureTree
	FeatureHole // portal to the underworld
	FeatureGoal // underworld win tile

	FeatureNone Feature = 0
)

// AllFeatures lists every single-bit feature in display order.
var AllFeatures = []Feature{
	FeatureCoin, FeatureFish, FeatureSeaweed, FeatureCoral, FeatureHermanos,
	FeatureBazar, FeatureTree, FeatureHole, FeatureGoal,
}

var featureNames = map[Feature]string{
	FeatureCoin:     "coin",
	FeatureFish:     "fish",
	FeatureSeaweed:  "seaweed",
	FeatureCoral:    "coral",
	FeatureHermanos: "hermanos",
	FeatureBazar:    "bazar",
	FeatureTree:     "tree",
	FeatureHole:     "hole",
	FeatureGoal:     "goal",
}

// String lists the set flags separated by '|', or "none".
func (f Feature) String() string {
	if f == FeatureNone {
		return "none"
	}
	var parts []string
	for _, one := range AllFeatures {
		if f&one != 0 {
			parts = append(parts, featureNames[one])
		}
	}
	return strings.Join(parts, "|")
}

// Coord is a tile coordinate local to its chunk.
type Coord struct {
	X, Y int
}

// Tile is a single generated cell. Only its feature flags change after
// generation, and only by being consumed.
type Tile struct {
	Coord    Coord
	Terrain  Terrain
	Features Feature
	Roll     int // the draw that classified this tile
}

// Has reports whether the tile carries the given feature.
func (t *Tile) Has(f Feature) bool {
	return t.Features&f != 0
}

// Consume clears a feature and reports whether it was present.
func (t *Tile) Consume(f Feature) bool {
	if !t.Has(f) {
		return false
	}
	t.Features &^= f
	return true
}

// IsWater returns true if the tile is open water.
func (t *Tile) IsWater() bool {
	return t.Terrain == TerrainWater
}
