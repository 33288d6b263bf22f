package world

import (
	"math/rand"

	"github.com/samdwyer/treasurehunt/internal/tuning"
)

// rollMax is the upper bound of the primary draw, inclusive.
const rollMax = 10000

// Classifier turns one random draw per cell into a terrain kind and
// feature flags.
type Classifier struct {
	Variant    Variant
	Thresholds tuning.Thresholds
}

// Classify draws the roll for one cell and classifies it.
//
// An island seed forces the roll to 0, which is always Land. Otherwise a
// cell touching a seed re-rolls within a small range that favours Land,
// which grows ragged coastlines around the seeds.
func (c Classifier) Classify(rng *rand.Rand, local Coord, landSeed int, touch [8]int) Tile {
	roll := rng.Intn(rollMax) + 1
	if landSeed == 1 {
		roll = 0
	} else if touchesSeed(touch) {
		roll = rng.Intn(c.touchRange())
	}

	terrain, features := c.ClassifyRoll(roll)
	return Tile{
		Coord:    local,
		Terrain:  terrain,
		Features: features,
		Roll:     roll,
	}
}

// ClassifyRoll maps a roll to terrain and features. Every comparison is
// strict; rolls that sit exactly on a threshold fall into no feature band.
func (c Classifier) ClassifyRoll(roll int) (Terrain, Feature) {
	t := c.Thresholds
	if c.Variant == Underworld {
		if roll < t.Land {
			return TerrainLand, FeatureNone
		}
		if roll > t.Goal {
			return TerrainWater, FeatureGoal
		}
		return TerrainWater, FeatureNone
	}

	var f Feature
	switch {
	case roll < t.Land:
		if roll < t.Tree {
			f |= FeatureTree
		}
		if roll > t.Hole {
			f |= FeatureHole
		}
		return TerrainLand, f

	case roll < t.Shore:
		if roll > t.Bazar {
			f |= FeatureBazar
		}
		return TerrainShore, f
	}

	// Water. The bands are checked in this order against the same roll.
	if roll > t.Coin {
		f |= FeatureCoin
	}
	if roll > t.Fish && roll < t.Coin {
		f |= FeatureFish
	}
	if roll > t.Seaweed && roll < t.Fish {
		f |= FeatureSeaweed
	}
	if roll > t.Shadow && roll < t.Coral {
		f |= FeatureCoral
	}
	if roll < t.Shadow {
		f |= FeatureHermanos
	}
	return TerrainWater, f
}

func (c Classifier) touchRange() int {
	if c.Variant == Underworld {
		return c.Thresholds.UnderworldTouch
	}
	return c.Thresholds.OverworldTouch
}

func touchesSeed(touch [8]int) bool {
	for _, s := range touch {
		if s == 1 {
			return true
		}
	}
	return false
}
