package world

import (
	"math/rand"
	"testing"

	"github.com/samdwyer/treasurehunt/internal/tuning"
)

func TestClassifyLandSeedAlwaysLand(t *testing.T) {
	for _, v := range []Variant{Overworld, Underworld} {
		c := Classifier{Variant: v, Thresholds: tuning.Default()}
		for seed := int64(0); seed < 200; seed++ {
			rng := rand.New(rand.NewSource(seed))
			tile := c.Classify(rng, Coord{X: 3, Y: 4}, 1, [8]int{1, 1, 0, 0, 0, 0, 0, 1})
			if tile.Terrain != TerrainLand {
				t.Fatalf("%s seed %d: Classify(landSeed=1).Terrain = %v, want Land", v, seed, tile.Terrain)
			}
			if tile.Roll != 0 {
				t.Fatalf("%s seed %d: Classify(landSeed=1).Roll = %d, want 0", v, seed, tile.Roll)
			}
		}
	}
}

func TestClassifyTouchRange(t *testing.T) {
	tests := []struct {
		variant Variant
		max     int
	}{
		{Overworld, 1000},
		{Underworld, 1500},
	}
	for _, tt := range tests {
		c := Classifier{Variant: tt.variant, Thresholds: tuning.Default()}
		rng := rand.New(rand.NewSource(99))
		for i := 0; i < 2000; i++ {
			tile := c.Classify(rng, Coord{}, 0, [8]int{0, 0, 0, 0, 1, 0, 0, 0})
			if tile.Roll < 0 || tile.Roll >= tt.max {
				t.Fatalf("%s: touching roll = %d, want in [0,%d)", tt.variant, tile.Roll, tt.max)
			}
		}
	}
}

func TestClassifyUntouchedRange(t *testing.T) {
	c := Classifier{Variant: Overworld, Thresholds: tuning.Default()}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 5000; i++ {
		tile := c.Classify(rng, Coord{}, 0, [8]int{})
		if tile.Roll < 1 || tile.Roll > 10000 {
			t.Fatalf("untouched roll = %d, want in [1,10000]", tile.Roll)
		}
	}
}

func TestClassifyRollOverworld(t *testing.T) {
	c := Classifier{Variant: Overworld, Thresholds: tuning.Default()}
	tests := []struct {
		roll     int
		terrain  Terrain
		features Feature
	}{
		{0, TerrainLand, FeatureTree},
		{1, TerrainLand, FeatureNone},
		{748, TerrainLand, FeatureNone},
		{749, TerrainLand, FeatureHole},
		{750, TerrainShore, FeatureNone},
		{897, TerrainShore, FeatureNone},
		{898, TerrainShore, FeatureBazar},
		{899, TerrainShore, FeatureBazar},
		{900, TerrainWater, FeatureHermanos},
		{901, TerrainWater, FeatureHermanos},
		// 902 sits on the shadow threshold and belongs to neither band.
		{902, TerrainWater, FeatureNone},
		{903, TerrainWater, FeatureCoral},
		{924, TerrainWater, FeatureCoral},
		{925, TerrainWater, FeatureNone},
		{5000, TerrainWater, FeatureNone},
		{9100, TerrainWater, FeatureNone},
		{9101, TerrainWater, FeatureSeaweed},
		{9349, TerrainWater, FeatureSeaweed},
		{9350, TerrainWater, FeatureNone},
		{9351, TerrainWater, FeatureFish},
		{9969, TerrainWater, FeatureFish},
		{9970, TerrainWater, FeatureNone},
		{9971, TerrainWater, FeatureCoin},
		{10000, TerrainWater, FeatureCoin},
	}
	for _, tt := range tests {
		terrain, features := c.ClassifyRoll(tt.roll)
		if terrain != tt.terrain || features != tt.features {
			t.Errorf("ClassifyRoll(%d) = %v/%v, want %v/%v", tt.roll, terrain, features, tt.terrain, tt.features)
		}
	}
}

func TestClassifyRollUnderworld(t *testing.T) {
	c := Classifier{Variant: Underworld, Thresholds: tuning.Default()}
	tests := []struct {
		roll     int
		terrain  Terrain
		features Feature
	}{
		{0, TerrainLand, FeatureNone},
		{749, TerrainLand, FeatureNone},
		{750, TerrainWater, FeatureNone},
		{899, TerrainWater, FeatureNone},
		{9990, TerrainWater, FeatureNone},
		{9991, TerrainWater, FeatureGoal},
	}
	for _, tt := range tests {
		terrain, features := c.ClassifyRoll(tt.roll)
		if terrain != tt.terrain || features != tt.features {
			t.Errorf("ClassifyRoll(%d) = %v/%v, want %v/%v", tt.roll, terrain, features, tt.terrain, tt.features)
		}
	}
}

func TestClassifyRollEveryRollHasOneTerrain(t *testing.T) {
	for _, v := range []Variant{Overworld, Underworld} {
		c := Classifier{Variant: v, Thresholds: tuning.Default()}
		for roll := 0; roll <= 10000; roll++ {
			terrain, _ := c.ClassifyRoll(roll)
			if terrain.String() == "Unknown" {
				t.Fatalf("%s: ClassifyRoll(%d) terrain = %d", v, roll, terrain)
			}
			if v == Underworld && terrain == TerrainShore {
				t.Fatalf("underworld: ClassifyRoll(%d) produced Shore", roll)
			}
		}
	}
}

func TestFeatureString(t *testing.T) {
	tests := []struct {
		f    Feature
		want string
	}{
		{FeatureNone, "none"},
		{FeatureFish, "fish"},
		{FeatureFish | FeatureCoral, "fish|coral"},
		{FeatureHole | FeatureTree, "tree|hole"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Feature(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestTileConsume(t *testing.T) {
	tile := Tile{Terrain: TerrainWater, Features: FeatureFish | FeatureCoral}

	if !tile.Consume(FeatureFish) {
		t.Fatal("Consume(fish) = false, want true")
	}
	if tile.Has(FeatureFish) {
		t.Error("fish still present after Consume")
	}
	if !tile.Has(FeatureCoral) {
		t.Error("coral should be untouched by Consume(fish)")
	}
	if tile.Consume(FeatureFish) {
		t.Error("second Consume(fish) = true, want false")
	}
}
