package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/samdwyer/treasurehunt/internal/gamedata"
	"github.com/samdwyer/treasurehunt/internal/world"
)

// Shade frequency in tiles. Low enough that neighbouring tiles stay close.
const shadeFrequency = 0.18

type colorRange struct {
	low, high colorful.Color
}

// Palette turns tiles into colors. Shades are a pure function of the world
// seed and tile position, so a redraw never flickers.
type Palette struct {
	terrain  [2]map[world.Terrain]colorRange
	features map[world.Feature]tcell.Color
	noise    opensimplex.Noise

	Player            tcell.Color
	Text              tcell.Color
	Credits           tcell.Color
	CreditsBackground tcell.Color
}

var terrainKeys = map[string]world.Terrain{
	"land":  world.TerrainLand,
	"shore": world.TerrainShore,
	"water": world.TerrainWater,
}

var featureKeys = map[string]world.Feature{
	"coin":     world.FeatureCoin,
	"bazar":    world.FeatureBazar,
	"tree":     world.FeatureTree,
	"hole":     world.FeatureHole,
	"hermanos": world.FeatureHermanos,
	"coral":    world.FeatureCoral,
	"goal":     world.FeatureGoal,
}

// NewPalette builds a palette from palette data, seeding shade noise from
// the world seed.
func NewPalette(def gamedata.PaletteDef, seed int64) (*Palette, error) {
	p := &Palette{
		features: make(map[world.Feature]tcell.Color),
		noise:    opensimplex.NewNormalized(seed),
	}

	for v, tp := range []gamedata.TerrainPalette{def.Overworld, def.Underworld} {
		p.terrain[v] = make(map[world.Terrain]colorRange)
		for name, rd := range tp {
			t, ok := terrainKeys[name]
			if !ok {
				return nil, fmt.Errorf("palette: unknown terrain %q", name)
			}
			low, err := gamedata.ParseColor(rd.Low)
			if err != nil {
				return nil, fmt.Errorf("palette %s low: %w", name, err)
			}
			high, err := gamedata.ParseColor(rd.High)
			if err != nil {
				return nil, fmt.Errorf("palette %s high: %w", name, err)
			}
			p.terrain[v][t] = colorRange{low: low, high: high}
		}
	}

	for name, hex := range def.Features {
		f, ok := featureKeys[name]
		if !ok {
			return nil, fmt.Errorf("palette: unknown feature %q", name)
		}
		c, err := gamedata.ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", name, err)
		}
		p.features[f] = c
	}

	var err error
	for _, c := range []struct {
		dst *tcell.Color
		hex string
	}{
		{&p.Player, def.Player},
		{&p.Text, def.Text},
		{&p.Credits, def.Credits},
		{&p.CreditsBackground, def.CreditsBackground},
	} {
		if *c.dst, err = gamedata.ParseHexColor(c.hex); err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
	}
	return p, nil
}

// LoadPalette builds a palette from the embedded palette data.
func LoadPalette(seed int64) (*Palette, error) {
	def, err := gamedata.LoadPalette()
	if err != nil {
		return nil, err
	}
	return NewPalette(def, seed)
}

// Terrain returns the shade of a tile's ground at position p.
func (p *Palette) Terrain(v world.Variant, pos world.Position, t world.Terrain) tcell.Color {
	r, ok := p.terrain[v][t]
	if !ok {
		return tcell.ColorDefault
	}
	x := float64(pos.Chunk.X*world.ChunkWidth + pos.Local.X)
	y := float64(pos.Chunk.Y*world.ChunkHeight + pos.Local.Y)
	if v == world.Underworld {
		y += 1e4
	}
	n := p.noise.Eval2(x*shadeFrequency, y*shadeFrequency)
	return gamedata.ToTCell(r.low.BlendLab(r.high, n))
}

// Feature returns the color of a feature, and false if it has none.
func (p *Palette) Feature(f world.Feature) (tcell.Color, bool) {
	c, ok := p.features[f]
	return c, ok
}
