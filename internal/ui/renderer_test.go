package ui

import (
	"context"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasurehunt/internal/gamedata"
	"github.com/samdwyer/treasurehunt/internal/quest"
	"github.com/samdwyer/treasurehunt/internal/tuning"
	"github.com/samdwyer/treasurehunt/internal/world"
)

func newTestRenderer(t *testing.T) (*Renderer, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := NewScreenFrom(sim)
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	t.Cleanup(screen.Close)
	sim.SetSize(80, 40)

	palette, err := LoadPalette(1)
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	return NewRenderer(screen, palette), sim
}

func testGrid() *world.Grid {
	return world.Build(context.Background(), world.NewGenerator(world.Overworld, tuning.Default(), 7))
}

func row(sim tcell.SimulationScreen, y, width int) string {
	var b strings.Builder
	for x := 0; x < width; x++ {
		r, _, _, _ := sim.GetContent(x, y)
		b.WriteRune(r)
	}
	return b.String()
}

func TestRenderPlayerAndHUD(t *testing.T) {
	r, sim := newTestRenderer(t)
	v := View{
		Grid:   testGrid(),
		Player: world.StartPosition,
		Quest:  quest.State{Gold: 30},
	}
	r.Render(v)

	got, _, _, _ := sim.GetContent(world.StartPosition.Local.X*tileCells, world.StartPosition.Local.Y)
	if got != '@' {
		t.Errorf("player cell = %q, want '@'", got)
	}
	hud := row(sim, world.ChunkHeight, 60)
	if !strings.Contains(hud, "gold: 30") {
		t.Errorf("HUD = %q, want gold", hud)
	}
}

func TestRenderLandWalkCountdown(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.Render(View{
		Grid:   testGrid(),
		Player: world.StartPosition,
		Quest:  quest.State{LandWalk: true, Steps: 1234},
	})
	if line := row(sim, world.ChunkHeight+1, 60); !strings.Contains(line, "1234 steps") {
		t.Errorf("countdown line = %q", line)
	}
}

func TestRenderCredits(t *testing.T) {
	r, sim := newTestRenderer(t)
	r.Render(View{
		Mode:    ModeCredits,
		Credits: gamedata.CreditsDef{Title: "Credits", Lines: []string{"Good Game"}},
	})

	found := false
	for y := 0; y < 40; y++ {
		if strings.Contains(row(sim, y, 80), "Good Game") {
			found = true
		}
	}
	if !found {
		t.Error("credits text not drawn")
	}
}

func TestHermanosHiddenWithoutPole(t *testing.T) {
	r, _ := newTestRenderer(t)
	tile := &world.Tile{Terrain: world.TerrainWater, Features: world.FeatureHermanos}

	if g, _ := r.tileGlyph(tile, false); g != ' ' {
		t.Errorf("glyph without pole = %q, want blank", g)
	}
	if g, _ := r.tileGlyph(tile, true); g != '~' {
		t.Errorf("glyph with pole = %q, want '~'", g)
	}
}

func TestSummarize(t *testing.T) {
	c := &world.Chunk{}
	for x := 0; x < world.ChunkWidth; x++ {
		for y := 0; y < world.ChunkHeight; y++ {
			c.Tiles[x][y].Terrain = world.TerrainWater
		}
	}
	c.Tiles[0][0].Terrain = world.TerrainLand
	c.Tiles[1][0].Terrain = world.TerrainLand
	c.Tiles[0][1].Terrain = world.TerrainLand
	c.Tiles[5][5].Features = world.FeatureCoral

	terrain, coral := summarize(c, world.Coord{}, 4, 4)
	if terrain != world.TerrainWater || coral {
		t.Errorf("summarize(0,0) = %v %v, want Water false", terrain, coral)
	}
	if _, coral := summarize(c, world.Coord{X: 4, Y: 4}, 4, 4); !coral {
		t.Error("summarize(4,4) missed coral")
	}
}

func TestPaletteShadeIsStable(t *testing.T) {
	p, err := LoadPalette(99)
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	pos := world.Position{Local: world.Coord{X: 3, Y: 4}, Chunk: world.ChunkCoord{X: 1, Y: 2}}
	a := p.Terrain(world.Overworld, pos, world.TerrainWater)
	b := p.Terrain(world.Overworld, pos, world.TerrainWater)
	if a != b {
		t.Errorf("Terrain() not stable: %v != %v", a, b)
	}
	if p.Terrain(world.Underworld, pos, world.TerrainShore) != tcell.ColorDefault {
		t.Error("underworld shore should have no color")
	}
}

func TestNewPaletteRejectsUnknownNames(t *testing.T) {
	def, err := gamedata.LoadPalette()
	if err != nil {
		t.Fatalf("LoadPalette() error = %v", err)
	}
	def.Features = map[string]string{"dragon": "#ff0000"}
	if _, err := NewPalette(def, 1); err == nil {
		t.Error("expected error for unknown feature")
	}
}
