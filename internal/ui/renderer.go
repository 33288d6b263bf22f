package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/treasurehunt/internal/gamedata"
	"github.com/samdwyer/treasurehunt/internal/quest"
	"github.com/samdwyer/treasurehunt/internal/world"
)

// Each tile is two cells wide so the map is roughly square.
const tileCells = 2

// Atlas cells per chunk.
const (
	atlasCellsX = 4
	atlasCellsY = 3
)

// Mode selects what is drawn over the map.
type Mode int

const (
	ModeMap Mode = iota
	ModeDialogue
	ModeMerchant
	ModeInventory
	ModeAtlas
	ModeCredits
)

// View is everything the renderer needs for one frame.
type View struct {
	Variant world.Variant
	Grid    *world.Grid
	Player  world.Position
	Quest   quest.State
	Mode    Mode
	Title   string
	Text    string
	Prompt  bool
	Message string
	Credits gamedata.CreditsDef
	// Blink toggles the atlas player marker.
	Blink bool
}

var featureGlyphs = []struct {
	feature world.Feature
	glyph   rune
}{
	{world.FeatureGoal, '*'},
	{world.FeatureBazar, 'B'},
	{world.FeatureHole, 'O'},
	{world.FeatureTree, '^'},
	{world.FeatureCoin, '$'},
	{world.FeatureHermanos, '~'},
}

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws one frame.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	if v.Mode == ModeCredits {
		r.drawCredits(v.Credits)
		r.screen.Show()
		return
	}

	r.drawChunk(v)
	r.drawHUD(v)

	switch v.Mode {
	case ModeDialogue, ModeMerchant:
		r.drawBox(v.Title, []string{v.Text})
	case ModeInventory:
		r.drawBox("Inventory", inventoryLines(v.Quest))
	case ModeAtlas:
		r.drawAtlas(v)
	}

	r.screen.Show()
}

func (r *Renderer) drawChunk(v View) {
	if v.Grid == nil {
		return
	}
	chunk, err := v.Grid.Chunk(v.Player.Chunk)
	if err != nil {
		return
	}
	for x := 0; x < world.ChunkWidth; x++ {
		for y := 0; y < world.ChunkHeight; y++ {
			tile := &chunk.Tiles[x][y]
			pos := world.Position{Local: world.Coord{X: x, Y: y}, Chunk: v.Player.Chunk}
			bg := r.palette.Terrain(v.Variant, pos, tile.Terrain)
			glyph, fg := r.tileGlyph(tile, v.Quest.Pole)
			style := tcell.StyleDefault.Background(bg).Foreground(fg)
			r.screen.SetContent(x*tileCells, y, glyph, style)
			r.screen.SetContent(x*tileCells+1, y, ' ', style)
		}
	}

	p := v.Player.Local
	style := tcell.StyleDefault.
		Background(r.palette.Terrain(v.Variant, v.Player, chunk.Tiles[p.X][p.Y].Terrain)).
		Foreground(r.palette.Player).
		Bold(true)
	r.screen.SetContent(p.X*tileCells, p.Y, '@', style)
}

// tileGlyph picks the most important visible feature. Hermanos are only
// visible to someone holding a pole.
func (r *Renderer) tileGlyph(t *world.Tile, pole bool) (rune, tcell.Color) {
	for _, fg := range featureGlyphs {
		if !t.Has(fg.feature) {
			continue
		}
		if fg.feature == world.FeatureHermanos && !pole {
			continue
		}
		c, _ := r.palette.Feature(fg.feature)
		return fg.glyph, c
	}
	return ' ', r.palette.Text
}

func (r *Renderer) drawHUD(v View) {
	y := world.ChunkHeight
	hud := fmt.Sprintf("coords: [%d, %d]  chunk: [%d, %d]  gold: %d",
		v.Player.Local.X, v.Player.Local.Y, v.Player.Chunk.X, v.Player.Chunk.Y, v.Quest.Gold)
	r.drawText(0, y, hud, r.textStyle())
	if v.Quest.LandWalk {
		r.drawText(0, y+1, fmt.Sprintf("You have %d steps before potion effects end", v.Quest.Steps), r.textStyle())
	}
	if v.Message != "" {
		r.drawText(0, y+2, v.Message, r.textStyle())
	}
}

func inventoryLines(q quest.State) []string {
	lines := []string{fmt.Sprintf("Gold - %d", q.Gold)}
	if q.Pole {
		lines = append(lines, "Fishing Pole - 1")
	}
	for _, item := range []struct {
		name  string
		count int
	}{
		{"Fish", q.Fish},
		{"Seaweed", q.Seaweed},
		{"Coral", q.Coral},
	} {
		if item.count > 0 {
			lines = append(lines, fmt.Sprintf("%s - %d", item.name, item.count))
		}
	}
	return lines
}

// drawBox draws a titled text box centred on the map.
func (r *Renderer) drawBox(title string, lines []string) {
	width := len(title) + 4
	for _, l := range lines {
		width = max(width, len(l)+4)
	}
	height := len(lines) + 4
	mapW := world.ChunkWidth * tileCells
	x0 := max(0, (mapW-width)/2)
	y0 := max(0, (world.ChunkHeight-height)/2)

	style := tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(r.palette.Text)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			r.screen.SetContent(x, y, ' ', style)
		}
	}
	if title != "" {
		r.drawText(x0+2, y0+1, "~"+title+"~", style.Bold(true))
	}
	for i, l := range lines {
		r.drawText(x0+2, y0+3+i, l, style)
	}
}

// drawAtlas draws every chunk of the grid as a 4x3 block of cells. Coral
// shows pink; the player's cell blinks.
func (r *Renderer) drawAtlas(v View) {
	if v.Grid == nil {
		return
	}
	stepX := world.ChunkWidth / atlasCellsX
	stepY := world.ChunkHeight / atlasCellsY
	coral, _ := r.palette.Feature(world.FeatureCoral)

	for cx := 0; cx < world.GridWidth; cx++ {
		for cy := 0; cy < world.GridHeight; cy++ {
			chunk := v.Grid.Chunks[cx][cy]
			if chunk == nil {
				continue
			}
			for ax := 0; ax < atlasCellsX; ax++ {
				for ay := 0; ay < atlasCellsY; ay++ {
					pos := world.Position{
						Local: world.Coord{X: ax * stepX, Y: ay * stepY},
						Chunk: world.ChunkCoord{X: cx, Y: cy},
					}
					terrain, hasCoral := summarize(chunk, pos.Local, stepX, stepY)
					color := r.palette.Terrain(v.Variant, pos, terrain)
					if hasCoral {
						color = coral
					}
					if v.Blink && cx == v.Player.Chunk.X && cy == v.Player.Chunk.Y &&
						v.Player.Local.X/stepX == ax && v.Player.Local.Y/stepY == ay {
						color = r.palette.Player
					}
					r.screen.SetContent(cx*atlasCellsX+ax, cy*atlasCellsY+ay, ' ',
						tcell.StyleDefault.Background(color))
				}
			}
		}
	}
}

// summarize returns the most common terrain of a block of tiles and
// whether any of them holds coral.
func summarize(c *world.Chunk, origin world.Coord, w, h int) (world.Terrain, bool) {
	var counts [3]int
	coral := false
	for x := origin.X; x < origin.X+w && x < world.ChunkWidth; x++ {
		for y := origin.Y; y < origin.Y+h && y < world.ChunkHeight; y++ {
			t := &c.Tiles[x][y]
			counts[t.Terrain]++
			coral = coral || t.Has(world.FeatureCoral)
		}
	}
	best := world.TerrainWater
	for t, n := range counts {
		if n > counts[best] {
			best = world.Terrain(t)
		}
	}
	return best, coral
}

func (r *Renderer) drawCredits(c gamedata.CreditsDef) {
	w, h := r.screen.Size()
	bg := tcell.StyleDefault.Background(r.palette.CreditsBackground).Foreground(r.palette.Credits)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', bg)
		}
	}
	lines := append([]string{"~" + c.Title + "~", ""}, c.Lines...)
	top := max(0, (h-len(lines))/2)
	for i, l := range lines {
		r.drawText(max(0, (w-len(l))/2), top+i, l, bg)
	}
}

func (r *Renderer) textStyle() tcell.Style {
	return tcell.StyleDefault.Foreground(r.palette.Text)
}

// drawText writes s starting at x, y.
func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(strings.TrimRight(s, "\n")) {
		r.screen.SetContent(x+i, y, ch, style)
	}
}
