package world

import "testing"

// uniformGrid builds a grid where every tile has the given terrain.
func uniformGrid(terrain Terrain) *Grid {
	g := &Grid{Variant: Overworld}
	for cx := 0; cx < GridWidth; cx++ {
		for cy := 0; cy < GridHeight; cy++ {
			ch := &Chunk{Coord: ChunkCoord{X: cx, Y: cy}}
			for x := 0; x < ChunkWidth; x++ {
				for y := 0; y < ChunkHeight; y++ {
					ch.Tiles[x][y] = Tile{Coord: Coord{X: x, Y: y}, Terrain: terrain}
				}
			}
			g.Chunks[cx][cy] = ch
		}
	}
	return g
}

func pos(x, y, cx, cy int) Position {
	return Position{Local: Coord{X: x, Y: y}, Chunk: ChunkCoord{X: cx, Y: cy}}
}

func TestNavigateZeroDeltaIdempotent(t *testing.T) {
	grids := []*Grid{uniformGrid(TerrainWater), uniformGrid(TerrainLand), nil}
	starts := []Position{pos(0, 0, 0, 0), pos(15, 11, 15, 11), pos(7, 3, 4, 2), pos(-5, 40, 99, 0)}

	for _, g := range grids {
		for _, start := range starts {
			p := start
			for i := 0; i < 3; i++ {
				m := Navigate(p, Delta{}, g, false)
				if m.Pos != start || m.Blocked || m.Crossed {
					t.Fatalf("Navigate(%v, 0) = %+v, want unchanged", start, m)
				}
				p = m.Pos
			}
		}
	}
}

func TestNavigateWrap(t *testing.T) {
	g := uniformGrid(TerrainWater)
	tests := []struct {
		name  string
		from  Position
		delta Delta
		want  Position
	}{
		{"east within chunk", pos(3, 3, 2, 2), Delta{DX: 1}, pos(4, 3, 2, 2)},
		{"east into next chunk", pos(15, 3, 2, 2), Delta{DX: 1}, pos(0, 3, 3, 2)},
		{"east off the world", pos(15, 3, 15, 2), Delta{DX: 1}, pos(0, 3, 0, 2)},
		{"west into previous chunk", pos(0, 3, 2, 2), Delta{DX: -1}, pos(15, 3, 1, 2)},
		{"west off the world", pos(0, 3, 0, 2), Delta{DX: -1}, pos(15, 3, 15, 2)},
		{"south into next chunk", pos(4, 11, 2, 5), Delta{DY: 1}, pos(4, 0, 2, 6)},
		{"south off the world", pos(4, 11, 2, 11), Delta{DY: 1}, pos(4, 0, 2, 0)},
		{"north into previous chunk", pos(4, 0, 2, 5), Delta{DY: -1}, pos(4, 11, 2, 4)},
		{"north off the world", pos(4, 0, 2, 0), Delta{DY: -1}, pos(4, 11, 2, 11)},
		{"diagonal corner", pos(15, 11, 15, 11), Delta{DX: 1, DY: 1}, pos(0, 0, 0, 0)},
	}
	for _, tt := range tests {
		m := Navigate(tt.from, tt.delta, g, false)
		if m.Pos != tt.want {
			t.Errorf("%s: Navigate(%v, %+v).Pos = %v, want %v", tt.name, tt.from, tt.delta, m.Pos, tt.want)
		}
		if m.Blocked {
			t.Errorf("%s: move should not be blocked", tt.name)
		}
	}
}

func TestNavigateWaterLockedRevertsAcrossBoundary(t *testing.T) {
	g := uniformGrid(TerrainWater)
	// Make the first column of chunk 4,2 land.
	for y := 0; y < ChunkHeight; y++ {
		g.Chunks[4][2].Tiles[0][y].Terrain = TerrainLand
	}
	g.Chunks[0][0].Tiles[15][6].Terrain = TerrainShore
	g.Chunks[15][0].Tiles[15][2].Terrain = TerrainLand
	g.Chunks[6][11].Tiles[3][11].Terrain = TerrainLand

	tests := []struct {
		name  string
		from  Position
		delta Delta
	}{
		{"east onto land", pos(15, 6, 3, 2), Delta{DX: 1}},
		{"west onto shore", pos(0, 6, 1, 0), Delta{DX: -1}},
		{"wrap west off the world onto land", pos(0, 2, 0, 0), Delta{DX: -1}},
		{"wrap north off the world onto land", pos(3, 0, 6, 0), Delta{DY: -1}},
	}
	for _, tt := range tests {
		m := Navigate(tt.from, tt.delta, g, false)
		if m.Pos != tt.from || !m.Blocked {
			t.Errorf("%s: Navigate = %+v, want reverted to %v", tt.name, m, tt.from)
		}
	}
}

func TestNavigateWithinChunkNotTerrainChecked(t *testing.T) {
	g := uniformGrid(TerrainLand)
	m := Navigate(pos(5, 5, 1, 1), Delta{DX: 1}, g, false)
	if m.Pos != pos(6, 5, 1, 1) || m.Blocked {
		t.Errorf("Navigate within chunk = %+v, want 6,5@1,1", m)
	}
}

func TestNavigateLandWalkIgnoresTerrain(t *testing.T) {
	g := uniformGrid(TerrainLand)
	m := Navigate(pos(15, 6, 15, 2), Delta{DX: 1}, g, true)
	if m.Pos != pos(0, 6, 0, 2) || m.Blocked || !m.Crossed {
		t.Errorf("land-walk Navigate = %+v, want 0,6@0,2 crossed", m)
	}
}

func TestNavigateFailSafe(t *testing.T) {
	water := uniformGrid(TerrainWater)
	holey := uniformGrid(TerrainWater)
	holey.Chunks[3][2] = nil

	tests := []struct {
		name  string
		from  Position
		delta Delta
		grid  *Grid
	}{
		{"nil grid", pos(1, 1, 1, 1), Delta{DX: 1}, nil},
		{"malformed start", pos(1, 1, 20, 1), Delta{DX: 1}, water},
		{"oversized delta", pos(14, 1, 1, 1), Delta{DX: 3}, water},
		{"missing chunk", pos(15, 1, 2, 2), Delta{DX: 1}, holey},
	}
	for _, tt := range tests {
		m := Navigate(tt.from, tt.delta, tt.grid, true)
		if m.Pos != tt.from || !m.Blocked {
			t.Errorf("%s: Navigate = %+v, want reverted to %v", tt.name, m, tt.from)
		}
	}
}
