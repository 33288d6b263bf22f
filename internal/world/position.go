package world

import "fmt"

// Position is a tile inside a chunk inside a grid.
type Position struct {
	Local Coord
	Chunk ChunkCoord
}

// Delta is a proposed move in tiles.
type Delta struct {
	DX, DY int
}

// IsZero reports whether the delta moves nowhere.
func (d Delta) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// StartPosition is where a new avatar appears: the middle of chunk 0,0.
var StartPosition = Position{
	Local: Coord{X: ChunkWidth / 2, Y: ChunkHeight / 2},
	Chunk: ChunkCoord{X: 0, Y: 0},
}

// Valid reports whether both the local and chunk coordinates are in range.
func (p Position) Valid() bool {
	return p.Local.X >= 0 && p.Local.X < ChunkWidth &&
		p.Local.Y >= 0 && p.Local.Y < ChunkHeight &&
		p.Chunk.X >= 0 && p.Chunk.X < GridWidth &&
		p.Chunk.Y >= 0 && p.Chunk.Y < GridHeight
}

// String formats the position as "x,y@cx,cy".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d@%d,%d", p.Local.X, p.Local.Y, p.Chunk.X, p.Chunk.Y)
}
