package world

// Move is the resolved outcome of a proposed step.
type Move struct {
	From    Position
	Pos     Position // where the avatar ends up
	Crossed bool     // a chunk boundary was crossed
	Blocked bool     // the move was rejected and Pos == From
}

// Navigate resolves a proposed move against a grid.
//
// Local coordinates that step one past a chunk edge move into the
// neighbouring chunk, wrapping around the grid on both axes. When
// landWalk is false a move that crosses a chunk boundary must land on
// water, otherwise the whole move is rejected. Moves inside one chunk are
// not terrain checked here; the caller owns that rule. Any failed lookup
// also rejects the move, so Navigate never panics on bad input.
func Navigate(from Position, d Delta, grid *Grid, landWalk bool) Move {
	res := Move{From: from, Pos: from}
	if grid == nil || !from.Valid() {
		res.Blocked = !d.IsZero()
		return res
	}
	if d.IsZero() {
		return res
	}

	x, cx, crossedX := wrapAxis(from.Local.X+d.DX, from.Chunk.X, ChunkWidth, GridWidth)
	y, cy, crossedY := wrapAxis(from.Local.Y+d.DY, from.Chunk.Y, ChunkHeight, GridHeight)

	to := Position{
		Local: Coord{X: x, Y: y},
		Chunk: ChunkCoord{X: cx, Y: cy},
	}
	if !to.Valid() {
		res.Blocked = true
		return res
	}

	tile, err := grid.Tile(to)
	if err != nil {
		res.Blocked = true
		return res
	}

	crossed := crossedX || crossedY
	if crossed && !landWalk && !tile.IsWater() {
		res.Blocked = true
		return res
	}

	res.Pos = to
	res.Crossed = crossed
	return res
}

// wrapAxis moves a local coordinate that is exactly one past either edge
// into the neighbouring chunk, wrapping the chunk index around the grid.
func wrapAxis(local, chunk, chunkSize, gridSize int) (int, int, bool) {
	switch local {
	case chunkSize:
		chunk++
		if chunk == gridSize {
			chunk = 0
		}
		return 0, chunk, true
	case -1:
		chunk--
		if chunk == -1 {
			chunk = gridSize - 1
		}
		return chunkSize - 1, chunk, true
	}
	return local, chunk, false
}
