package tetris

import "math/rand"

// Spawn origin for every new piece: centred, one row above the grid.
const (
	SpawnX = Cols/2 - 2
	SpawnY = -1
)

// kicks are the horizontal origin shifts tried, in order, when a rotation collides.
var kicks = [...]int{0, -1, 1, -2, 2}

// Piece is the falling piece: its kind, current offsets and grid origin.
type Piece struct {
	Kind  Kind
	Cells Shape
	X, Y  int
}

// NewPiece returns a piece of kind k in its base orientation at the spawn origin.
func NewPiece(k Kind) Piece {
	return Piece{Kind: k, Cells: k.Shape(), X: SpawnX, Y: SpawnY}
}

// RandomPiece spawns a piece of a uniformly chosen kind.
func RandomPiece(rng *rand.Rand) Piece {
	return NewPiece(Kinds[rng.Intn(len(Kinds))])
}

// Rotate turns offsets a quarter turn, mapping (x, y) to (y, -x), and
// translates the result so its minimum x and y are both zero.
func Rotate(s Shape) Shape {
	var out Shape
	minX, minY := 0, 0
	for i, c := range s {
		out[i] = Point{X: c.Y, Y: -c.X}
		if i == 0 || out[i].X < minX {
			minX = out[i].X
		}
		if i == 0 || out[i].Y < minY {
			minY = out[i].Y
		}
	}
	for i := range out {
		out[i].X -= minX
		out[i].Y -= minY
	}
	return out
}

// Moved returns p shifted by (dx, dy) if the target is free.
func (p Piece) Moved(b *Board, dx, dy int) (Piece, bool) {
	if b.Collides(p.Cells, p.X+dx, p.Y+dy) {
		return p, false
	}
	p.X += dx
	p.Y += dy
	return p, true
}

// Rotated returns p rotated, shifted by the first kick that fits.
// When every kick collides, p is returned unchanged with false.
func (p Piece) Rotated(b *Board) (Piece, bool) {
	rotated := Rotate(p.Cells)
	for _, k := range kicks {
		if !b.Collides(rotated, p.X+k, p.Y) {
			p.Cells = rotated
			p.X += k
			return p, true
		}
	}
	return p, false
}

// GhostY returns the row p would come to rest on if dropped straight down.
func GhostY(b *Board, p Piece) int {
	y := p.Y
	for !b.Collides(p.Cells, p.X, y+1) {
		y++
	}
	return y
}

// Positions returns the absolute grid positions covered by p.
func (p Piece) Positions() [4]Point {
	var out [4]Point
	for i, c := range p.Cells {
		out[i] = Point{X: p.X + c.X, Y: p.Y + c.Y}
	}
	return out
}
