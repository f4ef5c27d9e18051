package tetris

import "strings"

// Playfield dimensions. Row 0 is the top.
const (
	Rows = 20
	Cols = 10
)

// Board is the grid of locked cells. Cells carry occupancy only;
// a piece's kind is forgotten once it locks.
type Board struct {
	cells [Rows][Cols]bool
}

// Collides reports whether shape placed at origin (ox, oy) leaves the
// playfield horizontally, reaches below the floor, or overlaps a locked
// cell. Cells above the top row are exempt from the occupancy check only.
func (b *Board) Collides(s Shape, ox, oy int) bool {
	for _, c := range s {
		gx, gy := ox+c.X, oy+c.Y
		if gx < 0 || gx >= Cols || gy >= Rows {
			return true
		}
		if gy >= 0 && b.cells[gy][gx] {
			return true
		}
	}
	return false
}

// Lock marks the cells of shape at (ox, oy) as occupied.
// Cells outside the grid are dropped.
func (b *Board) Lock(s Shape, ox, oy int) {
	for _, c := range s {
		gx, gy := ox+c.X, oy+c.Y
		if gx >= 0 && gx < Cols && gy >= 0 && gy < Rows {
			b.cells[gy][gx] = true
		}
	}
}

// ClearLines removes every full row, shifts the rows above it down and
// returns the number of rows removed.
func (b *Board) ClearLines() int {
	var kept [Rows][Cols]bool
	dst := Rows - 1
	for y := Rows - 1; y >= 0; y-- {
		if rowFull(b.cells[y]) {
			continue
		}
		kept[dst] = b.cells[y]
		dst--
	}
	cleared := dst + 1
	if cleared > 0 {
		b.cells = kept
	}
	return cleared
}

func rowFull(row [Cols]bool) bool {
	for _, occupied := range row {
		if !occupied {
			return false
		}
	}
	return true
}

// Reset empties the board.
func (b *Board) Reset() {
	b.cells = [Rows][Cols]bool{}
}

// Occupied reports whether the cell at (x, y) is locked.
// Coordinates outside the grid are never occupied.
func (b *Board) Occupied(x, y int) bool {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return false
	}
	return b.cells[y][x]
}

// Set changes a single cell. Out-of-range coordinates are ignored.
func (b *Board) Set(x, y int, occupied bool) {
	if x < 0 || x >= Cols || y < 0 || y >= Rows {
		return
	}
	b.cells[y][x] = occupied
}

// Grid returns a copy of the occupancy grid indexed [row][col].
func (b *Board) Grid() [Rows][Cols]bool {
	return b.cells
}

// String renders the board as rows of '#' and '.'.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(Rows * (Cols + 1))
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			if b.cells[y][x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
