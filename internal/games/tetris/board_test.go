package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillRow(b *Board, y int, except ...int) {
	skip := make(map[int]bool, len(except))
	for _, x := range except {
		skip[x] = true
	}
	for x := 0; x < Cols; x++ {
		if !skip[x] {
			b.Set(x, y, true)
		}
	}
}

func fullBoard() *Board {
	b := &Board{}
	for y := 0; y < Rows; y++ {
		fillRow(b, y)
	}
	return b
}

func TestCollidesOutOfBoundsRegardlessOfOccupancy(t *testing.T) {
	dot := Shape{{0, 0}, {0, 0}, {0, 0}, {0, 0}}

	tests := []struct {
		name   string
		ox, oy int
	}{
		{"left of field", -1, 5},
		{"right of field", Cols, 5},
		{"below floor", 3, Rows},
		{"left and above", -1, -3},
		{"right and above", Cols + 2, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, (&Board{}).Collides(dot, tt.ox, tt.oy), "empty board")
			assert.True(t, fullBoard().Collides(dot, tt.ox, tt.oy), "full board")
		})
	}
}

func TestCollidesAboveGridIgnoresOccupancy(t *testing.T) {
	b := fullBoard()

	for _, k := range Kinds {
		s := k.Shape()
		// Lift every cell above row 0.
		oy := -4
		for x := 0; x <= Cols-4; x++ {
			assert.False(t, b.Collides(s, x, oy), "kind %s at x=%d", k, x)
		}
	}
}

func TestCollidesWithLockedCell(t *testing.T) {
	b := &Board{}
	b.Set(5, 10, true)

	o := KindO.Shape()
	assert.True(t, b.Collides(o, 4, 9))
	assert.True(t, b.Collides(o, 5, 10))
	assert.False(t, b.Collides(o, 6, 10))
	assert.False(t, b.Collides(o, 4, 11))
}

func TestLockDropsCellsOutsideGrid(t *testing.T) {
	b := &Board{}
	b.Lock(KindO.Shape(), 0, -1)

	assert.True(t, b.Occupied(0, 0))
	assert.True(t, b.Occupied(1, 0))
	assert.False(t, b.Occupied(0, -1))

	count := 0
	for _, row := range b.Grid() {
		for _, c := range row {
			if c {
				count++
			}
		}
	}
	assert.Equal(t, 2, count)
}

func TestClearLinesNoFullRows(t *testing.T) {
	b := &Board{}
	fillRow(b, 19, 0)
	fillRow(b, 10, 9)
	b.Set(3, 4, true)
	before := b.Grid()

	assert.Equal(t, 0, b.ClearLines())
	assert.Equal(t, before, b.Grid())
}

func TestClearLinesShiftsRemainingRows(t *testing.T) {
	b := &Board{}
	fillRow(b, 19)
	b.Set(0, 18, true)
	fillRow(b, 17)
	b.Set(3, 16, true)
	b.Set(7, 2, true)

	require.Equal(t, 2, b.ClearLines())

	// Row 18 drops by one cleared row, rows 16 and 2 by two.
	assert.True(t, b.Occupied(0, 19))
	assert.True(t, b.Occupied(3, 18))
	assert.True(t, b.Occupied(7, 4))
	assert.False(t, b.Occupied(7, 2))

	grid := b.Grid()
	assert.Len(t, grid, Rows)
	for y := 0; y < 2; y++ {
		assert.Equal(t, [Cols]bool{}, grid[y], "row %d should be empty", y)
	}
}

func TestClearLinesWholeBoard(t *testing.T) {
	b := fullBoard()
	assert.Equal(t, Rows, b.ClearLines())
	assert.Equal(t, [Rows][Cols]bool{}, b.Grid())
}

func TestBoardSetAndReset(t *testing.T) {
	b := &Board{}
	b.Set(-1, 0, true)
	b.Set(0, Rows, true)
	b.Set(2, 3, true)

	assert.True(t, b.Occupied(2, 3))
	assert.False(t, b.Occupied(-1, 0))

	b.Reset()
	assert.False(t, b.Occupied(2, 3))
}
