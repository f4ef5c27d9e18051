// Package tetris implements a single-player falling-block puzzle game.
//
// The simulation core (Board, Piece, HoldSlot, Session) has no terminal
// dependencies and is driven by discrete mutators plus a Tick carrying
// elapsed time. Game adapts a Session to the game registry.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Point is a cell offset or grid coordinate. Y grows downward.
type Point struct {
	X, Y int
}

// Shape is the ordered set of four cell offsets of a piece.
// It is an array so that assignment always copies.
type Shape [4]Point

// Kind identifies one of the seven piece shapes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// Kinds lists every piece kind in catalog order.
var Kinds = [...]Kind{KindI, KindO, KindT, KindS, KindZ, KindJ, KindL}

var catalog = [...]Shape{
	KindI: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	KindO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	KindT: {{0, 0}, {1, 0}, {2, 0}, {1, 1}},
	KindS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	KindZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
	KindJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	KindL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
}

// Shape returns a copy of the kind's base offsets.
func (k Kind) Shape() Shape {
	return catalog[k]
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(Kinds) {
		return "?"
	}
	return string("IOTSZJL"[k])
}

// Color returns the colour used to draw a live piece of this kind.
func (k Kind) Color() core.Color {
	switch k {
	case KindI:
		return core.ColorCyan
	case KindO:
		return core.ColorYellow
	case KindT:
		return core.ColorMagenta
	case KindS:
		return core.ColorGreen
	case KindZ:
		return core.ColorRed
	case KindJ:
		return core.ColorBlue
	case KindL:
		return core.ColorOrange
	default:
		return core.ColorDefault
	}
}
