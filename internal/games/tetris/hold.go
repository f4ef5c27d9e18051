package tetris

// HoldSlot banks one piece for later. It may be used once per lock cycle.
type HoldSlot struct {
	kind  Kind
	cells Shape
	full  bool
	used  bool // Set by a successful swap, cleared by Rearm
}

// Held returns the banked kind and offsets, if any.
func (h *HoldSlot) Held() (Kind, Shape, bool) {
	return h.kind, h.cells, h.full
}

// Permitted reports whether a swap is currently allowed.
func (h *HoldSlot) Permitted() bool {
	return !h.used
}

// Swap banks cur and returns the piece that replaces it. An empty slot
// takes the replacement from spawn; an occupied slot hands back its piece
// at the spawn origin. The banked offsets are stored exactly as cur had them.
// Returns cur and false when a swap was already used this cycle.
func (h *HoldSlot) Swap(cur Piece, spawn func() Piece) (Piece, bool) {
	if h.used {
		return cur, false
	}

	var next Piece
	if h.full {
		next = Piece{Kind: h.kind, Cells: h.cells, X: SpawnX, Y: SpawnY}
	} else {
		next = spawn()
	}

	h.kind, h.cells, h.full = cur.Kind, cur.Cells, true
	h.used = true
	return next, true
}

// Rearm allows the next swap.
func (h *HoldSlot) Rearm() {
	h.used = false
}

// Reset empties the slot and allows a swap.
func (h *HoldSlot) Reset() {
	*h = HoldSlot{}
}
