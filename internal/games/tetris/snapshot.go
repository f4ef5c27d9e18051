package tetris

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	State    State
	Paused   bool
	Score    int
	Lines    int
	Pieces   int
	Kind     Kind
	X, Y     int
	Cells    Shape
	GhostY   int
	HoldKind Kind
	HoldFull bool
	CanHold  bool
	Board    string // Rows of '#' and '.'
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	cur := s.Current()
	holdKind, _, holdFull := s.Held()
	board := s.Board()

	return Snapshot{
		Tick:     g.tick,
		State:    s.State(),
		Paused:   g.paused,
		Score:    s.Score(),
		Lines:    s.Lines(),
		Pieces:   s.PiecesLocked(),
		Kind:     cur.Kind,
		X:        cur.X,
		Y:        cur.Y,
		Cells:    cur.Cells,
		GhostY:   s.GhostY(),
		HoldKind: holdKind,
		HoldFull: holdFull,
		CanHold:  s.CanHold(),
		Board:    board.String(),
	}
}
