package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// State is the session lifecycle state.
type State int

const (
	Running State = iota
	GameOver
)

// String returns the state name.
func (s State) String() string {
	if s == GameOver {
		return "game_over"
	}
	return "running"
}

// Options holds the session timings and score table.
type Options struct {
	FallInterval time.Duration
	RepeatDelay  time.Duration
	RepeatRate   time.Duration
	LineScores   [5]int // Points for clearing 0..4+ rows at once
}

// DefaultOptions returns the classic timings: one row per 500ms,
// autorepeat after 160ms then every 60ms.
func DefaultOptions() Options {
	return Options{
		FallInterval: 500 * time.Millisecond,
		RepeatDelay:  160 * time.Millisecond,
		RepeatRate:   60 * time.Millisecond,
		LineScores:   [5]int{0, 100, 300, 500, 800},
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.FallInterval <= 0 {
		o.FallInterval = def.FallInterval
	}
	if o.RepeatDelay <= 0 {
		o.RepeatDelay = def.RepeatDelay
	}
	if o.RepeatRate <= 0 {
		o.RepeatRate = def.RepeatRate
	}
	return o
}

// Session owns the board, the falling piece, the hold slot and the score.
// It is not safe for concurrent use; a single loop drives it through the
// mutators and Tick.
//
// Rejected moves never fail loudly: the mutator simply leaves state as it was.
// After the session reaches GameOver every mutator except Restart is a no-op.
type Session struct {
	opts Options
	rng  *rand.Rand

	board Board
	piece Piece
	hold  HoldSlot

	state  State
	score  int
	lines  int
	locked int

	fall   time.Duration // Time since the last gravity step
	repeat [2]repeater   // Indexed by Direction

	events []core.Event
}

// NewSession starts a game. All randomness is drawn from rng, so equal
// seeds and equal inputs replay the same game.
func NewSession(rng *rand.Rand, opts Options) *Session {
	s := &Session{
		opts: opts.withDefaults(),
		rng:  rng,
	}
	s.Restart()
	return s
}

// Restart clears the board, hold slot, score and timers and spawns a new piece.
func (s *Session) Restart() {
	s.board.Reset()
	s.hold.Reset()
	s.state = Running
	s.score = 0
	s.lines = 0
	s.locked = 0
	s.fall = 0
	s.repeat = [2]repeater{}
	s.spawn(RandomPiece(s.rng))
}

// MoveLeft shifts the piece one column left if the target is free.
func (s *Session) MoveLeft() {
	s.shift(DirLeft)
}

// MoveRight shifts the piece one column right if the target is free.
func (s *Session) MoveRight() {
	s.shift(DirRight)
}

func (s *Session) shift(d Direction) {
	if s.state != Running {
		return
	}
	if p, ok := s.piece.Moved(&s.board, d.dx(), 0); ok {
		s.piece = p
		s.emit(core.EventMoved, 0)
	}
}

// SoftDrop moves the piece one row down if the target is free.
// A blocked soft drop does not lock; gravity or a hard drop does that.
func (s *Session) SoftDrop() {
	if s.state != Running {
		return
	}
	if p, ok := s.piece.Moved(&s.board, 0, 1); ok {
		s.piece = p
		s.emit(core.EventMoved, 0)
	}
}

// HardDrop drops the piece to its resting row and locks it.
func (s *Session) HardDrop() {
	if s.state != Running {
		return
	}
	s.piece.Y = GhostY(&s.board, s.piece)
	s.lockAndAdvance()
}

// Rotate turns the piece a quarter turn, trying each kick offset in order.
func (s *Session) Rotate() {
	if s.state != Running {
		return
	}
	if p, ok := s.piece.Rotated(&s.board); ok {
		s.piece = p
		s.emit(core.EventRotated, 0)
	}
}

// Hold swaps the piece with the hold slot, once per lock cycle.
func (s *Session) Hold() {
	if s.state != Running {
		return
	}
	next, ok := s.hold.Swap(s.piece, func() Piece { return RandomPiece(s.rng) })
	if !ok {
		return
	}
	s.emit(core.EventHeld, 0)
	s.spawn(next)
}

// Press starts holding a direction: the piece moves once immediately and
// autorepeat is armed. Pressing an already held direction re-arms it.
func (s *Session) Press(d Direction) {
	if s.state != Running {
		return
	}
	s.shift(d)
	s.repeat[d].press(s.opts.RepeatDelay)
}

// Release stops autorepeat for d only.
func (s *Session) Release(d Direction) {
	s.repeat[d].release()
}

// Pressed reports whether d is currently held.
func (s *Session) Pressed(d Direction) bool {
	return s.repeat[d].pressed
}

// Tick advances autorepeat and gravity by dt.
func (s *Session) Tick(dt time.Duration) {
	if s.state != Running {
		return
	}

	for _, d := range []Direction{DirLeft, DirRight} {
		if s.repeat[d].advance(dt, s.opts.RepeatRate) {
			s.shift(d)
		}
	}

	s.fall += dt
	if s.fall > s.opts.FallInterval {
		if p, ok := s.piece.Moved(&s.board, 0, 1); ok {
			s.piece = p
		} else {
			s.lockAndAdvance()
		}
		s.fall = 0
	}
}

// lockAndAdvance commits the piece, clears rows, scores and spawns the next piece.
func (s *Session) lockAndAdvance() {
	s.board.Lock(s.piece.Cells, s.piece.X, s.piece.Y)
	s.locked++
	s.emit(core.EventLocked, 0)

	if cleared := s.board.ClearLines(); cleared > 0 {
		s.lines += cleared
		s.score += s.opts.LineScores[min(cleared, len(s.opts.LineScores)-1)]
		s.emit(core.EventLinesCleared, cleared)
	}

	s.spawn(RandomPiece(s.rng))
	s.hold.Rearm()
}

// spawn makes p current and ends the game if it does not fit.
func (s *Session) spawn(p Piece) {
	s.piece = p
	if s.board.Collides(p.Cells, p.X, p.Y) {
		s.state = GameOver
		s.repeat = [2]repeater{}
		s.emit(core.EventGameOver, 0)
	}
}

func (s *Session) emit(kind core.EventKind, lines int) {
	s.events = append(s.events, core.Event{Kind: kind, Lines: lines})
}

// Events returns and clears the notifications raised since the last call.
func (s *Session) Events() []core.Event {
	ev := s.events
	s.events = nil
	return ev
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Lines returns the total number of rows cleared.
func (s *Session) Lines() int { return s.lines }

// PiecesLocked returns how many pieces have been committed to the board.
func (s *Session) PiecesLocked() int { return s.locked }

// Board returns a copy of the board.
func (s *Session) Board() Board { return s.board }

// Current returns the falling piece.
func (s *Session) Current() Piece { return s.piece }

// GhostY returns the row the current piece would land on.
func (s *Session) GhostY() int { return GhostY(&s.board, s.piece) }

// Held returns the contents of the hold slot.
func (s *Session) Held() (Kind, Shape, bool) { return s.hold.Held() }

// CanHold reports whether Hold would currently swap.
func (s *Session) CanHold() bool { return s.hold.Permitted() }
