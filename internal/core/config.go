package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// EventKind identifies a notification raised by a game during a step.
type EventKind int

const (
	EventMoved        EventKind = iota // Piece translated (left, right, soft drop)
	EventRotated                       // Piece rotated
	EventHeld                          // Piece swapped into the hold slot
	EventLocked                        // Piece committed into the board
	EventLinesCleared                  // One or more rows cleared
	EventGameOver                      // Game reached its terminal state
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventRotated:
		return "rotated"
	case EventHeld:
		return "held"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines_cleared"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification. The platform may react to it
// (sound cue, log line) but the game never waits for it.
type Event struct {
	Kind  EventKind
	Lines int // Rows cleared, set for EventLinesCleared
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
