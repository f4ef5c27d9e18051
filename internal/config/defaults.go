package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisYAML returns the embedded default configuration document.
func DefaultTetrisYAML() []byte {
	out := make([]byte, len(defaultTetrisYAML))
	copy(out, defaultTetrisYAML)
	return out
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Timing: TetrisTiming{
			FallIntervalMs: 500,
			RepeatDelayMs:  160,
			RepeatRateMs:   60,
			ReleaseGraceMs: 120,
		},
		Scoring: TetrisScoring{
			LineScores: []int{0, 100, 300, 500, 800},
		},
		Display: TetrisDisplay{
			Ghost: true,
			Bell:  false,
		},
	}
}
