// Package config provides YAML-based game configuration loading for the
// tetris binary.
package config

import (
	"errors"
	"fmt"
	"time"
)

// LineScoreCount is the number of entries in the line-clear score table.
// Index n is awarded for clearing n rows; four or more rows use the last entry.
const LineScoreCount = 5

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
	Display TetrisDisplay `yaml:"display"`
}

// TetrisTiming defines gravity and key autorepeat timings in milliseconds.
type TetrisTiming struct {
	FallIntervalMs int `yaml:"fall_interval_ms"`
	RepeatDelayMs  int `yaml:"repeat_delay_ms"`
	RepeatRateMs   int `yaml:"repeat_rate_ms"`
	ReleaseGraceMs int `yaml:"release_grace_ms"` // Idle time after which a direction counts as released
}

// TetrisScoring defines the line-clear score table.
type TetrisScoring struct {
	LineScores []int `yaml:"line_scores"`
}

// TetrisDisplay defines presentation toggles.
type TetrisDisplay struct {
	Ghost bool `yaml:"ghost"`
	Bell  bool `yaml:"bell"` // Ring the terminal bell on line clear and game over
}

// FallInterval returns the gravity interval.
func (t TetrisTiming) FallInterval() time.Duration {
	return time.Duration(t.FallIntervalMs) * time.Millisecond
}

// RepeatDelay returns the delay before a held direction starts repeating.
func (t TetrisTiming) RepeatDelay() time.Duration {
	return time.Duration(t.RepeatDelayMs) * time.Millisecond
}

// RepeatRate returns the interval between autorepeat moves.
func (t TetrisTiming) RepeatRate() time.Duration {
	return time.Duration(t.RepeatRateMs) * time.Millisecond
}

// ReleaseGrace returns how long a direction stays held without input.
func (t TetrisTiming) ReleaseGrace() time.Duration {
	return time.Duration(t.ReleaseGraceMs) * time.Millisecond
}

// ScoreTable returns the line score table as a fixed-size array.
// Missing entries are zero; call Validate first to reject short tables.
func (s TetrisScoring) ScoreTable() [LineScoreCount]int {
	var table [LineScoreCount]int
	copy(table[:], s.LineScores)
	return table
}

// Validate reports every invalid field in the configuration.
func (c TetrisConfig) Validate() error {
	var errs []error

	positive := []struct {
		name  string
		value int
	}{
		{"timing.fall_interval_ms", c.Timing.FallIntervalMs},
		{"timing.repeat_delay_ms", c.Timing.RepeatDelayMs},
		{"timing.repeat_rate_ms", c.Timing.RepeatRateMs},
		{"timing.release_grace_ms", c.Timing.ReleaseGraceMs},
	}
	for _, p := range positive {
		if p.value <= 0 {
			errs = append(errs, fmt.Errorf("config: %s must be positive, got %d", p.name, p.value))
		}
	}

	// A tap must be released before the repeat delay runs out
	if c.Timing.ReleaseGraceMs >= c.Timing.RepeatDelayMs {
		errs = append(errs, fmt.Errorf("config: timing.release_grace_ms (%d) must be less than timing.repeat_delay_ms (%d)",
			c.Timing.ReleaseGraceMs, c.Timing.RepeatDelayMs))
	}

	if n := len(c.Scoring.LineScores); n != LineScoreCount {
		errs = append(errs, fmt.Errorf("config: scoring.line_scores must have %d entries, got %d", LineScoreCount, n))
	}
	for i, v := range c.Scoring.LineScores {
		if v < 0 {
			errs = append(errs, fmt.Errorf("config: scoring.line_scores[%d] must not be negative, got %d", i, v))
		}
	}

	return errors.Join(errs...)
}
