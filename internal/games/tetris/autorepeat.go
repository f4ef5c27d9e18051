package tetris

import "time"

// Direction is a horizontal input that supports autorepeat.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (d Direction) dx() int {
	if d == DirLeft {
		return -1
	}
	return 1
}

// repeater tracks how long a direction has been held and when it next repeats.
// The zero value is idle.
type repeater struct {
	pressed     bool
	justPressed bool // Set until the tick that delivered the press has passed
	held        time.Duration
	next        time.Duration // Held time that must be exceeded to fire
}

func (r *repeater) press(delay time.Duration) {
	*r = repeater{pressed: true, justPressed: true, next: delay}
}

func (r *repeater) release() {
	*r = repeater{}
}

// advance adds dt of held time and reports whether a repeat is due.
// At most one repeat fires per call; repeats missed during a long frame are dropped.
// Held time starts counting on the tick after the press.
func (r *repeater) advance(dt, rate time.Duration) bool {
	if !r.pressed {
		return false
	}
	if r.justPressed {
		r.justPressed = false
		return false
	}
	r.held += dt
	if r.held <= r.next {
		return false
	}
	r.next += rate
	for r.next <= r.held {
		r.next += rate
	}
	return true
}
