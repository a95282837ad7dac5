package loop

import (
	"math"
	"time"
)

// Timer counts game time, not wall time. A once-timer stays finished
// until Reset; a repeating timer wraps around.
type Timer struct {
	duration  float64
	elapsed   float64
	repeating bool
	finished  bool
}

// NewTimer returns a stopped-at-zero timer of length d.
func NewTimer(d time.Duration, repeating bool) Timer {
	return Timer{duration: d.Seconds(), repeating: repeating}
}

// Reset restarts the timer from zero.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}

// Tick advances the timer by dt seconds and reports whether it elapsed
// during this call.
func (t *Timer) Tick(dt float64) bool {
	if t.finished && !t.repeating {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.duration {
		return false
	}
	if t.repeating {
		if t.duration > 0 {
			t.elapsed = math.Mod(t.elapsed, t.duration)
		} else {
			t.elapsed = 0
		}
		return true
	}
	t.elapsed = t.duration
	t.finished = true
	return true
}

// Finished reports whether a once-timer has run out.
func (t *Timer) Finished() bool { return t.finished }

// Remaining returns the seconds left in the current cycle.
func (t *Timer) Remaining() float64 {
	return math.Max(t.duration-t.elapsed, 0)
}

// RemainingSeconds returns the remaining time rounded up to whole seconds,
// as shown by a countdown.
func (t *Timer) RemainingSeconds() int {
	return int(math.Ceil(t.Remaining()))
}
