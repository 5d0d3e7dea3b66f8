// Package focus implements the countdown timer driven by a one-second
// tick. Each run carries a token; ticks from a superseded run are
// ignored, so at most one countdown is ever live.
package focus

import "fmt"

// State is the timer's lifecycle phase.
type State int

const (
	Idle State = iota
	Running
	Paused
)

// DefaultPresetMin is the focus length used before any preset is chosen.
const DefaultPresetMin = 25

// Timer is the focus countdown. All methods are called from the single
// event loop; there is no internal locking.
type Timer struct {
	state     State
	total     int // seconds
	remaining int // seconds
	run       int // current run token; stale ticks carry an older value
}

// New returns an idle timer loaded with the default preset.
func New() *Timer {
	secs := DefaultPresetMin * 60
	return &Timer{total: secs, remaining: secs}
}

// State returns the current phase.
func (t *Timer) State() State {
	return t.state
}

// Start begins (or resumes) the countdown and returns the run token the
// caller must attach to its ticks. Starting while running is a no-op
// that returns the live token.
func (t *Timer) Start() int {
	if t.state == Running {
		return t.run
	}
	t.state = Running
	t.run++
	return t.run
}

// Pause halts the countdown, keeping the remaining time.
func (t *Timer) Pause() {
	if t.state != Running {
		return
	}
	t.state = Paused
	t.run++ // invalidate in-flight ticks
}

// Reset stops the countdown and restores the full preset.
func (t *Timer) Reset() {
	t.state = Idle
	t.remaining = t.total
	t.run++
}

// SetPreset resets the timer to the given number of minutes.
func (t *Timer) SetPreset(minutes int) {
	t.Reset()
	t.total = minutes * 60
	t.remaining = t.total
}

// Tick consumes one second from the countdown. Ticks whose run token is
// stale (from a paused, reset, or restarted run) are ignored. Returns
// true when this tick finished the countdown; the timer then resets.
func (t *Timer) Tick(run int) (completed bool) {
	if t.state != Running || run != t.run {
		return false
	}
	if t.remaining > 0 {
		t.remaining--
	}
	if t.remaining == 0 {
		t.Reset()
		return true
	}
	return false
}

// Remaining returns the seconds left on the countdown.
func (t *Timer) Remaining() int {
	return t.remaining
}

// Display formats the remaining time as MM:SS.
func (t *Timer) Display() string {
	return fmt.Sprintf("%02d:%02d", t.remaining/60, t.remaining%60)
}

// Progress returns the elapsed fraction in [0, 1].
func (t *Timer) Progress() float64 {
	if t.total == 0 {
		return 0
	}
	return 1 - float64(t.remaining)/float64(t.total)
}
