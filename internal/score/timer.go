package score

import (
	"fmt"
	"time"
)

// DefaultRound is the round length a new timer is programmed with.
const DefaultRound = 30 * time.Second

// MaxRound is the longest round a timer can be programmed with.
const MaxRound = 59*time.Minute + 59*time.Second

// TimerState is the state of a countdown.
type TimerState int

const (
	TimerStopped TimerState = iota
	TimerRunning
	TimerPaused
	TimerExpired
)

func (s TimerState) String() string {
	switch s {
	case TimerStopped:
		return "stopped"
	case TimerRunning:
		return "running"
	case TimerPaused:
		return "paused"
	case TimerExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Timer is a whole-second countdown. It does not own a clock; the caller
// feeds it elapsed time with Tick.
type Timer struct {
	programmed time.Duration
	remaining  time.Duration
	state      TimerState
}

// NewTimer creates a stopped timer programmed with DefaultRound.
func NewTimer() *Timer {
	return &Timer{programmed: DefaultRound, remaining: DefaultRound}
}

// Programmed returns the round length.
func (t *Timer) Programmed() time.Duration { return t.programmed }

// Remaining returns the time left in the round.
func (t *Timer) Remaining() time.Duration { return t.remaining }

// State returns the countdown state.
func (t *Timer) State() TimerState { return t.state }

// Program sets the round length and stops the timer.
func (t *Timer) Program(minutes, seconds int) error {
	if minutes < 0 || minutes > 59 || seconds < 0 || seconds > 59 {
		return fmt.Errorf("program timer: %02d:%02d out of range", minutes, seconds)
	}
	d := time.Duration(minutes)*time.Minute + time.Duration(seconds)*time.Second
	if d == 0 {
		return fmt.Errorf("program timer: round must be longer than zero")
	}
	t.programmed = d
	t.Stop()
	return nil
}

// Start runs the countdown, resuming if paused.
func (t *Timer) Start() {
	switch t.state {
	case TimerRunning:
		return
	case TimerStopped, TimerExpired:
		t.remaining = t.programmed
	}
	t.state = TimerRunning
}

// Pause holds the countdown.
func (t *Timer) Pause() {
	if t.state == TimerRunning {
		t.state = TimerPaused
	}
}

// Toggle starts a stopped or paused timer and pauses a running one.
func (t *Timer) Toggle() {
	if t.state == TimerRunning {
		t.Pause()
	} else {
		t.Start()
	}
}

// Stop ends the countdown and rewinds it.
func (t *Timer) Stop() {
	t.state = TimerStopped
	t.remaining = t.programmed
}

// Reset rewinds to the programmed length without changing whether it runs.
func (t *Timer) Reset() {
	t.remaining = t.programmed
	if t.state == TimerExpired {
		t.state = TimerStopped
	}
}

// Tick takes d off a running timer. It reports true on the tick that
// reaches zero.
func (t *Timer) Tick(d time.Duration) bool {
	if t.state != TimerRunning {
		return false
	}
	t.remaining -= d
	if t.remaining > 0 {
		return false
	}
	t.remaining = 0
	t.state = TimerExpired
	return true
}

// String formats the remaining time as mm:ss.
func (t *Timer) String() string {
	return FormatClock(t.remaining)
}

// FormatClock formats d as mm:ss, rounding up to the next whole second.
func FormatClock(d time.Duration) string {
	secs := int((d + time.Second - 1) / time.Second)
	if secs < 0 {
		secs = 0
	}
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
