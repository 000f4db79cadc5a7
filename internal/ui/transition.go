package ui

import (
	"context"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Animation timings.
const (
	PushDuration      = 300 * time.Millisecond
	PopSettleDuration = 350 * time.Millisecond
	SwitchDuration    = 300 * time.Millisecond
	FadeDuration      = 200 * time.Millisecond
	FrameInterval     = 30 * time.Millisecond
)

// TransitionKind identifies what a transition animates.
type TransitionKind int

const (
	TransitionPush TransitionKind = iota
	TransitionPop
	TransitionSwitch
	TransitionFade
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionPush:
		return "push"
	case TransitionPop:
		return "pop"
	case TransitionSwitch:
		return "switch"
	case TransitionFade:
		return "fade"
	default:
		return "unknown"
	}
}

// TransitionFrameMsg advances the transition with the matching ID.
// Frames for a transition that has already finished are ignored.
type TransitionFrameMsg struct {
	ID   uint64
	Step int
}

var transitionSeq atomic.Uint64

// Transition is one in-flight animation. Its context is cancelled when the
// transition finishes, whether it ran to the end or was superseded.
type Transition struct {
	ID       uint64
	Kind     TransitionKind
	Steps    int
	Duration time.Duration

	step   int
	ctx    context.Context
	cancel context.CancelFunc
	onStep func(progress float64)
	finish func()
	done   bool
}

func newTransition(kind TransitionKind, d time.Duration, onStep func(float64), finish func()) *Transition {
	ctx, cancel := context.WithCancel(context.Background())
	steps := int((d + FrameInterval - 1) / FrameInterval)
	if steps < 1 {
		steps = 1
	}
	t := &Transition{
		ID:       transitionSeq.Add(1),
		Kind:     kind,
		Steps:    steps,
		Duration: d,
		ctx:      ctx,
		cancel:   cancel,
		onStep:   onStep,
		finish:   finish,
	}
	if onStep != nil {
		onStep(0)
	}
	return t
}

// Context is cancelled once the transition is done.
func (t *Transition) Context() context.Context { return t.ctx }

// Step returns the last frame applied.
func (t *Transition) Step() int { return t.step }

// Done reports whether the deferred steps have run.
func (t *Transition) Done() bool { return t.done }

// Progress returns the eased progress in [0, 1].
func (t *Transition) Progress() float64 {
	return easeInOut(float64(t.step) / float64(t.Steps))
}

// Next schedules the following frame.
func (t *Transition) Next() tea.Cmd {
	id, step, ctx := t.ID, t.step+1, t.ctx
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		if ctx.Err() != nil {
			return nil
		}
		return TransitionFrameMsg{ID: id, Step: step}
	})
}

// advance applies a frame. It reports true when the last frame was reached.
func (t *Transition) advance(step int) bool {
	if t.done || step <= t.step {
		return t.done
	}
	t.step = min(step, t.Steps)
	if t.onStep != nil {
		t.onStep(t.Progress())
	}
	return t.step >= t.Steps
}

// Finish jumps to the end state and runs the deferred steps once.
func (t *Transition) Finish() {
	if t.done {
		return
	}
	t.done = true
	t.cancel()
	if t.onStep != nil {
		t.onStep(1)
	}
	if t.finish != nil {
		t.finish()
	}
}

func easeInOut(x float64) float64 {
	switch {
	case x <= 0:
		return 0
	case x >= 1:
		return 1
	case x < 0.5:
		return 2 * x * x
	default:
		y := -2*x + 2
		return 1 - y*y/2
	}
}
