// Package statusflow implements an ordered-step state machine shared by the
// service order, job and dispatch status vocabularies.
//
// A Flow only knows its steps and the current position. Transitions move the
// position by at most one step; anything else is rejected without changing
// state. Presentation helpers live in window.go and never mutate a Flow.
package statusflow

import (
	"errors"
	"fmt"
)

// ErrRejected is returned when a transition is outside the allowed window,
// targets an unknown step, or the flow is disabled. The flow is unchanged.
var ErrRejected = errors.New("status transition rejected")

// ErrInvalidFlow is returned by New when the step list cannot form a flow.
var ErrInvalidFlow = errors.New("invalid status flow")

// Flow is an ordered sequence of unique steps with one current step.
type Flow[S comparable] struct {
	steps    []S
	current  int
	disabled bool
}

// Transition describes the outcome of a successful transition.
type Transition[S comparable] struct {
	From    S
	To      S
	Changed bool
}

// New builds a flow over steps positioned at current.
// Steps must be unique and at least two long, and current must be one of them.
func New[S comparable](steps []S, current S) (*Flow[S], error) {
	if len(steps) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 steps, got %d", ErrInvalidFlow, len(steps))
	}

	seen := make(map[S]struct{}, len(steps))
	for _, s := range steps {
		if _, dup := seen[s]; dup {
			return nil, fmt.Errorf("%w: duplicate step %v", ErrInvalidFlow, s)
		}
		seen[s] = struct{}{}
	}

	idx := indexOf(steps, current)
	if idx < 0 {
		return nil, fmt.Errorf("%w: current step %v is not part of the flow", ErrInvalidFlow, current)
	}

	owned := make([]S, len(steps))
	copy(owned, steps)

	return &Flow[S]{steps: owned, current: idx}, nil
}

// MustNew is New for fixed vocabularies declared at package level.
func MustNew[S comparable](steps []S, current S) *Flow[S] {
	f, err := New(steps, current)
	if err != nil {
		panic(err)
	}
	return f
}

// Steps returns a copy of the ordered steps.
func (f *Flow[S]) Steps() []S {
	out := make([]S, len(f.steps))
	copy(out, f.steps)
	return out
}

// Current returns the current step.
func (f *Flow[S]) Current() S {
	return f.steps[f.current]
}

// Index returns the position of the current step.
func (f *Flow[S]) Index() int {
	return f.current
}

// Len returns the number of steps.
func (f *Flow[S]) Len() int {
	return len(f.steps)
}

// IndexOf returns the position of step, or -1 when it is not part of the flow.
func (f *Flow[S]) IndexOf(step S) int {
	return indexOf(f.steps, step)
}

func (f *Flow[S]) IsFirst() bool { return f.current == 0 }

func (f *Flow[S]) IsLast() bool { return f.current == len(f.steps)-1 }

// SetDisabled toggles the caller-controlled lock. While disabled every
// transition is rejected.
func (f *Flow[S]) SetDisabled(disabled bool) {
	f.disabled = disabled
}

// Disabled reports whether transitions are currently locked.
func (f *Flow[S]) Disabled() bool {
	return f.disabled
}

// Advance moves to the next step. Rejected at the last step.
func (f *Flow[S]) Advance() (Transition[S], error) {
	if f.disabled {
		return Transition[S]{}, fmt.Errorf("%w: flow is disabled", ErrRejected)
	}
	if f.IsLast() {
		return Transition[S]{}, fmt.Errorf("%w: %v is the last step", ErrRejected, f.Current())
	}
	return f.moveTo(f.current + 1), nil
}

// Retreat moves to the previous step. Rejected at the first step.
func (f *Flow[S]) Retreat() (Transition[S], error) {
	if f.disabled {
		return Transition[S]{}, fmt.Errorf("%w: flow is disabled", ErrRejected)
	}
	if f.IsFirst() {
		return Transition[S]{}, fmt.Errorf("%w: %v is the first step", ErrRejected, f.Current())
	}
	return f.moveTo(f.current - 1), nil
}

// CanJumpTo reports whether JumpTo(step) would succeed.
func (f *Flow[S]) CanJumpTo(step S) bool {
	if f.disabled {
		return false
	}
	j := f.IndexOf(step)
	if j < 0 {
		return false
	}
	return abs(j-f.current) <= 1
}

// JumpTo moves directly to step when it is the previous, current or next step.
// Jumping to the current step succeeds with Changed=false.
func (f *Flow[S]) JumpTo(step S) (Transition[S], error) {
	if f.disabled {
		return Transition[S]{}, fmt.Errorf("%w: flow is disabled", ErrRejected)
	}
	j := f.IndexOf(step)
	if j < 0 {
		return Transition[S]{}, fmt.Errorf("%w: unknown step %v", ErrRejected, step)
	}
	if d := abs(j - f.current); d > 1 {
		return Transition[S]{}, fmt.Errorf("%w: %v -> %v skips %d steps", ErrRejected, f.Current(), step, d-1)
	}
	return f.moveTo(j), nil
}

func (f *Flow[S]) moveTo(idx int) Transition[S] {
	from := f.Current()
	f.current = idx
	return Transition[S]{From: from, To: f.Current(), Changed: from != f.Current()}
}

func indexOf[S comparable](steps []S, step S) int {
	for i, s := range steps {
		if s == step {
			return i
		}
	}
	return -1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
