// Package state models a lift whose reaction to buttons and arrivals depends on
// whether it is idle or moving.
package state

import (
	"fmt"
	"io"
)

// liftState handles events for one lift state.
type liftState interface {
	name() string
	pressButton(l *Lift, floor int)
	arrive(l *Lift, floor int)
}

type idle struct{}

func (idle) name() string { return "idle" }

func (idle) pressButton(l *Lift, floor int) {
	fmt.Fprintf(l.w, "Button for floor %d pressed. Lift starting to move.\n", floor)
	l.target, l.hasTarget = floor, true
	l.state = moving{}
}

func (idle) arrive(l *Lift, _ int) {
	fmt.Fprintln(l.w, "Lift is idle. Already at the floor.")
}

type moving struct{}

func (moving) name() string { return "moving" }

func (moving) pressButton(l *Lift, floor int) {
	fmt.Fprintf(l.w, "Already moving. Added floor %d to queue.\n", floor)
	l.queue = append(l.queue, floor)
}

func (moving) arrive(l *Lift, floor int) {
	fmt.Fprintf(l.w, "Lift arrived at floor %d. Doors opening.\n", floor)
	l.floor = floor
	if len(l.queue) > 0 {
		next := l.queue[0]
		l.queue = l.queue[1:]
		fmt.Fprintf(l.w, "Next target: floor %d\n", next)
		l.target = next
		return
	}
	l.hasTarget = false
	l.state = idle{}
}

// Lift is the context. It starts idle at floor 0.
type Lift struct {
	w         io.Writer
	state     liftState
	floor     int
	target    int
	hasTarget bool
	queue     []int
}

// NewLift returns an idle lift that traces into w.
func NewLift(w io.Writer) *Lift {
	return &Lift{w: w, state: idle{}}
}

// PressButton requests floor.
func (l *Lift) PressButton(floor int) { l.state.pressButton(l, floor) }

// Arrive reports that the car reached floor.
func (l *Lift) Arrive(floor int) { l.state.arrive(l, floor) }

// State returns "idle" or "moving".
func (l *Lift) State() string { return l.state.name() }

// Floor is the last floor the lift arrived at.
func (l *Lift) Floor() int { return l.floor }

// Target returns the floor being travelled to, if moving.
func (l *Lift) Target() (int, bool) { return l.target, l.hasTarget }

// Queue returns a copy of the pending floors.
func (l *Lift) Queue() []int { return append([]int(nil), l.queue...) }
