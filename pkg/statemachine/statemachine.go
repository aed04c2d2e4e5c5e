package statemachine

import "context"

// Phase tells a callback whether the state has been written yet.
type Phase string

const (
	PhaseBefore Phase = "before"
	PhaseAfter  Phase = "after"
)

// Decision is a before-callback's verdict. The zero value proceeds.
type Decision int

const (
	Proceed Decision = iota
	Halt
)

// Transition describes a state change handed to callbacks.
type Transition struct {
	Phase   Phase
	Event   Event
	From    State
	To      State
	Profile Profile
	Host    any
}

// Callback is attached to an event and runs before and after the state write.
// In the before phase Halt vetoes the change and a non-nil error aborts it;
// either way the host is not written. In the after phase the Decision is
// ignored and an error is returned to the caller with the new state in place.
type Callback func(ctx context.Context, t Transition) (Decision, error)

// Edge is one source to destination pair of an event.
type Edge struct {
	From State
	To   State
}

// Move is shorthand for Edge{From: from, To: to}.
func Move(from, to State) Edge {
	return Edge{From: from, To: to}
}
