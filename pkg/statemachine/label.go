package statemachine

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// DefaultProfile is the profile used when none is named.
const DefaultProfile Profile = "default"

const (
	defaultInitialState State = "open"
	defaultStateAttr          = "state"
)

// State is an opaque state label. Labels are compared after normalisation,
// so "closed", " closed" and a decomposed Unicode form of the same text are equal.
type State string

// Event names a transition request.
type Event string

// Meaning is a user-defined tag grouping states of one profile.
type Meaning string

// Profile names an independently configured state machine on a host.
type Profile string

func (s State) Name() string   { return string(s) }
func (e Event) Name() string   { return string(e) }
func (m Meaning) Name() string { return string(m) }
func (p Profile) Name() string { return string(p) }

// Normalize returns the canonical form of the label.
func (s State) Normalize() State { return State(normalizeLabel(string(s))) }

// Normalize returns the canonical form of the event name.
func (e Event) Normalize() Event { return Event(normalizeLabel(string(e))) }

// Normalize returns the canonical form of the meaning.
func (m Meaning) Normalize() Meaning { return Meaning(normalizeLabel(string(m))) }

// Normalize returns the canonical form of the profile name.
func (p Profile) Normalize() Profile { return Profile(normalizeLabel(string(p))) }

func normalizeLabel(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	return norm.NFC.String(s)
}

// States converts plain strings into normalised state labels.
func States(names ...string) []State {
	out := make([]State, 0, len(names))
	for _, n := range names {
		out = append(out, State(n).Normalize())
	}
	return out
}
