package statemachine

import (
	"maps"
	"slices"
)

// Spec is the finalized configuration of one profile. It is never modified
// after Build returns it, so it can be shared by any number of machines.
// Every accessor returns a copy.
type Spec struct {
	profile       Profile
	initialState  State
	stateAttr     string
	transitions   map[State][]State
	stateEvents   map[State][]Event
	eventStates   map[Event]map[State]State
	callbacks     map[Event]Callback
	states        []State
	meanings      map[State]Meaning
	meaningStates map[Meaning][]State
}

func newSpec(profile Profile, initial State, attr string) *Spec {
	return &Spec{
		profile:       profile,
		initialState:  initial,
		stateAttr:     attr,
		transitions:   make(map[State][]State),
		stateEvents:   make(map[State][]Event),
		eventStates:   make(map[Event]map[State]State),
		callbacks:     make(map[Event]Callback),
		meanings:      make(map[State]Meaning),
		meaningStates: make(map[Meaning][]State),
	}
}

func (s *Spec) Profile() Profile    { return s.profile }
func (s *Spec) InitialState() State { return s.initialState }
func (s *Spec) StateAttr() string   { return s.stateAttr }

// States lists every state mentioned by an event, in first-seen order.
func (s *Spec) States() []State { return slices.Clone(s.states) }

func (s *Spec) HasEvent(e Event) bool {
	_, ok := s.eventStates[e.Normalize()]
	return ok
}

// TransitionTable maps each source state to the states directly reachable from it.
func (s *Spec) TransitionTable() map[State][]State {
	return cloneSliceMap(s.transitions)
}

// StateEventsTable maps each source state to the events registered from it,
// in registration order with duplicates kept.
func (s *Spec) StateEventsTable() map[State][]Event {
	return cloneSliceMap(s.stateEvents)
}

// EventStatesTable maps each event to its source to destination pairs.
func (s *Spec) EventStatesTable() map[Event]map[State]State {
	out := make(map[Event]map[State]State, len(s.eventStates))
	for evt, pairs := range s.eventStates {
		out[evt] = maps.Clone(pairs)
	}
	return out
}

func (s *Spec) EventCallbackTable() map[Event]Callback {
	return maps.Clone(s.callbacks)
}

func (s *Spec) StateMeaningTable() map[State]Meaning {
	return maps.Clone(s.meanings)
}

func (s *Spec) MeaningStatesTable() map[Meaning][]State {
	return cloneSliceMap(s.meaningStates)
}

func (s *Spec) nextStates(from State) []State {
	return slices.Clone(s.transitions[from])
}

func (s *Spec) canReach(from, to State) bool {
	return slices.Contains(s.transitions[from], to)
}

func (s *Spec) addTransition(from, to State) {
	if !s.canReach(from, to) {
		s.transitions[from] = append(s.transitions[from], to)
	}
}

func (s *Spec) addStateEvent(from State, evt Event) {
	s.stateEvents[from] = append(s.stateEvents[from], evt)
}

func (s *Spec) addState(st State) {
	if !slices.Contains(s.states, st) {
		s.states = append(s.states, st)
	}
}

func (s *Spec) setEventState(evt Event, from, to State) {
	pairs, ok := s.eventStates[evt]
	if !ok {
		pairs = make(map[State]State)
		s.eventStates[evt] = pairs
	}
	pairs[from] = to
}

func (s *Spec) destination(evt Event, from State) (State, bool) {
	to, ok := s.eventStates[evt][from]
	return to, ok
}

func (s *Spec) addMeaning(st State, m Meaning) {
	s.meanings[st] = m
	if !slices.Contains(s.meaningStates[m], st) {
		s.meaningStates[m] = append(s.meaningStates[m], st)
	}
}

func cloneSliceMap[K comparable, V any](in map[K][]V) map[K][]V {
	out := make(map[K][]V, len(in))
	for k, v := range in {
		out[k] = slices.Clone(v)
	}
	return out
}
