package statemachine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/dmitrymomot/stateful/pkg/logger"
)

// Machine drives the state of one host object across the profiles of a
// Registry. It keeps only the active profile; the state value itself lives in
// the host and is accessed through StateReader and StateWriter.
//
// A Machine is owned by its host and is not safe for concurrent use.
type Machine struct {
	id       uuid.UUID
	registry *Registry
	host     any
	reader   StateReader
	writer   StateWriter
	active   *Spec
	logger   *slog.Logger
}

// NewMachine attaches the registry's profiles to host and freezes the
// registry. host may implement StateReader and/or StateWriter; missing
// capabilities make reads return nothing and writes become no-ops.
// No profile is active until InitState or ActivateProfile is called.
func NewMachine(registry *Registry, host any, opts ...MachineOption) *Machine {
	registry.freeze()

	m := &Machine{
		id:       uuid.New(),
		registry: registry,
		host:     host,
		logger:   registry.logger,
	}
	if r, ok := host.(StateReader); ok {
		m.reader = r
	}
	if w, ok := host.(StateWriter); ok {
		m.writer = w
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	m.logger = m.logger.With(logger.InstanceID(m.id.String()))
	return m
}

func (m *Machine) ID() uuid.UUID { return m.id }
func (m *Machine) Host() any     { return m.host }

// StateProfiles lists every profile declared on the registry.
func (m *Machine) StateProfiles() []Profile {
	return m.registry.Profiles()
}

// ActiveProfile returns the active profile, if any.
func (m *Machine) ActiveProfile() (Profile, bool) {
	if m.active == nil {
		return "", false
	}
	return m.active.profile, true
}

// InitState activates profile (DefaultProfile when omitted) and writes its
// initial state to the host without any transition check. The active profile
// only changes once the write succeeded.
func (m *Machine) InitState(profile ...Profile) error {
	p := DefaultProfile
	if len(profile) > 0 && profile[0].Normalize() != "" {
		p = profile[0]
	}
	spec, err := m.registry.lookup(p)
	if err != nil {
		return err
	}
	if err := m.write(spec, spec.initialState); err != nil {
		return err
	}
	m.active = spec
	return nil
}

// ActivateProfile switches the active profile and leaves every stored state untouched.
func (m *Machine) ActivateProfile(p Profile) error {
	spec, err := m.registry.lookup(p)
	if err != nil {
		return err
	}
	m.active = spec
	return nil
}

// CurrentState reads the active profile's state from the host. ok is false
// when no profile is active, the host is not readable or holds no value.
func (m *Machine) CurrentState() (st State, ok bool) {
	if m.active == nil || m.reader == nil {
		return "", false
	}
	st, ok = m.reader.ReadState(m.active.stateAttr)
	if !ok {
		return "", false
	}
	st = st.Normalize()
	return st, st != ""
}

func (m *Machine) AtInitialState() bool {
	st, ok := m.CurrentState()
	return ok && st == m.active.initialState
}

// NextStates returns the states reachable from the current one. An empty
// result is a valid terminal condition.
func (m *Machine) NextStates() []State {
	st, ok := m.CurrentState()
	if !ok {
		return nil
	}
	return m.active.nextStates(st)
}

// NextEvents returns the events registered with the current state as source.
func (m *Machine) NextEvents() []Event {
	st, ok := m.CurrentState()
	if !ok {
		return nil
	}
	return slices.Clone(m.active.stateEvents[st])
}

// AllStates lists every state of the active profile.
func (m *Machine) AllStates() []State {
	if m.active == nil {
		return nil
	}
	return m.active.States()
}

// CurrentStateMeaning returns the meaning of the current state, if one was assigned.
func (m *Machine) CurrentStateMeaning() (Meaning, bool) {
	st, ok := m.CurrentState()
	if !ok {
		return "", false
	}
	meaning, ok := m.active.meanings[st]
	return meaning, ok
}

// StatesOfMeaning lists the states of the active profile tagged with meaning.
func (m *Machine) StatesOfMeaning(meaning Meaning) []State {
	if m.active == nil {
		return nil
	}
	return slices.Clone(m.active.meaningStates[meaning.Normalize()])
}

// TryApplyState jumps directly to st and reports whether it did.
// It never writes when st is not in NextStates.
func (m *Machine) TryApplyState(st State) bool {
	return m.ApplyState(st) == nil
}

// ApplyState jumps directly to st, failing with ErrInvalidState when st is
// not in NextStates. No callbacks run.
func (m *Machine) ApplyState(st State) error {
	if m.active == nil {
		return ErrNotActivated
	}
	st = st.Normalize()
	cur, _ := m.CurrentState()
	if cur == "" || !m.active.canReach(cur, st) {
		return NewErrInvalidState(string(m.active.profile), string(cur), string(st))
	}
	if err := m.write(m.active, st); err != nil {
		return err
	}
	m.logger.Debug("state applied",
		logger.Profile(string(m.active.profile)),
		logger.Transition(string(cur), string(st)),
	)
	return nil
}

// TriggerEvent moves the host along evt from its current state.
//
// When the current state is absent nothing happens and nil is returned.
// Otherwise the event's callback runs with PhaseBefore; Halt aborts with
// ErrUserHalt and a callback error aborts with that error wrapped, leaving the
// state unchanged. After the write the callback runs again with PhaseAfter,
// followed by every callback in after; the first error stops the chain.
func (m *Machine) TriggerEvent(ctx context.Context, evt Event, after ...Callback) error {
	if m.active == nil {
		return ErrNotActivated
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cur, ok := m.CurrentState()
	if !ok {
		return nil
	}

	spec := m.active
	evt = evt.Normalize()
	profile := string(spec.profile)

	if !spec.HasEvent(evt) {
		return NewErrInvalidEvent(profile, string(evt))
	}
	to, ok := spec.destination(evt, cur)
	if !ok {
		return NewErrInvalidStateForEvent(profile, string(evt), string(cur), "event not valid from this state")
	}
	if to == "" {
		return NewErrInvalidStateForEvent(profile, string(evt), string(cur), "destination state is empty")
	}

	t := Transition{
		Phase:   PhaseBefore,
		Event:   evt,
		From:    cur,
		To:      to,
		Profile: spec.profile,
		Host:    m.host,
	}

	cb := spec.callbacks[evt]
	if cb != nil {
		decision, err := cb(ctx, t)
		if err != nil {
			m.logger.ErrorContext(ctx, "before callback failed, state not updated",
				logger.Profile(profile),
				logger.Event(string(evt)),
				logger.Transition(string(cur), string(to)),
				logger.Error(err),
			)
			return fmt.Errorf("statemachine: before callback for event '%s': %w", evt, err)
		}
		if decision == Halt {
			err := NewErrUserHalt(profile, string(evt), string(cur), string(to))
			m.logger.ErrorContext(ctx, "event halted by callback, state not updated",
				logger.Profile(profile),
				logger.Event(string(evt)),
				logger.Transition(string(cur), string(to)),
				logger.Error(err),
			)
			return err
		}
	}

	if err := m.write(spec, to); err != nil {
		return err
	}
	m.logger.DebugContext(ctx, "event triggered",
		logger.Profile(profile),
		logger.Event(string(evt)),
		logger.Transition(string(cur), string(to)),
	)

	t.Phase = PhaseAfter
	if cb != nil {
		if _, err := cb(ctx, t); err != nil {
			return fmt.Errorf("statemachine: after callback for event '%s': %w", evt, err)
		}
	}
	for _, extra := range after {
		if extra == nil {
			continue
		}
		if _, err := extra(ctx, t); err != nil {
			return fmt.Errorf("statemachine: after callback for event '%s': %w", evt, err)
		}
	}
	return nil
}

func (m *Machine) write(spec *Spec, st State) error {
	if m.writer == nil {
		return nil
	}
	err := m.writer.WriteState(spec.stateAttr, st)
	if err == nil || errors.Is(err, errors.ErrUnsupported) {
		return nil
	}
	return fmt.Errorf("statemachine: write state '%s' to '%s': %w", st, spec.stateAttr, err)
}
