package statemachine

import (
	"log/slog"

	"github.com/google/uuid"
)

// RegistryOption configures a Registry during construction.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for declaration warnings and inherited by machines.
func WithLogger(l *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithStrictDeclarations turns silent last-write-wins overwrites into
// configuration errors: a conflicting (event, from) destination, replacing an
// attached callback, or redeclaring a profile.
func WithStrictDeclarations(strict bool) RegistryOption {
	return func(r *Registry) { r.strict = strict }
}

// WithDefaultInitialState changes the initial state used by profiles that do not set one.
func WithDefaultInitialState(st State) RegistryOption {
	return func(r *Registry) {
		if st = st.Normalize(); st != "" {
			r.defaultInitial = st
		}
	}
}

// WithDefaultStateAttr changes the state attribute used by profiles that do not set one.
func WithDefaultStateAttr(attr string) RegistryOption {
	return func(r *Registry) {
		if attr = normalizeLabel(attr); attr != "" {
			r.defaultAttr = attr
		}
	}
}

// ProfileOption configures a profile opened with Stateful. Empty values keep
// the defaults.
type ProfileOption func(*ProfileBuilder)

func WithProfile(p Profile) ProfileOption {
	return func(b *ProfileBuilder) {
		if p = p.Normalize(); p != "" {
			b.spec.profile = p
		}
	}
}

func WithInitialState(st State) ProfileOption {
	return func(b *ProfileBuilder) {
		if st = st.Normalize(); st != "" {
			b.spec.initialState = st
		}
	}
}

// WithStateAttr names the host attribute holding this profile's state.
func WithStateAttr(attr string) ProfileOption {
	return func(b *ProfileBuilder) {
		if attr = normalizeLabel(attr); attr != "" {
			b.spec.stateAttr = attr
		}
	}
}

// EventOption configures a single event declaration.
type EventOption func(*eventConfig)

type eventConfig struct {
	callback Callback
}

// OnTransition attaches cb to the event, replacing any callback attached earlier.
func OnTransition(cb Callback) EventOption {
	return func(c *eventConfig) {
		if cb != nil {
			c.callback = cb
		}
	}
}

// MachineOption configures a Machine.
type MachineOption func(*Machine)

// WithInstanceLogger overrides the logger inherited from the registry.
func WithInstanceLogger(l *slog.Logger) MachineOption {
	return func(m *Machine) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithInstanceID sets the identifier reported by ID and attached to log records.
func WithInstanceID(id uuid.UUID) MachineOption {
	return func(m *Machine) {
		if id != uuid.Nil {
			m.id = id
		}
	}
}

// WithAccessors reads and writes state through acc instead of the host value.
// The host is still passed to callbacks.
func WithAccessors(acc Accessors) MachineOption {
	return func(m *Machine) {
		if acc != nil {
			m.reader = acc
			m.writer = acc
		}
	}
}
