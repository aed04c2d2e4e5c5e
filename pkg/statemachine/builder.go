package statemachine

import (
	"cmp"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/stateful/pkg/logger"
)

// ProfileBuilder collects the declarations of one profile. It is returned by
// Registry.Stateful and turned into an immutable Spec by Build.
// A builder is not safe for concurrent use.
type ProfileBuilder struct {
	registry *Registry
	spec     *Spec
	built    bool
}

// Profile returns the name the profile will be registered under.
func (b *ProfileBuilder) Profile() Profile {
	return b.spec.profile
}

// Event registers name for every edge. Re-registering an event adds source
// states; a repeated (event, from) pair takes the latest destination unless the
// registry is strict. The edges slice must not be empty.
func (b *ProfileBuilder) Event(name Event, edges []Edge, opts ...EventOption) error {
	if b.built {
		return ErrProfileBuilt
	}

	name = name.Normalize()
	if name == "" {
		return configError("event name cannot be empty")
	}
	if len(edges) == 0 {
		return configError("event '%s' declares no transitions", name)
	}

	cfg := &eventConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	// Validate everything first so a rejected declaration leaves no trace.
	normalized := make([]Edge, 0, len(edges))
	seen := make(map[State]State, len(edges))
	for _, e := range edges {
		from, to := e.From.Normalize(), e.To.Normalize()
		if from == "" || to == "" {
			return configError("event '%s' has an empty state in transition '%s' -> '%s'", name, e.From, e.To)
		}
		if b.registry.strict {
			if prev, ok := seen[from]; ok && prev != to {
				return configError("event '%s' maps '%s' to both '%s' and '%s'", name, from, prev, to)
			}
			if prev, ok := b.spec.destination(name, from); ok && prev != to {
				return configError("event '%s' already maps '%s' to '%s', cannot remap to '%s'", name, from, prev, to)
			}
		}
		seen[from] = to
		normalized = append(normalized, Edge{From: from, To: to})
	}
	_, hasCallback := b.spec.callbacks[name]
	if cfg.callback != nil && hasCallback && b.registry.strict {
		return configError("event '%s' already has a callback", name)
	}

	for _, e := range normalized {
		if prev, ok := b.spec.destination(name, e.From); ok && prev != e.To {
			b.registry.logger.Warn("event destination overwritten",
				logger.Profile(string(b.spec.profile)),
				logger.Event(string(name)),
				logger.State(string(e.From)),
				slog.String("previous", string(prev)),
				slog.String("current", string(e.To)),
			)
		}
		b.spec.addTransition(e.From, e.To)
		b.spec.addStateEvent(e.From, name)
		b.spec.setEventState(name, e.From, e.To)
		b.spec.addState(e.From)
		b.spec.addState(e.To)
	}

	if cfg.callback != nil {
		if hasCallback {
			b.registry.logger.Warn("event callback replaced",
				logger.Profile(string(b.spec.profile)),
				logger.Event(string(name)),
			)
		}
		b.spec.callbacks[name] = cfg.callback
	}
	return nil
}

// StateMeaning tags states with meanings. A state can carry one meaning per
// profile; assigning another, even the same value again, fails with
// ErrDuplicateMeaning and records nothing from this call.
func (b *ProfileBuilder) StateMeaning(meanings map[State]Meaning) error {
	if b.built {
		return ErrProfileBuilt
	}

	type pair struct {
		state   State
		meaning Meaning
	}
	pairs := make([]pair, 0, len(meanings))
	for st, m := range meanings {
		pairs = append(pairs, pair{state: st.Normalize(), meaning: m.Normalize()})
	}
	slices.SortFunc(pairs, func(x, y pair) int { return cmp.Compare(x.state, y.state) })

	assigned := maps.Clone(b.spec.meanings)
	for _, p := range pairs {
		if p.state == "" || p.meaning == "" {
			return configError("state meaning '%s' -> '%s' has an empty label", p.state, p.meaning)
		}
		if existing, ok := assigned[p.state]; ok {
			return NewErrDuplicateMeaning(string(b.spec.profile), string(p.state), string(existing), string(p.meaning))
		}
		assigned[p.state] = p.meaning
	}

	for _, p := range pairs {
		b.spec.addMeaning(p.state, p.meaning)
		b.registry.logger.Debug("state meaning recorded",
			logger.Profile(string(b.spec.profile)),
			logger.State(string(p.state)),
			logger.Meaning(string(p.meaning)),
		)
	}
	return nil
}

// Build finalizes the profile and registers it. The builder cannot be used afterwards.
func (b *ProfileBuilder) Build() (*Spec, error) {
	if b.built {
		return nil, ErrProfileBuilt
	}
	if err := b.registry.register(b.spec); err != nil {
		return nil, err
	}
	b.built = true
	return b.spec, nil
}
