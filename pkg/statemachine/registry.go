package statemachine

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/stateful/pkg/logger"
)

// Registry holds the profiles declared for one host type.
//
// Declarations happen through Stateful/Declare and must complete before the
// first Machine is created; NewMachine freezes the registry and later
// declarations fail with ErrRegistryFrozen. A frozen registry is safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	specs  map[Profile]*Spec
	order  []Profile
	frozen bool

	strict         bool
	defaultInitial State
	defaultAttr    string
	logger         *slog.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		specs:          make(map[Profile]*Spec),
		defaultInitial: defaultInitialState,
		defaultAttr:    defaultStateAttr,
		logger:         slog.Default().With(logger.Component("statemachine")),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Stateful opens a profile for declaration. The profile defaults to
// DefaultProfile, its initial state to "open" and its state attribute to
// "state" unless the registry was configured otherwise.
func (r *Registry) Stateful(opts ...ProfileOption) *ProfileBuilder {
	b := &ProfileBuilder{
		registry: r,
		spec:     newSpec(DefaultProfile, r.defaultInitial, r.defaultAttr),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

// Declare opens a profile, runs declare against it and builds it.
//
//	spec, err := reg.Declare(func(p *statemachine.ProfileBuilder) error {
//	    return p.Event("close", []statemachine.Edge{statemachine.Move("open", "closed")})
//	}, statemachine.WithInitialState("open"))
func (r *Registry) Declare(declare func(*ProfileBuilder) error, opts ...ProfileOption) (*Spec, error) {
	b := r.Stateful(opts...)
	if declare != nil {
		if err := declare(b); err != nil {
			return nil, fmt.Errorf("declare profile '%s': %w", b.Profile(), err)
		}
	}
	return b.Build()
}

// MustDeclare works like Declare but panics on error.
func (r *Registry) MustDeclare(declare func(*ProfileBuilder) error, opts ...ProfileOption) *Spec {
	spec, err := r.Declare(declare, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to declare state profile: %v", err))
	}
	return spec
}

// Spec returns the finalized profile.
func (r *Registry) Spec(p Profile) (*Spec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[p.Normalize()]
	return spec, ok
}

// Profiles lists declared profile names in declaration order.
func (r *Registry) Profiles() []Profile {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Frozen reports whether a machine has been created from this registry.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

func (r *Registry) lookup(p Profile) (*Spec, error) {
	spec, ok := r.Spec(p)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownProfile, p)
	}
	return spec, nil
}

func (r *Registry) register(spec *Spec) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return ErrRegistryFrozen
	}

	if _, exists := r.specs[spec.profile]; exists {
		if r.strict {
			return configError("profile '%s' is already declared", spec.profile)
		}
		r.logger.Warn("state profile redeclared, previous declaration replaced",
			logger.Profile(string(spec.profile)),
		)
	} else {
		r.order = append(r.order, spec.profile)
	}
	r.specs[spec.profile] = spec
	return nil
}

func (r *Registry) freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}
