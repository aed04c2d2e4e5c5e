// Package statemachine attaches declarative finite-state-machine behaviour to
// arbitrary host objects.
//
// A host type declares one or more profiles on a Registry. Each profile is an
// independent state machine with its own initial state, its own host
// attribute holding the current state, its events and optional state
// meanings. At run time a Machine binds the registry to one host value,
// tracks which profile is active and validates every state change against the
// active profile's tables.
//
// # Declaring profiles
//
//	reg := statemachine.NewRegistry()
//	reg.MustDeclare(func(p *statemachine.ProfileBuilder) error {
//	    if err := p.Event("close", []statemachine.Edge{statemachine.Move("open", "closed")}); err != nil {
//	        return err
//	    }
//	    if err := p.Event("kiv", []statemachine.Edge{
//	        statemachine.Move("open", "kiv"),
//	        statemachine.Move("closed", "kiv"),
//	    }); err != nil {
//	        return err
//	    }
//	    return p.StateMeaning(map[statemachine.State]statemachine.Meaning{"open": "active"})
//	})
//
// Registering the same event again adds source states. Callbacks are attached
// with OnTransition and run twice per transition: with PhaseBefore, where
// returning Halt or an error vetoes the change, and with PhaseAfter once the
// host already holds the new state.
//
// # Hosts
//
// The machine never stores state itself. Hosts implement StateReader and
// StateWriter (or embed StateFields, or supply Accessors). A host that is not
// readable has no current state; a host that is not writable silently ignores
// writes.
//
// # Transitions
//
// ApplyState and TryApplyState jump directly to a state reachable from the
// current one. TriggerEvent performs an event-driven transition and enforces
// the callback protocol. Failed operations never modify the host.
//
// # Error Handling
//
// Declaration mistakes wrap ErrConfiguration. Runtime failures are typed and
// can be inspected with IsInvalidEventError, IsInvalidStateForEventError,
// IsInvalidStateError and IsUserHaltError.
//
// # Concurrency
//
// Declarations must finish before the first NewMachine call, which freezes
// the registry. Frozen registries and their Specs are safe to share across
// goroutines. A Machine is owned by its host and performs no locking.
package statemachine
