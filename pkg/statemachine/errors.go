package statemachine

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration marks declaration mistakes. Every builder error wraps it.
	ErrConfiguration = errors.New("statemachine: invalid configuration")

	ErrNotActivated   = errors.New("statemachine: no active profile, call InitState or ActivateProfile first")
	ErrUnknownProfile = errors.New("statemachine: unknown profile")
	ErrRegistryFrozen = errors.New("statemachine: registry is frozen, declarations must complete before machines are created")
	ErrProfileBuilt   = errors.New("statemachine: profile builder already finalized")
)

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// ErrDuplicateMeaning indicates a state was given a second meaning within one profile.
type ErrDuplicateMeaning struct {
	Profile  string
	State    string
	Existing string
	Meaning  string
}

func (e *ErrDuplicateMeaning) Error() string {
	return fmt.Sprintf("statemachine: state '%s' in profile '%s' already means '%s', cannot assign '%s'",
		e.State, e.Profile, e.Existing, e.Meaning)
}

func (e *ErrDuplicateMeaning) Unwrap() error { return ErrConfiguration }

func NewErrDuplicateMeaning(profile, state, existing, meaning string) *ErrDuplicateMeaning {
	return &ErrDuplicateMeaning{Profile: profile, State: state, Existing: existing, Meaning: meaning}
}

// ErrInvalidEvent indicates the event was never declared for the active profile.
type ErrInvalidEvent struct {
	Profile   string
	EventName string
}

func (e *ErrInvalidEvent) Error() string {
	return fmt.Sprintf("statemachine: event '%s' not registered under profile '%s'", e.EventName, e.Profile)
}

func NewErrInvalidEvent(profile, eventName string) *ErrInvalidEvent {
	return &ErrInvalidEvent{Profile: profile, EventName: eventName}
}

// ErrInvalidStateForEvent indicates the event is declared but cannot fire from the current state.
type ErrInvalidStateForEvent struct {
	Profile   string
	EventName string
	StateName string
	Reason    string
}

func (e *ErrInvalidStateForEvent) Error() string {
	return fmt.Sprintf("statemachine: event '%s' cannot fire from state '%s' in profile '%s': %s",
		e.EventName, e.StateName, e.Profile, e.Reason)
}

func NewErrInvalidStateForEvent(profile, eventName, stateName, reason string) *ErrInvalidStateForEvent {
	return &ErrInvalidStateForEvent{Profile: profile, EventName: eventName, StateName: stateName, Reason: reason}
}

// ErrInvalidState indicates a direct jump to a state that is not reachable from the current one.
type ErrInvalidState struct {
	Profile string
	From    string
	To      string
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("statemachine: state '%s' is not reachable from '%s' in profile '%s'", e.To, e.From, e.Profile)
}

func NewErrInvalidState(profile, from, to string) *ErrInvalidState {
	return &ErrInvalidState{Profile: profile, From: from, To: to}
}

// ErrUserHalt indicates a before-callback vetoed the transition.
type ErrUserHalt struct {
	Profile   string
	EventName string
	From      string
	To        string
}

func (e *ErrUserHalt) Error() string {
	return fmt.Sprintf("statemachine: event '%s' in profile '%s' halted by callback, state not updated from '%s' to '%s'",
		e.EventName, e.Profile, e.From, e.To)
}

func NewErrUserHalt(profile, eventName, from, to string) *ErrUserHalt {
	return &ErrUserHalt{Profile: profile, EventName: eventName, From: from, To: to}
}

func IsConfigurationError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

func IsDuplicateMeaningError(err error) bool {
	var e *ErrDuplicateMeaning
	return errors.As(err, &e)
}

func IsInvalidEventError(err error) bool {
	var e *ErrInvalidEvent
	return errors.As(err, &e)
}

func IsInvalidStateForEventError(err error) bool {
	var e *ErrInvalidStateForEvent
	return errors.As(err, &e)
}

func IsInvalidStateError(err error) bool {
	var e *ErrInvalidState
	return errors.As(err, &e)
}

func IsUserHaltError(err error) bool {
	var e *ErrUserHalt
	return errors.As(err, &e)
}
