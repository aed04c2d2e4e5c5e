package statemachine

import "errors"

// StateReader is implemented by hosts whose state can be read. attr is the
// profile's state attribute name. ok is false when the host has no such value.
type StateReader interface {
	ReadState(attr string) (st State, ok bool)
}

// StateWriter is implemented by hosts whose state can be written. Returning
// an error wrapping errors.ErrUnsupported makes the machine skip the write silently.
type StateWriter interface {
	WriteState(attr string, st State) error
}

// StateFields is a map-backed host helper. Embed it in a struct and pass a
// pointer to that struct to NewMachine. The zero value is ready to use.
type StateFields struct {
	values map[string]State
}

func (f *StateFields) ReadState(attr string) (State, bool) {
	st, ok := f.values[attr]
	return st, ok
}

func (f *StateFields) WriteState(attr string, st State) error {
	if f.values == nil {
		f.values = make(map[string]State)
	}
	f.values[attr] = st
	return nil
}

// Accessor binds one state attribute to host code. A nil Get makes the
// attribute unreadable; a nil Set makes it read-only.
type Accessor struct {
	Get func() string
	Set func(string)
}

// Accessors maps attribute names to accessors and satisfies both
// StateReader and StateWriter, letting hosts keep plain string fields.
type Accessors map[string]Accessor

func (a Accessors) ReadState(attr string) (State, bool) {
	acc, ok := a[attr]
	if !ok || acc.Get == nil {
		return "", false
	}
	return State(acc.Get()), true
}

func (a Accessors) WriteState(attr string, st State) error {
	acc, ok := a[attr]
	if !ok || acc.Set == nil {
		return errors.ErrUnsupported
	}
	acc.Set(string(st))
	return nil
}
