package statemachine_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/stateful/pkg/logger"
	"github.com/dmitrymomot/stateful/pkg/statemachine"
)

const (
	Open     = statemachine.State("open")
	Closed   = statemachine.State("closed")
	KIV      = statemachine.State("kiv")
	Archived = statemachine.State("archived")

	Close   = statemachine.Event("close")
	Kiv     = statemachine.Event("kiv")
	Reopen  = statemachine.Event("reopen")
	Archive = statemachine.Event("archive")
)

type ticket struct {
	statemachine.StateFields
}

func edges(pairs ...string) []statemachine.Edge {
	out := make([]statemachine.Edge, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, statemachine.Move(statemachine.State(pairs[i]), statemachine.State(pairs[i+1])))
	}
	return out
}

func halt(context.Context, statemachine.Transition) (statemachine.Decision, error) {
	return statemachine.Halt, nil
}

// ticketRegistry declares the open/closed/kiv/archived lifecycle.
func ticketRegistry(t *testing.T, opts ...statemachine.RegistryOption) *statemachine.Registry {
	t.Helper()
	opts = append([]statemachine.RegistryOption{statemachine.WithLogger(logger.Nop())}, opts...)
	reg := statemachine.NewRegistry(opts...)
	_, err := reg.Declare(func(p *statemachine.ProfileBuilder) error {
		if err := p.Event(Close, edges("open", "closed")); err != nil {
			return err
		}
		if err := p.Event(Kiv, edges("open", "kiv", "closed", "kiv")); err != nil {
			return err
		}
		if err := p.Event(Reopen, edges("kiv", "open")); err != nil {
			return err
		}
		return p.Event(Archive, edges("closed", "archived"), statemachine.OnTransition(halt))
	})
	require.NoError(t, err)
	return reg
}

func newTicket(t *testing.T, reg *statemachine.Registry, opts ...statemachine.MachineOption) (*ticket, *statemachine.Machine) {
	t.Helper()
	host := &ticket{}
	m := statemachine.NewMachine(reg, host, opts...)
	require.NoError(t, m.InitState())
	return host, m
}

func bufferedRegistry(buf *bytes.Buffer) *statemachine.Registry {
	return statemachine.NewRegistry(statemachine.WithLogger(
		logger.New(logger.WithOutput(buf), logger.WithLevelName("debug")),
	))
}

func current(t *testing.T, m *statemachine.Machine) statemachine.State {
	t.Helper()
	st, ok := m.CurrentState()
	require.True(t, ok, "expected a current state")
	return st
}
