package statemachine_test

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/stateful/pkg/logger"
	"github.com/dmitrymomot/stateful/pkg/statemachine"
)

type Document struct {
	statemachine.StateFields
	Title string
}

func Example() {
	reg := statemachine.NewRegistry(statemachine.WithLogger(logger.Nop()))
	reg.MustDeclare(func(p *statemachine.ProfileBuilder) error {
		if err := p.Event("close", []statemachine.Edge{statemachine.Move("open", "closed")}); err != nil {
			return err
		}
		if err := p.Event("kiv", []statemachine.Edge{
			statemachine.Move("open", "kiv"),
			statemachine.Move("closed", "kiv"),
		}); err != nil {
			return err
		}
		if err := p.Event("reopen", []statemachine.Edge{statemachine.Move("kiv", "open")}); err != nil {
			return err
		}
		return p.Event("archive", []statemachine.Edge{statemachine.Move("closed", "archived")},
			statemachine.OnTransition(func(_ context.Context, t statemachine.Transition) (statemachine.Decision, error) {
				if t.Phase == statemachine.PhaseBefore {
					return statemachine.Halt, nil
				}
				return statemachine.Proceed, nil
			}),
		)
	})

	doc := &Document{Title: "quarterly report"}
	m := statemachine.NewMachine(reg, doc)
	if err := m.InitState(); err != nil {
		panic(err)
	}

	ctx := context.Background()
	for _, evt := range []statemachine.Event{"close", "kiv", "reopen", "kiv", "close"} {
		if err := m.TriggerEvent(ctx, evt); err != nil {
			fmt.Println("error:", statemachine.IsInvalidStateForEventError(err))
			continue
		}
		st, _ := m.CurrentState()
		fmt.Println(evt, "->", st)
	}

	_ = m.TriggerEvent(ctx, "reopen")
	_ = m.ApplyState("closed")
	err := m.TriggerEvent(ctx, "archive")
	st, _ := m.CurrentState()
	fmt.Println("halted:", statemachine.IsUserHaltError(err), "state:", st)

	// Output:
	// close -> closed
	// kiv -> kiv
	// reopen -> open
	// kiv -> kiv
	// error: true
	// halted: true state: closed
}

func ExampleMachine_ActivateProfile() {
	reg := statemachine.NewRegistry(statemachine.WithLogger(logger.Nop()))
	reg.MustDeclare(func(p *statemachine.ProfileBuilder) error {
		return p.Event("close", []statemachine.Edge{statemachine.Move("open", "closed")})
	})
	reg.MustDeclare(func(p *statemachine.ProfileBuilder) error {
		return p.Event("burn", []statemachine.Edge{statemachine.Move("active", "burnt")})
	},
		statemachine.WithProfile("second"),
		statemachine.WithInitialState("active"),
		statemachine.WithStateAttr("stage"),
	)

	doc := &Document{}
	m := statemachine.NewMachine(reg, doc)
	_ = m.InitState("second")
	_ = m.InitState()
	_ = m.TriggerEvent(context.Background(), "close")

	_ = m.ActivateProfile("second")
	_ = m.TriggerEvent(context.Background(), "burn")

	state, _ := doc.ReadState("state")
	stage, _ := doc.ReadState("stage")
	fmt.Println(state, stage)
	// Output: closed burnt
}
