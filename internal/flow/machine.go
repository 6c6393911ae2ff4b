// Package flow models the feedback conversation as a finite state machine.
//
// Transition is the whole of the conversation logic. Machine wraps it for
// hosts that want to own a single state value and be told when it moves.
package flow

import "github.com/google/uuid"

// Change describes a transition that moved the machine to a new state.
type Change struct {
	From  State
	To    State
	Event Event
}

// Observer is notified after the machine changes state.
type Observer func(Change)

// Machine holds the current state of one conversation.
// It is not safe for concurrent use.
type Machine struct {
	id        string
	state     State
	observers []Observer
}

// Option configures a Machine.
type Option func(*Machine)

// WithID overrides the generated session id.
func WithID(id string) Option {
	return func(m *Machine) { m.id = id }
}

// WithObserver subscribes o before the machine is returned.
func WithObserver(o Observer) Option {
	return func(m *Machine) { m.Subscribe(o) }
}

// NewMachine returns a machine in the Initial state.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{id: uuid.NewString(), state: Initial}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// ID returns the session id of this conversation.
func (m *Machine) ID() string { return m.id }

// State returns the current state.
func (m *Machine) State() State { return m.state }

// Subscribe registers o. A nil observer is ignored.
func (m *Machine) Subscribe(o Observer) {
	if o == nil {
		return
	}
	m.observers = append(m.observers, o)
}

// Send applies e and returns the resulting state. Observers run only when
// the state actually changes.
func (m *Machine) Send(e Event) State {
	from := m.state
	to := Transition(from, e)
	if to == from {
		return to
	}
	m.state = to
	for _, o := range m.observers {
		o(Change{From: from, To: to, Event: e})
	}
	return to
}
