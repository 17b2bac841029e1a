package service

import "fmt"

// MutationState tracks one mutation attempt. Queued is terminal from the
// page's point of view: a later sync sweep confirms it silently or leaves it
// queued indefinitely.
type MutationState int

const (
	MutationIdle MutationState = iota
	MutationOptimistic
	MutationQueued
	MutationConfirmed
	MutationRolledBack
)

func (s MutationState) String() string {
	switch s {
	case MutationIdle:
		return "idle"
	case MutationOptimistic:
		return "optimistic"
	case MutationQueued:
		return "queued"
	case MutationConfirmed:
		return "confirmed"
	case MutationRolledBack:
		return "rolled_back"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Mutation is the pure state machine behind every write attempt, kept free
// of store and network I/O so the transitions are testable on their own.
//
//	Idle -> Optimistic -> {Queued | Confirmed | RolledBack}
//	Idle -> Confirmed   (direct online write, no optimistic step)
type Mutation struct {
	state MutationState
}

func NewMutation() *Mutation {
	return &Mutation{state: MutationIdle}
}

func (m *Mutation) State() MutationState { return m.state }

// Apply marks the optimistic local update as applied.
func (m *Mutation) Apply() error {
	return m.transition(MutationIdle, MutationOptimistic)
}

// Queue marks the applied update as handed to the action queue.
func (m *Mutation) Queue() error {
	return m.transition(MutationOptimistic, MutationQueued)
}

// Confirm marks the update as acknowledged by the server. Valid from Idle
// (direct online write) and from Optimistic.
func (m *Mutation) Confirm() error {
	if m.state == MutationIdle || m.state == MutationOptimistic {
		m.state = MutationConfirmed
		return nil
	}
	return m.invalid(MutationConfirmed)
}

// Rollback undoes the optimistic update after an online failure.
func (m *Mutation) Rollback() error {
	return m.transition(MutationOptimistic, MutationRolledBack)
}

func (m *Mutation) transition(from, to MutationState) error {
	if m.state != from {
		return m.invalid(to)
	}
	m.state = to
	return nil
}

func (m *Mutation) invalid(to MutationState) error {
	return fmt.Errorf("invalid mutation transition %s -> %s", m.state, to)
}
