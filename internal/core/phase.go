package core

import (
	"errors"
	"fmt"
)

// Phase is one state of a round. Every game uses a subset of these.
type Phase string

const (
	PhaseReady         Phase = "ready"          // Waiting for the player to start
	PhaseShowing       Phase = "showing"        // Memorizing / watching / waiting for a signal
	PhasePlaying       Phase = "playing"        // Answering / repeating / solving
	PhaseCorrect       Phase = "correct"        // Feedback after a successful step
	PhaseWrong         Phase = "wrong"          // Feedback after a failed step
	PhaseLevelComplete Phase = "level_complete" // Level cleared, next level pending
	PhaseFinished      Phase = "finished"       // Terminal for the round
)

// ErrIllegalTransition is returned when a transition is not in the game's table.
var ErrIllegalTransition = errors.New("core: illegal phase transition")

// Transitions maps each phase to the phases it may move to.
type Transitions map[Phase][]Phase

// Allows reports whether the table permits from -> to.
func (t Transitions) Allows(from, to Phase) bool {
	for _, p := range t[from] {
		if p == to {
			return true
		}
	}
	return false
}

// Machine is a finite-state controller parameterized by a transition table.
// Games own one machine each; restart returns it to PhaseReady.
type Machine struct {
	phase     Phase
	table     Transitions
	listeners []func(from, to Phase)
}

// NewMachine creates a machine in PhaseReady using the given table.
func NewMachine(table Transitions) *Machine {
	return &Machine{
		phase: PhaseReady,
		table: table,
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Is returns true if the machine is in any of the given phases.
func (m *Machine) Is(phases ...Phase) bool {
	for _, p := range phases {
		if m.phase == p {
			return true
		}
	}
	return false
}

// Can reports whether a transition to the given phase is allowed.
func (m *Machine) Can(to Phase) bool {
	return m.table.Allows(m.phase, to)
}

// To moves the machine to the given phase and notifies listeners.
func (m *Machine) To(to Phase) error {
	if !m.Can(to) {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, m.phase, to)
	}
	from := m.phase
	m.phase = to
	for _, fn := range m.listeners {
		fn(from, to)
	}
	return nil
}

// OnChange registers a listener invoked after every transition.
func (m *Machine) OnChange(fn func(from, to Phase)) {
	m.listeners = append(m.listeners, fn)
}

// Reset returns the machine to PhaseReady. Listeners are notified when the
// phase actually changes.
func (m *Machine) Reset() {
	from := m.phase
	m.phase = PhaseReady
	if from == PhaseReady {
		return
	}
	for _, fn := range m.listeners {
		fn(from, PhaseReady)
	}
}
