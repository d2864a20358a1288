// Package machine implements the Turing machine execution engine: a Mealy
// transducer that matches quintuple rules against the scanned symbol,
// rewrites the tape, and tracks the path of visited states.
package machine

import (
	"errors"
	"slices"

	"github.com/OWNER/tm/internal/rules"
	"github.com/OWNER/tm/internal/tape"
)

// Default distinguished state labels, overridable once via the rule file's
// init and halt configuration entries.
const (
	DefaultInitState = "1"
	DefaultHaltState = "0"
)

// ErrTapeBlank is returned by Step when the machine's tape has no content.
var ErrTapeBlank = errors.New("the input tape is blank")

// Config fixes the distinguished state labels for a machine. It is built
// once, before first use, and never mutated afterwards.
type Config struct {
	InitState string
	HaltState string
}

// ConfigFromEntries derives a Config from the defaults overridden by a rule
// file's init and halt entries. Unrecognized entries are ignored here; they
// remain available to callers in the parsed map.
func ConfigFromEntries(entries map[string]string) Config {
	cfg := Config{InitState: DefaultInitState, HaltState: DefaultHaltState}
	if v, ok := entries["init"]; ok {
		cfg.InitState = v
	}
	if v, ok := entries["halt"]; ok {
		cfg.HaltState = v
	}
	return cfg
}

// Machine executes an immutable rule table over a tape it owns exclusively.
// It is single-owner and synchronous: drive it with a strictly sequential
// series of Step calls, or Run to completion.
type Machine struct {
	table *rules.Table
	cfg   Config

	tape  *tape.Tape
	state string
	head  int

	steps     int
	headMoves int
	path      []string
	lastRule  *rules.Rule
}

// New builds a machine over table with a blank tape. Call SetTape before
// stepping.
func New(table *rules.Table, cfg Config) *Machine {
	m := &Machine{table: table, cfg: cfg}
	m.SetTape("")
	return m
}

// SetTape replaces the machine's tape with one built from input and resets
// all execution state: current state to the initial label, head to zero,
// counters to zero, path to the initial label alone.
func (m *Machine) SetTape(input string) {
	m.tape = tape.New(input)
	m.state = m.cfg.InitState
	m.head = 0
	m.steps = 0
	m.headMoves = 0
	m.path = []string{m.cfg.InitState}
	m.lastRule = nil
}

// Tape returns the machine's current tape.
func (m *Machine) Tape() *tape.Tape { return m.tape }

// State returns the current state label.
func (m *Machine) State() string { return m.state }

// Head returns the current head position.
func (m *Machine) Head() int { return m.head }

// Steps returns the number of completed steps.
func (m *Machine) Steps() int { return m.steps }

// HeadMoves returns the number of steps that moved the head.
func (m *Machine) HeadMoves() int { return m.headMoves }

// Path returns the states visited so far, the initial state included.
func (m *Machine) Path() []string { return slices.Clone(m.path) }

// LastRule returns the most recently applied rule, if any step has run.
func (m *Machine) LastRule() (rules.Rule, bool) {
	if m.lastRule == nil {
		return rules.Rule{}, false
	}
	return *m.lastRule, true
}

// Halted reports whether the current state is the halting label.
func (m *Machine) Halted() bool { return m.state == m.cfg.HaltState }

// Step executes one transition: scan the cell under the head, find the first
// matching rule, write, switch state, and move the head by the sign of the
// rule's direction. A wildcard write leaves the scanned cell unchanged.
//
// Step is atomic: on ErrTapeBlank or a failed rule lookup, neither the tape
// nor any tracking field has been touched. Stepping an already-halted
// machine is not special-cased; it attempts a normal lookup from the halting
// state.
func (m *Machine) Step() error {
	if m.tape.IsBlank() {
		return ErrTapeBlank
	}

	scan := m.tape.Get(m.head)
	rule, err := m.table.FindRule(m.state, scan)
	if err != nil {
		return err
	}

	write := rule.Write
	if write == rules.Wildcard {
		write = scan
	}
	m.tape.Set(m.head, write)

	m.state = rule.ToState
	switch {
	case rule.Direction < 0:
		m.head--
		m.headMoves++
	case rule.Direction > 0:
		m.head++
		m.headMoves++
	}

	m.path = append(m.path, m.state)
	m.steps++
	m.lastRule = &rule
	return nil
}

// Run steps the machine until the halting state is reached and returns the
// final tape. Pacing between steps is a caller concern; Run inserts none.
func (m *Machine) Run() (*tape.Tape, error) {
	for !m.Halted() {
		if err := m.Step(); err != nil {
			return nil, err
		}
	}
	return m.tape, nil
}
