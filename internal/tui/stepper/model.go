// Package stepper provides the interactive stepping-mode TUI: the machine
// advances one step per keypress until it halts or fails. The engine knows
// nothing of how steps are triggered; this model simply calls Step between
// key events.
package stepper

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/OWNER/tm/internal/display"
	"github.com/OWNER/tm/internal/machine"
)

// Model is the bubbletea model for stepping mode.
type Model struct {
	machine *machine.Machine
	opts    display.Options

	keys KeyMap
	help help.Model

	err  error
	done bool
}

// New creates a stepping-mode model driving m.
func New(m *machine.Machine, opts display.Options) Model {
	return Model{
		machine: m,
		opts:    opts,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Err returns the error that stopped stepping, if any.
func (m Model) Err() error { return m.err }

// Done reports whether the machine ran to its halting state.
func (m Model) Done() bool { return m.done }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Quit and verbose-toggle keys are handled
// specially; every other keypress advances the machine one step.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Verbose):
			m.opts.Verbose = !m.opts.Verbose
			return m, nil

		default:
			if err := m.machine.Step(); err != nil {
				m.err = err
				return m, tea.Quit
			}
			if m.machine.Halted() {
				m.done = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(display.StateLine(m.machine, m.opts, !m.machine.Halted()))
	b.WriteString("\n\n")
	b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	b.WriteString("\n")
	return b.String()
}

// Run drives m in stepping mode until halt, quit, or error. It reports
// whether the machine reached its halting state.
func Run(m *machine.Machine, opts display.Options) (bool, error) {
	final, err := tea.NewProgram(New(m, opts)).Run()
	if err != nil {
		return false, err
	}
	model := final.(Model)
	if model.Err() != nil {
		return false, model.Err()
	}
	return model.Done(), nil
}
