package display

import "github.com/charmbracelet/lipgloss"

// Color palette (Ayu).
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
	colorPass   = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#aad94c"}
	colorMuted  = lipgloss.AdaptiveColor{Light: "#8a9199", Dark: "#565b66"}
)

// Styles for machine output.
var (
	// StateStyle renders the current state label.
	StateStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	// HaltStyle renders the state label once the machine has halted.
	HaltStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPass)

	// RuleStyle renders the applied rule beside a step line.
	RuleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// LabelStyle renders summary labels ("Steps:", "Head moves:").
	LabelStyle = lipgloss.NewStyle().
			Foreground(colorMuted)
)
