// Package display renders machine progress for the terminal: per-step state
// lines, the live single-line mode, and the end-of-run summary. It consumes
// the engine purely through its public state and has no effect on execution.
package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/OWNER/tm/internal/machine"
	"github.com/OWNER/tm/internal/tape"
)

// Options control what the printer shows.
type Options struct {
	// ShowRules appends the applied rule to each step line.
	ShowRules bool

	// ShowPath includes the state path in the summary.
	ShowPath bool

	// Verbose appends tracking info to every step line.
	Verbose bool

	// Silent suppresses intermediate steps; the final state and summary
	// are still written.
	Silent bool

	// Live overwrites a single line with carriage returns instead of
	// writing one line per step.
	Live bool

	// Color enables lipgloss styling. Leave off when the writer is not
	// a terminal.
	Color bool
}

// Printer writes machine progress to out.
type Printer struct {
	out    io.Writer
	opts   Options
	maxLen int // widest line written so far, for live-mode padding
}

// NewPrinter returns a printer with the given options.
func NewPrinter(out io.Writer, opts Options) *Printer {
	return &Printer{out: out, opts: opts}
}

// Initial writes the pre-run state line, without a head marker.
func (p *Printer) Initial(m *machine.Machine) {
	p.state(m, false, false)
}

// Step writes the line for a just-completed step. Once the machine has
// halted it switches to the end-of-run form: no head marker, written even in
// silent mode, followed by the summary block.
func (p *Printer) Step(m *machine.Machine) {
	if m.Halted() {
		p.state(m, false, true)
		fmt.Fprintln(p.out)
		if p.opts.Live {
			// The live line was never newline-terminated.
			fmt.Fprintln(p.out)
		}
		p.Summary(m)
		return
	}
	p.state(m, true, false)
}

// Summary writes the tracking block: step count, head moves, and the state
// path when enabled.
func (p *Printer) Summary(m *machine.Machine) {
	fmt.Fprintf(p.out, "%s %d\n", p.label("Steps:"), m.Steps())
	fmt.Fprintf(p.out, "%s %d\n", p.label("Head moves:"), m.HeadMoves())
	if p.opts.ShowPath {
		fmt.Fprintf(p.out, "%s %v\n", p.label("State path:"), m.Path())
	}
}

// state writes one state line. override forces output past silent mode for
// essential lines.
func (p *Printer) state(m *machine.Machine, showHead, override bool) {
	if p.opts.Silent && !override {
		return
	}

	line := StateLine(m, p.opts, showHead)

	// Pad to the widest line written so far, so a shrinking live line
	// fully overwrites its predecessor.
	width := lipgloss.Width(line)
	if width > p.maxLen {
		p.maxLen = width
	}
	pad := strings.Repeat(" ", p.maxLen-width)

	end := "\n"
	if p.opts.Live {
		end = "\r"
	}
	fmt.Fprint(p.out, line, pad, end)
}

// StateLine formats the one-line view of m: step count, state label, and the
// tape content with blanks as spaces. When showHead is set, a marker is
// inserted before the cell under the head.
func StateLine(m *machine.Machine, opts Options, showHead bool) string {
	cells := m.Tape().Cells()
	for i, c := range cells {
		if c == tape.Blank {
			cells[i] = " "
		}
	}

	var content string
	if showHead {
		at := m.Tape().LeftExtent() + m.Head()
		if at < 0 {
			at = 0
		}
		if at > len(cells) {
			at = len(cells)
		}
		content = strings.Join(cells[:at], "") + "|" + strings.Join(cells[at:], "")
	} else {
		content = strings.Join(cells, "") + " "
	}

	state := m.State()
	if opts.Color {
		if m.Halted() {
			state = HaltStyle.Render(state)
		} else {
			state = StateStyle.Render(state)
		}
	}

	line := fmt.Sprintf("%d (%s): >%s<", m.Steps(), state, content)

	if opts.ShowRules {
		if rule, ok := m.LastRule(); ok {
			r := fmt.Sprintf("R: %s", rule)
			if opts.Color {
				r = RuleStyle.Render(r)
			}
			line += " " + r
		}
	}
	if opts.Verbose {
		line += fmt.Sprintf(" Steps: %d Head moves: %d", m.Steps(), m.HeadMoves())
		if opts.ShowPath {
			line += fmt.Sprintf(" State path: %v", m.Path())
		}
	}
	return line
}

// label styles a summary label.
func (p *Printer) label(s string) string {
	if p.opts.Color {
		return LabelStyle.Render(s)
	}
	return s
}
