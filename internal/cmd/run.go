package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/OWNER/tm/internal/config"
	"github.com/OWNER/tm/internal/display"
	"github.com/OWNER/tm/internal/history"
	"github.com/OWNER/tm/internal/machine"
	"github.com/OWNER/tm/internal/rules"
	"github.com/OWNER/tm/internal/tui/stepper"
)

var (
	runShowRules bool
	runStepTime  time.Duration
	runFast      bool
	runSilent    bool
	runVerbose   bool
	runLive      bool
	runStepping  bool
	runLoop      bool
	runNoRecord  bool
)

var runCmd = &cobra.Command{
	Use:   "run <rulefile> [input]",
	Short: "Execute a Turing machine over an input tape",
	Long: `Execute the machine defined by a rule file over an input tape.

Each step prints the state and tape until the machine halts, then a summary
of steps taken, head moves, and the state path. With no input argument (or
with --loop after a run) tm prompts for tape input on stdin.

Examples:
  tm run increment.tm 111
  tm run increment.tm 111 --fast --silent
  tm run busy.tm "" --live
  tm run debug.tm 101 -s --rules`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&runShowRules, "rules", false, "Show the applied rule beside each step")
	runCmd.Flags().DurationVar(&runStepTime, "step-time", config.DefaultStepTime, "Delay between automatic steps")
	runCmd.Flags().BoolVar(&runFast, "fast", false, "No delay between steps (same as --step-time=0)")
	runCmd.Flags().BoolVar(&runSilent, "silent", false, "Hide intermediate steps")
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show tracking info beside each step")
	runCmd.Flags().BoolVar(&runLive, "live", false, "Continuously overwrite a single state line")
	runCmd.Flags().BoolVarP(&runStepping, "step", "s", false, "Stepping mode: advance one step per keypress")
	runCmd.Flags().BoolVarP(&runLoop, "loop", "l", false, "Prompt for further input after each run")
	runCmd.Flags().BoolVar(&runNoRecord, "no-history", false, "Do not record this run in the history")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	stepTime := cfg.StepTime.Duration
	if cmd.Flags().Changed("step-time") {
		stepTime = runStepTime
	}
	if runFast {
		stepTime = 0
	}

	table, entries, err := rules.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("loading rules: %w", err)
	}
	m := machine.New(table, machine.ConfigFromEntries(entries))

	input := ""
	if len(args) > 1 {
		input = args[1]
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	opts := display.Options{
		ShowRules: runShowRules,
		ShowPath:  true,
		Verbose:   runVerbose,
		Silent:    runSilent,
		Live:      (runLive || cfg.Live) && isTTY,
		Color:     isTTY,
	}

	out := cmd.OutOrStdout()
	stdin := bufio.NewReader(cmd.InOrStdin())

	for {
		if input == "" {
			input, err = promptInput(out, stdin)
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		m.SetTape(input)
		if err := execute(cmd, m, opts, stepTime, runInfo{cfg: cfg, ruleFile: args[0], input: input}); err != nil {
			if !runLoop {
				return err
			}
			// Loop mode survives a failed run and prompts again.
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}

		input = ""
		if !runLoop {
			return nil
		}
	}
}

// runInfo carries the run's provenance for history recording.
type runInfo struct {
	cfg      config.Config
	ruleFile string
	input    string
}

// execute drives one run over the machine's current tape and records it.
func execute(cmd *cobra.Command, m *machine.Machine, opts display.Options, stepTime time.Duration, info runInfo) error {
	out := cmd.OutOrStdout()
	p := display.NewPrinter(out, opts)
	start := time.Now()

	if runStepping && !runSilent {
		done, err := stepper.Run(m, opts)
		if err != nil {
			return err
		}
		if !done {
			// Quit before halting; nothing to summarize.
			return nil
		}
		p.Step(m)
	} else {
		p.Initial(m)
		for !m.Halted() {
			if err := m.Step(); err != nil {
				return err
			}
			p.Step(m)
			if !m.Halted() && !opts.Silent && stepTime > 0 {
				time.Sleep(stepTime)
			}
		}
	}

	recordRun(cmd, m, info, time.Since(start))
	return nil
}

// recordRun appends the completed run to the history file. Recording is
// best-effort; failures warn but never fail the run.
func recordRun(cmd *cobra.Command, m *machine.Machine, info runInfo, elapsed time.Duration) {
	if !info.cfg.History || runNoRecord {
		return
	}
	path, err := history.DefaultPath()
	if err != nil {
		return
	}

	rec := history.Record{
		RuleFile:   info.ruleFile,
		Input:      info.input,
		Output:     m.Tape().String(),
		FinalState: m.State(),
		Steps:      m.Steps(),
		HeadMoves:  m.HeadMoves(),
		Duration:   elapsed,
	}
	if err := history.NewStore(path).Append(rec); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: recording run: %v\n", err)
	}
}

// promptInput asks for additional tape input on stdin.
func promptInput(out io.Writer, in *bufio.Reader) (string, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Input additional tape.")
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
