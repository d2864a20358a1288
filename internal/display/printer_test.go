package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/OWNER/tm/internal/machine"
	"github.com/OWNER/tm/internal/rules"
)

func newMachine(t *testing.T, rs []rules.Rule, input string) *machine.Machine {
	t.Helper()
	cfg := machine.Config{InitState: machine.DefaultInitState, HaltState: machine.DefaultHaltState}
	m := machine.New(rules.NewTable(rs), cfg)
	m.SetTape(input)
	return m
}

func TestStateLineInitial(t *testing.T) {
	t.Parallel()

	m := newMachine(t, nil, "abc")
	got := StateLine(m, Options{}, false)
	if got != "0 (1): >abc <" {
		t.Errorf("StateLine = %q", got)
	}
}

func TestStateLineShowsHead(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: rules.Wildcard, ToState: "1", Write: rules.Wildcard, Direction: 1},
	}, "abc")
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}

	got := StateLine(m, Options{}, true)
	if got != "1 (1): >a|bc<" {
		t.Errorf("StateLine = %q", got)
	}
}

func TestStateLineRendersBlanksAsSpaces(t *testing.T) {
	t.Parallel()

	m := newMachine(t, nil, "a_b")
	got := StateLine(m, Options{}, false)
	if !strings.Contains(got, ">a b <") {
		t.Errorf("StateLine = %q, want blanks as spaces", got)
	}
}

func TestStateLineNegativeHeadClamped(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: rules.Wildcard, ToState: "1", Write: rules.Wildcard, Direction: -1},
	}, "ab")
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}

	// Head sits at -1 with no written cell there; the marker clamps to
	// the left edge.
	got := StateLine(m, Options{}, true)
	if got != "1 (1): >|ab<" {
		t.Errorf("StateLine = %q", got)
	}
}

func TestStateLineShowRules(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: "a", ToState: "0", Write: "b", Direction: 0},
	}, "a")
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}

	got := StateLine(m, Options{ShowRules: true}, false)
	if !strings.Contains(got, "R: (1, a) -> (0, b, +0)") {
		t.Errorf("StateLine = %q, want applied rule appended", got)
	}
}

func TestStateLineVerbose(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: rules.Wildcard, ToState: "0", Write: rules.Wildcard, Direction: 1},
	}, "x")
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}

	got := StateLine(m, Options{Verbose: true, ShowPath: true}, false)
	for _, want := range []string{"Steps: 1", "Head moves: 1", "State path: [1 0]"} {
		if !strings.Contains(got, want) {
			t.Errorf("StateLine = %q, missing %q", got, want)
		}
	}
}

func TestPrinterSilentSuppressesSteps(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: rules.Wildcard, ToState: "0", Write: rules.Wildcard, Direction: 0},
	}, "x")

	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Silent: true, ShowPath: true})
	p.Initial(m)
	if buf.Len() != 0 {
		t.Errorf("silent initial line written: %q", buf.String())
	}

	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	p.Step(m)
	out := buf.String()
	if !strings.Contains(out, "1 (0): >x <") {
		t.Errorf("final state line missing from %q", out)
	}
	if !strings.Contains(out, "Steps: 1") {
		t.Errorf("summary missing from %q", out)
	}
}

func TestPrinterLivePadsShrinkingLines(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: rules.Wildcard, ToState: "1", Write: rules.Wildcard, Direction: 1},
	}, "abc")

	var buf bytes.Buffer
	p := NewPrinter(&buf, Options{Live: true, Verbose: true})
	p.state(m, true, false)
	first := buf.Len()
	buf.Reset()

	// Second line without verbose tracking is shorter; padding must
	// bring it to the same width.
	p.opts.Verbose = false
	p.state(m, true, false)
	if buf.Len() != first {
		t.Errorf("live line width %d, want padded to %d", buf.Len(), first)
	}
	if !strings.HasSuffix(buf.String(), "\r") {
		t.Error("live line should end with a carriage return")
	}
}

func TestPrinterSummary(t *testing.T) {
	t.Parallel()

	m := newMachine(t, []rules.Rule{
		{FromState: "1", Match: rules.Wildcard, ToState: "0", Write: rules.Wildcard, Direction: 1},
	}, "x")
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	NewPrinter(&buf, Options{ShowPath: true}).Summary(m)
	out := buf.String()
	for _, want := range []string{"Steps: 1", "Head moves: 1", "State path: [1 0]"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary %q missing %q", out, want)
		}
	}
}
