package rules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseQuintuples(t *testing.T) {
	t.Parallel()

	table, config, err := Parse("1 1 1 1 1\n1 _ 0 1 0\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(config) != 0 {
		t.Errorf("config = %v, want empty", config)
	}

	want := []Rule{
		{FromState: "1", Match: "1", ToState: "1", Write: "1", Direction: 1},
		{FromState: "1", Match: "_", ToState: "0", Write: "1", Direction: 0},
	}
	got := table.Rules()
	if len(got) != len(want) {
		t.Fatalf("parsed %d rules, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("rule %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseDelimitersAreFreeForm(t *testing.T) {
	t.Parallel()

	// Any non-symbol character separates tokens; layout is irrelevant.
	table, _, err := Parse("1,1;1|1\t1")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("parsed %d rules, want 1", table.Len())
	}
}

func TestParseNegativeDirection(t *testing.T) {
	t.Parallel()

	table, _, err := Parse("A * B * -1")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := table.Rules()[0].Direction; got != -1 {
		t.Errorf("Direction = %d, want -1", got)
	}
}

func TestParseFlushesAtEndOfInput(t *testing.T) {
	t.Parallel()

	// No trailing delimiter: the final token is flushed by Finish.
	table, _, err := Parse("1 * 0 * 0")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if table.Len() != 1 {
		t.Fatalf("parsed %d rules, want 1", table.Len())
	}
}

func TestParseComments(t *testing.T) {
	t.Parallel()

	src := "# machine header\n1 1 1 1 1 # copy right\n1 _ 0 1 0\n"
	table, _, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("parsed %d rules, want 2", table.Len())
	}
}

func TestParseHashInsideTokenIsDelimiter(t *testing.T) {
	t.Parallel()

	// "#" only starts a comment at a token boundary. Mid-token it
	// terminates the symbol and the trailing text is read as symbols.
	_, _, err := Parse("1 1 1 1 1#junk")
	var count *SymbolCountError
	if !errors.As(err, &count) {
		t.Fatalf("Parse error = %v, want SymbolCountError", err)
	}
	if count.Count != 6 {
		t.Errorf("Count = %d, want 6", count.Count)
	}
}

func TestParseConfigEntries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		key  string
		want string
	}{
		{"simple pair", "init: A\n", "init", "A"},
		{"no space after colon", "halt:Z\n", "halt", "Z"},
		{"key lowercased", "INIT: A\n", "init", "A"},
		{"last occurrence wins", "speed: slow\nspeed: fast\n", "speed", "fast"},
		{"value flushed at end of input", "halt: Z", "halt", "Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, config, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse returned error: %v", err)
			}
			if got := config[tt.key]; got != tt.want {
				t.Errorf("config[%q] = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestParseConfigPairsDoNotCountAsSymbols(t *testing.T) {
	t.Parallel()

	table, config, err := Parse("init: A\n1 * 0 * 0\nhalt: Z\n")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if table.Len() != 1 {
		t.Errorf("parsed %d rules, want 1", table.Len())
	}
	if config["init"] != "A" || config["halt"] != "Z" {
		t.Errorf("config = %v, want init=A halt=Z", config)
	}
}

func TestParseSymbolCountError(t *testing.T) {
	t.Parallel()

	_, _, err := Parse("1 1 1 1 1\n1 _\n")
	var count *SymbolCountError
	if !errors.As(err, &count) {
		t.Fatalf("Parse error = %v, want SymbolCountError", err)
	}
	if count.Count != 7 {
		t.Errorf("Count = %d, want 7", count.Count)
	}
}

func TestParseInvalidDirection(t *testing.T) {
	t.Parallel()

	if _, _, err := Parse("1 1 1 1 x"); err == nil {
		t.Fatal("Parse should reject a non-numeric direction")
	}
}

func TestParseFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "increment.tm")
	src := "# unary increment\n1 1 1 1 1\n1 _ 0 1 0\n"
	if err := os.WriteFile(path, []byte(src), 0600); err != nil {
		t.Fatal(err)
	}

	table, _, err := ParseFile(path)
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if table.Len() != 2 {
		t.Errorf("parsed %d rules, want 2", table.Len())
	}
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	if _, _, err := ParseFile(filepath.Join(t.TempDir(), "absent.tm")); err == nil {
		t.Fatal("ParseFile should report a missing file")
	}
}
