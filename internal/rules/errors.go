package rules

import "fmt"

// RuleNotFoundError reports that no rule covers a (state, symbol) pair. It
// signals a rule table that is incomplete relative to the configurations the
// machine can reach.
type RuleNotFoundError struct {
	State  string
	Symbol string
}

func (e *RuleNotFoundError) Error() string {
	return fmt.Sprintf("no rule found from state %s with symbol %s", e.State, e.Symbol)
}

// SymbolCountError reports a rule file whose rule-position symbol count is
// not a multiple of five.
type SymbolCountError struct {
	Count int
}

func (e *SymbolCountError) Error() string {
	return fmt.Sprintf("incorrect number of rule symbols (must be a multiple of 5, is %d)", e.Count)
}
