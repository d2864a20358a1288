package rules

import "slices"

// Table is an ordered, immutable rule table. Order is load order and is
// semantically significant: lookup returns the first match, so a rule author
// can place a specific-symbol rule before a wildcard fallback for the same
// state to get default behavior.
type Table struct {
	rules []Rule
}

// NewTable builds a table from rules in the given order.
func NewTable(rs []Rule) *Table {
	return &Table{rules: slices.Clone(rs)}
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}

// Rules returns a copy of the table's rules in match order.
func (t *Table) Rules() []Rule {
	return slices.Clone(t.rules)
}

// FindRule returns the first rule in table order whose FromState equals state
// and whose Match equals symbol or is the wildcard. No specificity
// tie-breaking is applied.
func (t *Table) FindRule(state, symbol string) (Rule, error) {
	for _, r := range t.rules {
		if r.FromState == state && (r.Match == symbol || r.Match == Wildcard) {
			return r, nil
		}
	}
	return Rule{}, &RuleNotFoundError{State: state, Symbol: symbol}
}
