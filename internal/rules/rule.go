// Package rules defines quintuple transition rules, the ordered rule table
// they are matched from, and the rule-file parser.
package rules

import "fmt"

// Wildcard matches any scanned symbol when used as a rule's Match field, and
// leaves the scanned cell unchanged when used as its Write field. The two
// uses are independent.
const Wildcard = "*"

// Rule is one quintuple transition: in FromState, scanning Match, switch to
// ToState, write Write at the head, and move the head by the sign of
// Direction.
type Rule struct {
	FromState string
	Match     string
	ToState   string
	Write     string
	Direction int
}

func (r Rule) String() string {
	return fmt.Sprintf("(%s, %s) -> (%s, %s, %+d)",
		r.FromState, r.Match, r.ToState, r.Write, r.Direction)
}
