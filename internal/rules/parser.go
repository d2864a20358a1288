package rules

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// parseMode is the tokenizer mode of the rule-file parser.
type parseMode int

const (
	// modeSymbol accumulates rule-position symbol tokens.
	modeSymbol parseMode = iota
	// modeConfig accumulates the value of a pending configuration key.
	modeConfig
	// modeComment discards input through the end of the line.
	modeComment
)

// isSymbolRune reports whether r may appear in a symbol token.
func isSymbolRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	return r == '_' || r == '*' || r == '-'
}

// Parser turns rule-file text into an ordered rule table plus a string
// configuration map. It reads one rune at a time through three mutually
// exclusive modes; tokens are grouped five at a time into rules, "key: value"
// pairs anywhere set configuration entries, and "#" at a token boundary
// starts a line comment.
type Parser struct {
	mode    parseMode
	buf     strings.Builder
	key     string   // pending configuration key
	group   []string // rule symbols collected toward the next quintuple
	symbols int      // rule-position symbols seen, config pairs excluded
	rules   []Rule
	config  map[string]string
	err     error // first rule-assembly error, reported by Finish
}

// NewParser returns a parser ready to be fed input.
func NewParser() *Parser {
	return &Parser{config: make(map[string]string)}
}

// Parse runs a complete parse over src.
func Parse(src string) (*Table, map[string]string, error) {
	p := NewParser()
	for _, r := range src {
		p.Feed(r)
	}
	return p.Finish()
}

// ParseFile parses the rule file at path.
func ParseFile(path string) (*Table, map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading rule file: %w", err)
	}
	return Parse(string(data))
}

// Feed advances the parser by one rune.
func (p *Parser) Feed(r rune) {
	switch p.mode {
	case modeSymbol:
		switch {
		case isSymbolRune(r):
			p.buf.WriteRune(r)
		case r == ':' && p.buf.Len() > 0:
			// The buffered token was a configuration key, not a
			// rule symbol.
			p.key = strings.ToLower(p.buf.String())
			p.buf.Reset()
			p.mode = modeConfig
		case p.buf.Len() > 0:
			p.flushSymbol()
		case r == '#':
			p.mode = modeComment
		}
	case modeConfig:
		switch {
		case !unicode.IsSpace(r) && r != ':':
			p.buf.WriteRune(r)
		case p.buf.Len() > 0:
			p.flushConfig()
		}
	case modeComment:
		if r == '\n' {
			p.mode = modeSymbol
		}
	}
}

// Finish flushes any pending token as if one trailing delimiter were seen,
// validates the symbol count, and returns the parse result.
func (p *Parser) Finish() (*Table, map[string]string, error) {
	if p.buf.Len() > 0 {
		switch p.mode {
		case modeSymbol:
			p.flushSymbol()
		case modeConfig:
			p.flushConfig()
		}
	}
	if p.err != nil {
		return nil, nil, p.err
	}
	if p.symbols%5 != 0 {
		return nil, nil, &SymbolCountError{Count: p.symbols}
	}
	return NewTable(p.rules), p.config, nil
}

// flushSymbol completes the buffered token as one rule-position symbol.
// Every fifth symbol assembles a rule and resets the group.
func (p *Parser) flushSymbol() {
	p.group = append(p.group, p.buf.String())
	p.buf.Reset()
	p.symbols++

	if len(p.group) < 5 {
		return
	}
	rule, err := assembleRule(p.group)
	if err != nil && p.err == nil {
		p.err = err
	}
	p.rules = append(p.rules, rule)
	p.group = p.group[:0]
}

// flushConfig stores the buffered value under the pending key. Later
// occurrences of a key overwrite earlier ones.
func (p *Parser) flushConfig() {
	p.config[p.key] = p.buf.String()
	p.key = ""
	p.buf.Reset()
	p.mode = modeSymbol
}

// assembleRule builds a Rule from five symbol tokens in file order.
func assembleRule(group []string) (Rule, error) {
	dir, err := strconv.Atoi(group[4])
	if err != nil {
		return Rule{}, fmt.Errorf("rule %s %s %s %s: invalid direction %q",
			group[0], group[1], group[2], group[3], group[4])
	}
	return Rule{
		FromState: group[0],
		Match:     group[1],
		ToState:   group[2],
		Write:     group[3],
		Direction: dir,
	}, nil
}
