// Package prefilter holds fast accept/reject pre-checks that run ahead
// of the NFA simulator. Every check here is sound in one direction only
// (no false negatives): a check may shrug and say "maybe", but it never
// rejects an input the simulator would have accepted.
package prefilter

import "github.com/coregx/ahocorasick"

// LiteralScanner fast-rejects inputs that cannot possibly satisfy a
// pure literal alternation (e.g. "foo|bar|baz"), backed by an
// Aho-Corasick automaton. Grounded on the teacher's
// meta.Engine.ahoCorasick field and its UseAhoCorasick strategy
// (coregx-coregex/meta/compile.go), narrowed from a full search
// strategy to a whole-input pre-check (see DESIGN.md).
type LiteralScanner struct {
	automaton *ahocorasick.Automaton
}

// NewLiteralScanner builds a scanner over literals. Returns (nil, nil)
// if literals is empty — callers should treat a nil *LiteralScanner as
// "no prefilter available" and always run the simulator.
func NewLiteralScanner(literals []string) (*LiteralScanner, error) {
	if len(literals) == 0 {
		return nil, nil
	}
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &LiteralScanner{automaton: automaton}, nil
}

// MayMatch reports whether input might satisfy the alternation. A
// literal that matches the whole input necessarily occurs as a
// substring of it, so "no branch literal occurs anywhere in input" is
// sufficient to fast-reject — whether some occurrence actually spans
// the entire input is left to the real simulator to confirm.
func (s *LiteralScanner) MayMatch(input string) bool {
	if s == nil {
		return true
	}
	return s.automaton.IsMatch([]byte(input))
}
