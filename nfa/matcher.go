package nfa

import "fmt"

// MatcherKind is the closed tag for Matcher. Exhaustive switches on this
// are preferred over interface dispatch: three cases suffice, and a
// closed enum keeps them clear (spec.md §9).
type MatcherKind uint8

const (
	// KindEpsilon matches without consuming input.
	KindEpsilon MatcherKind = iota
	// KindChar matches a single exact rune.
	KindChar
	// KindRange matches any rune in an inclusive range.
	KindRange
)

// Matcher is a predicate over a single input rune. The variant set is
// closed: Epsilon, Char, Range.
type Matcher struct {
	kind   MatcherKind
	lo, hi rune // for KindChar, lo == hi
}

// EpsilonMatcher is the shared zero-width matcher.
func EpsilonMatcher() Matcher {
	return Matcher{kind: KindEpsilon}
}

// CharMatcher matches exactly r.
func CharMatcher(r rune) Matcher {
	return Matcher{kind: KindChar, lo: r, hi: r}
}

// RangeMatcher matches any rune in [lo, hi], inclusive both ends.
func RangeMatcher(lo, hi rune) Matcher {
	return Matcher{kind: KindRange, lo: lo, hi: hi}
}

// Kind returns the matcher's variant tag.
func (m Matcher) Kind() MatcherKind {
	return m.kind
}

// IsEpsilon reports whether m is the Epsilon variant.
func (m Matcher) IsEpsilon() bool {
	return m.kind == KindEpsilon
}

// Matches reports whether r satisfies the predicate. Epsilon matches
// unconditionally — it carries no character predicate, so the
// simulator's transition-eligibility gate (spec.md §4.4 step 5) treats
// it as always satisfied whenever input remains; it is the IsEpsilon
// check, not Matches, that decides whether the transition consumes r.
func (m Matcher) Matches(r rune) bool {
	switch m.kind {
	case KindEpsilon:
		return true
	default:
		return r >= m.lo && r <= m.hi
	}
}

// String returns a human-readable label, used by debug/pretty-printing
// collaborators outside the core.
func (m Matcher) String() string {
	switch m.kind {
	case KindEpsilon:
		return "ε"
	case KindChar:
		return fmt.Sprintf("%q", m.lo)
	case KindRange:
		return fmt.Sprintf("[%q-%q]", m.lo, m.hi)
	default:
		return "?"
	}
}
