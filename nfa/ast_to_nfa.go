package nfa

import "github.com/coregx/corenfa/syntax"

// Build compiles ir into a whole-automaton Fragment, wrapping the result
// in an implicit, unnamed capture group 0 (spec.md §4.3, last
// paragraph). This is the builder's one public entry point
// (ast_to_nfa(ir_node) -> fragment in spec.md's notation).
func Build(ir syntax.Node) (*Fragment, error) {
	frag, err := build(ir)
	if err != nil {
		return nil, err
	}
	frag.MarkCaptureGroup(0, "")
	return frag, nil
}

// emptyFragment returns a single-state fragment whose one state is both
// initial and ending, with no transitions — it matches only the empty
// string. Per spec.md §7, an IR node kind the builder doesn't recognize
// compiles to this no-op fragment rather than an error.
func emptyFragment() *Fragment {
	f := NewFragment()
	s := f.AddState()
	f.SetInitial(s)
	f.AddEnding(s)
	return f
}

func build(node syntax.Node) (*Fragment, error) {
	switch n := node.(type) {
	case syntax.Literal:
		return buildLiteral(n), nil
	case syntax.Class:
		return buildClass(n), nil
	case syntax.Concat:
		return buildConcat(n)
	case syntax.Alternation:
		return buildAlternation(n)
	case syntax.Repetition:
		return buildRepetition(n)
	case syntax.Capture:
		return buildCapture(n)
	default:
		return emptyFragment(), nil
	}
}

// buildLiteral builds a linear chain of len(runes)+1 states: state 0 is
// initial, state len(runes) is the sole ending, and state i transitions
// to i+1 on runes[i]. spec.md §4.3 "Literal(bytes)".
func buildLiteral(lit syntax.Literal) *Fragment {
	f := NewFragment()
	n := len(lit.Runes)
	f.DeclareState(n+1, 0, StateID(n))
	for i, r := range lit.Runes {
		f.AddCharTransition(StateID(i), StateID(i+1), r)
	}
	return f
}

// buildClass builds the parallel design spec.md §9 resolves its class
// open question to: two states (entry, exit) joined by one range
// transition per inclusive range. spec.md §4.3 "Class(ranges)".
func buildClass(cls syntax.Class) *Fragment {
	f := NewFragment()
	entry := f.DeclareState(2, 0, 1)
	exit := StateID(1)
	for _, r := range cls.Ranges {
		f.AddTransition(entry, exit, RangeMatcher(r.Lo, r.Hi))
	}
	return f
}

// buildConcat builds a linear chain of spliced sub-fragments. spec.md
// §4.3 "Concat(children)".
func buildConcat(c syntax.Concat) (*Fragment, error) {
	f := NewFragment()
	init := f.AddState()
	f.SetInitial(init)
	f.AddEnding(init)

	for _, child := range c.Children {
		sub, err := build(child)
		if err != nil {
			return nil, err
		}
		ending := f.soleEnding()
		f.RemoveEnding(ending)
		f.Append(sub, ending)
	}
	return f, nil
}

// buildAlternation splices every child at a shared initial state, then
// funnels every resulting ending through one fresh terminal state via
// ε-transitions. spec.md §4.3 "Alternation(children)".
func buildAlternation(a syntax.Alternation) (*Fragment, error) {
	f := NewFragment()
	init := f.AddState()
	f.SetInitial(init)

	for _, child := range a.Children {
		sub, err := build(child)
		if err != nil {
			return nil, err
		}
		f.Append(sub, init)
	}

	term := f.AddState()
	for _, e := range f.EndingIDs() {
		f.AddEpsilonTransition(e, term)
		f.RemoveEnding(e)
	}
	f.AddEnding(term)
	return f, nil
}

// buildRepetition implements {min,max}, {min,}, ?, *, + uniformly per
// spec.md §4.3 "Repetition{min, max, sub}".
func buildRepetition(r syntax.Repetition) (*Fragment, error) {
	sub, err := build(r.Sub)
	if err != nil {
		return nil, err
	}

	f := NewFragment()
	init := f.AddState()
	f.SetInitial(init)
	f.AddEnding(init)

	for i := 0; i < r.Min; i++ {
		ending := f.soleEnding()
		f.RemoveEnding(ending)
		f.Append(sub, ending)
	}

	switch {
	case r.Max < 0:
		// Unbounded tail: one more copy of sub, wired to loop back,
		// exit, or be skipped entirely (covers min == 0).
		e0 := f.soleEnding()
		f.RemoveEnding(e0)
		f.Append(sub, e0)
		e1 := f.soleEnding()
		f.RemoveEnding(e1)

		term := f.AddState()
		f.AddEpsilonTransition(e1, e0) // loop back
		f.AddEpsilonTransition(e1, term)
		f.AddEpsilonTransition(e0, e1) // skip this iteration
		f.AddEnding(term)

	case r.Max > r.Min:
		var entries []StateID
		for i := 0; i < r.Max-r.Min; i++ {
			entry := f.soleEnding()
			entries = append(entries, entry)
			f.RemoveEnding(entry)
			f.Append(sub, entry)
		}
		term := f.soleEnding()
		for _, entry := range entries {
			f.AddEpsilonTransition(entry, term)
		}
	}

	return f, nil
}

// buildCapture wraps sub's fragment with a start marker on its initial
// state and an end marker on every (single) ending state. spec.md §4.3
// "Capture{index, name, sub}".
func buildCapture(c syntax.Capture) (*Fragment, error) {
	sub, err := build(c.Sub)
	if err != nil {
		return nil, err
	}
	sub.MarkCaptureGroup(c.Index, c.Name)
	return sub, nil
}

// soleEnding returns the fragment's one ending state. Every fragment
// this builder produces maintains exactly one ending state at all
// times, so Concat/Repetition can always "pop the last ending" per
// spec.md §4.3 by reading it here.
func (f *Fragment) soleEnding() StateID {
	for id := range f.ending {
		return id
	}
	return InvalidState
}
