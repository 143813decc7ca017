package nfa

// This file holds Fragment's primitive mutation operations and the one
// compound operation, Append, that the AST-to-NFA builder (ast_to_nfa.go)
// composes sub-fragments with. See spec.md §4.2.

// AddState appends a single blank state and returns its id.
func (f *Fragment) AddState() StateID {
	id := StateID(len(f.states))
	f.states = append(f.states, State{})
	return id
}

// FillState appends n blank states, returning the id of the first.
func (f *Fragment) FillState(n int) StateID {
	first := StateID(len(f.states))
	for i := 0; i < n; i++ {
		f.states = append(f.states, State{})
	}
	return first
}

// DeclareState fills n blank states, marks init as the initial state,
// and adds end to the ending set. A convenience wrapper the builder
// uses to set up each leaf fragment's skeleton in one call.
func (f *Fragment) DeclareState(n int, init, end StateID) StateID {
	first := f.FillState(n)
	f.SetInitial(init)
	f.AddEnding(end)
	return first
}

// SetInitial marks id as the fragment's initial state. Idempotent.
func (f *Fragment) SetInitial(id StateID) {
	if f.initial != InvalidState && f.initial != id {
		f.states[f.initial].isInitial = false
	}
	f.initial = id
	f.states[id].isInitial = true
}

// AddEnding adds id to the ending set, maintaining the State.isEnding
// bijection.
func (f *Fragment) AddEnding(id StateID) {
	f.ending[id] = struct{}{}
	f.states[id].isEnding = true
}

// RemoveEnding removes id from the ending set.
func (f *Fragment) RemoveEnding(id StateID) {
	delete(f.ending, id)
	f.states[id].isEnding = false
}

// AddTransition appends (matcher, to) to from's transition list. Later
// appends are explored later by the simulator (Compute in backtrack.go
// pushes a state's transitions in reverse order), so declaration order
// encodes priority.
func (f *Fragment) AddTransition(from, to StateID, m Matcher) {
	s := &f.states[from]
	s.transitions = append(s.transitions, Transition{Matcher: m, Target: to})
}

// UnshiftTransition prepends (matcher, to) to from's transition list,
// giving it priority over every transition already present.
func (f *Fragment) UnshiftTransition(from, to StateID, m Matcher) {
	s := &f.states[from]
	s.transitions = append([]Transition{{Matcher: m, Target: to}}, s.transitions...)
}

// AddCharTransition is sugar for AddTransition with a CharMatcher.
func (f *Fragment) AddCharTransition(from, to StateID, r rune) {
	f.AddTransition(from, to, CharMatcher(r))
}

// AddEpsilonTransition is sugar for AddTransition with the Epsilon matcher.
func (f *Fragment) AddEpsilonTransition(from, to StateID) {
	f.AddTransition(from, to, EpsilonMatcher())
}

// MarkStartCaptureGroup attaches a start boundary for group idx/name to
// state id.
func (f *Fragment) MarkStartCaptureGroup(id StateID, idx uint32, name string) {
	s := &f.states[id]
	s.startGroups = append(s.startGroups, GroupMarker{Index: idx, Name: name})
}

// MarkEndCaptureGroup attaches an end boundary for group idx/name to
// state id.
func (f *Fragment) MarkEndCaptureGroup(id StateID, idx uint32, name string) {
	s := &f.states[id]
	s.endGroups = append(s.endGroups, GroupMarker{Index: idx, Name: name})
}

// MarkCaptureGroup attaches a start marker to the fragment's current
// initial state and an end marker to every current ending state. This
// is how Builder wraps a sub-fragment in a Capture node (spec.md §4.3)
// and how the engine façade wraps the whole pattern in implicit group 0.
func (f *Fragment) MarkCaptureGroup(idx uint32, name string) {
	f.MarkStartCaptureGroup(f.initial, idx, name)
	for id := range f.ending {
		f.MarkEndCaptureGroup(id, idx, name)
	}
}

// Append grafts other into f, identifying other's initial state with
// unionState (an existing state in f). See spec.md §4.2.1 for the full
// rationale; this is the central splicing operation every builder case
// (ast_to_nfa.go) uses to wire sub-fragments together without an extra
// ε-hop.
func (f *Fragment) Append(other *Fragment, unionState StateID) {
	if other.NumStates() < 2 {
		return
	}

	base := StateID(len(f.states))

	// mapID translates an `other` state id to its id in f.
	mapID := func(k StateID) StateID {
		if other.states[k].isInitial {
			return unionState
		}
		return k + base - 1
	}

	// Reserve other.NumStates()-1 fresh slots (other's initial state is
	// folded into unionState, not materialised).
	for i := 0; i < other.NumStates()-1; i++ {
		f.states = append(f.states, State{})
	}

	f.RemoveEnding(unionState)

	for id := range other.ending {
		f.AddEnding(mapID(id))
	}

	for k := range other.states {
		src := StateID(k)
		mappedSrc := mapID(src)
		os := &other.states[k]

		for _, t := range os.transitions {
			f.AddTransition(mappedSrc, mapID(t.Target), t.Matcher)
		}
		for _, g := range os.startGroups {
			f.MarkStartCaptureGroup(mappedSrc, g.Index, g.Name)
		}
		for _, g := range os.endGroups {
			f.MarkEndCaptureGroup(mappedSrc, g.Index, g.Name)
		}
	}
}
