package nfa

// StateID identifies a state within a single Fragment's state arena.
type StateID uint32

// InvalidState marks an unset or not-yet-allocated state reference.
const InvalidState StateID = 0xFFFFFFFF

// Transition is one outgoing edge: take it when Matcher accepts the
// current input rune (or unconditionally, for Epsilon), landing on
// Target. Order within a state's transition list is significant — see
// Fragment.AddTransition / UnshiftTransition.
type Transition struct {
	Matcher Matcher
	Target  StateID
}

// GroupMarker attaches a capture-group boundary to a state. Name is ""
// for a purely numbered group.
type GroupMarker struct {
	Index uint32
	Name  string
}

// State is one node of an NFA fragment.
type State struct {
	transitions []Transition
	isInitial   bool
	isEnding    bool
	startGroups []GroupMarker
	endGroups   []GroupMarker
}

// Transitions returns the state's outgoing edges in declaration order.
func (s *State) Transitions() []Transition {
	return s.transitions
}

// IsInitial reports whether this is the fragment's (sole) initial state.
func (s *State) IsInitial() bool {
	return s.isInitial
}

// IsEnding reports whether this state is a member of the fragment's
// ending set.
func (s *State) IsEnding() bool {
	return s.isEnding
}

// StartGroups returns the capture groups this state opens.
func (s *State) StartGroups() []GroupMarker {
	return s.startGroups
}

// EndGroups returns the capture groups this state closes.
func (s *State) EndGroups() []GroupMarker {
	return s.endGroups
}

// Fragment is a partial NFA: an arena of states with exactly one
// initial state and one or more ending states, composable with other
// fragments via Append. See spec.md §3 for the invariants every
// Fragment must satisfy.
type Fragment struct {
	states  []State
	initial StateID
	ending  map[StateID]struct{}
}

// NewFragment returns an empty fragment with no states. Callers build
// it up with AddState/DeclareState before use.
func NewFragment() *Fragment {
	return &Fragment{
		initial: InvalidState,
		ending:  make(map[StateID]struct{}),
	}
}

// Initial returns the fragment's initial state id.
func (f *Fragment) Initial() StateID {
	return f.initial
}

// IsEnding reports whether id is a member of the ending set.
func (f *Fragment) IsEnding(id StateID) bool {
	_, ok := f.ending[id]
	return ok
}

// NumEnding returns the size of the ending set.
func (f *Fragment) NumEnding() int {
	return len(f.ending)
}

// EndingIDs returns the ending set as a slice. Order is unspecified.
func (f *Fragment) EndingIDs() []StateID {
	out := make([]StateID, 0, len(f.ending))
	for id := range f.ending {
		out = append(out, id)
	}
	return out
}

// NumStates returns the number of states currently in the fragment.
func (f *Fragment) NumStates() int {
	return len(f.states)
}

// State returns a pointer to the state at id. Panics if id is out of
// range — an out-of-range id is always a builder bug, never user input
// (Compute checks ids before calling State and panics with a
// *BuildError instead).
func (f *Fragment) State(id StateID) *State {
	return &f.states[id]
}
