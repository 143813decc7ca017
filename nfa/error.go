// Package nfa implements the Thompson-construction NFA core: the
// fragment data model (state, append/splice), the AST-to-NFA builder,
// and the backtracking simulator. See spec.md §2–§4 for the algorithms
// this package implements.
package nfa

import "fmt"

// BuildError reports a Fragment invariant violation: a state id that
// does not exist in the fragment. Compute panics with one when the
// search reaches an out-of-range state; the builder functions do not
// check ids themselves and always return a nil error. Encountering one
// indicates a bug in the builder, not a malformed pattern (malformed
// patterns surface as *syntax.ParseError, one layer up, before the
// builder ever runs).
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.StateID == InvalidState {
		return fmt.Sprintf("nfa: %s", e.Message)
	}
	return fmt.Sprintf("nfa: %s (state %d)", e.Message, e.StateID)
}
