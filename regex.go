// Package corenfa implements a Thompson-construction NFA regex engine
// with capture-group support. See spec.md for the algorithms and
// SPEC_FULL.md for how this package's ambient and domain stack extend
// it.
//
// Example:
//
//	re, err := corenfa.Compile(`(?P<all>e(a)e)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	groups, ok := re.Execute("eae")
//	// ok == true, groups["0"] == "eae", groups["all"] == "eae", groups["2"] == "a"
package corenfa

import (
	"sync/atomic"

	"github.com/coregx/corenfa/nfa"
	"github.com/coregx/corenfa/prefilter"
	"github.com/coregx/corenfa/syntax"
)

// Engine is a compiled pattern, ready to match input strings. An
// Engine's automaton is never modified after Compile, and the Engine is
// safe for concurrent Execute/Matches calls (spec.md §5) — all mutable
// search state lives on the stack inside nfa.Compute; the only fields
// Execute updates are the atomic Stats counters.
type Engine struct {
	pattern string
	frag    *nfa.Fragment
	names   []string // index 0 is "", the rest mirror syntax.ParseResult.Names

	scanner *prefilter.LiteralScanner // nil if not applicable or disabled
	cpu     prefilter.Features

	matches    atomic.Int64
	rejections atomic.Int64
}

// Compile parses pattern and builds its automaton using DefaultConfig.
func Compile(pattern string) (*Engine, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern cannot be compiled.
// Useful for patterns known to be valid at init time, teacher style.
func MustCompile(pattern string) *Engine {
	re, err := Compile(pattern)
	if err != nil {
		panic("corenfa: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig parses pattern and builds its automaton under cfg.
func CompileWithConfig(pattern string, cfg Config) (*Engine, error) {
	result, err := syntax.Parse(pattern)
	if err != nil {
		return nil, err
	}
	if cfg.MaxCaptureGroups > 0 && result.NumGroups+1 > cfg.MaxCaptureGroups {
		return nil, &syntax.ParseError{Pos: 0, Msg: "too many capture groups"}
	}

	frag, err := nfa.Build(result.Root)
	if err != nil {
		return nil, err
	}

	e := &Engine{
		pattern: pattern,
		frag:    frag,
		names:   result.Names,
		cpu:     prefilter.CPUFeatures(),
	}

	if cfg.EnablePrefilter {
		if literals, ok := syntax.FlattenLiterals(result.Root); ok {
			scanner, err := prefilter.NewLiteralScanner(literals)
			if err != nil {
				return nil, err
			}
			e.scanner = scanner
		}
	}

	return e, nil
}

// Execute matches input against the compiled pattern. On acceptance it
// returns the capture-group map described in spec.md §6 and true; on
// rejection, (nil, false).
func (e *Engine) Execute(input string) (map[string]string, bool) {
	e.matches.Add(1)

	if e.scanner != nil && !e.scanner.MayMatch(input) {
		e.rejections.Add(1)
		return nil, false
	}

	return nfa.Compute(e.frag, input)
}

// Matches reports whether input is accepted, without exposing captures.
func (e *Engine) Matches(input string) bool {
	_, ok := e.Execute(input)
	return ok
}

// String returns the source pattern text.
func (e *Engine) String() string {
	return e.pattern
}

// NumCaptures returns the number of capture groups including the
// implicit whole-match group 0.
func (e *Engine) NumCaptures() int {
	return len(e.names)
}

// SubexpNames returns the names of capture groups; index 0 is always
// "" (the entire match). Mirrors stdlib regexp.Regexp.SubexpNames.
func (e *Engine) SubexpNames() []string {
	out := make([]string, len(e.names))
	copy(out, e.names)
	return out
}

// Stats returns a snapshot of this Engine's counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Compiles:            1,
		Matches:             int(e.matches.Load()),
		PrefilterRejections: int(e.rejections.Load()),
		CPU:                 CPUInfo{HasAVX2: e.cpu.HasAVX2},
	}
}
