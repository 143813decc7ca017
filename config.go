package corenfa

// Config holds compilation-time knobs. Grounded on the teacher's
// meta.Config / DefaultConfig functional-option surface
// (coregx-coregex/regex.go's CompileWithConfig), trimmed to the two
// knobs SPEC_FULL.md §3 names — the teacher's DFA-state-limit and
// strategy-selection knobs have no counterpart once that machinery is
// out of scope (see DESIGN.md).
type Config struct {
	// EnablePrefilter builds a prefilter.LiteralScanner ahead of the
	// simulator when the pattern's root is a pure literal alternation.
	EnablePrefilter bool

	// MaxCaptureGroups bounds how many capture groups Compile accepts,
	// counting the implicit group 0 as NumCaptures does.
	// spec.md §9 notes the group_flag bitmask limits groups to 64 by
	// construction (uint64); this rejects patterns before that limit
	// is silently exceeded.
	MaxCaptureGroups int
}

// DefaultConfig returns the default compilation configuration.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter:  true,
		MaxCaptureGroups: 64,
	}
}
