package corenfa

// Stats is a read-only snapshot of counters an Engine accumulates.
// Grounded on the teacher's meta.Engine.stats field — counters only, no
// behavior ever depends on them.
type Stats struct {
	// Compiles counts how many times Compile/CompileWithConfig produced
	// this Engine's automaton (always 1; kept for symmetry with Matches
	// and for parity with the teacher's per-engine stats block).
	Compiles int

	// Matches counts calls to Execute/Matches made against this Engine.
	Matches int

	// PrefilterRejections counts calls where the literal prefilter
	// short-circuited the full simulator.
	PrefilterRejections int

	// CPU records the SIMD feature detection performed at Compile time.
	CPU CPUInfo
}

// CPUInfo mirrors prefilter.Features without importing package
// prefilter into every caller's type graph.
type CPUInfo struct {
	HasAVX2 bool
}
