package prefilter

import "golang.org/x/sys/cpu"

// Features records which SIMD instruction sets are available on the
// running CPU. Grounded on the teacher's simd package CPU-feature-
// detection convention (coregx-coregex/simd/memchr_amd64.go's hasAVX2),
// kept here purely as a capability flag surfaced through Stats — this
// module does not branch its matching algorithm on it, since SIMD byte
// scanning belongs to the teacher's DFA/memchr stack spec.md's
// Non-goals exclude (see DESIGN.md).
type Features struct {
	HasAVX2 bool
}

// CPUFeatures detects SIMD capability on the current process's CPU.
// cpu.X86 is a zero-valued struct on non-x86 platforms, so HasAVX2 is
// simply false there — no build tags needed.
func CPUFeatures() Features {
	return Features{HasAVX2: cpu.X86.HasAVX2}
}
