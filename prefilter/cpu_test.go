package prefilter

import "testing"

func TestCPUFeaturesDoesNotPanic(t *testing.T) {
	// CPUFeatures must be safe to call on any platform, x86 or not; it
	// simply reports whatever golang.org/x/sys/cpu has detected.
	features := CPUFeatures()
	_ = features.HasAVX2
}
