//go:build arm64 && !tinygo
// +build arm64,!tinygo

package delay

// archNop is a single nop.  Implemented in nop_arm64.s
func archNop()
