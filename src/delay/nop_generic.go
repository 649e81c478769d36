//go:build !arm64
// +build !arm64

package delay

//go:noinline
func archNop() {}
