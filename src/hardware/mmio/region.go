// Package mmio is the only place that touches memory-mapped device registers.
// Everything above it talks to a Region, so the same driver code runs on the
// board, from linux user space through /dev/mem, and against a fake in tests.
package mmio

import "errors"

var ErrNilBase = errors.New("mmio base address is zero")
var ErrUnaligned = errors.New("mmio address is not 32 bit aligned")
var ErrEmptyWindow = errors.New("mmio window has zero size")

// Region is a range of device registers addressed by byte offset from the
// start of the range.  Each call is exactly one 32 bit access to the device;
// implementations must never merge, split, reorder, or elide them.  Offsets
// must be multiples of 4.
type Region interface {
	Load32(offset uintptr) uint32
	Store32(offset uintptr, value uint32)
}

func aligned32(a uintptr) bool {
	return a&3 == 0
}
