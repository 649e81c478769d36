//go:build tinygo
// +build tinygo

package mmio

import (
	"unsafe"

	"github.com/tinygo-org/tinygo/src/runtime/volatile"
)

// Physical is a Region at a fixed physical address, for code running on the
// bare metal with the MMU off (or identity mapped device memory).
//
// Constructing one is a promise that [base, base+whatever you read) is mapped
// device memory for the whole life of the program.  We check what we can
// (alignment) once, here, and never again on the access path.
type Physical struct {
	base uintptr
}

func NewPhysical(base uintptr) (Physical, error) {
	if base == 0 {
		return Physical{}, ErrNilBase
	}
	if !aligned32(base) {
		return Physical{}, ErrUnaligned
	}
	return Physical{base: base}, nil
}

// MustPhysical is NewPhysical for addresses that are compile time constants.
func MustPhysical(base uintptr) Physical {
	p, err := NewPhysical(base)
	if err != nil {
		panic("mmio: bad physical base: " + err.Error())
	}
	return p
}

func (p Physical) Load32(offset uintptr) uint32 {
	return volatile.LoadUint32((*uint32)(unsafe.Pointer(p.base + offset)))
}

func (p Physical) Store32(offset uintptr, value uint32) {
	volatile.StoreUint32((*uint32)(unsafe.Pointer(p.base+offset)), value)
}
