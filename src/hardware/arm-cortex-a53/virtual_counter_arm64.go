//go:build arm64 && !tinygo
// +build arm64,!tinygo

package arm_cortex_a53

// cntvct reads CNTVCT_EL0.  Implemented in virtual_counter_arm64.s
func cntvct() uint64

// cntfrq reads CNTFRQ_EL0.  Implemented in virtual_counter_arm64.s
func cntfrq() uint64

// VirtualCounter is the architectural counter as linux lets user space see
// it.  The kernel leaves CNTVCT_EL0 and CNTFRQ_EL0 readable from EL0 but not
// the physical timer, so there is no GenericTimer for hosted programs.
type VirtualCounter struct{}

var _ Counter = VirtualCounter{}

func (VirtualCounter) Frequency() uint64 {
	return cntfrq() & GenericTimerFrequencyMask
}

func (VirtualCounter) Count() uint64 {
	return cntvct()
}
