//go:build tinygo && arm64
// +build tinygo,arm64

package arm_cortex_a53

import "github.com/tinygo-org/tinygo/src/device/arm"

// SystemRegisters is the generic timer and counter of the current core,
// reached with mrs/msr.  Needs EL1 (or EL0 with CNTKCTL_EL1 opening them up).
type SystemRegisters struct{}

var _ GenericTimer = SystemRegisters{}
var _ Counter = SystemRegisters{}

func (SystemRegisters) Frequency() uint64 {
	var f uint64
	arm.AsmFull(`mrs x28, cntfrq_el0
		str x28,{f}`, map[string]interface{}{"f": &f})
	return f & GenericTimerFrequencyMask
}

func (SystemRegisters) Count() uint64 {
	var c uint64
	arm.AsmFull(`isb
		mrs x27, cntpct_el0
		str x27,{c}`, map[string]interface{}{"c": &c})
	return c
}

func (SystemRegisters) SetTimerValue(ticks uint32) {
	v := uint64(ticks)
	arm.AsmFull(`ldr x28,{v}
		msr cntp_tval_el0, x28
		isb`, map[string]interface{}{"v": &v})
}

func (SystemRegisters) Control() uint32 {
	var c uint64
	arm.AsmFull(`mrs x28, cntp_ctl_el0
		str x28,{c}`, map[string]interface{}{"c": &c})
	return uint32(c)
}

func (SystemRegisters) SetControl(value uint32) {
	v := uint64(value)
	arm.AsmFull(`ldr x28,{v}
		msr cntp_ctl_el0, x28
		isb`, map[string]interface{}{"v": &v})
}
