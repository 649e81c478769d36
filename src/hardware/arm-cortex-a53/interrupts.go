//go:build tinygo && arm64
// +build tinygo,arm64

package arm_cortex_a53

import "github.com/tinygo-org/tinygo/src/device/arm"

const daifIRQ = 1 << 7 //I bit of DAIF as read with mrs

// MaskDAIF sets the value of the four D-A-I-F interupt masking on the ARM
func MaskDAIF() {
	arm.Asm("msr    daifset, #0xf")
}

// UnmaskDAIF sets the value of the four D-A-I-F interupt masking on the ARM
func UnmaskDAIF() {
	arm.Asm("msr    daifclr, #0xf")
}

// MaskIRQ masks only IRQs and reports if they were already masked, so a
// caller can put things back the way it found them with RestoreIRQ.
func MaskIRQ() bool {
	var daif uint64
	arm.AsmFull(`mrs x28, daif
		str x28,{d}`, map[string]interface{}{"d": &daif})
	arm.Asm("msr    daifset, #2")
	return daif&daifIRQ != 0
}

// RestoreIRQ undoes MaskIRQ.
func RestoreIRQ(wasMasked bool) {
	if !wasMasked {
		arm.Asm("msr    daifclr, #2")
	}
}
