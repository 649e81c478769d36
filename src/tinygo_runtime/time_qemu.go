//go:build tinygo && rpi3_qemu
// +build tinygo,rpi3_qemu

package tinygo_runtime

import (
	"delays/src/delay"
	arm64 "delays/src/hardware/arm-cortex-a53"
)

// qemu does not emulate the system timer (it reads zero forever) so time
// comes from the core's counter instead.
var counter arm64.SystemRegisters

// SystemTime is microseconds since reset, from CNTPCT_EL0.
//
//go:export SystemTime
func SystemTime() uint64 {
	f := counter.Frequency()
	if f == 0 {
		return 0
	}
	return counter.Count() * 1000 / (f / 1000)
}

// Wait MuSec waits for at least n musecs based on the core's counter. This is a busy wait.
//
//go:export WaitMuSec
func WaitMuSec(n uint64) {
	delay.WaitMuSecCounter(counter, n)
}
