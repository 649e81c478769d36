//go:build tinygo && (rpi3 || rpi4)
// +build tinygo
// +build rpi3 rpi4

package tinygo_runtime

import (
	"delays/src/delay"
	p "delays/src/hardware/bcm2835"
)

// SystemTime is microseconds since reset, from the system timer.
//
//go:export SystemTime
func SystemTime() uint64 {
	return p.SysTimer0.Counter()
}

// Wait MuSec waits for at least n musecs based on the system timer. This is a busy wait.
//
//go:export WaitMuSec
func WaitMuSec(n uint64) {
	delay.WaitMuSecSysTimer(p.SysTimer0, n)
}
