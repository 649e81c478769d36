//go:build tinygo && (rpi3 || rpi3_qemu || rpi4)
// +build tinygo
// +build rpi3 rpi3_qemu rpi4

package main

import (
	"delays/src/delay"
	"delays/src/delaylog"
	arm64 "delays/src/hardware/arm-cortex-a53"
	"delays/src/hardware/bcm2835"
	_ "delays/src/tinygo_runtime"
)

var muSecWaits = []uint64{1, 10, 100, 1000, 10000, 100000}
var genericWaits = []uint32{1, 5, 20}
var cycleWaits = []uint32{150, 10000, 1000000}

var regs arm64.SystemRegisters

// Runs every kind of wait and prints a report line for each, timed with the
// system timer.  delaywatch on the other end of the serial line turns these
// into a summary.
func main() {
	println("delays: system timer", bcm2835.SysTimer0.Counter(), "CNTFRQ_EL0", regs.Frequency())
	if bcm2835.SysTimer0.Counter() == 0 {
		println("delays: system timer reads zero, probably qemu; system timer waits will not wait")
	}

	for _, n := range muSecWaits {
		start := bcm2835.SysTimer0.Counter()
		delay.WaitMuSecSysTimer(bcm2835.SysTimer0, n)
		report(delaylog.KindSysTimer, n, start)

		start = bcm2835.SysTimer0.Counter()
		delay.WaitMuSecCounter(regs, n)
		report(delaylog.KindCounter, n, start)
	}

	for _, n := range genericWaits {
		//nobody else gets the timer while we have it armed
		masked := arm64.MaskIRQ()
		start := bcm2835.SysTimer0.Counter()
		delay.WaitMuSec(regs, n)
		end := bcm2835.SysTimer0.Counter()
		arm64.RestoreIRQ(masked)
		println(delaylog.ReportPrefix, delaylog.KindGenericTimer, uint64(n), start, end)
	}

	for _, n := range cycleWaits {
		start := bcm2835.SysTimer0.Counter()
		delay.WaitCycles(n)
		report(delaylog.KindCycles, uint64(n), start)
	}

	println(delaylog.DoneLine)
	for {
		delay.WaitCycles(1000000)
	}
}

func report(kind string, n uint64, start uint64) {
	end := bcm2835.SysTimer0.Counter()
	println(delaylog.ReportPrefix, kind, n, start, end)
}
