//go:build linux && arm64 && !tinygo
// +build linux,arm64,!tinygo

package main

import (
	"log"

	"golang.org/x/sys/cpu"

	"delays/src/delay"
	"delays/src/delaylog"
	arm64 "delays/src/hardware/arm-cortex-a53"
)

// counterWaits runs the counter based wait on CNTVCT_EL0, timed with the
// system timer, so the two clocks can be compared.
func counterWaits(st delay.MicrosecondCounter, stats *delaylog.Stats) {
	var vc arm64.VirtualCounter
	if *verbose > 0 {
		log.Printf("generic timer: CNTFRQ_EL0 %d Hz, event stream %v", vc.Frequency(), cpu.ARM64.HasEVTSTRM)
	}
	if vc.Frequency() == 0 {
		log.Printf("CNTFRQ_EL0 is zero, skipping counter waits")
		return
	}
	for i := 0; i < *countFlag; i++ {
		r, host := measure(st, delaylog.KindCounter, *waitFlag, func() {
			delay.WaitMuSecCounter(vc, *waitFlag)
		})
		record(stats, r, host)
	}
}
