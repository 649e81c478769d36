// Package delay has the busy waits that boot code uses before there are
// interrupts or a scheduler.  Each wait spins on the calling core until it is
// done: nothing here yields, times out, or can be cancelled.
//
// Pick the one that matches the hardware you know you have:
//
//	WaitMuSecSysTimer  BCM system timer (a peripheral, so needs MMIO)
//	WaitMuSec          the core's generic timer (needs EL1)
//	WaitMuSecCounter   the core's free running counter, no timer state
//	WaitCycles         just nops, no timer at all
package delay

// MicrosecondCounter is a free running counter that ticks once per
// microsecond, like bcm2835.SysTimer.
type MicrosecondCounter interface {
	Counter() uint64
}
