package delay

import arm64 "delays/src/hardware/arm-cortex-a53"

// WaitMuSec waits on the generic timer of the calling core: arm it with
// interrupts masked, poll ISTATUS, disarm it.  The caller must make sure
// nothing else (an interrupt handler, say) uses the timer meanwhile.
//
// The tick count is (CNTFRQ/1000)*n computed in 32 bits, which is what the
// boot code this came from expects.  With CNTFRQ in Hz that is n
// milliseconds' worth of ticks, not microseconds; use WaitMuSecCounter for
// real microseconds.  CNTFRQ of zero means no wait at all.
func WaitMuSec(t arm64.GenericTimer, n uint32) {
	frq := uint32(t.Frequency())
	tval := (frq / 1000) * n

	t.SetTimerValue(tval)
	t.SetControl(t.Control() | arm64.GenericTimerControlEnable | arm64.GenericTimerControlInterruptMask)

	for t.Control()&arm64.GenericTimerControlStatus == 0 {
	}

	t.SetControl(t.Control() &^ arm64.GenericTimerControlEnable)
}
