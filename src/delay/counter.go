package delay

import arm64 "delays/src/hardware/arm-cortex-a53"

// WaitMuSecCounter waits for at least n microseconds by watching the free
// running architectural counter.  Unlike WaitMuSec it changes no timer
// state, so it is safe from anywhere the counter can be read (including
// linux user space via arm64.VirtualCounter).
func WaitMuSecCounter(c arm64.Counter, n uint64) {
	f := c.Frequency()
	t := c.Count()
	//expires at t
	t += ((f / 1000) * n) / 1000
	for c.Count() < t {
	}
}
