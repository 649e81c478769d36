package delay

// WaitMuSecSysTimer waits at least n microseconds as measured by c.
//
// A counter that reads zero is taken to mean there is no system timer (qemu
// does not emulate it and it always reads zero) and we return at once rather
// than spinning forever.
func WaitMuSecSysTimer(c MicrosecondCounter, n uint64) {
	t := c.Counter()
	if t == 0 {
		return
	}
	for c.Counter() < t+n {
	}
}
