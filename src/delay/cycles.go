package delay

// WaitCycles executes cycles nop instructions.  How long that takes depends
// on the clock and the pipeline; it is not a calibrated delay.  Good for the
// "wait 150 cycles" steps of peripheral setup sequences.
func WaitCycles(cycles uint32) {
	cycleLoop(cycles, archNop)
}

func cycleLoop(r uint32, nop func()) {
	for r > 0 {
		r--
		nop()
	}
}
