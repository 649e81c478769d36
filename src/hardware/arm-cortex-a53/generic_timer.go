package arm_cortex_a53

// GenericTimer is the EL1 physical timer of the core we are running on.  It is
// per-core state shared by everything that runs on that core: whoever arms it
// owns it until they disarm it.
type GenericTimer interface {
	Frequency() uint64          //CNTFRQ_EL0, ticks per second
	SetTimerValue(ticks uint32) //CNTP_TVAL_EL0
	Control() uint32            //CNTP_CTL_EL0
	SetControl(value uint32)    //CNTP_CTL_EL0
}

// Counter is a free running architectural counter and its frequency.
type Counter interface {
	Frequency() uint64
	Count() uint64
}
