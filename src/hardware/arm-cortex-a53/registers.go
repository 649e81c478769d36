package arm_cortex_a53

// ***************************************
// CNTP_CTL_EL0, Counter-timer Physical Timer Control register, Page 2156 of AArch64-Reference-Manual.
// ***************************************

const GenericTimerControlEnable = (1 << 0)        //timer is running
const GenericTimerControlInterruptMask = (1 << 1) //IMASK, timer condition does not raise an interrupt
const GenericTimerControlStatus = (1 << 2)        //ISTATUS, readonly, timer condition met

// ***************************************
// CNTP_TVAL_EL0, Counter-timer Physical Timer TimerValue register, Page 2162 of AArch64-Reference-Manual.
// Writes set the compare value to CNTPCT_EL0 + the (signed 32 bit) value written.
// ***************************************

const GenericTimerValueMask = 0xFFFF_FFFF

// ***************************************
// CNTFRQ_EL0, Counter-timer Frequency register, Page 2140 of AArch64-Reference-Manual.
// Set by firmware, 19.2MHz on the pi 3, 54MHz on the pi 4.  Only the low 32 bits are used.
// ***************************************

const GenericTimerFrequencyMask = 0xFFFF_FFFF
