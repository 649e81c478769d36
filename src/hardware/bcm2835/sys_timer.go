package bcm2835

import "delays/src/hardware/mmio"

// System timer free running counter.  BCM2835 ARM Peripherals, page 172.
// The counter ticks at 1MHz from reset and cannot be stopped, so it reads as
// microseconds since power on.  Offsets are from the peripheral base.
const SysTimerOffset = 0x3000
const SysTimerCounterOffset = SysTimerOffset + 0x04

const sysTimerCounterLower32 = SysTimerCounterOffset + 0x00  //CLO, readonly
const sysTimerCounterHigher32 = SysTimerCounterOffset + 0x04 //CHI, readonly

// SysTimer reads the system timer's 64 bit counter through two 32 bit
// registers.  The hardware offers no atomic 64 bit read.
type SysTimer struct {
	regs mmio.Region
}

// NewSysTimer expects peripherals to start at the peripheral base of the
// board (rpi.MemoryMappedIO on the metal).
func NewSysTimer(peripherals mmio.Region) *SysTimer {
	return &SysTimer{regs: peripherals}
}

func (s *SysTimer) lower() uint32 {
	return s.regs.Load32(sysTimerCounterLower32)
}

func (s *SysTimer) higher() uint32 {
	return s.regs.Load32(sysTimerCounterHigher32)
}

// Counter is the number of microseconds since reset.  The low word is
// sandwiched between two reads of the high word; if the high word moved, the
// low word rolled over somewhere in there so both halves are read again.
func (s *SysTimer) Counter() uint64 {
	hi := s.higher()
	lo := s.lower()
	if hi != s.higher() {
		hi = s.higher()
		lo = s.lower()
	}
	return (uint64(hi) << 32) | uint64(lo)
}
