package bcm2835

import (
	"testing"

	"delays/src/hardware/mmio/mmiotest"
)

func TestCounterNoRollover(t *testing.T) {
	r := mmiotest.NewRegisters()
	r.Script(sysTimerCounterHigher32, 7, 7)
	r.Script(sysTimerCounterLower32, 0x1234)

	st := NewSysTimer(r)
	if c := st.Counter(); c != 0x0000_0007_0000_1234 {
		t.Errorf("expected 700001234 but got %x", c)
	}
	checkLoads(t, r, 2, 1)
}

func TestCounterRolloverBetweenHighReads(t *testing.T) {
	r := mmiotest.NewRegisters()
	//low word wraps after the first high read
	r.Script(sysTimerCounterHigher32, 5, 6, 6)
	r.Script(sysTimerCounterLower32, 0xFFFF_FFFE, 0x0000_0003)

	st := NewSysTimer(r)
	c := st.Counter()
	if c != 0x0000_0006_0000_0003 {
		t.Errorf("expected post rollover value 600000003 but got %x", c)
	}
	if c == 0x0000_0006_FFFF_FFFE || c == 0x0000_0005_0000_0003 {
		t.Errorf("torn read: %x", c)
	}
	checkLoads(t, r, 3, 2)
}

func TestCounterOnlyTouchesCounterRegisters(t *testing.T) {
	r := mmiotest.NewRegisters()
	st := NewSysTimer(r)
	st.Counter()
	for _, off := range r.Loads() {
		if off != 0x3004 && off != 0x3008 {
			t.Errorf("unexpected load at offset %x", off)
		}
	}
	if len(r.Stores()) != 0 {
		t.Errorf("reading the counter must not write any register")
	}
}

func TestCounterZeroUnderEmulation(t *testing.T) {
	st := NewSysTimer(mmiotest.NewRegisters())
	if c := st.Counter(); c != 0 {
		t.Errorf("expected zero counter but got %x", c)
	}
}

func TestCounterMonotonicAcrossRollover(t *testing.T) {
	for _, step := range []uint64{1, 3, 7, 1000} {
		r, _ := freeRunning(0xFFFF_FF00, step)
		st := NewSysTimer(r)
		prev := st.Counter()
		for i := 0; i < 500; i++ {
			c := st.Counter()
			if c < prev {
				t.Fatalf("step %d: counter went backwards from %x to %x", step, prev, c)
			}
			prev = c
		}
		if prev>>32 == 0 {
			t.Errorf("step %d: test never crossed the rollover (last %x)", step, prev)
		}
	}
}

// freeRunning simulates the hardware: a 64 bit counter that advances by step
// every time either half is read.
func freeRunning(start, step uint64) (*mmiotest.Registers, *uint64) {
	now := start
	r := mmiotest.NewRegisters()
	r.OnLoad = func(offset uintptr, _ int) (uint32, bool) {
		v := now
		now += step
		switch offset {
		case sysTimerCounterLower32:
			return uint32(v), true
		case sysTimerCounterHigher32:
			return uint32(v >> 32), true
		}
		return 0, false
	}
	return r, &now
}

func checkLoads(t *testing.T, r *mmiotest.Registers, hi, lo int) {
	t.Helper()
	if n := r.LoadCount(sysTimerCounterHigher32); n != hi {
		t.Errorf("expected %d reads of CHI but got %d", hi, n)
	}
	if n := r.LoadCount(sysTimerCounterLower32); n != lo {
		t.Errorf("expected %d reads of CLO but got %d", lo, n)
	}
}
