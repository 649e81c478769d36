// Package mmiotest provides a fake mmio.Region for driver tests.
package mmiotest

// Store is one recorded write.
type Store struct {
	Offset uintptr
	Value  uint32
}

// Registers is a scripted register file.  Each offset has a queue of values;
// a load pops the next one and the last value sticks once the queue is down
// to one entry.  Offsets never scripted or stored read as zero.
//
// OnLoad, if set, is consulted first and wins when it returns true; n is the
// number of earlier loads of that offset.
type Registers struct {
	OnLoad func(offset uintptr, n int) (uint32, bool)

	scripts map[uintptr][]uint32
	counts  map[uintptr]int
	loads   []uintptr
	stores  []Store
}

func NewRegisters() *Registers {
	return &Registers{
		scripts: make(map[uintptr][]uint32),
		counts:  make(map[uintptr]int),
	}
}

// Script queues the values successive loads of offset will return.
func (r *Registers) Script(offset uintptr, values ...uint32) {
	r.scripts[offset] = append(r.scripts[offset], values...)
}

func (r *Registers) Load32(offset uintptr) uint32 {
	n := r.counts[offset]
	r.counts[offset] = n + 1
	r.loads = append(r.loads, offset)
	if r.OnLoad != nil {
		if v, ok := r.OnLoad(offset, n); ok {
			return v
		}
	}
	q := r.scripts[offset]
	switch len(q) {
	case 0:
		return 0
	case 1:
		return q[0]
	}
	r.scripts[offset] = q[1:]
	return q[0]
}

// Store32 records the write; later loads of offset see value.
func (r *Registers) Store32(offset uintptr, value uint32) {
	r.stores = append(r.stores, Store{Offset: offset, Value: value})
	r.scripts[offset] = []uint32{value}
}

// Loads is every load so far, in order.
func (r *Registers) Loads() []uintptr {
	return r.loads
}

// LoadCount is how many times offset has been loaded.
func (r *Registers) LoadCount(offset uintptr) int {
	return r.counts[offset]
}

// Stores is every store so far, in order.
func (r *Registers) Stores() []Store {
	return r.stores
}
