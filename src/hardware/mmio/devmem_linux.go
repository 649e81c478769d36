//go:build linux && !tinygo
// +build linux,!tinygo

package mmio

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// DevMem is a Region backed by an mmap of /dev/mem (or /dev/gpiomem) so a
// program running under linux on the pi can see the same registers the bare
// metal code does.  Offsets are relative to the base given to OpenDevMem, but
// only the window [offset, offset+size) is actually mapped.
type DevMem struct {
	mem   []byte
	start uintptr //first valid offset, relative to base
	size  uintptr
	slack uintptr //distance from the page boundary to start
}

// OpenDevMem maps size bytes of physical memory starting at base+offset from
// the device file at path.  The mapping is rounded out to whole pages.
func OpenDevMem(path string, base, offset, size uintptr) (*DevMem, error) {
	if size == 0 {
		return nil, ErrEmptyWindow
	}
	phys := base + offset
	if !aligned32(phys) {
		return nil, fmt.Errorf("%w: %x", ErrUnaligned, phys)
	}
	page := uintptr(unix.Getpagesize())
	pageStart := phys &^ (page - 1)
	slack := phys - pageStart
	length := (slack + size + page - 1) &^ (page - 1)

	fd, err := unix.Open(path, unix.O_RDWR|unix.O_SYNC|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	defer unix.Close(fd)

	mem, err := unix.Mmap(fd, int64(pageStart), int(length), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("unable to map %x bytes at %x from %s: %w", length, pageStart, path, err)
	}
	return newDevMem(mem, offset, size, slack), nil
}

func newDevMem(mem []byte, start, size, slack uintptr) *DevMem {
	return &DevMem{mem: mem, start: start, size: size, slack: slack}
}

// Close unmaps the window.  The DevMem must not be used afterwards.
func (d *DevMem) Close() error {
	if d.mem == nil {
		return nil
	}
	err := unix.Munmap(d.mem)
	d.mem = nil
	return err
}

func (d *DevMem) word(offset uintptr) *uint32 {
	if !aligned32(offset) || offset < d.start || offset+4 > d.start+d.size {
		panic(fmt.Sprintf("mmio: offset %x outside window [%x,%x)", offset, d.start, d.start+d.size))
	}
	return (*uint32)(unsafe.Pointer(&d.mem[d.slack+offset-d.start]))
}

func (d *DevMem) Load32(offset uintptr) uint32 {
	return atomic.LoadUint32(d.word(offset))
}

func (d *DevMem) Store32(offset uintptr, value uint32) {
	atomic.StoreUint32(d.word(offset), value)
}
