//go:build tinygo && (rpi3 || rpi3_qemu || rpi4)
// +build tinygo
// +build rpi3 rpi3_qemu rpi4

package bcm2835

import (
	"delays/src/hardware/mmio"
	"delays/src/hardware/rpi"
)

var Peripherals = mmio.MustPhysical(rpi.MemoryMappedIO)

var SysTimer0 = NewSysTimer(Peripherals)
var MiniUART0 = NewMiniUART(Peripherals)
