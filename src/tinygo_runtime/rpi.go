//go:build tinygo && (rpi3 || rpi3_qemu || rpi4)
// +build tinygo
// +build rpi3 rpi3_qemu rpi4

package tinygo_runtime

import (
	p "delays/src/hardware/bcm2835"

	"github.com/tinygo-org/tinygo/src/device/arm"
)

// decls
var MiniUART = p.MiniUART0

func Abort(s string) {
	MiniUART.WriteString("Aborting..." + s + "\n")
	for {
		arm.Asm("nop")
	}
}
