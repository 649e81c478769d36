//go:build tinygo && arm64
// +build tinygo,arm64

package delay

import "github.com/tinygo-org/tinygo/src/device/arm"

func archNop() {
	arm.Asm("nop")
}
