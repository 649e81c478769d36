//go:build rpi4
// +build rpi4

package rpi

// BCM2711 in "low peripheral" mode, which is what the firmware gives us by default.
const MemoryMappedIO = uintptr(0xFE000000)

const BoardName = BoardRPi4
