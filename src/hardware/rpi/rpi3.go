//go:build rpi3 || rpi3_qemu
// +build rpi3 rpi3_qemu

package rpi

// This file is for things that are specific to the *model* Raspberry Pi 3 and
// are different on other rpi models.  Use board.go to get at the properties of
// all the models from a host tool.
const MemoryMappedIO = uintptr(0x3F000000)

const BoardName = BoardRPi3
