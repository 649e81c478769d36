package bcm2835

import (
	"delays/src/delay"
	"delays/src/hardware/mmio"
)

const GPIOOffset = 0x00200000

const gpioFuncSelect0 = GPIOOffset + 0x00 //six of these, ten pins each
const gpioPullUpDownEnable = GPIOOffset + 0x94
const gpioPullUpDownEnableClock0 = GPIOOffset + 0x98
const gpioPullUpDownEnableClock1 = GPIOOffset + 0x9C

const GPIOPins = 54

type GPIOMode uint32 //3 bits wide
const GPIOInput GPIOMode = 0
const GPIOOutput GPIOMode = 1
const GPIOAltFunc5 GPIOMode = 2
const GPIOAltFunc4 GPIOMode = 3
const GPIOAltFunc0 GPIOMode = 4
const GPIOAltFunc1 GPIOMode = 5
const GPIOAltFunc2 GPIOMode = 6
const GPIOAltFunc3 GPIOMode = 7

const GPIOPullOff = 0

// BCM2835 ARM Peripherals page 101: the pull up/down control signal has to be
// held for 150 cycles on either side of the clock.
const gpioPullSetupCycles = 150

type GPIO struct {
	regs mmio.Region
}

func NewGPIO(peripherals mmio.Region) *GPIO {
	return &GPIO{regs: peripherals}
}

// Setup puts pin into mode, false if there is no such pin.
func (g *GPIO) Setup(pin uint8, mode GPIOMode) bool {
	if pin >= GPIOPins {
		return false
	}
	reg := gpioFuncSelect0 + uintptr(pin/10)*4
	shift := uint32(pin%10) * 3
	v := g.regs.Load32(reg)
	v &^= 7 << shift
	v |= uint32(mode) << shift
	g.regs.Store32(reg, v)
	return true
}

// Pull sets the pull up/down state of pins (a bitmask, bank 0 is pins 0-31,
// bank 1 the rest).  This is the one place in the peripheral setup that
// needs a cycle count delay.
func (g *GPIO) Pull(state uint32, bank0, bank1 uint32) {
	g.regs.Store32(gpioPullUpDownEnable, state)
	delay.WaitCycles(gpioPullSetupCycles)
	g.regs.Store32(gpioPullUpDownEnableClock0, bank0)
	g.regs.Store32(gpioPullUpDownEnableClock1, bank1)
	delay.WaitCycles(gpioPullSetupCycles)
	g.regs.Store32(gpioPullUpDownEnable, 0)
	g.regs.Store32(gpioPullUpDownEnableClock0, 0) //flush gpio setup
	g.regs.Store32(gpioPullUpDownEnableClock1, 0)
}
