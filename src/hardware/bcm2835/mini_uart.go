package bcm2835

import "delays/src/hardware/mmio"

const AuxOffset = 0x00215000

const auxEnables = AuxOffset + 0x04
const auxMiniUARTData = AuxOffset + 0x40 //8 bits wide
const auxMiniUARTInterruptEnable = AuxOffset + 0x44
const auxMiniUARTInterruptIdentify = AuxOffset + 0x48
const auxMiniUARTLineControl = AuxOffset + 0x4C
const auxMiniUARTModemControl = AuxOffset + 0x50
const auxMiniUARTLineStatus = AuxOffset + 0x54 //readonly
const auxMiniUARTExtraControl = AuxOffset + 0x60
const auxMiniUARTBAUD = AuxOffset + 0x68

// mini uart: peripheral enable
const PeripheralMiniUART = 1 << 0

// mini uart: extra control bitfields
const ReceiveEnable = 1 << 0
const TransmitEnable = 1 << 1

// mini uart: line control register bitfields
// https://elinux.org/BCM2835_datasheet_errata
const DataLength8Bits = 3 << 0

// mini uart: modem control register bitfields
const ReadyToSend = 1 << 1

// mini uart: interrupt identify register bitfields
const ClearReceiveFIFO = 1 << 1  //Write
const ClearTransmitFIFO = 1 << 2 //Write

// mini uart: line status register bitfields
const ReceivedDataAvailable = 1 << 0
const TransmitFIFOSpaceAvailable = 1 << 5

// derived from the 250MHz core clock: BCM2835 ARM Peripheral manual page 11
const MiniUARTBaud115200 = 270

const miniUARTTxPin = 14
const miniUARTRxPin = 15

// MiniUART is the "mini" uart on the aux peripheral, the simplest one to get
// going and the one the boot console uses.  Polled only; no interrupts.
type MiniUART struct {
	regs mmio.Region
	gpio *GPIO
}

// The zero value gives you 8 bits with both tx and rx enabled.
type UARTConfig struct {
	Data7Bits bool
	DisableTx bool
	DisableRx bool
}

func NewMiniUART(peripherals mmio.Region) *MiniUART {
	return &MiniUART{regs: peripherals, gpio: NewGPIO(peripherals)}
}

func (u *MiniUART) setBits(reg uintptr, bits uint32) {
	u.regs.Store32(reg, u.regs.Load32(reg)|bits)
}

func (u *MiniUART) clearBits(reg uintptr, bits uint32) {
	u.regs.Store32(reg, u.regs.Load32(reg)&^bits)
}

// Configure sets up the uart at 115200 baud on GPIO 14 and 15.
func (u *MiniUART) Configure(conf UARTConfig) {
	u.setBits(auxEnables, PeripheralMiniUART)

	//turn off the transmitter and receiver while we work
	u.regs.Store32(auxMiniUARTExtraControl, 0)

	if conf.Data7Bits {
		u.clearBits(auxMiniUARTLineControl, DataLength8Bits)
	} else {
		//see errata for why (bad docs!) uses excuse of compat with 16550
		// https://elinux.org/BCM2835_datasheet_errata#p14
		u.setBits(auxMiniUARTLineControl, DataLength8Bits)
	}
	u.clearBits(auxMiniUARTModemControl, ReadyToSend) // this asserts the line
	u.regs.Store32(auxMiniUARTInterruptEnable, 0)
	u.regs.Store32(auxMiniUARTInterruptIdentify, ClearTransmitFIFO|ClearReceiveFIFO)
	u.regs.Store32(auxMiniUARTBAUD, MiniUARTBaud115200)

	// map UART1 to GPIO pins, no pulls
	u.gpio.Setup(miniUARTTxPin, GPIOAltFunc5)
	u.gpio.Setup(miniUARTRxPin, GPIOAltFunc5)
	u.gpio.Pull(GPIOPullOff, (1<<miniUARTTxPin)|(1<<miniUARTRxPin), 0)

	var ctl uint32
	if !conf.DisableRx {
		ctl |= ReceiveEnable
	}
	if !conf.DisableTx {
		ctl |= TransmitEnable
	}
	u.regs.Store32(auxMiniUARTExtraControl, ctl)
}

// Writing a byte over serial.  Blocking.
func (u *MiniUART) WriteByte(c byte) error {
	for u.regs.Load32(auxMiniUARTLineStatus)&TransmitFIFOSpaceAvailable == 0 {
	}
	u.regs.Store32(auxMiniUARTData, uint32(c)) //really 8 bit write
	return nil
}

// Write a CR (and secretly an LF) to serial.
func (u *MiniUART) WriteCR() error {
	if err := u.WriteByte(13); err != nil {
		return err
	}
	return u.WriteByte(10)
}

// Put a whole string out to serial, newlines become CR LF. Blocking.
func (u *MiniUART) WriteString(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			u.WriteCR()
			continue
		}
		u.WriteByte(s[i])
	}
	return len(s), nil
}

func (u *MiniUART) Write(p []byte) (int, error) {
	return u.WriteString(string(p))
}

// Reading a byte from serial. Blocking.
func (u *MiniUART) ReadByte() (byte, error) {
	for u.regs.Load32(auxMiniUARTLineStatus)&ReceivedDataAvailable == 0 {
	}
	return byte(u.regs.Load32(auxMiniUARTData)), nil //8 bit read
}
