package bcm2835

import (
	"testing"

	"delays/src/hardware/mmio/mmiotest"
)

func TestMiniUARTConfigure(t *testing.T) {
	r := mmiotest.NewRegisters()
	u := NewMiniUART(r)
	u.Configure(UARTConfig{})

	checkRegister(t, r, auxEnables, PeripheralMiniUART)
	checkRegister(t, r, auxMiniUARTBAUD, MiniUARTBaud115200)
	checkRegister(t, r, auxMiniUARTLineControl, DataLength8Bits)
	checkRegister(t, r, auxMiniUARTExtraControl, ReceiveEnable|TransmitEnable)
	checkRegister(t, r, auxMiniUARTInterruptEnable, 0)
	//pins 14 and 15 are in the second function select register
	checkRegister(t, r, gpioFuncSelect0+4, uint32(GPIOAltFunc5)<<12|uint32(GPIOAltFunc5)<<15)
	checkRegister(t, r, gpioPullUpDownEnableClock0, 0)

	clocked := false
	for _, s := range r.Stores() {
		if s.Offset == gpioPullUpDownEnableClock0 && s.Value == (1<<14)|(1<<15) {
			clocked = true
		}
	}
	if !clocked {
		t.Errorf("pull up/down never clocked into pins 14 and 15")
	}
}

func TestMiniUARTTransmitterOnly(t *testing.T) {
	r := mmiotest.NewRegisters()
	NewMiniUART(r).Configure(UARTConfig{DisableRx: true, Data7Bits: true})
	checkRegister(t, r, auxMiniUARTExtraControl, TransmitEnable)
	checkRegister(t, r, auxMiniUARTLineControl, 0)
}

func TestMiniUARTWriteWaitsForSpace(t *testing.T) {
	r := mmiotest.NewRegisters()
	r.Script(auxMiniUARTLineStatus, 0, 0, TransmitFIFOSpaceAvailable)
	u := NewMiniUART(r)
	u.WriteByte('x')
	if n := r.LoadCount(auxMiniUARTLineStatus); n != 3 {
		t.Errorf("expected to poll line status 3 times but polled %d", n)
	}
	checkRegister(t, r, auxMiniUARTData, 'x')
}

func TestMiniUARTWriteStringNewlines(t *testing.T) {
	r := mmiotest.NewRegisters()
	r.Script(auxMiniUARTLineStatus, TransmitFIFOSpaceAvailable)
	u := NewMiniUART(r)
	n, err := u.WriteString("a\nb")
	if err != nil || n != 3 {
		t.Errorf("unexpected write result %d, %v", n, err)
	}
	var sent []byte
	for _, s := range r.Stores() {
		if s.Offset == auxMiniUARTData {
			sent = append(sent, byte(s.Value))
		}
	}
	if string(sent) != "a\r\nb" {
		t.Errorf("expected CR LF translation but sent %q", sent)
	}
}

func TestMiniUARTReadByte(t *testing.T) {
	r := mmiotest.NewRegisters()
	r.Script(auxMiniUARTLineStatus, 0, ReceivedDataAvailable)
	r.Script(auxMiniUARTData, 'q')
	b, err := NewMiniUART(r).ReadByte()
	if err != nil || b != 'q' {
		t.Errorf("expected to read q but got %q, %v", b, err)
	}
}

func TestGPIOSetupBadPin(t *testing.T) {
	g := NewGPIO(mmiotest.NewRegisters())
	if g.Setup(GPIOPins, GPIOOutput) {
		t.Errorf("pin %d does not exist", GPIOPins)
	}
	if !g.Setup(GPIOPins-1, GPIOOutput) {
		t.Errorf("pin %d should exist", GPIOPins-1)
	}
}

func TestGPIOSetupKeepsNeighbours(t *testing.T) {
	r := mmiotest.NewRegisters()
	r.Script(gpioFuncSelect0+8, 0x3FFF_FFFF)
	NewGPIO(r).Setup(23, GPIOInput)
	checkRegister(t, r, gpioFuncSelect0+8, 0x3FFF_FFFF&^(7<<9))
}

func checkRegister(t *testing.T, r *mmiotest.Registers, offset uintptr, expected uint32) {
	t.Helper()
	if v := r.Load32(offset); v != expected {
		t.Errorf("register at %x: expected %x but got %x", offset, expected, v)
	}
}
