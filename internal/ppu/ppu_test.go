package ppu

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusReadClearsVBlankAndLatch(t *testing.T) {
	p := New()
	p.status |= StatusVBlank
	p.addrLatch = true

	v := p.ReadRegister(0x2002)
	require.NotZero(t, v&uint8(StatusVBlank))
	require.False(t, p.InVBlank())
	require.False(t, p.addrLatch)
}

func TestAddrAndDataRoundTrip(t *testing.T) {
	p := New()
	p.WriteRegister(0x2006, 0x23) // high byte
	p.WriteRegister(0x2006, 0x45) // low byte -> v = 0x2345
	p.WriteRegister(0x2007, 0x99)

	p.WriteRegister(0x2006, 0x23)
	p.WriteRegister(0x2006, 0x45)
	p.ReadRegister(0x2007) // primes the read buffer
	v := p.ReadRegister(0x2007)
	require.Equal(t, uint8(0x99), v)
}

func TestIncrementModeFromCtrl(t *testing.T) {
	p := New()
	p.WriteRegister(0x2000, uint8(CtrlIncrementDown))
	p.WriteRegister(0x2006, 0x20)
	p.WriteRegister(0x2006, 0x00)
	p.WriteRegister(0x2007, 0x01)
	require.Equal(t, uint16(0x2020), p.v)
}

func TestOAMDataAutoIncrementsAddr(t *testing.T) {
	p := New()
	p.WriteRegister(0x2003, 0x10)
	p.WriteRegister(0x2004, 0xAB)
	require.Equal(t, uint8(0xAB), p.oam[0x10])
	require.Equal(t, uint8(0x11), p.oamAddr)
}

func TestTickFiresNMIAtVBlankStart(t *testing.T) {
	p := New()
	fired := false
	p.OnNMI = func() { fired = true }
	p.Ctrl = CtrlGenerateNMI

	for i := 0; i < dotsPerScanline*(vblankStartScanline+2); i++ {
		p.Tick()
	}
	require.True(t, fired)
	require.True(t, p.InVBlank())
}

func TestCtrlWriteIsReadBack(t *testing.T) {
	p := New()
	p.WriteRegister(0x2000, uint8(CtrlGenerateNMI))
	require.Equal(t, CtrlGenerateNMI, p.Ctrl)
}

func TestPeekReadsVRAMWithoutSideEffects(t *testing.T) {
	p := New()
	p.vram[0x0010] = 0xAB

	require.Equal(t, uint8(0xAB), p.Peek(0x0010))
	require.Equal(t, uint16(0), p.v)
	require.Equal(t, uint8(0), p.readBuffer)
}
