package bus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakePPU struct {
	reads, writes []uint16
}

func (p *fakePPU) ReadRegister(addr uint16) uint8 {
	p.reads = append(p.reads, addr)
	return uint8(addr)
}
func (p *fakePPU) WriteRegister(addr uint16, v uint8) {
	p.writes = append(p.writes, addr)
}

type fakeAPU struct {
	lastWriteAddr uint16
	lastWriteVal  uint8
}

func (a *fakeAPU) ReadRegister(addr uint16) uint8 { return 0x42 }
func (a *fakeAPU) WriteRegister(addr uint16, v uint8) {
	a.lastWriteAddr, a.lastWriteVal = addr, v
}

type fakeCtrl struct {
	strobed    uint8
	read4016   uint8
	read4017   uint8
}

func (c *fakeCtrl) Write(v uint8)     { c.strobed = v }
func (c *fakeCtrl) Read4016() uint8   { return c.read4016 }
func (c *fakeCtrl) Read4017() uint8   { return c.read4017 }

type fakeCart struct {
	lastWriteAddr uint16
	lastWriteVal  uint8
}

func (c *fakeCart) Read(addr uint16) uint8     { return uint8(addr >> 8) }
func (c *fakeCart) Write(addr uint16, v uint8) { c.lastWriteAddr, c.lastWriteVal = addr, v }

func TestRAMMirrorsEvery2KiB(t *testing.T) {
	b := New(&fakePPU{}, &fakeAPU{}, &fakeCtrl{})
	b.Write8(0x0001, 0x7F)
	require.Equal(t, uint8(0x7F), b.Read8(0x0801))
	require.Equal(t, uint8(0x7F), b.Read8(0x1801))
}

func TestPPURegistersMirrorEvery8Bytes(t *testing.T) {
	p := &fakePPU{}
	b := New(p, &fakeAPU{}, &fakeCtrl{})
	b.Read8(0x2000)
	b.Read8(0x3FF8)
	require.Equal(t, []uint16{0x2000, 0x2000}, p.reads)
}

func TestControllerStrobeAndReadsRouteToControllerPort(t *testing.T) {
	c := &fakeCtrl{read4016: 1, read4017: 1}
	b := New(&fakePPU{}, &fakeAPU{}, c)

	b.Write8(0x4016, 1)
	require.Equal(t, uint8(1), c.strobed)
	require.Equal(t, uint8(1), b.Read8(0x4016))
	require.Equal(t, uint8(1), b.Read8(0x4017))
}

func TestController2WriteStillRoutesToAPUFrameCounter(t *testing.T) {
	a := &fakeAPU{}
	b := New(&fakePPU{}, a, &fakeCtrl{})
	b.Write8(0x4017, 0x40)
	require.Equal(t, uint16(0x4017), a.lastWriteAddr)
	require.Equal(t, uint8(0x40), a.lastWriteVal)
}

func TestIODeadZoneReadsZero(t *testing.T) {
	b := New(&fakePPU{}, &fakeAPU{}, &fakeCtrl{})
	require.Equal(t, uint8(0), b.Read8(0x4018))
}

func TestCartridgeSpaceDispatchesToMapperOnceLoaded(t *testing.T) {
	cart := &fakeCart{}
	b := New(&fakePPU{}, &fakeAPU{}, &fakeCtrl{})
	b.SetCartridge(cart)

	b.Write8(0x8000, 0x99)
	require.Equal(t, uint16(0x8000), cart.lastWriteAddr)
	require.Equal(t, uint8(0x99), cart.lastWriteVal)
}

func TestCartridgeSpaceReturnsZeroWithNoCartridgeLoaded(t *testing.T) {
	b := New(&fakePPU{}, &fakeAPU{}, &fakeCtrl{})
	require.Equal(t, uint8(0), b.Read8(0x8000))
}

func TestRead16AndWrite16AreLittleEndianWithNoPageWrap(t *testing.T) {
	b := New(&fakePPU{}, &fakeAPU{}, &fakeCtrl{})
	b.Write16(0x0010, 0xBEEF)
	require.Equal(t, uint16(0xBEEF), b.Read16(0x0010))
}
