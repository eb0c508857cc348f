package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBus struct {
	mem [0x10000]uint8
}

func (b *fakeBus) Read8(addr uint16) uint8     { return b.mem[addr] }
func (b *fakeBus) Write8(addr uint16, v uint8) { b.mem[addr] = v }

func TestPushPopRoundTrip(t *testing.T) {
	for sp := 0; sp <= 0xFF; sp++ {
		bus := &fakeBus{}
		spReg := uint8(sp)
		e := Engine{SP: &spReg, Bus: bus}

		e.Push(0x42)
		got := e.Pop()

		require.Equal(t, uint8(0x42), got)
		require.Equal(t, uint8(sp), spReg, "SP must be restored after a balanced push/pop")
	}
}

func TestPush16Pop16RoundTrip(t *testing.T) {
	for sp := 0; sp <= 0xFF; sp += 7 {
		bus := &fakeBus{}
		spReg := uint8(sp)
		e := Engine{SP: &spReg, Bus: bus}

		for _, v := range []uint16{0x0000, 0x1234, 0xFFFF, 0xC0DE} {
			start := spReg
			e.Push16(v)
			got := e.Pop16()
			require.Equal(t, v, got)
			require.Equal(t, start, spReg)
		}
	}
}

func TestPushWritesHighByteFirst(t *testing.T) {
	bus := &fakeBus{}
	sp := uint8(0xFF)
	e := Engine{SP: &sp, Bus: bus}

	e.Push16(0x1234)
	// SP wrapped from 0xFF->0xFE (high byte 0x12) ->0xFD (low byte 0x34)
	require.Equal(t, uint8(0x12), bus.mem[Base+0xFF])
	require.Equal(t, uint8(0x34), bus.mem[Base+0xFE])
	require.Equal(t, uint8(0xFD), sp)
}

func TestSPWrapsAtPageBoundary(t *testing.T) {
	bus := &fakeBus{}
	sp := uint8(0x00)
	e := Engine{SP: &sp, Bus: bus}

	e.Push(0x99)
	require.Equal(t, uint8(0xFF), sp)
	require.Equal(t, uint8(0x99), bus.mem[Base+0x00])
}
