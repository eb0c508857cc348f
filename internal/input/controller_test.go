package input

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStrobeHighAlwaysReadsA(t *testing.T) {
	c := New()
	c.SetButton(ButtonA, true)
	c.SetButton(ButtonB, true)
	c.Strobe(true)

	require.Equal(t, uint8(1), c.Read())
	require.Equal(t, uint8(1), c.Read(), "strobe high always re-reads button A")
}

func TestShiftOrderMatchesButtonBits(t *testing.T) {
	c := New()
	c.SetButtons([8]bool{true, false, true, false, false, false, false, true}) // A,Sel,Right
	c.Strobe(true)
	c.Strobe(false)

	var bits []uint8
	for i := 0; i < 8; i++ {
		bits = append(bits, c.Read())
	}
	require.Equal(t, []uint8{1, 0, 1, 0, 0, 0, 0, 1}, bits)
}

func TestReadPastEighthBitReturnsOnes(t *testing.T) {
	c := New()
	c.Strobe(true)
	c.Strobe(false)
	for i := 0; i < 8; i++ {
		c.Read()
	}
	require.Equal(t, uint8(1), c.Read())
}

func TestPortsRead4017HasOpenBusBit(t *testing.T) {
	p := NewPorts()
	p.Write(1)
	p.Write(0)
	require.Equal(t, uint8(0x40), p.Read4017())
}
