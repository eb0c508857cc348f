package register

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResetState(t *testing.T) {
	f := &File{A: 0x11, X: 0x22, Y: 0x33, SP: 0x00}
	f.SetStatus(0xFF)
	f.Reset()

	require.Equal(t, uint8(0), f.A)
	require.Equal(t, uint8(0), f.X)
	require.Equal(t, uint8(0), f.Y)
	require.Equal(t, uint8(0xFD), f.SP)
	require.Equal(t, uint8(0b00100100), f.Status())
}

func TestStatusMasksOutBreakBits(t *testing.T) {
	f := &File{}
	f.SetStatus(0xFF)
	require.Equal(t, uint8(0xFF&^(FlagBreakLow|FlagBreakHigh)), f.Status())
}

func TestStatusForPush(t *testing.T) {
	f := &File{}
	f.SetStatus(0)

	require.Equal(t, FlagBreakHigh|FlagBreakLow, f.StatusForPush(true), "software push sets both B bits")
	require.Equal(t, FlagBreakHigh, f.StatusForPush(false), "hardware push sets only B-high")
}

func TestRestoreStatusDiscardsBreakBits(t *testing.T) {
	f := &File{}
	f.RestoreStatus(0xFF)
	require.Equal(t, uint8(0xFF&^(FlagBreakLow|FlagBreakHigh)), f.Status())
}

func TestSetFlagsFrom(t *testing.T) {
	for v := 0; v <= 0xFF; v++ {
		f := &File{}
		f.SetFlagsFrom(uint8(v))
		require.Equal(t, v == 0, f.Flag(FlagZero))
		require.Equal(t, v >= 0x80, f.Flag(FlagNegative))
	}
}

func TestSetOverflowAndNegativeFrom(t *testing.T) {
	f := &File{}
	f.SetOverflowFrom(0x40)
	require.True(t, f.Flag(FlagOverflow))
	f.SetOverflowFrom(0x00)
	require.False(t, f.Flag(FlagOverflow))

	f.SetNegativeFrom(0x80)
	require.True(t, f.Flag(FlagNegative))
}
