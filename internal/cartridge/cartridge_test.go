package cartridge

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func buildINES(prgBanks, chrBanks int, flags6, flags7 byte, prg, chr []byte) []byte {
	h := make([]byte, 16)
	copy(h[0:4], inesMagic[:])
	h[4] = byte(prgBanks)
	h[5] = byte(chrBanks)
	h[6] = flags6
	h[7] = flags7

	buf := bytes.NewBuffer(h)
	if len(prg) == 0 {
		prg = make([]byte, prgBanks*prgBankSize)
	}
	if len(chr) == 0 && chrBanks > 0 {
		chr = make([]byte, chrBanks*chrBankSize)
	}
	buf.Write(prg)
	buf.Write(chr)
	return buf.Bytes()
}

func TestLoadFromReaderRejectsBadMagic(t *testing.T) {
	data := buildINES(1, 1, 0, 0, nil, nil)
	data[0] = 'X'
	_, err := LoadFromReader(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrNoCartridge)
}

func TestLoadFromReaderRejectsZeroPRG(t *testing.T) {
	data := buildINES(0, 1, 0, 0, nil, nil)
	_, err := LoadFromReader(bytes.NewReader(data))
	require.ErrorIs(t, err, ErrNoCartridge)
}

func TestLoadFromReaderTruncatedPRG(t *testing.T) {
	data := buildINES(2, 0, 0, 0, nil, nil)
	_, err := LoadFromReader(bytes.NewReader(data[:20]))
	require.ErrorIs(t, err, ErrNoCartridge)
}

func TestLoadFromReaderParsesMirroringAndMapper(t *testing.T) {
	// mapper 1 == 0x10: flags6 high nibble = 1, flags7 high nibble = 0
	data := buildINES(1, 1, 0x11, 0x00, nil, nil)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, MirrorVertical, cart.MirrorMode())
	require.Equal(t, uint8(1), cart.MapperID())
}

func TestLoadFromReaderNoCHRAllocatesRAM(t *testing.T) {
	data := buildINES(1, 0, 0, 0, nil, nil)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	require.True(t, cart.hasCHRRAM)
	require.Len(t, cart.chrROM, chrBankSize)
}

func TestLoadFromReaderFlagsReservedMismatch(t *testing.T) {
	data := buildINES(1, 1, 0, 0, nil, nil)
	data[9] = 0xFF
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	require.True(t, cart.HeaderReservedMismatch)
}

func Test16KPRGMirrorsAtBothBanks(t *testing.T) {
	prg := make([]byte, prgBankSize)
	prg[0] = 0xAA
	prg[prgBankSize-1] = 0xBB
	data := buildINES(1, 1, 0, 0, prg, nil)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, uint8(0xAA), cart.Read(0x8000))
	require.Equal(t, uint8(0xAA), cart.Read(0xC000), "16KB bank must mirror at $C000")
	require.Equal(t, uint8(0xBB), cart.Read(0xBFFF))
	require.Equal(t, uint8(0xBB), cart.Read(0xFFFF))
}

func TestSRAMReadWriteRoundTrip(t *testing.T) {
	data := buildINES(1, 1, 0, 0, nil, nil)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)

	cart.Write(0x6000, 0x42)
	require.Equal(t, uint8(0x42), cart.Read(0x6000))
}

func TestUnmappedCartridgeSpaceReadsZero(t *testing.T) {
	data := buildINES(1, 1, 0, 0, nil, nil)
	cart, err := LoadFromReader(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, uint8(0), cart.Read(0x4020))
	require.Equal(t, uint8(0), cart.Read(0x5FFF))
}
