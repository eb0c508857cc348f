// Package bus implements the CPU's 16-bit address space: 2 KiB of mirrored
// work RAM, the PPU and APU register windows, and everything from $4020 up
// handed off to the cartridge's mapper.
package bus

import "log"

const (
	ramStart     = 0x0000
	ramEnd       = 0x1FFF
	ppuStart     = 0x2000
	ppuEnd       = 0x3FFF
	ppuMirror    = 0x2007
	apuStart     = 0x4000
	apuEnd       = 0x4017
	ioDeadEnd    = 0x401F
	ctrlStrobe   = 0x4016
	ctrlPort2    = 0x4017
)

// Bus wires RAM, the PPU and APU register windows, the controller ports,
// and the cartridge together into the single address space the CPU sees.
type Bus struct {
	ram  ram
	ppu  PPUPort
	apu  APUPort
	ctrl ControllerPort
	cart CartridgePort

	// LogUnmappedWrites logs writes that land in the $4018-$401F dead zone
	// or hit cartridge space with no cartridge loaded. Off by default —
	// nestest and other CPU-only fixtures exercise this range deliberately.
	LogUnmappedWrites bool
}

// New creates a bus with the given PPU, APU, and controller peripherals
// wired in. The cartridge is attached later via SetCartridge once one is
// loaded.
func New(ppu PPUPort, apu APUPort, ctrl ControllerPort) *Bus {
	return &Bus{ppu: ppu, apu: apu, ctrl: ctrl}
}

// SetCartridge attaches or replaces the cartridge behind $4020-$FFFF.
func (b *Bus) SetCartridge(cart CartridgePort) {
	b.cart = cart
}

// Read8 reads a single byte, decoding through RAM, the PPU and APU windows,
// and finally the cartridge, in address order.
func (b *Bus) Read8(addr uint16) uint8 {
	switch {
	case addr <= ramEnd:
		return b.ram.read(addr)
	case addr <= ppuEnd:
		return b.ppu.ReadRegister(addr & ppuMirror)
	case addr == ctrlStrobe && b.ctrl != nil:
		return b.ctrl.Read4016()
	case addr == ctrlPort2 && b.ctrl != nil:
		return b.ctrl.Read4017()
	case addr <= apuEnd:
		return b.apu.ReadRegister(addr)
	case addr <= ioDeadEnd:
		return 0
	default:
		if b.cart == nil {
			return 0
		}
		return b.cart.Read(addr)
	}
}

// Write8 writes a single byte through the same decode order as Read8.
func (b *Bus) Write8(addr uint16, v uint8) {
	switch {
	case addr <= ramEnd:
		b.ram.write(addr, v)
	case addr <= ppuEnd:
		b.ppu.WriteRegister(addr&ppuMirror, v)
	case addr == ctrlStrobe && b.ctrl != nil:
		b.ctrl.Write(v)
	case addr <= apuEnd:
		b.apu.WriteRegister(addr, v)
	case addr <= ioDeadEnd:
		if b.LogUnmappedWrites {
			log.Printf("bus: write %#02x to unmapped IO register %#04x", v, addr)
		}
	default:
		if b.cart == nil {
			if b.LogUnmappedWrites {
				log.Printf("bus: write %#02x to %#04x with no cartridge loaded", v, addr)
			}
			return
		}
		b.cart.Write(addr, v)
	}
}

// Read16 reads a little-endian word with no page-wrap handling — callers
// that need the 6502's documented zero-page/indirect wrap bugs go through
// internal/addressing instead.
func (b *Bus) Read16(addr uint16) uint16 {
	lo := uint16(b.Read8(addr))
	hi := uint16(b.Read8(addr + 1))
	return lo | hi<<8
}

// Write16 writes a little-endian word, low byte first.
func (b *Bus) Write16(addr uint16, v uint16) {
	b.Write8(addr, uint8(v))
	b.Write8(addr+1, uint8(v>>8))
}
