// Package addressing implements the twelve 6502 addressing modes as a
// single resolver, called by the CPU's dispatch loop. The tracer in
// internal/trace does not call Resolve: its operand rendering computes the
// same effective addresses, including the indirect-JMP page wrap, with its
// own arithmetic.
package addressing

// Mode identifies one of the twelve 6502 addressing modes.
type Mode int

const (
	Implicit Mode = iota
	Accumulator
	Immediate
	ZeroPage
	ZeroPageX
	ZeroPageY
	Relative
	Absolute
	AbsoluteX
	AbsoluteY
	Indirect
	IndexedIndirect // (zp,X)
	IndirectIndexed // (zp),Y
)

// Read reads a single byte off the bus. It is the only capability the
// resolver needs.
type Read func(addr uint16) uint8

// Result is the outcome of resolving one addressing mode.
type Result struct {
	Address     uint16
	PageCrossed bool
}

const zeroPageMask = 0x00FF
const pageMask = 0xFF00

// Resolve computes the effective address for mode, given the registers it
// needs and a bus reader, and advances *pc past the operand bytes the mode
// consumes. It must never be called for Implicit or Accumulator — the
// caller special-cases those since they address no memory at all.
func Resolve(mode Mode, pc *uint16, x, y uint8, read Read) Result {
	switch mode {
	case Immediate:
		addr := *pc
		*pc++
		return Result{Address: addr}

	case ZeroPage:
		addr := uint16(read(*pc))
		*pc++
		return Result{Address: addr}

	case ZeroPageX:
		base := read(*pc)
		*pc++
		return Result{Address: uint16(base+x) & zeroPageMask}

	case ZeroPageY:
		base := read(*pc)
		*pc++
		return Result{Address: uint16(base+y) & zeroPageMask}

	case Relative:
		offset := int8(read(*pc))
		*pc++
		base := *pc
		target := uint16(int32(base) + int32(offset))
		return Result{Address: target, PageCrossed: (base & pageMask) != (target & pageMask)}

	case Absolute:
		addr := read16(pc, read)
		return Result{Address: addr}

	case AbsoluteX:
		base := read16(pc, read)
		addr := base + uint16(x)
		return Result{Address: addr, PageCrossed: (base & pageMask) != (addr & pageMask)}

	case AbsoluteY:
		base := read16(pc, read)
		addr := base + uint16(y)
		return Result{Address: addr, PageCrossed: (base & pageMask) != (addr & pageMask)}

	case Indirect:
		ptr := read16(pc, read)
		return Result{Address: indirectWithBug(ptr, read)}

	case IndexedIndirect:
		operand := read(*pc)
		*pc++
		base := uint16(operand+x) & zeroPageMask
		lo := uint16(read(base))
		hi := uint16(read((base + 1) & zeroPageMask))
		return Result{Address: hi<<8 | lo}

	case IndirectIndexed:
		base := uint16(read(*pc))
		*pc++
		lo := uint16(read(base))
		hi := uint16(read((base + 1) & zeroPageMask))
		ptr := hi<<8 | lo
		addr := ptr + uint16(y)
		return Result{Address: addr, PageCrossed: (ptr & pageMask) != (addr & pageMask)}

	default:
		// Implicit, Accumulator, or an unrecognized mode: no address.
		return Result{}
	}
}

// read16 reads a little-endian word at *pc and advances *pc by 2.
func read16(pc *uint16, read Read) uint16 {
	lo := uint16(read(*pc))
	hi := uint16(read(*pc + 1))
	*pc += 2
	return lo | hi<<8
}

// indirectWithBug reproduces the documented 6502 JMP ($nnnn) page-wrap bug:
// when the pointer's low byte is $FF, the high byte is fetched from the
// start of the same page instead of the next page.
func indirectWithBug(ptr uint16, read Read) uint16 {
	lo := uint16(read(ptr))
	hiAddr := (ptr & pageMask) | ((ptr + 1) & zeroPageMask)
	hi := uint16(read(hiAddr))
	return lo | hi<<8
}
