// Package trace implements the disassembler/tracer: given a machine about
// to execute the instruction at PC, it renders one canonical trace line,
// the format nestest-style reference traces are diffed against. It is
// grounded in nesse's Spy peripheral (original_source/nesse_emu), reworked
// from a println-per-tick side effect into a pure Line function plus a
// thin Observer adapter that appends lines to an io.Writer.
package trace

import (
	"fmt"
	"io"
	"strings"

	"nesgo/internal/addressing"
	"nesgo/internal/cpu"
	"nesgo/internal/observer"
)

// SymbolTable maps known addresses to labels, printed above a traced line
// when PC matches — optional, off by default, mirroring nesse's label list.
type SymbolTable map[uint16]string

// Line renders one trace line for the instruction about to execute at
// m.PC(). It only reads through m; nothing about the machine is mutated.
func Line(m observer.Machine) string {
	pc := m.PC()
	opcode := m.ReadMemory(pc)
	entry := cpu.Lookup(opcode)

	var b strings.Builder
	fmt.Fprintf(&b, "%04X  ", pc)

	raw := make([]uint8, entry.Bytes)
	raw[0] = opcode
	for i := uint8(1); i < entry.Bytes; i++ {
		raw[i] = m.ReadMemory(pc + uint16(i))
	}
	for i := 0; i < 3; i++ {
		if uint8(i) < entry.Bytes {
			fmt.Fprintf(&b, "%02X ", raw[i])
		} else {
			b.WriteString("   ")
		}
	}
	b.WriteByte(' ')
	b.WriteString(entry.Mnemonic)
	b.WriteByte(' ')

	operand := renderOperand(m, pc, entry)
	b.WriteString(operand)

	pad := 48 - b.Len()
	for pad > 0 {
		b.WriteByte(' ')
		pad--
	}

	fmt.Fprintf(&b, "A:%02X X:%02X Y:%02X P:%02X SP:%02X PPU:%3d,%3d CYC:%d",
		m.A(), m.X(), m.Y(), m.Status(), m.SP(), m.PPUScanline(), m.PPUDot(), m.Cycles())
	return b.String()
}

func renderOperand(m observer.Machine, pc uint16, entry cpu.OpEntry) string {
	read := m.ReadMemory
	operandPC := pc + 1

	switch entry.Mode {
	case addressing.Implicit:
		return ""
	case addressing.Accumulator:
		return "A"
	case addressing.Immediate:
		return fmt.Sprintf("#$%02X", read(operandPC))
	case addressing.ZeroPage:
		addr := uint16(read(operandPC))
		return fmt.Sprintf("$%02X = %02X", addr, read(addr))
	case addressing.ZeroPageX:
		off := read(operandPC)
		total := uint16(off+m.X()) & 0x00FF
		return fmt.Sprintf("$%02X,X @ %02X = %02X", off, total, read(total))
	case addressing.ZeroPageY:
		off := read(operandPC)
		total := uint16(off+m.Y()) & 0x00FF
		return fmt.Sprintf("$%02X,Y @ %02X = %02X", off, total, read(total))
	case addressing.Relative:
		offset := int8(read(operandPC))
		target := uint16(int32(operandPC+1) + int32(offset))
		return fmt.Sprintf("$%04X", target)
	case addressing.Absolute:
		addr := uint16(read(operandPC)) | uint16(read(operandPC+1))<<8
		if entry.Mnemonic == "JMP" || entry.Mnemonic == "JSR" {
			return fmt.Sprintf("$%04X", addr)
		}
		return fmt.Sprintf("$%04X = %02X", addr, read(addr))
	case addressing.AbsoluteX:
		base := uint16(read(operandPC)) | uint16(read(operandPC+1))<<8
		addr := base + uint16(m.X())
		return fmt.Sprintf("$%04X,X @ %04X = %02X", base, addr, read(addr))
	case addressing.AbsoluteY:
		base := uint16(read(operandPC)) | uint16(read(operandPC+1))<<8
		addr := base + uint16(m.Y())
		return fmt.Sprintf("$%04X,Y @ %04X = %02X", base, addr, read(addr))
	case addressing.Indirect:
		ptr := uint16(read(operandPC)) | uint16(read(operandPC+1))<<8
		lo := uint16(read(ptr))
		hiAddr := (ptr & 0xFF00) | ((ptr + 1) & 0x00FF)
		hi := uint16(read(hiAddr))
		return fmt.Sprintf("($%04X) = %04X", ptr, hi<<8|lo)
	case addressing.IndexedIndirect:
		table := read(operandPC)
		base := uint16(table+m.X()) & 0x00FF
		lo := uint16(read(base))
		hi := uint16(read((base + 1) & 0x00FF))
		addr := hi<<8 | lo
		return fmt.Sprintf("($%02X,X) @ %02X = %04X = %02X", table, base, addr, read(addr))
	case addressing.IndirectIndexed:
		zp := read(operandPC)
		lo := uint16(read(uint16(zp)))
		hi := uint16(read(uint16(zp+1) & 0x00FF))
		ptr := hi<<8 | lo
		addr := ptr + uint16(m.Y())
		return fmt.Sprintf("($%02X),Y = %04X @ %04X = %02X", zp, ptr, addr, read(addr))
	default:
		return ""
	}
}

// Observer writes one Line per instruction to w, with an optional symbol
// table annotating known addresses — the Go equivalent of nesse's Spy
// peripheral, minus its println-and-forget side effect.
type Observer struct {
	observer.Base
	W       io.Writer
	Symbols SymbolTable
}

// NewObserver creates a tracer writing to w.
func NewObserver(w io.Writer) *Observer {
	return &Observer{W: w}
}

func (o *Observer) OnTick(m observer.Machine) {
	if o.Symbols != nil {
		if label, ok := o.Symbols[m.PC()]; ok {
			fmt.Fprintf(o.W, "%s:\n", label)
		}
	}
	fmt.Fprintln(o.W, Line(m))
}
