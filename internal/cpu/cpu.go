// Package cpu implements the 6502 (Ricoh 2A03 variant, no decimal mode)
// instruction execution core: the register file, the 256-entry opcode
// dispatch table, and the fetch/decode/execute step loop.
package cpu

import (
	"nesgo/internal/addressing"
	"nesgo/internal/register"
	"nesgo/internal/stack"
)

const (
	resetVector = 0xFFFC
	nmiVector   = 0xFFFA
	irqVector   = 0xFFFE
)

// Bus is the address space the CPU executes against.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, v uint8)
}

// CPU is the 6502 execution core: registers, stack, and the halted/pending
// interrupt state the step loop consults on every cycle boundary.
type CPU struct {
	Reg    register.File
	Bus    Bus
	Halted bool
	Cycles uint64

	stack      stack.Engine
	nmiPending bool
	irqLine    bool
}

// New wires a CPU to its bus. Call Reset (or SetPC, for test fixtures that
// bypass the reset vector) before Step.
func New(bus Bus) *CPU {
	c := &CPU{Bus: bus}
	c.stack = stack.Engine{SP: &c.Reg.SP, Bus: bus}
	return c
}

// Reset restores power-up register state and loads PC from the reset
// vector at $FFFC/$FFFD.
func (c *CPU) Reset() {
	c.Reg.Reset()
	c.Halted = false
	c.nmiPending = false
	c.irqLine = false
	c.Reg.PC = c.readVector(resetVector)
}

// SetPC forces PC directly, bypassing the reset vector — used to start
// execution at a fixed entry point such as nestest's automated-mode $C000.
func (c *CPU) SetPC(pc uint16) {
	c.Reg.PC = pc
}

// TriggerNMI latches a non-maskable interrupt, serviced at the start of the
// next Step.
func (c *CPU) TriggerNMI() {
	c.nmiPending = true
}

// NMIPending reports whether a latched NMI is still awaiting service.
func (c *CPU) NMIPending() bool {
	return c.nmiPending
}

// SetIRQLine sets or clears the maskable interrupt line. While active and
// the I flag is clear, every Step services an IRQ instead of fetching.
func (c *CPU) SetIRQLine(active bool) {
	c.irqLine = active
}

// Step executes exactly one instruction (or services one pending interrupt)
// and returns the number of cycles it consumed. A halted CPU returns 0
// without touching the bus — BRK and the illegal jam opcodes halt this way
// rather than vectoring through a real interrupt, per this core's
// halt-on-BRK convention.
func (c *CPU) Step() uint8 {
	if c.Halted {
		return 0
	}
	if c.nmiPending {
		c.nmiPending = false
		c.serviceInterrupt(nmiVector)
		return 7
	}
	if c.irqLine && !c.Reg.Flag(register.FlagInterrupt) {
		c.serviceInterrupt(irqVector)
		return 7
	}

	opcode := c.Bus.Read8(c.Reg.PC)
	c.Reg.PC++
	entry := &opcodeTable[opcode]

	var addr uint16
	var pageCrossed bool
	if entry.Mode != addressing.Implicit && entry.Mode != addressing.Accumulator {
		res := addressing.Resolve(entry.Mode, &c.Reg.PC, c.Reg.X, c.Reg.Y, c.Bus.Read8)
		addr, pageCrossed = res.Address, res.PageCrossed
	}

	extra := entry.Handler(c, addr, entry.Mode)
	cycles := entry.Cycles + extra
	// Branches compute their own page-cross bonus only when taken (extra != 0
	// signals taken, since it's otherwise nonzero only for branches); every
	// other PageCrossPenalty opcode always applies the bonus on a page cross.
	branchNotTaken := entry.Mode == addressing.Relative && extra == 0
	if entry.PageCrossPenalty && pageCrossed && !branchNotTaken {
		cycles++
	}
	c.Cycles += uint64(cycles)
	return cycles
}

// serviceInterrupt pushes PC and status (B-low clear, a hardware push) and
// jumps through vector.
func (c *CPU) serviceInterrupt(vector uint16) {
	c.stack.Push16(c.Reg.PC)
	c.stack.Push(c.Reg.StatusForPush(false))
	c.Reg.SetFlag(register.FlagInterrupt, true)
	c.Reg.PC = c.readVector(vector)
}

func (c *CPU) readVector(addr uint16) uint16 {
	lo := uint16(c.Bus.Read8(addr))
	hi := uint16(c.Bus.Read8(addr + 1))
	return lo | hi<<8
}

// operand reads the instruction's operand byte, accounting for Accumulator
// mode addressing no memory at all.
func (c *CPU) operand(addr uint16, mode Mode) uint8 {
	if mode == addressing.Accumulator {
		return c.Reg.A
	}
	return c.Bus.Read8(addr)
}

// storeOperand writes back an RMW instruction's result to wherever its
// operand came from.
func (c *CPU) storeOperand(addr uint16, mode Mode, v uint8) {
	if mode == addressing.Accumulator {
		c.Reg.A = v
		return
	}
	c.Bus.Write8(addr, v)
}
