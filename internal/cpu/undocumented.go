package cpu

import "nesgo/internal/register"

// This file implements the illegal opcodes that have stable, well-documented
// behavior across real 6502/2A03 silicon — the set nestest's automated
// trace exercises. A handful of 6502 illegal opcodes (XAA, TAS, SHY, SHX,
// AHX, LAS) are bus-conflict dependent and genuinely unstable on real
// hardware; the versions here are the commonly cited stable-case
// approximations, not a claim of cycle-exact hardware fidelity for those six.

// slo: ASL memory, then ORA the result into A.
func slo(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	c.Reg.SetFlag(register.FlagCarry, v&0x80 != 0)
	v <<= 1
	c.Bus.Write8(addr, v)
	c.Reg.A |= v
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

// rla: ROL memory, then AND the result into A.
func rla(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	carryIn := uint8(0)
	if c.Reg.Flag(register.FlagCarry) {
		carryIn = 1
	}
	c.Reg.SetFlag(register.FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.Bus.Write8(addr, v)
	c.Reg.A &= v
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

// sre: LSR memory, then EOR the result into A.
func sre(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	c.Reg.SetFlag(register.FlagCarry, v&0x01 != 0)
	v >>= 1
	c.Bus.Write8(addr, v)
	c.Reg.A ^= v
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

// rra: ROR memory, then ADC the result into A.
func rra(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	carryIn := uint8(0)
	if c.Reg.Flag(register.FlagCarry) {
		carryIn = 0x80
	}
	c.Reg.SetFlag(register.FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.Bus.Write8(addr, v)
	c.addToA(v)
	return 0
}

// lax: LDA and LDX from the same operand in one instruction.
func lax(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	c.Reg.A = v
	c.Reg.X = v
	c.Reg.SetFlagsFrom(v)
	return 0
}

// sax: store A & X, touching no flags.
func sax(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.A&c.Reg.X)
	return 0
}

// dcp: DEC memory, then CMP A against the result.
func dcp(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr) - 1
	c.Bus.Write8(addr, v)
	c.compare(c.Reg.A, v)
	return 0
}

// isb (aka ISC): INC memory, then SBC the result from A.
func isb(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr) + 1
	c.Bus.Write8(addr, v)
	c.addToA(^v)
	return 0
}

// anc: AND immediate, then copy the resulting N flag into C — behaves as
// if the AND result were shifted into a 9th bit.
func anc(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A &= c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.A)
	c.Reg.SetFlag(register.FlagCarry, c.Reg.A&0x80 != 0)
	return 0
}

// alr (aka ASR): AND immediate, then LSR the accumulator.
func alr(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A &= c.Bus.Read8(addr)
	c.Reg.SetFlag(register.FlagCarry, c.Reg.A&0x01 != 0)
	c.Reg.A >>= 1
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

// arr: AND immediate, then ROR the accumulator, with C and V derived from
// bits 6 and 5 of the rotated result rather than the usual ROR carry-out.
func arr(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A &= c.Bus.Read8(addr)
	carryIn := uint8(0)
	if c.Reg.Flag(register.FlagCarry) {
		carryIn = 0x80
	}
	c.Reg.A = c.Reg.A>>1 | carryIn
	c.Reg.SetFlagsFrom(c.Reg.A)
	bit6 := c.Reg.A&0x40 != 0
	bit5 := c.Reg.A&0x20 != 0
	c.Reg.SetFlag(register.FlagCarry, bit6)
	c.Reg.SetFlag(register.FlagOverflow, bit6 != bit5)
	return 0
}

// axs (aka SBX): X = (A & X) - immediate, as a CMP-style subtract with no
// borrow-in and no SBC-style overflow handling.
func axs(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	band := c.Reg.A & c.Reg.X
	result := band - v
	c.Reg.SetFlag(register.FlagCarry, band >= v)
	c.Reg.X = result
	c.Reg.SetFlagsFrom(result)
	return 0
}

// xaa: unstable on real hardware (depends on analog bus capacitance); this
// is the commonly used deterministic stand-in, A = X & immediate.
func xaa(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A = c.Reg.X & c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

// las: A = X = SP = memory & SP.
func las(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr) & c.Reg.SP
	c.Reg.A, c.Reg.X, c.Reg.SP = v, v, v
	c.Reg.SetFlagsFrom(v)
	return 0
}

// tas: SP = A & X; stores SP & (high byte of the target address + 1).
func tas(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.SP = c.Reg.A & c.Reg.X
	c.Bus.Write8(addr, c.Reg.SP&uint8(addr>>8+1))
	return 0
}

// shy: stores Y & (high byte of the target address + 1).
func shy(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.Y&uint8(addr>>8+1))
	return 0
}

// shx: stores X & (high byte of the target address + 1).
func shx(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.X&uint8(addr>>8+1))
	return 0
}

// ahx: stores A & X & (high byte of the target address + 1).
func ahx(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.A&c.Reg.X&uint8(addr>>8+1))
	return 0
}

// hlt is the "illegal jam" family: the real 6502 locks up and needs a
// reset. This core halts the same way BRK does.
func hlt(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.PC--
	c.Halted = true
	return 0
}
