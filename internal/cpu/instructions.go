package cpu

import "nesgo/internal/register"

// addToA implements ADC's binary addition (this core never enables decimal
// mode — the 2A03 wired D out), reused by SBC as addToA(^v).
func (c *CPU) addToA(v uint8) {
	a := c.Reg.A
	carryIn := uint16(0)
	if c.Reg.Flag(register.FlagCarry) {
		carryIn = 1
	}
	sum := uint16(a) + uint16(v) + carryIn
	result := uint8(sum)
	overflow := (v^result)&(result^a)&0x80 != 0
	c.Reg.SetFlag(register.FlagCarry, sum > 0xFF)
	c.Reg.SetFlag(register.FlagOverflow, overflow)
	c.Reg.A = result
	c.Reg.SetFlagsFrom(result)
}

func (c *CPU) compare(reg, v uint8) {
	result := reg - v
	c.Reg.SetFlag(register.FlagCarry, reg >= v)
	c.Reg.SetFlagsFrom(result)
}

// --- load/store ---

func lda(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A = c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func ldx(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.X = c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.X)
	return 0
}

func ldy(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.Y = c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.Y)
	return 0
}

func sta(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.A)
	return 0
}

func stx(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.X)
	return 0
}

func sty(c *CPU, addr uint16, mode Mode) uint8 {
	c.Bus.Write8(addr, c.Reg.Y)
	return 0
}

// --- transfers ---

func tax(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.X = c.Reg.A
	c.Reg.SetFlagsFrom(c.Reg.X)
	return 0
}

func tay(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.Y = c.Reg.A
	c.Reg.SetFlagsFrom(c.Reg.Y)
	return 0
}

func txa(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A = c.Reg.X
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func tya(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A = c.Reg.Y
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func tsx(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.X = c.Reg.SP
	c.Reg.SetFlagsFrom(c.Reg.X)
	return 0
}

func txs(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.SP = c.Reg.X // TXS does not touch any flag
	return 0
}

// --- stack ---

func pha(c *CPU, addr uint16, mode Mode) uint8 {
	c.stack.Push(c.Reg.A)
	return 0
}

func pla(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A = c.stack.Pop()
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func php(c *CPU, addr uint16, mode Mode) uint8 {
	c.stack.Push(c.Reg.StatusForPush(true))
	return 0
}

func plp(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.RestoreStatus(c.stack.Pop())
	return 0
}

// --- arithmetic ---

func adc(c *CPU, addr uint16, mode Mode) uint8 {
	c.addToA(c.Bus.Read8(addr))
	return 0
}

func sbc(c *CPU, addr uint16, mode Mode) uint8 {
	c.addToA(^c.Bus.Read8(addr))
	return 0
}

func and(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A &= c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func ora(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A |= c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func eor(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.A ^= c.Bus.Read8(addr)
	c.Reg.SetFlagsFrom(c.Reg.A)
	return 0
}

func bit(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr)
	c.Reg.SetFlag(register.FlagZero, c.Reg.A&v == 0)
	c.Reg.SetOverflowFrom(v)
	c.Reg.SetNegativeFrom(v)
	return 0
}

func cmp(c *CPU, addr uint16, mode Mode) uint8 {
	c.compare(c.Reg.A, c.Bus.Read8(addr))
	return 0
}

func cpx(c *CPU, addr uint16, mode Mode) uint8 {
	c.compare(c.Reg.X, c.Bus.Read8(addr))
	return 0
}

func cpy(c *CPU, addr uint16, mode Mode) uint8 {
	c.compare(c.Reg.Y, c.Bus.Read8(addr))
	return 0
}

// --- increment/decrement ---

func inc(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr) + 1
	c.Bus.Write8(addr, v)
	c.Reg.SetFlagsFrom(v)
	return 0
}

func dec(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.Bus.Read8(addr) - 1
	c.Bus.Write8(addr, v)
	c.Reg.SetFlagsFrom(v)
	return 0
}

func inx(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.X++
	c.Reg.SetFlagsFrom(c.Reg.X)
	return 0
}

func iny(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.Y++
	c.Reg.SetFlagsFrom(c.Reg.Y)
	return 0
}

func dex(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.X--
	c.Reg.SetFlagsFrom(c.Reg.X)
	return 0
}

func dey(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.Y--
	c.Reg.SetFlagsFrom(c.Reg.Y)
	return 0
}

// --- shifts/rotates ---

func asl(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.operand(addr, mode)
	c.Reg.SetFlag(register.FlagCarry, v&0x80 != 0)
	v <<= 1
	c.storeOperand(addr, mode, v)
	c.Reg.SetFlagsFrom(v)
	return 0
}

func lsr(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.operand(addr, mode)
	c.Reg.SetFlag(register.FlagCarry, v&0x01 != 0)
	v >>= 1
	c.storeOperand(addr, mode, v)
	c.Reg.SetFlagsFrom(v)
	return 0
}

func rol(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.operand(addr, mode)
	carryIn := uint8(0)
	if c.Reg.Flag(register.FlagCarry) {
		carryIn = 1
	}
	c.Reg.SetFlag(register.FlagCarry, v&0x80 != 0)
	v = v<<1 | carryIn
	c.storeOperand(addr, mode, v)
	c.Reg.SetFlagsFrom(v)
	return 0
}

func ror(c *CPU, addr uint16, mode Mode) uint8 {
	v := c.operand(addr, mode)
	carryIn := uint8(0)
	if c.Reg.Flag(register.FlagCarry) {
		carryIn = 0x80
	}
	c.Reg.SetFlag(register.FlagCarry, v&0x01 != 0)
	v = v>>1 | carryIn
	c.storeOperand(addr, mode, v)
	c.Reg.SetFlagsFrom(v)
	return 0
}

// --- flags ---

func clc(c *CPU, addr uint16, mode Mode) uint8 { c.Reg.SetFlag(register.FlagCarry, false); return 0 }
func sec(c *CPU, addr uint16, mode Mode) uint8 { c.Reg.SetFlag(register.FlagCarry, true); return 0 }
func cli(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.SetFlag(register.FlagInterrupt, false)
	return 0
}
func sei(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.SetFlag(register.FlagInterrupt, true)
	return 0
}
func cld(c *CPU, addr uint16, mode Mode) uint8 { c.Reg.SetFlag(register.FlagDecimal, false); return 0 }
func sed(c *CPU, addr uint16, mode Mode) uint8 { c.Reg.SetFlag(register.FlagDecimal, true); return 0 }
func clv(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.SetFlag(register.FlagOverflow, false)
	return 0
}

// --- control flow ---

func jmp(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.PC = addr
	return 0
}

func jsr(c *CPU, addr uint16, mode Mode) uint8 {
	c.stack.Push16(c.Reg.PC - 1)
	c.Reg.PC = addr
	return 0
}

func rts(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.PC = c.stack.Pop16() + 1
	return 0
}

func rti(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.RestoreStatus(c.stack.Pop())
	c.Reg.PC = c.stack.Pop16()
	return 0
}

// bitBranch builds a branch handler that takes the branch when flag's
// state matches want. The +1/+2 cycle penalty for taken/page-crossing
// branches is computed by Step from the extra-cycles return value together
// with the table's PageCrossPenalty flag.
func bitBranch(flag uint8, want bool) Handler {
	return func(c *CPU, addr uint16, mode Mode) uint8 {
		if c.Reg.Flag(flag) != want {
			return 0
		}
		c.Reg.PC = addr
		return 1
	}
}

// --- system ---

// brk halts the CPU rather than vectoring through $FFFE, reproducing this
// core's halt-on-BRK convention: PC is backed up by one so the opcode
// address is preserved for the caller to inspect.
func brk(c *CPU, addr uint16, mode Mode) uint8 {
	c.Reg.PC--
	c.Halted = true
	return 0
}

func nop(c *CPU, addr uint16, mode Mode) uint8 {
	return 0
}
