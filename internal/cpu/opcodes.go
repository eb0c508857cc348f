package cpu

import (
	"nesgo/internal/addressing"
	"nesgo/internal/register"
)

// Lookup returns the dispatch table entry for opcode, read-only — used by
// the tracer to decode an instruction without executing it.
func Lookup(opcode uint8) OpEntry {
	return opcodeTable[opcode]
}

// opcodeTable is the CPU's 256-entry dispatch table, one row per possible
// opcode byte — total, including every illegal opcode a real 2A03 accepts.
// Mnemonics prefixed with * are illegal opcodes, named to match the
// standard nestest reference trace.
var opcodeTable = [256]OpEntry{
	0x00: {"BRK", brk, addressing.Implicit, 7, 1, false},
	0x01: {"ORA", ora, addressing.IndexedIndirect, 6, 2, false},
	0x02: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x03: {"*SLO", slo, addressing.IndexedIndirect, 8, 2, false},
	0x04: {"*NOP", nop, addressing.ZeroPage, 3, 2, false},
	0x05: {"ORA", ora, addressing.ZeroPage, 3, 2, false},
	0x06: {"ASL", asl, addressing.ZeroPage, 5, 2, false},
	0x07: {"*SLO", slo, addressing.ZeroPage, 5, 2, false},
	0x08: {"PHP", php, addressing.Implicit, 3, 1, false},
	0x09: {"ORA", ora, addressing.Immediate, 2, 2, false},
	0x0A: {"ASL", asl, addressing.Accumulator, 2, 1, false},
	0x0B: {"*ANC", anc, addressing.Immediate, 2, 2, false},
	0x0C: {"*NOP", nop, addressing.Absolute, 4, 3, false},
	0x0D: {"ORA", ora, addressing.Absolute, 4, 3, false},
	0x0E: {"ASL", asl, addressing.Absolute, 6, 3, false},
	0x0F: {"*SLO", slo, addressing.Absolute, 6, 3, false},

	0x10: {"BPL", bitBranch(register.FlagNegative, false), addressing.Relative, 2, 2, true},
	0x11: {"ORA", ora, addressing.IndirectIndexed, 5, 2, true},
	0x12: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x13: {"*SLO", slo, addressing.IndirectIndexed, 8, 2, false},
	0x14: {"*NOP", nop, addressing.ZeroPageX, 4, 2, false},
	0x15: {"ORA", ora, addressing.ZeroPageX, 4, 2, false},
	0x16: {"ASL", asl, addressing.ZeroPageX, 6, 2, false},
	0x17: {"*SLO", slo, addressing.ZeroPageX, 6, 2, false},
	0x18: {"CLC", clc, addressing.Implicit, 2, 1, false},
	0x19: {"ORA", ora, addressing.AbsoluteY, 4, 3, true},
	0x1A: {"*NOP", nop, addressing.Implicit, 2, 1, false},
	0x1B: {"*SLO", slo, addressing.AbsoluteY, 7, 3, false},
	0x1C: {"*NOP", nop, addressing.AbsoluteX, 4, 3, true},
	0x1D: {"ORA", ora, addressing.AbsoluteX, 4, 3, true},
	0x1E: {"ASL", asl, addressing.AbsoluteX, 7, 3, false},
	0x1F: {"*SLO", slo, addressing.AbsoluteX, 7, 3, false},

	0x20: {"JSR", jsr, addressing.Absolute, 6, 3, false},
	0x21: {"AND", and, addressing.IndexedIndirect, 6, 2, false},
	0x22: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x23: {"*RLA", rla, addressing.IndexedIndirect, 8, 2, false},
	0x24: {"BIT", bit, addressing.ZeroPage, 3, 2, false},
	0x25: {"AND", and, addressing.ZeroPage, 3, 2, false},
	0x26: {"ROL", rol, addressing.ZeroPage, 5, 2, false},
	0x27: {"*RLA", rla, addressing.ZeroPage, 5, 2, false},
	0x28: {"PLP", plp, addressing.Implicit, 4, 1, false},
	0x29: {"AND", and, addressing.Immediate, 2, 2, false},
	0x2A: {"ROL", rol, addressing.Accumulator, 2, 1, false},
	0x2B: {"*ANC", anc, addressing.Immediate, 2, 2, false},
	0x2C: {"BIT", bit, addressing.Absolute, 4, 3, false},
	0x2D: {"AND", and, addressing.Absolute, 4, 3, false},
	0x2E: {"ROL", rol, addressing.Absolute, 6, 3, false},
	0x2F: {"*RLA", rla, addressing.Absolute, 6, 3, false},

	0x30: {"BMI", bitBranch(register.FlagNegative, true), addressing.Relative, 2, 2, true},
	0x31: {"AND", and, addressing.IndirectIndexed, 5, 2, true},
	0x32: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x33: {"*RLA", rla, addressing.IndirectIndexed, 8, 2, false},
	0x34: {"*NOP", nop, addressing.ZeroPageX, 4, 2, false},
	0x35: {"AND", and, addressing.ZeroPageX, 4, 2, false},
	0x36: {"ROL", rol, addressing.ZeroPageX, 6, 2, false},
	0x37: {"*RLA", rla, addressing.ZeroPageX, 6, 2, false},
	0x38: {"SEC", sec, addressing.Implicit, 2, 1, false},
	0x39: {"AND", and, addressing.AbsoluteY, 4, 3, true},
	0x3A: {"*NOP", nop, addressing.Implicit, 2, 1, false},
	0x3B: {"*RLA", rla, addressing.AbsoluteY, 7, 3, false},
	0x3C: {"*NOP", nop, addressing.AbsoluteX, 4, 3, true},
	0x3D: {"AND", and, addressing.AbsoluteX, 4, 3, true},
	0x3E: {"ROL", rol, addressing.AbsoluteX, 7, 3, false},
	0x3F: {"*RLA", rla, addressing.AbsoluteX, 7, 3, false},

	0x40: {"RTI", rti, addressing.Implicit, 6, 1, false},
	0x41: {"EOR", eor, addressing.IndexedIndirect, 6, 2, false},
	0x42: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x43: {"*SRE", sre, addressing.IndexedIndirect, 8, 2, false},
	0x44: {"*NOP", nop, addressing.ZeroPage, 3, 2, false},
	0x45: {"EOR", eor, addressing.ZeroPage, 3, 2, false},
	0x46: {"LSR", lsr, addressing.ZeroPage, 5, 2, false},
	0x47: {"*SRE", sre, addressing.ZeroPage, 5, 2, false},
	0x48: {"PHA", pha, addressing.Implicit, 3, 1, false},
	0x49: {"EOR", eor, addressing.Immediate, 2, 2, false},
	0x4A: {"LSR", lsr, addressing.Accumulator, 2, 1, false},
	0x4B: {"*ALR", alr, addressing.Immediate, 2, 2, false},
	0x4C: {"JMP", jmp, addressing.Absolute, 3, 3, false},
	0x4D: {"EOR", eor, addressing.Absolute, 4, 3, false},
	0x4E: {"LSR", lsr, addressing.Absolute, 6, 3, false},
	0x4F: {"*SRE", sre, addressing.Absolute, 6, 3, false},

	0x50: {"BVC", bitBranch(register.FlagOverflow, false), addressing.Relative, 2, 2, true},
	0x51: {"EOR", eor, addressing.IndirectIndexed, 5, 2, true},
	0x52: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x53: {"*SRE", sre, addressing.IndirectIndexed, 8, 2, false},
	0x54: {"*NOP", nop, addressing.ZeroPageX, 4, 2, false},
	0x55: {"EOR", eor, addressing.ZeroPageX, 4, 2, false},
	0x56: {"LSR", lsr, addressing.ZeroPageX, 6, 2, false},
	0x57: {"*SRE", sre, addressing.ZeroPageX, 6, 2, false},
	0x58: {"CLI", cli, addressing.Implicit, 2, 1, false},
	0x59: {"EOR", eor, addressing.AbsoluteY, 4, 3, true},
	0x5A: {"*NOP", nop, addressing.Implicit, 2, 1, false},
	0x5B: {"*SRE", sre, addressing.AbsoluteY, 7, 3, false},
	0x5C: {"*NOP", nop, addressing.AbsoluteX, 4, 3, true},
	0x5D: {"EOR", eor, addressing.AbsoluteX, 4, 3, true},
	0x5E: {"LSR", lsr, addressing.AbsoluteX, 7, 3, false},
	0x5F: {"*SRE", sre, addressing.AbsoluteX, 7, 3, false},

	0x60: {"RTS", rts, addressing.Implicit, 6, 1, false},
	0x61: {"ADC", adc, addressing.IndexedIndirect, 6, 2, false},
	0x62: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x63: {"*RRA", rra, addressing.IndexedIndirect, 8, 2, false},
	0x64: {"*NOP", nop, addressing.ZeroPage, 3, 2, false},
	0x65: {"ADC", adc, addressing.ZeroPage, 3, 2, false},
	0x66: {"ROR", ror, addressing.ZeroPage, 5, 2, false},
	0x67: {"*RRA", rra, addressing.ZeroPage, 5, 2, false},
	0x68: {"PLA", pla, addressing.Implicit, 4, 1, false},
	0x69: {"ADC", adc, addressing.Immediate, 2, 2, false},
	0x6A: {"ROR", ror, addressing.Accumulator, 2, 1, false},
	0x6B: {"*ARR", arr, addressing.Immediate, 2, 2, false},
	0x6C: {"JMP", jmp, addressing.Indirect, 5, 3, false},
	0x6D: {"ADC", adc, addressing.Absolute, 4, 3, false},
	0x6E: {"ROR", ror, addressing.Absolute, 6, 3, false},
	0x6F: {"*RRA", rra, addressing.Absolute, 6, 3, false},

	0x70: {"BVS", bitBranch(register.FlagOverflow, true), addressing.Relative, 2, 2, true},
	0x71: {"ADC", adc, addressing.IndirectIndexed, 5, 2, true},
	0x72: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x73: {"*RRA", rra, addressing.IndirectIndexed, 8, 2, false},
	0x74: {"*NOP", nop, addressing.ZeroPageX, 4, 2, false},
	0x75: {"ADC", adc, addressing.ZeroPageX, 4, 2, false},
	0x76: {"ROR", ror, addressing.ZeroPageX, 6, 2, false},
	0x77: {"*RRA", rra, addressing.ZeroPageX, 6, 2, false},
	0x78: {"SEI", sei, addressing.Implicit, 2, 1, false},
	0x79: {"ADC", adc, addressing.AbsoluteY, 4, 3, true},
	0x7A: {"*NOP", nop, addressing.Implicit, 2, 1, false},
	0x7B: {"*RRA", rra, addressing.AbsoluteY, 7, 3, false},
	0x7C: {"*NOP", nop, addressing.AbsoluteX, 4, 3, true},
	0x7D: {"ADC", adc, addressing.AbsoluteX, 4, 3, true},
	0x7E: {"ROR", ror, addressing.AbsoluteX, 7, 3, false},
	0x7F: {"*RRA", rra, addressing.AbsoluteX, 7, 3, false},

	0x80: {"*NOP", nop, addressing.Immediate, 2, 2, false},
	0x81: {"STA", sta, addressing.IndexedIndirect, 6, 2, false},
	0x82: {"*NOP", nop, addressing.Immediate, 2, 2, false},
	0x83: {"*SAX", sax, addressing.IndexedIndirect, 6, 2, false},
	0x84: {"STY", sty, addressing.ZeroPage, 3, 2, false},
	0x85: {"STA", sta, addressing.ZeroPage, 3, 2, false},
	0x86: {"STX", stx, addressing.ZeroPage, 3, 2, false},
	0x87: {"*SAX", sax, addressing.ZeroPage, 3, 2, false},
	0x88: {"DEY", dey, addressing.Implicit, 2, 1, false},
	0x89: {"*NOP", nop, addressing.Immediate, 2, 2, false},
	0x8A: {"TXA", txa, addressing.Implicit, 2, 1, false},
	0x8B: {"*XAA", xaa, addressing.Immediate, 2, 2, false},
	0x8C: {"STY", sty, addressing.Absolute, 4, 3, false},
	0x8D: {"STA", sta, addressing.Absolute, 4, 3, false},
	0x8E: {"STX", stx, addressing.Absolute, 4, 3, false},
	0x8F: {"*SAX", sax, addressing.Absolute, 4, 3, false},

	0x90: {"BCC", bitBranch(register.FlagCarry, false), addressing.Relative, 2, 2, true},
	0x91: {"STA", sta, addressing.IndirectIndexed, 6, 2, false},
	0x92: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0x93: {"*AHX", ahx, addressing.IndirectIndexed, 6, 2, false},
	0x94: {"STY", sty, addressing.ZeroPageX, 4, 2, false},
	0x95: {"STA", sta, addressing.ZeroPageX, 4, 2, false},
	0x96: {"STX", stx, addressing.ZeroPageY, 4, 2, false},
	0x97: {"*SAX", sax, addressing.ZeroPageY, 4, 2, false},
	0x98: {"TYA", tya, addressing.Implicit, 2, 1, false},
	0x99: {"STA", sta, addressing.AbsoluteY, 5, 3, false},
	0x9A: {"TXS", txs, addressing.Implicit, 2, 1, false},
	0x9B: {"*TAS", tas, addressing.AbsoluteY, 5, 3, false},
	0x9C: {"*SHY", shy, addressing.AbsoluteX, 5, 3, false},
	0x9D: {"STA", sta, addressing.AbsoluteX, 5, 3, false},
	0x9E: {"*SHX", shx, addressing.AbsoluteY, 5, 3, false},
	0x9F: {"*AHX", ahx, addressing.AbsoluteY, 5, 3, false},

	0xA0: {"LDY", ldy, addressing.Immediate, 2, 2, false},
	0xA1: {"LDA", lda, addressing.IndexedIndirect, 6, 2, false},
	0xA2: {"LDX", ldx, addressing.Immediate, 2, 2, false},
	0xA3: {"*LAX", lax, addressing.IndexedIndirect, 6, 2, false},
	0xA4: {"LDY", ldy, addressing.ZeroPage, 3, 2, false},
	0xA5: {"LDA", lda, addressing.ZeroPage, 3, 2, false},
	0xA6: {"LDX", ldx, addressing.ZeroPage, 3, 2, false},
	0xA7: {"*LAX", lax, addressing.ZeroPage, 3, 2, false},
	0xA8: {"TAY", tay, addressing.Implicit, 2, 1, false},
	0xA9: {"LDA", lda, addressing.Immediate, 2, 2, false},
	0xAA: {"TAX", tax, addressing.Implicit, 2, 1, false},
	0xAB: {"*LAX", lax, addressing.Immediate, 2, 2, false},
	0xAC: {"LDY", ldy, addressing.Absolute, 4, 3, false},
	0xAD: {"LDA", lda, addressing.Absolute, 4, 3, false},
	0xAE: {"LDX", ldx, addressing.Absolute, 4, 3, false},
	0xAF: {"*LAX", lax, addressing.Absolute, 4, 3, false},

	0xB0: {"BCS", bitBranch(register.FlagCarry, true), addressing.Relative, 2, 2, true},
	0xB1: {"LDA", lda, addressing.IndirectIndexed, 5, 2, true},
	0xB2: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0xB3: {"*LAX", lax, addressing.IndirectIndexed, 5, 2, true},
	0xB4: {"LDY", ldy, addressing.ZeroPageX, 4, 2, false},
	0xB5: {"LDA", lda, addressing.ZeroPageX, 4, 2, false},
	0xB6: {"LDX", ldx, addressing.ZeroPageY, 4, 2, false},
	0xB7: {"*LAX", lax, addressing.ZeroPageY, 4, 2, false},
	0xB8: {"CLV", clv, addressing.Implicit, 2, 1, false},
	0xB9: {"LDA", lda, addressing.AbsoluteY, 4, 3, true},
	0xBA: {"TSX", tsx, addressing.Implicit, 2, 1, false},
	0xBB: {"*LAS", las, addressing.AbsoluteY, 4, 3, true},
	0xBC: {"LDY", ldy, addressing.AbsoluteX, 4, 3, true},
	0xBD: {"LDA", lda, addressing.AbsoluteX, 4, 3, true},
	0xBE: {"LDX", ldx, addressing.AbsoluteY, 4, 3, true},
	0xBF: {"*LAX", lax, addressing.AbsoluteY, 4, 3, true},

	0xC0: {"CPY", cpy, addressing.Immediate, 2, 2, false},
	0xC1: {"CMP", cmp, addressing.IndexedIndirect, 6, 2, false},
	0xC2: {"*NOP", nop, addressing.Immediate, 2, 2, false},
	0xC3: {"*DCP", dcp, addressing.IndexedIndirect, 8, 2, false},
	0xC4: {"CPY", cpy, addressing.ZeroPage, 3, 2, false},
	0xC5: {"CMP", cmp, addressing.ZeroPage, 3, 2, false},
	0xC6: {"DEC", dec, addressing.ZeroPage, 5, 2, false},
	0xC7: {"*DCP", dcp, addressing.ZeroPage, 5, 2, false},
	0xC8: {"INY", iny, addressing.Implicit, 2, 1, false},
	0xC9: {"CMP", cmp, addressing.Immediate, 2, 2, false},
	0xCA: {"DEX", dex, addressing.Implicit, 2, 1, false},
	0xCB: {"*AXS", axs, addressing.Immediate, 2, 2, false},
	0xCC: {"CPY", cpy, addressing.Absolute, 4, 3, false},
	0xCD: {"CMP", cmp, addressing.Absolute, 4, 3, false},
	0xCE: {"DEC", dec, addressing.Absolute, 6, 3, false},
	0xCF: {"*DCP", dcp, addressing.Absolute, 6, 3, false},

	0xD0: {"BNE", bitBranch(register.FlagZero, false), addressing.Relative, 2, 2, true},
	0xD1: {"CMP", cmp, addressing.IndirectIndexed, 5, 2, true},
	0xD2: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0xD3: {"*DCP", dcp, addressing.IndirectIndexed, 8, 2, false},
	0xD4: {"*NOP", nop, addressing.ZeroPageX, 4, 2, false},
	0xD5: {"CMP", cmp, addressing.ZeroPageX, 4, 2, false},
	0xD6: {"DEC", dec, addressing.ZeroPageX, 6, 2, false},
	0xD7: {"*DCP", dcp, addressing.ZeroPageX, 6, 2, false},
	0xD8: {"CLD", cld, addressing.Implicit, 2, 1, false},
	0xD9: {"CMP", cmp, addressing.AbsoluteY, 4, 3, true},
	0xDA: {"*NOP", nop, addressing.Implicit, 2, 1, false},
	0xDB: {"*DCP", dcp, addressing.AbsoluteY, 7, 3, false},
	0xDC: {"*NOP", nop, addressing.AbsoluteX, 4, 3, true},
	0xDD: {"CMP", cmp, addressing.AbsoluteX, 4, 3, true},
	0xDE: {"DEC", dec, addressing.AbsoluteX, 7, 3, false},
	0xDF: {"*DCP", dcp, addressing.AbsoluteX, 7, 3, false},

	0xE0: {"CPX", cpx, addressing.Immediate, 2, 2, false},
	0xE1: {"SBC", sbc, addressing.IndexedIndirect, 6, 2, false},
	0xE2: {"*NOP", nop, addressing.Immediate, 2, 2, false},
	0xE3: {"*ISB", isb, addressing.IndexedIndirect, 8, 2, false},
	0xE4: {"CPX", cpx, addressing.ZeroPage, 3, 2, false},
	0xE5: {"SBC", sbc, addressing.ZeroPage, 3, 2, false},
	0xE6: {"INC", inc, addressing.ZeroPage, 5, 2, false},
	0xE7: {"*ISB", isb, addressing.ZeroPage, 5, 2, false},
	0xE8: {"INX", inx, addressing.Implicit, 2, 1, false},
	0xE9: {"SBC", sbc, addressing.Immediate, 2, 2, false},
	0xEA: {"NOP", nop, addressing.Implicit, 2, 1, false},
	0xEB: {"*SBC", sbc, addressing.Immediate, 2, 2, false},
	0xEC: {"CPX", cpx, addressing.Absolute, 4, 3, false},
	0xED: {"SBC", sbc, addressing.Absolute, 4, 3, false},
	0xEE: {"INC", inc, addressing.Absolute, 6, 3, false},
	0xEF: {"*ISB", isb, addressing.Absolute, 6, 3, false},

	0xF0: {"BEQ", bitBranch(register.FlagZero, true), addressing.Relative, 2, 2, true},
	0xF1: {"SBC", sbc, addressing.IndirectIndexed, 5, 2, true},
	0xF2: {"*HLT", hlt, addressing.Implicit, 2, 1, false},
	0xF3: {"*ISB", isb, addressing.IndirectIndexed, 8, 2, false},
	0xF4: {"*NOP", nop, addressing.ZeroPageX, 4, 2, false},
	0xF5: {"SBC", sbc, addressing.ZeroPageX, 4, 2, false},
	0xF6: {"INC", inc, addressing.ZeroPageX, 6, 2, false},
	0xF7: {"*ISB", isb, addressing.ZeroPageX, 6, 2, false},
	0xF8: {"SED", sed, addressing.Implicit, 2, 1, false},
	0xF9: {"SBC", sbc, addressing.AbsoluteY, 4, 3, true},
	0xFA: {"*NOP", nop, addressing.Implicit, 2, 1, false},
	0xFB: {"*ISB", isb, addressing.AbsoluteY, 7, 3, false},
	0xFC: {"*NOP", nop, addressing.AbsoluteX, 4, 3, true},
	0xFD: {"SBC", sbc, addressing.AbsoluteX, 4, 3, true},
	0xFE: {"INC", inc, addressing.AbsoluteX, 7, 3, false},
	0xFF: {"*ISB", isb, addressing.AbsoluteX, 7, 3, false},
}
