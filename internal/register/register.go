// Package register implements the 6502 register file: the six CPU
// registers and the seven processor-status flags packed into P.
package register

// Status flag bit positions within P.
const (
	FlagCarry     uint8 = 1 << 0
	FlagZero      uint8 = 1 << 1
	FlagInterrupt uint8 = 1 << 2
	FlagDecimal   uint8 = 1 << 3
	FlagBreakLow  uint8 = 1 << 4 // B-low: set on software pushes only
	FlagBreakHigh uint8 = 1 << 5 // B-high: always 1 on stack-pushed copies
	FlagOverflow  uint8 = 1 << 6
	FlagNegative  uint8 = 1 << 7
)

// resetStatus is P's value immediately after Reset: IRQ disabled, B-high set.
const resetStatus = FlagInterrupt | FlagBreakHigh

// resetSP is SP's value immediately after Reset.
const resetSP = 0xFD

// File holds the six 6502 registers. P's B bits (4 and 5) are set only by
// Reset, which sets B-high; status writes keep them as they are. Readers
// that need the stack-visible form call StatusForPush.
type File struct {
	PC uint16
	SP uint8
	A  uint8
	X  uint8
	Y  uint8
	p  uint8 // status; bits 4-5 change only on Reset
}

// Reset restores power-up register state. PC is not touched here — the
// reset vector load is the caller's responsibility (it requires a bus read).
func (f *File) Reset() {
	f.A, f.X, f.Y = 0, 0, 0
	f.SP = resetSP
	f.p = resetStatus
}

// Status returns P as held in the register, including B-high after Reset.
func (f *File) Status() uint8 {
	return f.p
}

// SetStatus writes P, ignoring any B-flag bits the caller passed — the B
// bits already in P are kept.
func (f *File) SetStatus(v uint8) {
	f.p = v&^(FlagBreakLow|FlagBreakHigh) | f.p&(FlagBreakLow|FlagBreakHigh)
}

// StatusForPush returns the status byte as it appears when pushed to the
// stack: B-high is always 1, B-low is 1 for a software push (PHP/BRK) and 0
// for a hardware push (NMI/IRQ).
func (f *File) StatusForPush(software bool) uint8 {
	v := f.Status() | FlagBreakHigh
	if software {
		v |= FlagBreakLow
	}
	return v
}

// RestoreStatus sets P from a byte popped off the stack (PLP, RTI). B-high
// and B-low in v are discarded; P keeps its current B bits.
func (f *File) RestoreStatus(v uint8) {
	f.SetStatus(v)
}

// SetFlag sets or clears a single flag bit.
func (f *File) SetFlag(mask uint8, set bool) {
	if set {
		f.p |= mask &^ (FlagBreakLow | FlagBreakHigh)
	} else {
		f.p &^= mask
	}
}

// Flag reports whether a single flag bit is set.
func (f *File) Flag(mask uint8) bool {
	return f.p&mask != 0
}

// SetFlagsFrom sets Z from (v == 0) and N from bit 7 of v — the common
// load/transfer/shift flag update.
func (f *File) SetFlagsFrom(v uint8) {
	f.SetFlag(FlagZero, v == 0)
	f.SetFlag(FlagNegative, v&0x80 != 0)
}

// SetOverflowFrom sets V from bit 6 of v, as BIT requires.
func (f *File) SetOverflowFrom(v uint8) {
	f.SetFlag(FlagOverflow, v&0x40 != 0)
}

// SetNegativeFrom sets N from bit 7 of v, as BIT requires.
func (f *File) SetNegativeFrom(v uint8) {
	f.SetFlag(FlagNegative, v&0x80 != 0)
}
