package cpu

import "nesgo/internal/addressing"

// Mode re-exports the addressing package's mode enum so instruction
// signatures in this package don't need to import addressing directly.
type Mode = addressing.Mode

// Handler implements one instruction's semantics against an
// already-resolved addressing context. It returns cycles beyond the
// dispatch table's base count — nonzero only for branches; the
// page-crossing penalty for every other opcode is applied by Step itself,
// driven by the table's PageCrossPenalty flag.
type Handler func(c *CPU, addr uint16, mode Mode) uint8

// OpEntry is one row of the 256-entry dispatch table.
type OpEntry struct {
	Mnemonic         string
	Handler          Handler
	Mode             Mode
	Cycles           uint8
	Bytes            uint8
	PageCrossPenalty bool
}
