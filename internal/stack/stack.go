// Package stack implements the 6502's descending stack within page $0100,
// addressed by the 8-bit SP register. Depth is not tracked: push and pop
// wrap modulo 256, never error.
package stack

// Base is the fixed page the stack lives in.
const Base uint16 = 0x0100

// Bus is the subset of bus access the stack engine needs.
type Bus interface {
	Read8(addr uint16) uint8
	Write8(addr uint16, v uint8)
}

// Engine pushes and pops through a caller-owned SP register and bus.
type Engine struct {
	SP  *uint8
	Bus Bus
}

// Push writes v at $0100+SP, then decrements SP (wrapping mod 256).
func (e Engine) Push(v uint8) {
	e.Bus.Write8(Base+uint16(*e.SP), v)
	*e.SP--
}

// Pop increments SP (wrapping mod 256), then reads $0100+SP.
func (e Engine) Pop() uint8 {
	*e.SP++
	return e.Bus.Read8(Base + uint16(*e.SP))
}

// Push16 pushes the high byte first, then the low byte, so a matching Pop16
// yields the original value back.
func (e Engine) Push16(v uint16) {
	e.Push(uint8(v >> 8))
	e.Push(uint8(v))
}

// Pop16 pops low then high, reversing Push16.
func (e Engine) Pop16() uint16 {
	lo := uint16(e.Pop())
	hi := uint16(e.Pop())
	return hi<<8 | lo
}
