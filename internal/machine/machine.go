// Package machine implements the master clock and frame loop: the CPU:PPU
// ratio, the per-frame vblank callback, and the observer fan-out that ties
// the CPU, bus, PPU, APU, and cartridge into one runnable unit.
package machine

import (
	"nesgo/internal/apu"
	"nesgo/internal/bus"
	"nesgo/internal/cartridge"
	"nesgo/internal/cpu"
	"nesgo/internal/input"
	"nesgo/internal/observer"
	"nesgo/internal/ppu"
)

const (
	cpuDividerTicks   = 12
	ppuDividerTicks   = 4
	cyclesPerFrame    = 29780
)

// Machine wires the CPU, bus, PPU, and APU together and drives them at the
// documented 1/12 and 1/4 master-clock ratios.
type Machine struct {
	CPU   *cpu.CPU
	Bus   *bus.Bus
	PPU   *ppu.PPU
	APU   *apu.APU
	Ctrl  *input.Ports
	Cart  *cartridge.Cartridge

	Observers observer.List

	running bool

	ppuDividerCount int
	cpuDividerCount int
	frameCounter    int
	cpuCycleCount   uint64
	nextTick        uint64
}

// New wires a fresh machine: RAM, PPU, APU register windows, no cartridge
// loaded yet.
func New() *Machine {
	p := ppu.New()
	a := apu.New()
	ctrl := input.NewPorts()
	b := bus.New(p, a, ctrl)
	c := cpu.New(b)
	m := &Machine{CPU: c, Bus: b, PPU: p, APU: a, Ctrl: ctrl}
	p.OnNMI = func() { m.CPU.TriggerNMI() }
	return m
}

// LoadCartridge attaches a cartridge behind the bus's $4020-$FFFF window —
// the core's load-cartridge external operation (§6). The PPU does not read
// the cartridge's CHR bank.
func (m *Machine) LoadCartridge(cart *cartridge.Cartridge) {
	m.Cart = cart
	m.Bus.SetCartridge(cart)
}

// LoadInitialMemoryRegion writes bytes through the bus starting at addr —
// the core's load-initial-memory-region operation, used by test fixtures
// and the CLI's inject_operation. Cartridge space does not keep them: ROM
// ignores writes, and with no cartridge loaded they are dropped.
func (m *Machine) LoadInitialMemoryRegion(addr uint16, data []uint8) {
	for i, b := range data {
		m.Bus.Write8(addr+uint16(i), b)
	}
}

// SetPC forces PC, bypassing the reset vector.
func (m *Machine) SetPC(pc uint16) {
	m.CPU.SetPC(pc)
}

// RegisterObserver appends a peripheral to the notification list.
func (m *Machine) RegisterObserver(o observer.Observer) {
	m.Observers.Register(o)
}

// Init performs reset (flags/registers), loads PC from $FFFC, then
// notifies observers, per the documented lifecycle.
func (m *Machine) Init() {
	m.CPU.Reset()
	m.running = true
	m.nextTick = 0
	m.cpuCycleCount = 0
	m.frameCounter = 0
	m.Observers.Init(m)
}

// Tick advances the master clock by exactly one step.
func (m *Machine) Tick() {
	m.ppuDividerCount++
	if m.ppuDividerCount >= ppuDividerTicks {
		m.ppuDividerCount = 0
		m.PPU.Tick()
	}

	m.cpuDividerCount++
	if m.cpuDividerCount >= cpuDividerTicks {
		m.cpuDividerCount = 0
		m.cpuCycleCount++

		m.frameCounter++
		if m.frameCounter >= cyclesPerFrame {
			m.frameCounter -= cyclesPerFrame
			m.Observers.VBlank(m)
		}

		if m.cpuCycleCount >= m.nextTick {
			m.Observers.Tick(m)
			consumed := m.CPU.Step()
			m.nextTick = m.cpuCycleCount + uint64(consumed)
			if m.CPU.Halted {
				m.running = false
			}
		}
	}
}

// Run loops until a halt condition — CPU halt or an explicit Stop.
func (m *Machine) Run() {
	for m.running {
		m.Tick()
	}
}

// Stop requests the run loop exit at the next master-tick boundary.
func (m *Machine) Stop() {
	m.running = false
}

// Shutdown notifies observers; the machine may be re-initialized.
func (m *Machine) Shutdown() {
	m.Observers.Shutdown(m)
	m.running = false
}

// --- observer.Machine ---

func (m *Machine) ReadMemory(addr uint16) uint8     { return m.Bus.Read8(addr) }
func (m *Machine) WriteMemory(addr uint16, v uint8) { m.Bus.Write8(addr, v) }

func (m *Machine) PC() uint16     { return m.CPU.Reg.PC }
func (m *Machine) A() uint8       { return m.CPU.Reg.A }
func (m *Machine) X() uint8       { return m.CPU.Reg.X }
func (m *Machine) Y() uint8       { return m.CPU.Reg.Y }
func (m *Machine) SP() uint8      { return m.CPU.Reg.SP }
func (m *Machine) Status() uint8  { return m.CPU.Reg.Status() }
func (m *Machine) Cycles() uint64 { return m.CPU.Cycles }

func (m *Machine) PPUDot() int      { return m.PPU.Dot() }
func (m *Machine) PPUScanline() int { return m.PPU.Scanline() }
