package machine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"nesgo/internal/cartridge"
	"nesgo/internal/observer"
)

// newMachineWithProgram returns a machine with a one-bank NROM cartridge
// holding program at $8000 and a reset vector pointing there. Cartridge
// space is ROM, so LoadInitialMemoryRegion cannot place bytes there.
func newMachineWithProgram(t *testing.T, program ...uint8) *Machine {
	prg := make([]byte, 0x4000)
	copy(prg, program)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	rom := append([]byte{'N', 'E', 'S', 0x1A, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, prg...)
	cart, err := cartridge.LoadFromReader(bytes.NewReader(rom))
	require.NoError(t, err)
	m := New()
	m.LoadCartridge(cart)
	return m
}

func TestNewWiresNMIFromPPU(t *testing.T) {
	m := newMachineWithProgram(t)
	m.Init()

	require.Equal(t, uint16(0x8000), m.CPU.Reg.PC)

	m.PPU.Ctrl |= 0x80 // CtrlGenerateNMI
	m.PPU.OnNMI()
	require.True(t, m.CPU.NMIPending())
}

func TestPPUAdvancesOncePerFourMasterTicks(t *testing.T) {
	m := newMachineWithProgram(t)
	m.Init()

	for i := 0; i < ppuDividerTicks; i++ {
		m.Tick()
	}
	require.Equal(t, 1, m.PPU.Dot())
}

func TestCPUStepsOnceEveryTwelveMasterTicks(t *testing.T) {
	m := newMachineWithProgram(t, 0xEA) // NOP, 2 cycles
	m.Init()

	before := m.CPU.Reg.PC
	for i := 0; i < cpuDividerTicks-1; i++ {
		m.Tick()
	}
	require.Equal(t, before, m.CPU.Reg.PC, "CPU must not step before its divider fires")

	m.Tick()
	require.NotEqual(t, before, m.CPU.Reg.PC, "CPU must step once its divider fires")
}

func TestVBlankFiresAfterCyclesPerFrame(t *testing.T) {
	m := newMachineWithProgram(t, 0xEA)
	m.Init()

	fired := false
	m.RegisterObserver(&vblankSpy{fired: &fired})

	for i := 0; i < cyclesPerFrame*cpuDividerTicks; i++ {
		m.Tick()
		if fired {
			break
		}
	}
	require.True(t, fired, "expected VBlank to fire within one frame's worth of master ticks")
}

type vblankSpy struct {
	fired *bool
}

func (v *vblankSpy) OnInit(observer.Machine)     {}
func (v *vblankSpy) OnTick(observer.Machine)     {}
func (v *vblankSpy) OnVBlank(observer.Machine)   { *v.fired = true }
func (v *vblankSpy) OnShutdown(observer.Machine) {}

func TestRunStopsOnHalt(t *testing.T) {
	m := newMachineWithProgram(t, 0x00) // BRK halts
	m.Init()

	m.Run()
	require.True(t, m.CPU.Halted)
}

func TestShutdownNotifiesObservers(t *testing.T) {
	m := newMachineWithProgram(t)
	m.Init()

	shut := false
	m.RegisterObserver(&shutdownSpy{shut: &shut})
	m.Shutdown()
	require.True(t, shut)
}

type shutdownSpy struct {
	shut *bool
}

func (s *shutdownSpy) OnInit(observer.Machine)     {}
func (s *shutdownSpy) OnTick(observer.Machine)     {}
func (s *shutdownSpy) OnVBlank(observer.Machine)   {}
func (s *shutdownSpy) OnShutdown(observer.Machine) { *s.shut = true }
