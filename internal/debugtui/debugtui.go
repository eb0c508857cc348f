// Package debugtui implements an interactive terminal debugger: a bubbletea
// program driven one step at a time by the machine's Observer fan-out,
// showing a page of memory around PC, the register file, and a structural
// dump of the opcode about to execute. Grounded in hejops-gone's
// cpu/debugger.go bubbletea model.
package debugtui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"nesgo/internal/cpu"
	"nesgo/internal/observer"
)

const pageWidth = 16

// Observer pauses the machine at every tick, handing control to an
// interactive bubbletea session that single-steps on keypress.
type Observer struct {
	observer.Base

	// Breakpoints is a set of PC values that stop auto-run and force a
	// prompt; empty means every tick prompts.
	Breakpoints map[uint16]bool

	freeRunning bool
}

// NewObserver creates a debugger observer with no breakpoints set.
func NewObserver() *Observer {
	return &Observer{Breakpoints: map[uint16]bool{}}
}

func (o *Observer) OnTick(m observer.Machine) {
	if o.freeRunning {
		return
	}
	if len(o.Breakpoints) > 0 && !o.Breakpoints[m.PC()] {
		return
	}
	prog, err := tea.NewProgram(model{m: m}).Run()
	if err != nil {
		return
	}
	if fin, ok := prog.(model); ok && fin.quit {
		o.freeRunning = true // resume free-running after a quit keypress
	}
}

type model struct {
	m    observer.Machine
	quit bool
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case " ", "j", "n":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderPage(pageAligned(m.m.PC())),
		"",
		m.status(),
		"",
		spew.Sdump(cpu.Lookup(m.m.ReadMemory(m.m.PC()))),
	)
}

func pageAligned(pc uint16) uint16 {
	return pc - pc%pageWidth
}

func (m model) renderPage(start uint16) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%04X | ", start)
	for i := uint16(0); i < pageWidth; i++ {
		addr := start + i
		v := m.m.ReadMemory(addr)
		if addr == m.m.PC() {
			fmt.Fprintf(&b, "[%02X] ", v)
		} else {
			fmt.Fprintf(&b, " %02X  ", v)
		}
	}
	return b.String()
}

func (m model) status() string {
	return fmt.Sprintf(
		"PC:%04X A:%02X X:%02X Y:%02X SP:%02X P:%02X CYC:%d  PPU:%d,%d",
		m.m.PC(), m.m.A(), m.m.X(), m.m.Y(), m.m.SP(), m.m.Status(), m.m.Cycles(),
		m.m.PPUScanline(), m.m.PPUDot(),
	)
}
