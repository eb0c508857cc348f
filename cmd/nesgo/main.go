// Package main implements the nesgo CLI: the external collaborator §6
// describes in front of the core Machine (construct, load-cartridge, init,
// run-until-halt, inspect-register, inspect-memory, inject-memory,
// inject-bytes-at-PC).
package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"nesgo/internal/cartridge"
	"nesgo/internal/machine"
	"nesgo/internal/trace"
)

// buildVersion reports the VCS revision embedded by the Go toolchain, or
// "dev" outside a module build (e.g. `go run`).
func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "dev"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			if len(setting.Value) >= 7 {
				return setting.Value[:7]
			}
			return setting.Value
		}
	}
	return "dev"
}

func main() {
	app := &cli.App{
		Name:    "nesgo",
		Usage:   "a NES core: CPU, bus, PPU/APU register windows, and a tracer",
		Version: buildVersion(),
		Commands: []*cli.Command{
			runCommand(),
			traceCommand(),
			inspectCommand(),
			injectCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func romFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "rom", Usage: "path to an iNES ROM file", Required: true}
}

func newMachineFromROM(romPath string) (*machine.Machine, error) {
	cart, err := cartridge.LoadFromFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("loading cartridge: %w", err)
	}
	m := machine.New()
	m.LoadCartridge(cart)
	m.Init()
	return m, nil
}

func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "run a ROM until the core halts",
		Flags: []cli.Flag{
			romFlag(),
			&cli.Uint64Flag{Name: "pc", Usage: "force PC instead of reading the reset vector"},
		},
		Action: func(c *cli.Context) error {
			m, err := newMachineFromROM(c.String("rom"))
			if err != nil {
				return err
			}
			if c.IsSet("pc") {
				m.SetPC(uint16(c.Uint64("pc")))
			}
			m.Run()
			fmt.Printf("halted at PC=$%04X after %d CPU cycles\n", m.PC(), m.Cycles())
			return nil
		},
	}
}

func traceCommand() *cli.Command {
	return &cli.Command{
		Name:  "trace",
		Usage: "run a ROM, writing one canonical trace line per instruction",
		Flags: []cli.Flag{
			romFlag(),
			&cli.Uint64Flag{Name: "pc", Usage: "force PC instead of reading the reset vector"},
		},
		Action: func(c *cli.Context) error {
			m, err := newMachineFromROM(c.String("rom"))
			if err != nil {
				return err
			}
			if c.IsSet("pc") {
				m.SetPC(uint16(c.Uint64("pc")))
			}
			m.RegisterObserver(trace.NewObserver(os.Stdout))
			m.Run()
			return nil
		},
	}
}

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "load a ROM and print register or memory state without running it",
		Flags: []cli.Flag{
			romFlag(),
			&cli.StringFlag{Name: "register", Usage: "one of pc,a,x,y,sp,p"},
			&cli.Uint64Flag{Name: "address", Usage: "a memory address to read"},
		},
		Action: func(c *cli.Context) error {
			m, err := newMachineFromROM(c.String("rom"))
			if err != nil {
				return err
			}
			if reg := c.String("register"); reg != "" {
				fmt.Println(inspectRegister(m, reg))
			}
			if c.IsSet("address") {
				addr := uint16(c.Uint64("address"))
				fmt.Printf("$%04X = $%02X\n", addr, m.ReadMemory(addr))
			}
			return nil
		},
	}
}

func inspectRegister(m *machine.Machine, reg string) string {
	switch strings.ToLower(reg) {
	case "pc":
		return fmt.Sprintf("PC=$%04X", m.PC())
	case "a":
		return fmt.Sprintf("A=$%02X", m.A())
	case "x":
		return fmt.Sprintf("X=$%02X", m.X())
	case "y":
		return fmt.Sprintf("Y=$%02X", m.Y())
	case "sp":
		return fmt.Sprintf("SP=$%02X", m.SP())
	case "p":
		return fmt.Sprintf("P=$%02X", m.Status())
	default:
		return fmt.Sprintf("unknown register %q", reg)
	}
}

func injectCommand() *cli.Command {
	return &cli.Command{
		Name:  "inject",
		Usage: "inject_operation: poke space-separated hex bytes at PC and run one step",
		Flags: []cli.Flag{
			romFlag(),
			&cli.Uint64Flag{Name: "pc", Usage: "address to inject at and set PC to", Required: true},
			&cli.StringFlag{Name: "bytes", Usage: "space-separated hex bytes, e.g. \"A9 C0 AA\"", Required: true},
		},
		Action: func(c *cli.Context) error {
			m, err := newMachineFromROM(c.String("rom"))
			if err != nil {
				return err
			}
			data, err := parseHexBytes(c.String("bytes"))
			if err != nil {
				return err
			}
			pc := uint16(c.Uint64("pc"))
			m.LoadInitialMemoryRegion(pc, data)
			m.SetPC(pc)
			m.CPU.Step()
			fmt.Printf("A:%02X X:%02X Y:%02X P:%02X SP:%02X PC:%04X\n",
				m.A(), m.X(), m.Y(), m.Status(), m.SP(), m.PC())
			return nil
		},
	}
}

func parseHexBytes(s string) ([]uint8, error) {
	fields := strings.Fields(s)
	out := make([]uint8, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return nil, fmt.Errorf("inject_operation: bad hex byte %q: %w", f, err)
		}
		out = append(out, uint8(v))
	}
	return out, nil
}
