// Package display implements the window front-end: an ebiten.Game (not an
// observer.Observer; Run drives the machine itself) that reads
// keyboard state into the machine's controller ports each frame and blits a
// debug visualization of the PPU's opaque VRAM — not a rendering pipeline,
// which is out of scope (§1's Non-goals; the PPU stays a register window
// plus a Tick). Grounded in RNG999-gones's internal/graphics ebitengine
// backend, trimmed to the single ebiten.Game this repo actually needs.
package display

import (
	"context"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/sync/errgroup"

	"nesgo/internal/input"
	"nesgo/internal/machine"
)

const (
	nesWidth  = 256
	nesHeight = 240
)

var keymap = map[ebiten.Key]input.Button{
	ebiten.KeyW:      input.ButtonUp,
	ebiten.KeyS:      input.ButtonDown,
	ebiten.KeyA:      input.ButtonLeft,
	ebiten.KeyD:      input.ButtonRight,
	ebiten.KeyJ:      input.ButtonA,
	ebiten.KeyK:      input.ButtonB,
	ebiten.KeyEnter:  input.ButtonStart,
	ebiten.KeySpace:  input.ButtonSelect,
}

// Window is an ebiten.Game bound to one machine's controller 1 and PPU.
type Window struct {
	m     *machine.Machine
	scale int
	img   *ebiten.Image
}

// NewWindow creates a window at the given integer scale of the native NES
// resolution (256x240).
func NewWindow(m *machine.Machine, scale int) *Window {
	if scale <= 0 {
		scale = 2
	}
	return &Window{m: m, scale: scale, img: ebiten.NewImage(nesWidth, nesHeight)}
}

func (w *Window) Update() error {
	for key, button := range keymap {
		w.m.Ctrl.Controller1.SetButton(button, ebiten.IsKeyPressed(key))
	}
	return nil
}

// Draw paints a grayscale tile of the PPU's nametable/pattern VRAM — a
// debug visualization standing in for real rendering.
func (w *Window) Draw(screen *ebiten.Image) {
	for y := 0; y < nesHeight; y++ {
		for x := 0; x < nesWidth; x++ {
			addr := uint16((y*nesWidth + x) % 0x4000)
			v := w.m.PPU.Peek(addr)
			w.img.Set(x, y, color.Gray{Y: v})
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w.scale), float64(w.scale))
	screen.DrawImage(w.img, op)
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return nesWidth * w.scale, nesHeight * w.scale
}

// Run starts the machine and the ebiten window loop side by side, joining
// both at shutdown. Closing the window stops the machine; a machine that
// halts first leaves the window open until it is closed.
func Run(m *machine.Machine, title string, scale int) error {
	w := NewWindow(m, scale)
	width, height := w.Layout(0, 0)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		m.Run()
		return nil
	})
	g.Go(func() error {
		err := ebiten.RunGame(w)
		m.Stop()
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
