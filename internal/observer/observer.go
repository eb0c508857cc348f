// Package observer defines the small, static-arity capability peripherals
// implement to be driven by the master clock's frame loop.
package observer

// Machine is the subset of the running machine an observer may read or
// mutate. It is satisfied by *machine.Machine; kept as an interface here so
// this package never imports machine (which imports this package to hold
// the observer list). Register access is exposed here rather than on some
// separate post-step snapshot — any register view an observer needs (the
// tracer's trace line, the debugger's register pane) goes through these.
type Machine interface {
	ReadMemory(addr uint16) uint8
	WriteMemory(addr uint16, v uint8)

	PC() uint16
	A() uint8
	X() uint8
	Y() uint8
	SP() uint8
	Status() uint8
	Cycles() uint64

	// PPUDot and PPUScanline back the tracer's PPU:ddd,ddd column.
	PPUDot() int
	PPUScanline() int
}

// Observer is the peripheral capability: up to four callbacks, all
// optional. Embed Base to get no-op defaults for the ones you don't need.
type Observer interface {
	OnInit(m Machine)
	OnTick(m Machine)
	OnVBlank(m Machine)
	OnShutdown(m Machine)
}

// Base is embedded by observers that only care about one or two callbacks.
type Base struct{}

func (Base) OnInit(Machine)     {}
func (Base) OnTick(Machine)     {}
func (Base) OnVBlank(Machine)   {}
func (Base) OnShutdown(Machine) {}

// List is an ordered, stable-order collection of observers, iterated by
// index rather than the take/replace-on-borrow pattern of the original
// source (see SPEC_FULL.md's SUPPLEMENTED FEATURES).
type List struct {
	observers []Observer
}

// Register appends an observer; registration order is notification order.
func (l *List) Register(o Observer) {
	l.observers = append(l.observers, o)
}

func (l *List) Init(m Machine) {
	for _, o := range l.observers {
		o.OnInit(m)
	}
}

func (l *List) Tick(m Machine) {
	for _, o := range l.observers {
		o.OnTick(m)
	}
}

func (l *List) VBlank(m Machine) {
	for _, o := range l.observers {
		o.OnVBlank(m)
	}
}

func (l *List) Shutdown(m Machine) {
	for _, o := range l.observers {
		o.OnShutdown(m)
	}
}
