// Package spectrum48 composes a Z80 CPU, paged Bus, ULA, and keyboard
// matrix into a complete, deterministic ZX Spectrum 48K core. Core is the
// one type in this module that is allowed to hold references to all four
// components; none of them reference each other directly, which keeps the
// dependency graph acyclic (see DESIGN.md).
package spectrum48

import (
	"fmt"

	"github.com/retrospec-go/spectrum48/internal/bus"
	"github.com/retrospec-go/spectrum48/internal/debugapi"
	"github.com/retrospec-go/spectrum48/internal/keyboard"
	"github.com/retrospec-go/spectrum48/internal/snapshot"
	"github.com/retrospec-go/spectrum48/internal/ula"
	"github.com/retrospec-go/spectrum48/internal/z80"
)

// InvalidArgumentError is returned by any Core operation given a
// malformed argument: a wrong-sized ROM or snapshot, an out-of-range
// register name, and so on. The core never panics on bad input.
type InvalidArgumentError struct {
	Op     string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Reason)
}

const tstatesPerSample = 79 // ~69888/882, the conventional 50Hz-frame sample rate

// coreBus decorates *bus.Bus with watchpoint detection: Core needs to know
// the instant a watched address is written, which the Bus itself has no
// reason to track.
type coreBus struct {
	*bus.Bus
	watchpoints map[uint16]bool
	hit         *debugapi.WatchpointEvent
}

func (w *coreBus) Write(addr uint16, value byte) {
	watched := w.watchpoints[addr]
	var old byte
	if watched {
		old = w.Bus.Peek(addr)
	}
	w.Bus.Write(addr, value)
	if watched && w.hit == nil {
		w.hit = &debugapi.WatchpointEvent{Address: addr, OldValue: old, NewValue: value}
	}
}

// Core is a complete ZX Spectrum 48K: CPU, 64 KiB paged address space, ULA
// video/IO chip, and 40-key keyboard matrix, advanced one frame (or one
// T-state budget) at a time by its caller.
type Core struct {
	cpu *z80.CPU
	bus *coreBus
	ula *ula.ULA
	kbd *keyboard.Keyboard

	breakpoints map[uint16]bool

	speakerSamples []bool
	sampleAccum    int
}

// NewCore builds a Core from a 16 KiB ROM image. Any other length is
// rejected with *InvalidArgumentError rather than silently truncated or
// padded.
func NewCore(romBytes []byte) (*Core, error) {
	if len(romBytes) != bus.ROMSize {
		return nil, &InvalidArgumentError{
			Op:     "new_core",
			Reason: fmt.Sprintf("ROM must be exactly %d bytes, got %d", bus.ROMSize, len(romBytes)),
		}
	}

	b := bus.New(romBytes)
	kbd := &keyboard.Keyboard{}
	u := ula.New(b, kbd)

	cb := &coreBus{Bus: b, watchpoints: make(map[uint16]bool)}
	b.AttachContention(u)
	b.AttachIO(u)

	c := &Core{
		cpu:         z80.NewCPU(cb),
		bus:         cb,
		ula:         u,
		kbd:         kbd,
		breakpoints: make(map[uint16]bool),
	}
	return c, nil
}

// Reset restores the CPU, ULA, and keyboard to power-on state. RAM
// contents and the T-state counter are left untouched, matching the
// CPU's own Reset semantics.
func (c *Core) Reset() {
	c.cpu.Reset()
	c.ula.Reset()
	c.kbd.ReleaseAll()
	c.speakerSamples = c.speakerSamples[:0]
	c.sampleAccum = 0
}

// RunFrame executes instructions until a full 69,888 T-state video frame
// has elapsed, or until an armed breakpoint or watchpoint interrupts it
// first.
func (c *Core) RunFrame() debugapi.StopReason {
	return c.run(ula.FrameTStates)
}

// RunFor executes instructions until maxTStates have elapsed (it may
// overshoot by up to one instruction's worth of T-states, since
// instructions are not interruptible mid-execution), or until a
// breakpoint/watchpoint fires first.
func (c *Core) RunFor(maxTStates int) debugapi.StopReason {
	return c.run(maxTStates)
}

func (c *Core) run(budget int) debugapi.StopReason {
	elapsed := 0
	for elapsed < budget {
		if c.breakpoints[c.cpu.PC] {
			return debugapi.StopReason{Kind: debugapi.StopBreakpoint, TStatesElapsed: elapsed,
				Breakpoint: &debugapi.BreakpointEvent{Address: c.cpu.PC}}
		}

		c.cpu.SetIRQLine(c.ula.InterruptLine())

		before := c.cpu.Cycles
		framePos := c.ula.FrameTState()
		c.cpu.Step()
		// The Bus ticks the ULA for contention delays as well as for the
		// CPU's own cycles; charge that difference to the CPU's counter too.
		if contended := (c.ula.FrameTState()-framePos+ula.FrameTStates)%ula.FrameTStates - int(c.cpu.Cycles-before); contended > 0 {
			c.cpu.Cycles += uint64(contended)
		}
		stepCycles := int(c.cpu.Cycles - before)
		elapsed += stepCycles
		c.accumulateSamples(stepCycles)

		if c.bus.hit != nil {
			ev := c.bus.hit
			c.bus.hit = nil
			return debugapi.StopReason{Kind: debugapi.StopWatchpoint, TStatesElapsed: elapsed, Watchpoint: ev}
		}
	}
	if budget == ula.FrameTStates {
		return debugapi.StopReason{Kind: debugapi.StopFrameComplete, TStatesElapsed: elapsed}
	}
	return debugapi.StopReason{Kind: debugapi.StopTStateLimit, TStatesElapsed: elapsed}
}

func (c *Core) accumulateSamples(cycles int) {
	level := c.ula.Speaker()
	c.sampleAccum += cycles
	for c.sampleAccum >= tstatesPerSample {
		c.speakerSamples = append(c.speakerSamples, level)
		c.sampleAccum -= tstatesPerSample
	}
}

// Press marks key as held down.
func (c *Core) Press(key keyboard.Key) {
	c.kbd.Press(key)
}

// Release marks key as no longer held.
func (c *Core) Release(key keyboard.Key) {
	c.kbd.Release(key)
}

// PixelBuffer renders the current display contents (including border) and
// returns the frame as packed RGBA bytes, FrameWidth*FrameHeight*4 long.
// The returned slice is owned by the core and is overwritten by the next
// call.
func (c *Core) PixelBuffer() []byte {
	return c.ula.Render()
}

// SpeakerSamples returns the one-bit beeper samples accumulated since the
// last call (or since Reset), and clears the internal buffer.
func (c *Core) SpeakerSamples() []bool {
	out := c.speakerSamples
	c.speakerSamples = nil
	return out
}

// TStates returns the CPU's lifetime T-state counter, the same clock
// RunFrame/RunFor advance.
func (c *Core) TStates() uint64 {
	return c.cpu.Cycles
}

// Peek reads a byte from the 16-bit address space without disturbing
// timing or contention state.
func (c *Core) Peek(addr uint16) byte {
	return c.bus.Peek(addr)
}

// Poke writes a byte to the 16-bit address space without disturbing
// timing or contention state. Pokes to ROM (0x0000-0x3FFF) are dropped.
func (c *Core) Poke(addr uint16, value byte) {
	c.bus.Poke(addr, value)
}

// GetRegisters returns every architectural CPU register as a flat list,
// in the order the specification's persisted-state section lists them.
func (c *Core) GetRegisters() []debugapi.RegisterInfo {
	cpu := c.cpu
	return []debugapi.RegisterInfo{
		{Name: "A", Width: 8, Value: uint16(cpu.A)},
		{Name: "F", Width: 8, Value: uint16(cpu.F)},
		{Name: "BC", Width: 16, Value: cpu.BC()},
		{Name: "DE", Width: 16, Value: cpu.DE()},
		{Name: "HL", Width: 16, Value: cpu.HL()},
		{Name: "A'", Width: 8, Value: uint16(cpu.A2)},
		{Name: "F'", Width: 8, Value: uint16(cpu.F2)},
		{Name: "BC'", Width: 16, Value: cpu.BC2()},
		{Name: "DE'", Width: 16, Value: cpu.DE2()},
		{Name: "HL'", Width: 16, Value: cpu.HL2()},
		{Name: "IX", Width: 16, Value: cpu.IX},
		{Name: "IY", Width: 16, Value: cpu.IY},
		{Name: "SP", Width: 16, Value: cpu.SP},
		{Name: "PC", Width: 16, Value: cpu.PC},
		{Name: "I", Width: 8, Value: uint16(cpu.I)},
		{Name: "R", Width: 8, Value: uint16(cpu.R)},
		{Name: "IFF1", Width: 8, Value: boolToU16(cpu.IFF1)},
		{Name: "IFF2", Width: 8, Value: boolToU16(cpu.IFF2)},
		{Name: "IM", Width: 8, Value: uint16(cpu.IM)},
		{Name: "Halted", Width: 8, Value: boolToU16(cpu.Halted)},
		{Name: "EIDelay", Width: 8, Value: uint16(cpu.EIDelay())},
	}
}

func boolToU16(b bool) uint16 {
	if b {
		return 1
	}
	return 0
}

// SetRegisters writes back every register named in regs. An unknown
// register name is an *InvalidArgumentError; registers not mentioned are
// left untouched.
func (c *Core) SetRegisters(regs []debugapi.RegisterInfo) error {
	cpu := c.cpu
	for _, r := range regs {
		switch r.Name {
		case "A":
			cpu.A = byte(r.Value)
		case "F":
			cpu.F = byte(r.Value)
		case "BC":
			cpu.SetBC(r.Value)
		case "DE":
			cpu.SetDE(r.Value)
		case "HL":
			cpu.SetHL(r.Value)
		case "A'":
			cpu.A2 = byte(r.Value)
		case "F'":
			cpu.F2 = byte(r.Value)
		case "BC'":
			cpu.SetBC2(r.Value)
		case "DE'":
			cpu.SetDE2(r.Value)
		case "HL'":
			cpu.SetHL2(r.Value)
		case "IX":
			cpu.IX = r.Value
		case "IY":
			cpu.IY = r.Value
		case "SP":
			cpu.SP = r.Value
		case "PC":
			cpu.PC = r.Value
		case "I":
			cpu.I = byte(r.Value)
		case "R":
			cpu.R = byte(r.Value)
		case "IFF1":
			cpu.IFF1 = r.Value != 0
		case "IFF2":
			cpu.IFF2 = r.Value != 0
		case "IM":
			cpu.IM = byte(r.Value)
		case "Halted":
			cpu.Halted = r.Value != 0
		case "EIDelay":
			cpu.SetEIDelay(int(r.Value))
		default:
			return &InvalidArgumentError{Op: "set_registers", Reason: "unknown register " + r.Name}
		}
	}
	return nil
}

// Disassemble decodes count instructions starting at addr, reading
// directly from the live address space (ROM and RAM alike).
func (c *Core) Disassemble(addr uint16, count int) []debugapi.DisassembledLine {
	return debugapi.Disassemble(func(a uint16, size int) []byte {
		out := make([]byte, size)
		for i := 0; i < size; i++ {
			out[i] = c.bus.Peek(a + uint16(i))
		}
		return out
	}, addr, count)
}

// SetBreakpoint arms a breakpoint at addr: RunFrame/RunFor will stop
// before executing the instruction at addr.
func (c *Core) SetBreakpoint(addr uint16) {
	c.breakpoints[addr] = true
}

// ClearBreakpoint disarms a previously set breakpoint. Clearing an
// address with no breakpoint is a no-op.
func (c *Core) ClearBreakpoint(addr uint16) {
	delete(c.breakpoints, addr)
}

// SetWatchpoint arms a write watchpoint at addr: RunFrame/RunFor will
// stop immediately after any write to addr, whether or not it changes
// the stored value.
func (c *Core) SetWatchpoint(addr uint16) {
	c.bus.watchpoints[addr] = true
}

// ClearWatchpoint disarms a previously set watchpoint.
func (c *Core) ClearWatchpoint(addr uint16) {
	delete(c.bus.watchpoints, addr)
}

// Snapshot captures the full persisted state: every CPU register, the
// ULA's border and flash latches, and the 48 KiB RAM image.
func (c *Core) Snapshot() *snapshot.State {
	cpu := c.cpu
	ram := c.bus.RAM()
	ramCopy := make([]byte, len(ram))
	copy(ramCopy, ram)

	return &snapshot.State{
		A: cpu.A, F: cpu.F, B: cpu.B, C: cpu.C, D: cpu.D, E: cpu.E, H: cpu.H, L: cpu.L,
		A2: cpu.A2, F2: cpu.F2, B2: cpu.B2, C2: cpu.C2, D2: cpu.D2, E2: cpu.E2, H2: cpu.H2, L2: cpu.L2,
		IX: cpu.IX, IY: cpu.IY, SP: cpu.SP, PC: cpu.PC,
		I: cpu.I, R: cpu.R, IM: cpu.IM,
		IFF1: cpu.IFF1, IFF2: cpu.IFF2, Halted: cpu.Halted, EIDelay: cpu.EIDelay(),
		RAM:          ramCopy,
		Border:       c.ula.Border(),
		FlashCounter: c.ula.FlashCounter(),
		FlashState:   c.ula.FlashState(),
	}
}

// Restore loads a previously captured State, replacing every register,
// RAM byte, and the ULA's border latch. The CPU's T-state counter is not
// part of the persisted state and is left running.
func (c *Core) Restore(s *snapshot.State) error {
	if len(s.RAM) != bus.ROMSize*3 {
		return &InvalidArgumentError{Op: "restore", Reason: fmt.Sprintf("RAM must be %d bytes, got %d", bus.ROMSize*3, len(s.RAM))}
	}
	cpu := c.cpu
	cpu.A, cpu.F, cpu.B, cpu.C, cpu.D, cpu.E, cpu.H, cpu.L = s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L
	cpu.A2, cpu.F2, cpu.B2, cpu.C2, cpu.D2, cpu.E2, cpu.H2, cpu.L2 = s.A2, s.F2, s.B2, s.C2, s.D2, s.E2, s.H2, s.L2
	cpu.IX, cpu.IY, cpu.SP, cpu.PC = s.IX, s.IY, s.SP, s.PC
	cpu.I, cpu.R, cpu.IM = s.I, s.R, s.IM
	cpu.IFF1, cpu.IFF2, cpu.Halted = s.IFF1, s.IFF2, s.Halted
	cpu.SetEIDelay(s.EIDelay)
	c.bus.LoadRAM(s.RAM)
	c.ula.WritePort(0x00FE, s.Border)
	c.ula.SetFlashCounter(s.FlashCounter)
	c.ula.SetFlashState(s.FlashState)
	return nil
}
