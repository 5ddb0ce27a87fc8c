package spectrum48

import (
	"testing"

	"github.com/retrospec-go/spectrum48/internal/bus"
	"github.com/retrospec-go/spectrum48/internal/debugapi"
	"github.com/retrospec-go/spectrum48/internal/keyboard"
)

func newTestCore(t *testing.T) *Core {
	t.Helper()
	rom := make([]byte, bus.ROMSize)
	core, err := NewCore(rom)
	if err != nil {
		t.Fatalf("NewCore: %v", err)
	}
	return core
}

func TestNewCoreRejectsWrongROMSize(t *testing.T) {
	if _, err := NewCore(make([]byte, 100)); err == nil {
		t.Fatal("NewCore accepted a wrong-sized ROM")
	}
}

func TestPeekPokeRAM(t *testing.T) {
	c := newTestCore(t)
	for _, addr := range []uint16{0x4000, 0x8000, 0xFFFF} {
		c.Poke(addr, 0x5A)
		if got := c.Peek(addr); got != 0x5A {
			t.Fatalf("Peek(0x%04X) = 0x%02X, want 0x5A", addr, got)
		}
	}
}

func TestPokeROMIsIgnored(t *testing.T) {
	c := newTestCore(t)
	before := c.Peek(0x0010)
	c.Poke(0x0010, 0xFF)
	if got := c.Peek(0x0010); got != before {
		t.Fatalf("Poke to ROM changed the byte: got 0x%02X, want 0x%02X", got, before)
	}
}

func TestRunForAdvancesTStates(t *testing.T) {
	c := newTestCore(t)
	reason := c.RunFor(1000)
	if reason.TStatesElapsed < 1000 {
		t.Fatalf("RunFor(1000) elapsed %d T-states, want >= 1000", reason.TStatesElapsed)
	}
}

func TestRunFrameAdvancesAtLeastOneFrame(t *testing.T) {
	c := newTestCore(t)
	reason := c.RunFrame()
	const frameTStates = 69888
	if reason.TStatesElapsed < frameTStates {
		t.Fatalf("RunFrame elapsed %d T-states, want >= %d", reason.TStatesElapsed, frameTStates)
	}
}

func TestBreakpointStopsBeforeAddress(t *testing.T) {
	c := newTestCore(t)
	c.SetBreakpoint(0x0000)
	reason := c.RunFrame()
	if reason.Kind != debugapi.StopBreakpoint {
		t.Fatalf("stop kind = %v, want StopBreakpoint", reason.Kind)
	}
	if reason.Breakpoint == nil || reason.Breakpoint.Address != 0x0000 {
		t.Fatalf("breakpoint event = %+v, want address 0x0000", reason.Breakpoint)
	}

	c.ClearBreakpoint(0x0000)
	reason = c.RunFrame()
	if reason.Kind == debugapi.StopBreakpoint {
		t.Fatal("breakpoint fired again after being cleared")
	}
}

func TestWatchpointFiresOnWrite(t *testing.T) {
	c := newTestCore(t)
	// LD A,1; LD (0x8000),A; HALT
	c.Poke(0x8000+0x100, 0x3E) // place the program safely above the address it watches
	c.Poke(0x8000+0x101, 0x01)
	c.Poke(0x8000+0x102, 0x32)
	c.Poke(0x8000+0x103, 0x00)
	c.Poke(0x8000+0x104, 0x80)
	c.Poke(0x8000+0x105, 0x76)

	regs := c.GetRegisters()
	for i := range regs {
		if regs[i].Name == "PC" {
			regs[i].Value = 0x8100
		}
	}
	if err := c.SetRegisters(regs); err != nil {
		t.Fatalf("SetRegisters: %v", err)
	}

	c.SetWatchpoint(0x8000)
	reason := c.RunFrame()
	if reason.Kind != debugapi.StopWatchpoint {
		t.Fatalf("stop kind = %v, want StopWatchpoint", reason.Kind)
	}
	if reason.Watchpoint == nil || reason.Watchpoint.NewValue != 1 {
		t.Fatalf("watchpoint event = %+v, want NewValue 1", reason.Watchpoint)
	}
}

func TestGetSetRegistersRoundTrip(t *testing.T) {
	c := newTestCore(t)
	regs := c.GetRegisters()
	for i := range regs {
		switch regs[i].Name {
		case "PC":
			regs[i].Value = 0x1234
		case "IFF1", "IFF2", "Halted":
			regs[i].Value = 1
		case "EIDelay":
			regs[i].Value = 1
		}
	}
	if err := c.SetRegisters(regs); err != nil {
		t.Fatalf("SetRegisters: %v", err)
	}
	got := c.GetRegisters()
	if len(got) != len(regs) {
		t.Fatalf("GetRegisters length changed: got %d, want %d", len(got), len(regs))
	}
	for i := range regs {
		if got[i] != regs[i] {
			t.Fatalf("register %q = %+v, want %+v", regs[i].Name, got[i], regs[i])
		}
	}
}

func TestSetRegistersRejectsUnknownName(t *testing.T) {
	c := newTestCore(t)
	err := c.SetRegisters([]debugapi.RegisterInfo{{Name: "ZZ", Width: 8, Value: 0}})
	if err == nil {
		t.Fatal("SetRegisters accepted an unknown register name")
	}
}

func TestSnapshotRestoreRoundTrip(t *testing.T) {
	c := newTestCore(t)
	c.Poke(0x8000, 0x42)

	regs := c.GetRegisters()
	for i := range regs {
		if regs[i].Name == "PC" {
			regs[i].Value = 0xABCD
		}
	}
	if err := c.SetRegisters(regs); err != nil {
		t.Fatalf("SetRegisters: %v", err)
	}

	snap := c.Snapshot()

	other := newTestCore(t)
	if err := other.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	if got := other.Peek(0x8000); got != 0x42 {
		t.Fatalf("restored RAM byte = 0x%02X, want 0x42", got)
	}
	otherRegs := other.GetRegisters()
	for _, r := range otherRegs {
		if r.Name == "PC" && r.Value != 0xABCD {
			t.Fatalf("restored PC = 0x%04X, want 0xABCD", r.Value)
		}
	}
}

// TestSnapshotRestoreRoundTripsFlashPhase pins down the flash ink/paper
// swap phase bit alongside its frame counter: restoring only the counter
// without the phase would resume FLASH-attributed cells with the wrong
// colours until the two happened to resync.
func TestSnapshotRestoreRoundTripsFlashPhase(t *testing.T) {
	c := newTestCore(t)
	// 16 frames is exactly one flash period, toggling FlashState once.
	for i := 0; i < 16; i++ {
		c.RunFrame()
	}

	snap := c.Snapshot()
	if !snap.FlashState {
		t.Fatal("expected FlashState true after 16 frames")
	}

	other := newTestCore(t)
	if err := other.Restore(snap); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if got := other.Snapshot().FlashState; got != snap.FlashState {
		t.Fatalf("restored FlashState = %v, want %v", got, snap.FlashState)
	}
}

func TestRestoreRejectsWrongRAMSize(t *testing.T) {
	c := newTestCore(t)
	snap := c.Snapshot()
	snap.RAM = snap.RAM[:len(snap.RAM)-1]
	if err := c.Restore(snap); err == nil {
		t.Fatal("Restore accepted a short RAM payload")
	}
}

func TestPressReleasePropagateToKeyboardPort(t *testing.T) {
	c := newTestCore(t)
	c.Press(keyboard.KeyZ)
	// IN A,(0xFE) with selector 0xFE reads half-row 0; Z held pulls D1 low.
	value := c.bus.In(0xFEFE)
	if value&0x02 != 0 {
		t.Fatalf("keyboard port bit for Z = set, want clear (value 0x%02X)", value)
	}
	c.Release(keyboard.KeyZ)
	value = c.bus.In(0xFEFE)
	if value&0x02 == 0 {
		t.Fatalf("keyboard port bit for Z = clear after release, want set (value 0x%02X)", value)
	}
}

func TestResetClearsKeyboard(t *testing.T) {
	c := newTestCore(t)
	c.Press(keyboard.KeyZ)
	c.Reset()
	value := c.bus.In(0xFEFE)
	if value&0x02 == 0 {
		t.Fatal("Reset left a key pressed")
	}
}

func TestSpeakerSamplesAccumulateAndClear(t *testing.T) {
	c := newTestCore(t)
	c.RunFrame()
	if len(c.SpeakerSamples()) == 0 {
		t.Fatal("expected at least one speaker sample after a frame")
	}
	if got := c.SpeakerSamples(); len(got) != 0 {
		t.Fatalf("SpeakerSamples did not clear after being read, got %d samples", len(got))
	}
}
