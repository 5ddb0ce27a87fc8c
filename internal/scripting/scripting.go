// Package scripting runs end-to-end emulator scenarios written in Lua
// against a real Core, so the literal behaviour in the testable
// properties is exercised from outside the package as well as from
// within it.
package scripting

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"

	spectrum48 "github.com/retrospec-go/spectrum48"
	"github.com/retrospec-go/spectrum48/internal/keyboard"
	"github.com/retrospec-go/spectrum48/internal/ula"
)

// Env binds a single Core to a Lua state and exposes it as a small set
// of global functions: new_core, reset, press, release, run_frame,
// run_for, peek, poke, tstates, get_reg, set_reg, expect_pixel,
// expect_eq, count_nonbackground.
type Env struct {
	L    *lua.LState
	core *spectrum48.Core
}

// New creates a Lua state with the emulator functions registered. The
// scripts decide when to call new_core, so no Core exists until then.
func New() *Env {
	env := &Env{L: lua.NewState()}
	L := env.L

	L.SetGlobal("new_core", L.NewFunction(env.newCore))
	L.SetGlobal("reset", L.NewFunction(env.reset))
	L.SetGlobal("press", L.NewFunction(env.press))
	L.SetGlobal("release", L.NewFunction(env.release))
	L.SetGlobal("run_frame", L.NewFunction(env.runFrame))
	L.SetGlobal("run_for", L.NewFunction(env.runFor))
	L.SetGlobal("peek", L.NewFunction(env.peek))
	L.SetGlobal("poke", L.NewFunction(env.poke))
	L.SetGlobal("tstates", L.NewFunction(env.tstates))
	L.SetGlobal("get_reg", L.NewFunction(env.getReg))
	L.SetGlobal("set_reg", L.NewFunction(env.setReg))
	L.SetGlobal("expect_pixel", L.NewFunction(env.expectPixel))
	L.SetGlobal("expect_eq", L.NewFunction(env.expectEq))
	L.SetGlobal("count_nonbackground", L.NewFunction(env.countNonBackground))

	return env
}

func (e *Env) Close() { e.L.Close() }

// RunFile executes a Lua script file to completion, returning any Lua
// runtime error (including an expect_* failure) wrapped for the caller.
func (e *Env) RunFile(path string) error {
	if err := e.L.DoFile(path); err != nil {
		return fmt.Errorf("running %s: %w", path, err)
	}
	return nil
}

func (e *Env) newCore(L *lua.LState) int {
	romPath := L.CheckString(1)
	rom, err := os.ReadFile(romPath)
	if err != nil {
		L.RaiseError("reading ROM %q: %v", romPath, err)
		return 0
	}
	core, err := spectrum48.NewCore(rom)
	if err != nil {
		L.RaiseError("new_core: %v", err)
		return 0
	}
	e.core = core
	return 0
}

func (e *Env) reset(L *lua.LState) int {
	e.core.Reset()
	return 0
}

func (e *Env) keyArg(L *lua.LState, n int) keyboard.Key {
	return keyboard.Key(L.CheckInt(n))
}

func (e *Env) press(L *lua.LState) int {
	e.core.Press(e.keyArg(L, 1))
	return 0
}

func (e *Env) release(L *lua.LState) int {
	e.core.Release(e.keyArg(L, 1))
	return 0
}

func (e *Env) runFrame(L *lua.LState) int {
	count := 1
	if L.GetTop() >= 1 {
		count = L.CheckInt(1)
	}
	var reason string
	for i := 0; i < count; i++ {
		reason = e.core.RunFrame().Kind.String()
	}
	L.Push(lua.LString(reason))
	return 1
}

func (e *Env) runFor(L *lua.LState) int {
	budget := L.CheckInt(1)
	reason := e.core.RunFor(budget)
	L.Push(lua.LString(reason.Kind.String()))
	L.Push(lua.LNumber(reason.TStatesElapsed))
	return 2
}

func (e *Env) peek(L *lua.LState) int {
	addr := uint16(L.CheckInt(1))
	L.Push(lua.LNumber(e.core.Peek(addr)))
	return 1
}

func (e *Env) poke(L *lua.LState) int {
	addr := uint16(L.CheckInt(1))
	value := byte(L.CheckInt(2))
	e.core.Poke(addr, value)
	return 0
}

func (e *Env) tstates(L *lua.LState) int {
	L.Push(lua.LNumber(e.core.TStates()))
	return 1
}

// getReg reads a single named register ("PC", "IFF1", ...) from the
// core's register snapshot.
func (e *Env) getReg(L *lua.LState) int {
	name := L.CheckString(1)
	for _, r := range e.core.GetRegisters() {
		if r.Name == name {
			L.Push(lua.LNumber(r.Value))
			return 1
		}
	}
	L.RaiseError("get_reg: unknown register %q", name)
	return 0
}

// setReg writes a single named register, leaving every other register
// at its current value.
func (e *Env) setReg(L *lua.LState) int {
	name := L.CheckString(1)
	value := uint16(L.CheckInt(2))

	regs := e.core.GetRegisters()
	found := false
	for i := range regs {
		if regs[i].Name == name {
			regs[i].Value = value
			found = true
			break
		}
	}
	if !found {
		L.RaiseError("set_reg: unknown register %q", name)
		return 0
	}
	if err := e.core.SetRegisters(regs); err != nil {
		L.RaiseError("set_reg: %v", err)
	}
	return 0
}

// expectPixel fails the script (and so the calling test) unless the
// pixel at (x,y) in the last rendered frame matches the given RGBA
// bytes, reading the frame fresh from the core each call.
func (e *Env) expectPixel(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	r := byte(L.CheckInt(3))
	g := byte(L.CheckInt(4))
	b := byte(L.CheckInt(5))

	buf := e.core.PixelBuffer()
	offset := (y*ula.FrameWidth + x) * 4
	if offset < 0 || offset+3 >= len(buf) {
		L.RaiseError("expect_pixel: (%d,%d) out of bounds", x, y)
		return 0
	}
	if buf[offset] != r || buf[offset+1] != g || buf[offset+2] != b {
		L.RaiseError("expect_pixel(%d,%d): got {%d,%d,%d}, want {%d,%d,%d}",
			x, y, buf[offset], buf[offset+1], buf[offset+2], r, g, b)
	}
	return 0
}

// countNonBackground counts pixels in the rectangle [x0,x1)x[y0,y1) of
// the last rendered frame that differ from the given background RGB,
// used to check that something was drawn without pinning exact pixels.
func (e *Env) countNonBackground(L *lua.LState) int {
	x0, y0, x1, y1 := L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.CheckInt(4)
	bgR, bgG, bgB := byte(L.CheckInt(5)), byte(L.CheckInt(6)), byte(L.CheckInt(7))

	buf := e.core.PixelBuffer()
	count := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			offset := (y*ula.FrameWidth + x) * 4
			if offset < 0 || offset+3 >= len(buf) {
				continue
			}
			if buf[offset] != bgR || buf[offset+1] != bgG || buf[offset+2] != bgB {
				count++
			}
		}
	}
	L.Push(lua.LNumber(count))
	return 1
}

func (e *Env) expectEq(L *lua.LState) int {
	got := L.CheckInt(1)
	want := L.CheckInt(2)
	if got != want {
		msg := "expect_eq failed"
		if L.GetTop() >= 3 {
			msg = L.CheckString(3)
		}
		L.RaiseError("%s: got %d, want %d", msg, got, want)
	}
	return 0
}
