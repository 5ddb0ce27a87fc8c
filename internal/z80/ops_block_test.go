package z80

import "testing"

func TestLDIAndLDIR(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{
		0xED, 0xA0, // LDI
		0xED, 0xB0, // LDIR
	})
	h.cpu.A = 0x10
	h.cpu.SetHL(0x4000)
	h.cpu.SetDE(0x5000)
	h.cpu.SetBC(0x0001)
	h.bus.mem[0x4000] = 0x22
	h.cpu.F = z80FlagC

	h.cpu.Step()
	if h.bus.mem[0x5000] != 0x22 {
		t.Fatalf("mem[0x5000] = %02X, want 22", h.bus.mem[0x5000])
	}
	wantU16(t, "HL", h.cpu.HL(), 0x4001)
	wantU16(t, "DE", h.cpu.DE(), 0x5001)
	wantU16(t, "BC", h.cpu.BC(), 0x0000)
	wantU8(t, "F", h.cpu.F, 0x21)
	if h.cpu.Cycles != 16 {
		t.Fatalf("Cycles = %d, want 16", h.cpu.Cycles)
	}

	h.load(0x0000, []byte{
		0xED, 0xB0, // LDIR
	})
	h.cpu.A = 0x00
	h.cpu.SetHL(0x4100)
	h.cpu.SetDE(0x5100)
	h.cpu.SetBC(0x0002)
	h.bus.mem[0x4100] = 0x11
	h.bus.mem[0x4101] = 0x22

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0001)
	wantU16(t, "HL", h.cpu.HL(), 0x4101)
	wantU16(t, "DE", h.cpu.DE(), 0x5101)
	wantU16(t, "PC", h.cpu.PC, 0x0000)
	if h.cpu.Cycles != 21 {
		t.Fatalf("Cycles = %d, want 21", h.cpu.Cycles)
	}

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0000)
	wantU16(t, "HL", h.cpu.HL(), 0x4102)
	wantU16(t, "DE", h.cpu.DE(), 0x5102)
	wantU16(t, "PC", h.cpu.PC, 0x0002)
	if h.cpu.Cycles != 37 {
		t.Fatalf("Cycles = %d, want 37", h.cpu.Cycles)
	}
	if h.bus.mem[0x5100] != 0x11 || h.bus.mem[0x5101] != 0x22 {
		t.Fatal("mem copy failed")
	}
}

func TestLDDAndLDDR(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{
		0xED, 0xA8, // LDD
		0xED, 0xB8, // LDDR
	})
	h.cpu.A = 0x00
	h.cpu.SetHL(0x4201)
	h.cpu.SetDE(0x5201)
	h.cpu.SetBC(0x0001)
	h.bus.mem[0x4201] = 0x33

	h.cpu.Step()
	if h.bus.mem[0x5201] != 0x33 {
		t.Fatalf("mem[0x5201] = %02X, want 33", h.bus.mem[0x5201])
	}
	wantU16(t, "HL", h.cpu.HL(), 0x4200)
	wantU16(t, "DE", h.cpu.DE(), 0x5200)
	wantU16(t, "BC", h.cpu.BC(), 0x0000)
	if h.cpu.Cycles != 16 {
		t.Fatalf("Cycles = %d, want 16", h.cpu.Cycles)
	}

	h.load(0x0000, []byte{
		0xED, 0xB8, // LDDR
	})
	h.cpu.SetHL(0x4301)
	h.cpu.SetDE(0x5301)
	h.cpu.SetBC(0x0002)
	h.bus.mem[0x4301] = 0x44
	h.bus.mem[0x4300] = 0x55

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0001)
	wantU16(t, "HL", h.cpu.HL(), 0x4300)
	wantU16(t, "DE", h.cpu.DE(), 0x5300)
	wantU16(t, "PC", h.cpu.PC, 0x0000)
	if h.cpu.Cycles != 21 {
		t.Fatalf("Cycles = %d, want 21", h.cpu.Cycles)
	}

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0000)
	wantU16(t, "HL", h.cpu.HL(), 0x42FF)
	wantU16(t, "DE", h.cpu.DE(), 0x52FF)
	wantU16(t, "PC", h.cpu.PC, 0x0002)
	if h.cpu.Cycles != 37 {
		t.Fatalf("Cycles = %d, want 37", h.cpu.Cycles)
	}
	if h.bus.mem[0x5301] != 0x44 || h.bus.mem[0x5300] != 0x55 {
		t.Fatal("mem copy failed")
	}
}

func TestCPIAndCPIR(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{
		0xED, 0xA1, // CPI
		0xED, 0xB1, // CPIR
	})
	h.cpu.A = 0x20
	h.cpu.SetHL(0x4400)
	h.cpu.SetBC(0x0001)
	h.bus.mem[0x4400] = 0x10

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0000)
	wantU16(t, "HL", h.cpu.HL(), 0x4401)
	if h.cpu.Cycles != 16 {
		t.Fatalf("Cycles = %d, want 16", h.cpu.Cycles)
	}

	h.load(0x0000, []byte{
		0xED, 0xB1, // CPIR
	})
	h.cpu.A = 0x20
	h.cpu.SetHL(0x4500)
	h.cpu.SetBC(0x0002)
	h.bus.mem[0x4500] = 0x10
	h.bus.mem[0x4501] = 0x20

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0001)
	wantU16(t, "HL", h.cpu.HL(), 0x4501)
	wantU16(t, "PC", h.cpu.PC, 0x0000)
	if h.cpu.Cycles != 21 {
		t.Fatalf("Cycles = %d, want 21", h.cpu.Cycles)
	}

	h.cpu.Step()
	wantU16(t, "BC", h.cpu.BC(), 0x0000)
	wantU16(t, "HL", h.cpu.HL(), 0x4502)
	wantU16(t, "PC", h.cpu.PC, 0x0002)
	if h.cpu.Cycles != 37 {
		t.Fatalf("Cycles = %d, want 37", h.cpu.Cycles)
	}
	if !h.cpu.Flag(z80FlagZ) {
		t.Fatal("Z should be set after match")
	}
}

func TestINIFlagsAndTiming(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{0xED, 0xA2}) // INI
	h.cpu.SetBC(0x1007)
	h.cpu.SetHL(0x2000)
	h.bus.io[0x1007] = 0x7B
	h.cpu.F = z80FlagC | z80FlagS

	h.cpu.Step()

	if h.bus.mem[0x2000] != 0x7B {
		t.Fatalf("mem[0x2000] = %02X, want 7B", h.bus.mem[0x2000])
	}
	wantU8(t, "B", h.cpu.B, 0x0F)
	wantU16(t, "HL", h.cpu.HL(), 0x2001)
	wantU8(t, "F", h.cpu.F, z80FlagS|z80FlagN|z80FlagC)
	if h.cpu.Cycles != 16 {
		t.Fatalf("Cycles = %d, want 16", h.cpu.Cycles)
	}
}

func TestOUTIUsesDecrementedB(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{0xED, 0xA3}) // OUTI
	h.cpu.SetBC(0x1007)
	h.cpu.SetHL(0x3000)
	h.bus.mem[0x3000] = 0x59
	h.cpu.F = z80FlagC

	h.cpu.Step()

	if h.bus.io[0x0F07] != 0x59 {
		t.Fatalf("port 0x0F07 = %02X, want 59", h.bus.io[0x0F07])
	}
	wantU8(t, "B", h.cpu.B, 0x0F)
	wantU16(t, "HL", h.cpu.HL(), 0x3001)
	wantU8(t, "F", h.cpu.F, z80FlagN|z80FlagC)
	if h.cpu.Cycles != 16 {
		t.Fatalf("Cycles = %d, want 16", h.cpu.Cycles)
	}
}

func TestINIRRepeatTiming(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{0xED, 0xB2}) // INIR
	h.cpu.SetBC(0x0207)
	h.cpu.SetHL(0x4000)
	h.bus.io[0x0207] = 0x11
	h.bus.io[0x0107] = 0x22

	h.cpu.Step()
	wantU16(t, "PC", h.cpu.PC, 0x0000)
	wantU8(t, "B", h.cpu.B, 0x01)
	wantU16(t, "HL", h.cpu.HL(), 0x4001)
	if h.cpu.Cycles != 21 {
		t.Fatalf("Cycles = %d, want 21", h.cpu.Cycles)
	}

	h.cpu.Step()
	wantU16(t, "PC", h.cpu.PC, 0x0002)
	wantU8(t, "B", h.cpu.B, 0x00)
	wantU16(t, "HL", h.cpu.HL(), 0x4002)
	if h.cpu.Cycles != 37 {
		t.Fatalf("Cycles = %d, want 37", h.cpu.Cycles)
	}
	if h.bus.mem[0x4000] != 0x11 || h.bus.mem[0x4001] != 0x22 {
		t.Fatal("memory input failed")
	}
}

func TestOTDRRepeatTiming(t *testing.T) {
	h := newHarness()
	h.load(0x0000, []byte{0xED, 0xBB}) // OTDR
	h.cpu.SetBC(0x0207)
	h.cpu.SetHL(0x5001)
	h.bus.mem[0x5001] = 0x33
	h.bus.mem[0x5000] = 0x44

	h.cpu.Step()
	wantU16(t, "PC", h.cpu.PC, 0x0000)
	wantU8(t, "B", h.cpu.B, 0x01)
	wantU16(t, "HL", h.cpu.HL(), 0x5000)
	if h.cpu.Cycles != 21 {
		t.Fatalf("Cycles = %d, want 21", h.cpu.Cycles)
	}

	h.cpu.Step()
	wantU16(t, "PC", h.cpu.PC, 0x0002)
	wantU8(t, "B", h.cpu.B, 0x00)
	wantU16(t, "HL", h.cpu.HL(), 0x4FFF)
	if h.cpu.Cycles != 37 {
		t.Fatalf("Cycles = %d, want 37", h.cpu.Cycles)
	}
	if h.bus.io[0x0107] != 0x33 || h.bus.io[0x0007] != 0x44 {
		t.Fatal("port output failed")
	}
}
