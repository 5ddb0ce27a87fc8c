// ED-prefixed block transfer, compare, and IO opcodes (LDI/LDIR family,
// CPI/CPIR family, INI/INIR family, OUTI/OTIR family) and their
// decrementing counterparts.

package z80

func (c *CPU) opLDI() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() + 1)
	c.SetDE(c.DE() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opLDIR() {
	c.opLDI()
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opLDD() {
	value := c.read(c.HL())
	c.write(c.DE(), value)
	c.SetHL(c.HL() - 1)
	c.SetDE(c.DE() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.updateLDIFlags(value, bc)
	c.tick(16)
}

func (c *CPU) opLDDR() {
	c.opLDD()
	if c.BC() != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opCPI() {
	value := c.read(c.HL())
	c.SetHL(c.HL() + 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.subA(value, 0, false)
	if bc != 0 {
		c.F |= z80FlagPV
	} else {
		c.F &^= z80FlagPV
	}
	c.tick(16)
}

func (c *CPU) opCPIR() {
	c.opCPI()
	if c.BC() != 0 && !c.Flag(z80FlagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opCPD() {
	value := c.read(c.HL())
	c.SetHL(c.HL() - 1)
	bc := c.BC() - 1
	c.SetBC(bc)
	c.subA(value, 0, false)
	if bc != 0 {
		c.F |= z80FlagPV
	} else {
		c.F &^= z80FlagPV
	}
	c.tick(16)
}

func (c *CPU) opCPDR() {
	c.opCPD()
	if c.BC() != 0 && !c.Flag(z80FlagZ) {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opINI() {
	port := c.BC()
	value := c.in(port)
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opINIR() {
	c.opINI()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opIND() {
	port := c.BC()
	value := c.in(port)
	c.write(c.HL(), value)
	c.B--
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opINDR() {
	c.opIND()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opOUTI() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.SetHL(c.HL() + 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opOTIR() {
	c.opOUTI()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

func (c *CPU) opOUTD() {
	value := c.read(c.HL())
	c.B--
	c.out(c.BC(), value)
	c.SetHL(c.HL() - 1)
	c.updateBlockIOFlags()
	c.tick(16)
}

func (c *CPU) opOTDR() {
	c.opOUTD()
	if c.B != 0 {
		c.PC -= 2
		c.tick(5)
	}
}

