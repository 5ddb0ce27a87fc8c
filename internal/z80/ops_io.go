// Port IO opcodes: the accumulator-only OUT (n),A / IN A,(n) pair and the
// BC-addressed ED-prefixed IN r,(C) / OUT (C),r family.

package z80

func (c *CPU) opOUTNA() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.out(port, c.A)
	c.tick(11)
}

func (c *CPU) opINAN() {
	port := uint16(c.A)<<8 | uint16(c.fetchByte())
	c.A = c.in(port)
	c.updateInFlags(c.A)
	c.tick(11)
}

func (c *CPU) inRegC(dest *byte) {
	value := c.in(c.BC())
	*dest = value
	c.updateInFlags(value)
	c.tick(12)
}

func (c *CPU) outRegC(value byte) {
	c.out(c.BC(), value)
	c.tick(12)
}

func (c *CPU) opINBC() {
	c.inRegC(&c.B)
}

func (c *CPU) opINRC() {
	c.inRegC(&c.C)
}

func (c *CPU) opINDC() {
	c.inRegC(&c.D)
}

func (c *CPU) opINEC() {
	c.inRegC(&c.E)
}

func (c *CPU) opINHC() {
	c.inRegC(&c.H)
}

func (c *CPU) opINLC() {
	c.inRegC(&c.L)
}

func (c *CPU) opINAC() {
	c.inRegC(&c.A)
}

func (c *CPU) opINCM() {
	value := c.in(c.BC())
	c.updateInFlags(value)
	c.tick(12)
}

func (c *CPU) opOUTBC() {
	c.outRegC(c.B)
}

func (c *CPU) opOUTCC() {
	c.outRegC(c.C)
}

func (c *CPU) opOUTDC() {
	c.outRegC(c.D)
}

func (c *CPU) opOUTEC() {
	c.outRegC(c.E)
}

func (c *CPU) opOUTHC() {
	c.outRegC(c.H)
}

func (c *CPU) opOUTLC() {
	c.outRegC(c.L)
}

func (c *CPU) opOUTAC() {
	c.outRegC(c.A)
}

func (c *CPU) opOUTC0() {
	c.outRegC(0x00)
}

