// Miscellaneous ED-prefixed opcodes: I/R transfer, interrupt mode
// selection, NMI/IRQ return, and the 4-bit BCD rotates.

package z80

func (c *CPU) opLDIA() {
	c.I = c.A
	c.tick(9)
}

func (c *CPU) opLDRA() {
	c.R = c.A
	c.tick(9)
}

func (c *CPU) opLDAI() {
	c.A = c.I
	c.updateLDAIRFlags()
	c.tick(9)
}

func (c *CPU) opLDAR() {
	c.A = c.R
	c.updateLDAIRFlags()
	c.tick(9)
}

func (c *CPU) opIM0() {
	c.IM = 0
	c.tick(8)
}

func (c *CPU) opIM1() {
	c.IM = 1
	c.tick(8)
}

func (c *CPU) opIM2() {
	c.IM = 2
	c.tick(8)
}

func (c *CPU) opRETN() {
	c.PC = c.popWord()
	c.IFF1 = c.IFF2
	c.tick(14)
}

func (c *CPU) opRETI() {
	c.PC = c.popWord()
	c.IFF1 = c.IFF2
	c.tick(14)
}

func (c *CPU) opRRD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value>>4)|(c.A<<4))
	c.A = (c.A & 0xF0) | (value & 0x0F)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

func (c *CPU) opRLD() {
	addr := c.HL()
	value := c.read(addr)
	c.write(addr, (value<<4)|(c.A&0x0F))
	c.A = (c.A & 0xF0) | (value >> 4)
	c.updateAParityFlagsPreserveCarry()
	c.tick(18)
}

