// Unconditional control flow: jumps, calls, returns, the accumulator
// exchange family, the rotate-accumulator quartet, RST vectors, and the
// shared conditional-branch helpers the conditional opcodes call into.

package z80

func (c *CPU) opJPNN() {
	c.PC = c.fetchWord()
	c.tick(10)
}

func (c *CPU) opJR() {
	disp := int8(c.fetchByte())
	c.PC = uint16(int32(c.PC) + int32(disp))
	c.tick(12)
}

func (c *CPU) opDJNZ() {
	disp := int8(c.fetchByte())
	c.B--
	if c.B != 0 {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(13)
	} else {
		c.tick(8)
	}
}

func (c *CPU) opCALLNN() {
	addr := c.fetchWord()
	c.pushWord(c.PC)
	c.PC = addr
	c.tick(17)
}

func (c *CPU) opRET() {
	c.PC = c.popWord()
	c.tick(10)
}

func (c *CPU) opEXSPHL() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	hl := c.HL()
	c.write(c.SP, byte(hl))
	c.write(c.SP+1, byte(hl>>8))
	c.SetHL(memVal)
	c.WZ = memVal
	c.tick(19)
}

func (c *CPU) opEXAF() {
	c.ExAF()
	c.tick(4)
}

func (c *CPU) opEXDEHL() {
	c.D, c.H = c.H, c.D
	c.E, c.L = c.L, c.E
	c.tick(4)
}

func (c *CPU) opEXX() {
	c.Exx()
	c.tick(4)
}

func (c *CPU) opJPHL() {
	c.PC = c.HL()
	c.WZ = c.PC
	c.tick(4)
}

func (c *CPU) opLDNNHL() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *CPU) opLDHLNN() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetHL(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(16)
}

func (c *CPU) opLDNNA() {
	addr := c.fetchWord()
	c.write(addr, c.A)
	c.WZ = addr
	c.tick(13)
}

func (c *CPU) opLDANN() {
	addr := c.fetchWord()
	c.A = c.read(addr)
	c.WZ = addr
	c.tick(13)
}

func (c *CPU) opLDBCA() {
	c.write(c.BC(), c.A)
	c.tick(7)
}

func (c *CPU) opLDABC() {
	c.A = c.read(c.BC())
	c.tick(7)
}

func (c *CPU) opLDDEA() {
	c.write(c.DE(), c.A)
	c.tick(7)
}

func (c *CPU) opLDABD() {
	c.A = c.read(c.DE())
	c.tick(7)
}

func (c *CPU) opLDSPHL() {
	c.SP = c.HL()
	c.tick(6)
}

func (c *CPU) opRLCA() {
	carry := c.A&0x80 != 0
	c.A = c.A<<1 | c.A>>7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRRCA() {
	carry := c.A&0x01 != 0
	c.A = c.A>>1 | c.A<<7
	c.updateRotateFlags(carry)
	c.tick(4)
}

func (c *CPU) opRLA() {
	carryIn := c.Flag(z80FlagC)
	carryOut := c.A&0x80 != 0
	c.A = c.A << 1
	if carryIn {
		c.A |= 0x01
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opRRA() {
	carryIn := c.Flag(z80FlagC)
	carryOut := c.A&0x01 != 0
	c.A = c.A >> 1
	if carryIn {
		c.A |= 0x80
	}
	c.updateRotateFlags(carryOut)
	c.tick(4)
}

func (c *CPU) opRST00() {
	c.opRST(0x00)
}

func (c *CPU) opRST08() {
	c.opRST(0x08)
}

func (c *CPU) opRST10() {
	c.opRST(0x10)
}

func (c *CPU) opRST18() {
	c.opRST(0x18)
}

func (c *CPU) opRST20() {
	c.opRST(0x20)
}

func (c *CPU) opRST28() {
	c.opRST(0x28)
}

func (c *CPU) opRST30() {
	c.opRST(0x30)
}

func (c *CPU) opRST38() {
	c.opRST(0x38)
}

func (c *CPU) opRST(vector uint16) {
	c.pushWord(c.PC)
	c.PC = vector
	c.tick(11)
}

func (c *CPU) opJPNZ() {
	c.jpCond(!c.Flag(z80FlagZ))
}

func (c *CPU) opJPZ() {
	c.jpCond(c.Flag(z80FlagZ))
}

func (c *CPU) opJPNC() {
	c.jpCond(!c.Flag(z80FlagC))
}

func (c *CPU) opJPC() {
	c.jpCond(c.Flag(z80FlagC))
}

func (c *CPU) opJPPO() {
	c.jpCond(!c.Flag(z80FlagPV))
}

func (c *CPU) opJPPE() {
	c.jpCond(c.Flag(z80FlagPV))
}

func (c *CPU) opJPNS() {
	c.jpCond(!c.Flag(z80FlagS))
}

func (c *CPU) opJPS() {
	c.jpCond(c.Flag(z80FlagS))
}

func (c *CPU) opJRNZ() {
	c.jrCond(!c.Flag(z80FlagZ))
}

func (c *CPU) opJRZ() {
	c.jrCond(c.Flag(z80FlagZ))
}

func (c *CPU) opJRNC() {
	c.jrCond(!c.Flag(z80FlagC))
}

func (c *CPU) opJRC() {
	c.jrCond(c.Flag(z80FlagC))
}

func (c *CPU) opCALLNZ() {
	c.callCond(!c.Flag(z80FlagZ))
}

func (c *CPU) opCALLZ() {
	c.callCond(c.Flag(z80FlagZ))
}

func (c *CPU) opCALLNC() {
	c.callCond(!c.Flag(z80FlagC))
}

func (c *CPU) opCALLC() {
	c.callCond(c.Flag(z80FlagC))
}

func (c *CPU) opCALLPO() {
	c.callCond(!c.Flag(z80FlagPV))
}

func (c *CPU) opCALLPE() {
	c.callCond(c.Flag(z80FlagPV))
}

func (c *CPU) opCALLNS() {
	c.callCond(!c.Flag(z80FlagS))
}

func (c *CPU) opCALLS() {
	c.callCond(c.Flag(z80FlagS))
}

func (c *CPU) opRETNZ() {
	c.retCond(!c.Flag(z80FlagZ))
}

func (c *CPU) opRETZ() {
	c.retCond(c.Flag(z80FlagZ))
}

func (c *CPU) opRETNC() {
	c.retCond(!c.Flag(z80FlagC))
}

func (c *CPU) opRETC() {
	c.retCond(c.Flag(z80FlagC))
}

func (c *CPU) opRETPO() {
	c.retCond(!c.Flag(z80FlagPV))
}

func (c *CPU) opRETPE() {
	c.retCond(c.Flag(z80FlagPV))
}

func (c *CPU) opRETNS() {
	c.retCond(!c.Flag(z80FlagS))
}

func (c *CPU) opRETS() {
	c.retCond(c.Flag(z80FlagS))
}

func (c *CPU) jpCond(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.PC = addr
	}
	c.tick(10)
}

func (c *CPU) jrCond(cond bool) {
	disp := int8(c.fetchByte())
	if cond {
		c.PC = uint16(int32(c.PC) + int32(disp))
		c.tick(12)
	} else {
		c.tick(7)
	}
}

func (c *CPU) callCond(cond bool) {
	addr := c.fetchWord()
	if cond {
		c.pushWord(c.PC)
		c.PC = addr
		c.tick(17)
	} else {
		c.tick(10)
	}
}

func (c *CPU) retCond(cond bool) {
	if cond {
		c.PC = c.popWord()
		c.tick(11)
	} else {
		c.tick(5)
	}
}

func (c *CPU) fetchWord() uint16 {
	low := c.fetchByte()
	high := c.fetchByte()
	return uint16(high)<<8 | uint16(low)
}

func (c *CPU) pushWord(value uint16) {
	c.SP--
	c.write(c.SP, byte(value>>8))
	c.SP--
	c.write(c.SP, byte(value))
}

func (c *CPU) popWord() uint16 {
	low := c.read(c.SP)
	c.SP++
	high := c.read(c.SP)
	c.SP++
	return uint16(high)<<8 | uint16(low)
}

