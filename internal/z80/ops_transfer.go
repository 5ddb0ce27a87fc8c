// 16-bit data movement: register-pair immediate loads, stack push/pop,
// and the IX/IY-indexed and ED-prefixed counterparts of the same
// operations.

package z80

func (c *CPU) opLDBCNN() {
	c.SetBC(c.fetchWord())
	c.tick(10)
}

func (c *CPU) opLDDENN() {
	c.SetDE(c.fetchWord())
	c.tick(10)
}

func (c *CPU) opLDHLImm() {
	c.SetHL(c.fetchWord())
	c.tick(10)
}

func (c *CPU) opLDSPNN() {
	c.SP = c.fetchWord()
	c.tick(10)
}

func (c *CPU) opADDHLBC() {
	c.addHL(c.BC())
	c.tick(11)
}

func (c *CPU) opADDHLDE() {
	c.addHL(c.DE())
	c.tick(11)
}

func (c *CPU) opADDHLHL() {
	c.addHL(c.HL())
	c.tick(11)
}

func (c *CPU) opADDHLSP() {
	c.addHL(c.SP)
	c.tick(11)
}

func (c *CPU) opINCBC() {
	c.SetBC(c.BC() + 1)
	c.tick(6)
}

func (c *CPU) opINCDE() {
	c.SetDE(c.DE() + 1)
	c.tick(6)
}

func (c *CPU) opINCHL() {
	c.SetHL(c.HL() + 1)
	c.tick(6)
}

func (c *CPU) opINCSP() {
	c.SP++
	c.tick(6)
}

func (c *CPU) opDECBC() {
	c.SetBC(c.BC() - 1)
	c.tick(6)
}

func (c *CPU) opDECDE() {
	c.SetDE(c.DE() - 1)
	c.tick(6)
}

func (c *CPU) opDECHL() {
	c.SetHL(c.HL() - 1)
	c.tick(6)
}

func (c *CPU) opDECSP() {
	c.SP--
	c.tick(6)
}

func (c *CPU) opPUSHBC() {
	c.pushWord(c.BC())
	c.tick(11)
}

func (c *CPU) opPUSHDE() {
	c.pushWord(c.DE())
	c.tick(11)
}

func (c *CPU) opPUSHLH() {
	c.pushWord(c.HL())
	c.tick(11)
}

func (c *CPU) opPUSHAF() {
	c.pushWord(c.AF())
	c.tick(11)
}

func (c *CPU) opPOPBC() {
	c.SetBC(c.popWord())
	c.tick(10)
}

func (c *CPU) opPOPDE() {
	c.SetDE(c.popWord())
	c.tick(10)
}

func (c *CPU) opPOPHL() {
	c.SetHL(c.popWord())
	c.tick(10)
}

func (c *CPU) opPOPAF() {
	c.SetAF(c.popWord())
	c.tick(10)
}

func (c *CPU) opLDIXNN() {
	c.IX = c.fetchWord()
	c.tick(14)
}

func (c *CPU) opLDNNIX() {
	addr := c.fetchWord()
	c.write(addr, byte(c.IX))
	c.write(addr+1, byte(c.IX>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDIXNNMem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.IX = uint16(high)<<8 | uint16(low)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opPUSHIX() {
	c.pushWord(c.IX)
	c.tick(15)
}

func (c *CPU) opPOPIX() {
	c.IX = c.popWord()
	c.tick(14)
}

func (c *CPU) opLDSPX() {
	c.SP = c.IX
	c.tick(10)
}

func (c *CPU) opLDIXdN() {
	disp := int8(c.fetchByte())
	value := c.fetchByte()
	addr := uint16(int32(c.IX) + int32(disp))
	c.write(addr, value)
	c.tick(19)
}

func (c *CPU) opINCIXd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	value := c.read(addr)
	value = c.inc8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *CPU) opDECIXd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	value := c.read(addr)
	value = c.dec8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *CPU) opJPIX() {
	c.PC = c.IX
	c.WZ = c.PC
	c.tick(8)
}

func (c *CPU) opEXSPIX() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	c.write(c.SP, byte(c.IX))
	c.write(c.SP+1, byte(c.IX>>8))
	c.IX = memVal
	c.WZ = memVal
	c.tick(23)
}

func (c *CPU) opADDIXBC() {
	c.addIX(c.BC())
	c.tick(15)
}

func (c *CPU) opADDIXDE() {
	c.addIX(c.DE())
	c.tick(15)
}

func (c *CPU) opADDIXIX() {
	c.addIX(c.IX)
	c.tick(15)
}

func (c *CPU) opADDIXSP() {
	c.addIX(c.SP)
	c.tick(15)
}

func (c *CPU) opINCIX() {
	c.IX++
	c.tick(10)
}

func (c *CPU) opDECIX() {
	c.IX--
	c.tick(10)
}

func (c *CPU) opLDIYNN() {
	c.IY = c.fetchWord()
	c.tick(14)
}

func (c *CPU) opLDNNIY() {
	addr := c.fetchWord()
	c.write(addr, byte(c.IY))
	c.write(addr+1, byte(c.IY>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDIYNNMem() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.IY = uint16(high)<<8 | uint16(low)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opPUSHIY() {
	c.pushWord(c.IY)
	c.tick(15)
}

func (c *CPU) opPOPIY() {
	c.IY = c.popWord()
	c.tick(14)
}

func (c *CPU) opLDSPY() {
	c.SP = c.IY
	c.tick(10)
}

func (c *CPU) opLDIYdN() {
	disp := int8(c.fetchByte())
	value := c.fetchByte()
	addr := uint16(int32(c.IY) + int32(disp))
	c.write(addr, value)
	c.tick(19)
}

func (c *CPU) opINCIYd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	value := c.read(addr)
	value = c.inc8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *CPU) opDECIYd() {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	value := c.read(addr)
	value = c.dec8(value)
	c.write(addr, value)
	c.tick(23)
}

func (c *CPU) opJPIY() {
	c.PC = c.IY
	c.WZ = c.PC
	c.tick(8)
}

func (c *CPU) opEXSPIY() {
	low := c.read(c.SP)
	high := c.read(c.SP + 1)
	memVal := uint16(high)<<8 | uint16(low)
	c.write(c.SP, byte(c.IY))
	c.write(c.SP+1, byte(c.IY>>8))
	c.IY = memVal
	c.WZ = memVal
	c.tick(23)
}

func (c *CPU) opADDIYBC() {
	c.addIY(c.BC())
	c.tick(15)
}

func (c *CPU) opADDIYDE() {
	c.addIY(c.DE())
	c.tick(15)
}

func (c *CPU) opADDIYIY() {
	c.addIY(c.IY)
	c.tick(15)
}

func (c *CPU) opADDIYSP() {
	c.addIY(c.SP)
	c.tick(15)
}

func (c *CPU) opINCIY() {
	c.IY++
	c.tick(10)
}

func (c *CPU) opDECIY() {
	c.IY--
	c.tick(10)
}

func (c *CPU) opLDRegIXd(dest byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.writeReg8Plain(dest, c.read(addr))
	c.tick(19)
}

func (c *CPU) opLDIXdReg(src byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.write(addr, c.readReg8Plain(src))
	c.tick(19)
}

func (c *CPU) opALUIXd(op aluOp) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IX) + int32(disp))
	c.performALU(op, c.read(addr))
	c.tick(19)
}

func (c *CPU) opLDRegIYd(dest byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	c.writeReg8Plain(dest, c.read(addr))
	c.tick(19)
}

func (c *CPU) opLDIYdReg(src byte) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	c.write(addr, c.readReg8Plain(src))
	c.tick(19)
}

func (c *CPU) opALUIYd(op aluOp) {
	disp := int8(c.fetchByte())
	addr := uint16(int32(c.IY) + int32(disp))
	c.performALU(op, c.read(addr))
	c.tick(19)
}

func (c *CPU) opLDNNBC() {
	addr := c.fetchWord()
	value := c.BC()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDBCNNED() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetBC(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDNNDE() {
	addr := c.fetchWord()
	value := c.DE()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDDENNED() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetDE(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDNNHLed() {
	addr := c.fetchWord()
	value := c.HL()
	c.write(addr, byte(value))
	c.write(addr+1, byte(value>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDHLNNed() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SetHL(uint16(high)<<8 | uint16(low))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDNNSP() {
	addr := c.fetchWord()
	c.write(addr, byte(c.SP))
	c.write(addr+1, byte(c.SP>>8))
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opLDSPNNED() {
	addr := c.fetchWord()
	low := c.read(addr)
	high := c.read(addr + 1)
	c.SP = uint16(high)<<8 | uint16(low)
	c.WZ = addr + 1
	c.tick(20)
}

func (c *CPU) opADCHLBC() {
	c.adcHL(c.BC())
	c.tick(15)
}

func (c *CPU) opADCHLDE() {
	c.adcHL(c.DE())
	c.tick(15)
}

func (c *CPU) opADCHLHL() {
	c.adcHL(c.HL())
	c.tick(15)
}

func (c *CPU) opADCHLSP() {
	c.adcHL(c.SP)
	c.tick(15)
}

func (c *CPU) opSBCHLBC() {
	c.sbcHL(c.BC())
	c.tick(15)
}

func (c *CPU) opSBCHLDE() {
	c.sbcHL(c.DE())
	c.tick(15)
}

func (c *CPU) opSBCHLHL() {
	c.sbcHL(c.HL())
	c.tick(15)
}

func (c *CPU) opSBCHLSP() {
	c.sbcHL(c.SP)
	c.tick(15)
}

