// Opcode dispatch tables: the four 256-entry jump tables (base, CB, DD/FD
// prefix, ED prefix) that route a fetched opcode byte to its handler
// method, plus the prefix-byte handlers that select which table a
// following opcode is decoded against.

package z80

func (c *CPU) initBaseOps() {
	for i := range c.baseOps {
		c.baseOps[i] = (*CPU).opUnimplemented
	}

	c.baseOps[0x00] = (*CPU).opNOP
	c.baseOps[0x76] = (*CPU).opHALT

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opLDRegReg(dest, src)
		}
	}

	ldRegImmOpcodes := map[byte]byte{
		0x06: 0,
		0x0E: 1,
		0x16: 2,
		0x1E: 3,
		0x26: 4,
		0x2E: 5,
		0x36: 6,
		0x3E: 7,
	}
	for opcode, reg := range ldRegImmOpcodes {
		op := opcode
		dest := reg
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opLDRegImm(dest)
		}
	}

	for opcode := 0x80; opcode <= 0x87; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluAdd, src)
		}
	}
	for opcode := 0x88; opcode <= 0x8F; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluAdc, src)
		}
	}
	for opcode := 0x90; opcode <= 0x97; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluSub, src)
		}
	}
	for opcode := 0x98; opcode <= 0x9F; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluSbc, src)
		}
	}
	for opcode := 0xA0; opcode <= 0xA7; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluAnd, src)
		}
	}
	for opcode := 0xA8; opcode <= 0xAF; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluXor, src)
		}
	}
	for opcode := 0xB0; opcode <= 0xB7; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluOr, src)
		}
	}
	for opcode := 0xB8; opcode <= 0xBF; opcode++ {
		op := opcode
		src := byte(op & 0x07)
		c.baseOps[op] = func(cpu *CPU) {
			cpu.opALUReg(aluCp, src)
		}
	}

	c.baseOps[0xC6] = (*CPU).opADDImm
	c.baseOps[0xCE] = (*CPU).opADCImm
	c.baseOps[0xD6] = (*CPU).opSUBImm
	c.baseOps[0xDE] = (*CPU).opSBCImm
	c.baseOps[0xE6] = (*CPU).opANDImm
	c.baseOps[0xEE] = (*CPU).opXORImm
	c.baseOps[0xF6] = (*CPU).opORImm
	c.baseOps[0xFE] = (*CPU).opCPImm

	c.baseOps[0x27] = (*CPU).opDAA
	c.baseOps[0x2F] = (*CPU).opCPL
	c.baseOps[0x37] = (*CPU).opSCF
	c.baseOps[0x3F] = (*CPU).opCCF

	c.baseOps[0x01] = (*CPU).opLDBCNN
	c.baseOps[0x11] = (*CPU).opLDDENN
	c.baseOps[0x21] = (*CPU).opLDHLImm
	c.baseOps[0x31] = (*CPU).opLDSPNN
	c.baseOps[0x09] = (*CPU).opADDHLBC
	c.baseOps[0x19] = (*CPU).opADDHLDE
	c.baseOps[0x29] = (*CPU).opADDHLHL
	c.baseOps[0x39] = (*CPU).opADDHLSP
	c.baseOps[0x03] = (*CPU).opINCBC
	c.baseOps[0x13] = (*CPU).opINCDE
	c.baseOps[0x23] = (*CPU).opINCHL
	c.baseOps[0x33] = (*CPU).opINCSP
	c.baseOps[0x0B] = (*CPU).opDECBC
	c.baseOps[0x1B] = (*CPU).opDECDE
	c.baseOps[0x2B] = (*CPU).opDECHL
	c.baseOps[0x3B] = (*CPU).opDECSP
	c.baseOps[0xC5] = (*CPU).opPUSHBC
	c.baseOps[0xD5] = (*CPU).opPUSHDE
	c.baseOps[0xE5] = (*CPU).opPUSHLH
	c.baseOps[0xF5] = (*CPU).opPUSHAF
	c.baseOps[0xC1] = (*CPU).opPOPBC
	c.baseOps[0xD1] = (*CPU).opPOPDE
	c.baseOps[0xE1] = (*CPU).opPOPHL
	c.baseOps[0xF1] = (*CPU).opPOPAF
	c.baseOps[0xC3] = (*CPU).opJPNN
	c.baseOps[0x18] = (*CPU).opJR
	c.baseOps[0x10] = (*CPU).opDJNZ
	c.baseOps[0xCD] = (*CPU).opCALLNN
	c.baseOps[0xC9] = (*CPU).opRET
	c.baseOps[0xE3] = (*CPU).opEXSPHL
	c.baseOps[0x08] = (*CPU).opEXAF
	c.baseOps[0xEB] = (*CPU).opEXDEHL
	c.baseOps[0xD9] = (*CPU).opEXX
	c.baseOps[0xE9] = (*CPU).opJPHL
	c.baseOps[0x22] = (*CPU).opLDNNHL
	c.baseOps[0x2A] = (*CPU).opLDHLNN
	c.baseOps[0x32] = (*CPU).opLDNNA
	c.baseOps[0x3A] = (*CPU).opLDANN
	c.baseOps[0x02] = (*CPU).opLDBCA
	c.baseOps[0x0A] = (*CPU).opLDABC
	c.baseOps[0x12] = (*CPU).opLDDEA
	c.baseOps[0x1A] = (*CPU).opLDABD
	c.baseOps[0xF9] = (*CPU).opLDSPHL
	c.baseOps[0xD3] = (*CPU).opOUTNA
	c.baseOps[0xDB] = (*CPU).opINAN
	c.baseOps[0x07] = (*CPU).opRLCA
	c.baseOps[0x0F] = (*CPU).opRRCA
	c.baseOps[0x17] = (*CPU).opRLA
	c.baseOps[0x1F] = (*CPU).opRRA
	c.baseOps[0xC7] = (*CPU).opRST00
	c.baseOps[0xCF] = (*CPU).opRST08
	c.baseOps[0xD7] = (*CPU).opRST10
	c.baseOps[0xDF] = (*CPU).opRST18
	c.baseOps[0xE7] = (*CPU).opRST20
	c.baseOps[0xEF] = (*CPU).opRST28
	c.baseOps[0xF7] = (*CPU).opRST30
	c.baseOps[0xFF] = (*CPU).opRST38
	c.baseOps[0x04] = (*CPU).opINCB
	c.baseOps[0x0C] = (*CPU).opINCC
	c.baseOps[0x14] = (*CPU).opINCD
	c.baseOps[0x1C] = (*CPU).opINCE
	c.baseOps[0x24] = (*CPU).opINCH
	c.baseOps[0x2C] = (*CPU).opINCL
	c.baseOps[0x34] = (*CPU).opINCHLMem
	c.baseOps[0x3C] = (*CPU).opINCA
	c.baseOps[0x05] = (*CPU).opDECB
	c.baseOps[0x0D] = (*CPU).opDECC
	c.baseOps[0x15] = (*CPU).opDECD
	c.baseOps[0x1D] = (*CPU).opDECE
	c.baseOps[0x25] = (*CPU).opDECH
	c.baseOps[0x2D] = (*CPU).opDECL
	c.baseOps[0x35] = (*CPU).opDECHLMem
	c.baseOps[0x3D] = (*CPU).opDECA
	c.baseOps[0xC2] = (*CPU).opJPNZ
	c.baseOps[0xCA] = (*CPU).opJPZ
	c.baseOps[0xD2] = (*CPU).opJPNC
	c.baseOps[0xDA] = (*CPU).opJPC
	c.baseOps[0xE2] = (*CPU).opJPPO
	c.baseOps[0xEA] = (*CPU).opJPPE
	c.baseOps[0xF2] = (*CPU).opJPNS
	c.baseOps[0xFA] = (*CPU).opJPS
	c.baseOps[0x20] = (*CPU).opJRNZ
	c.baseOps[0x28] = (*CPU).opJRZ
	c.baseOps[0x30] = (*CPU).opJRNC
	c.baseOps[0x38] = (*CPU).opJRC
	c.baseOps[0xC4] = (*CPU).opCALLNZ
	c.baseOps[0xCC] = (*CPU).opCALLZ
	c.baseOps[0xD4] = (*CPU).opCALLNC
	c.baseOps[0xDC] = (*CPU).opCALLC
	c.baseOps[0xE4] = (*CPU).opCALLPO
	c.baseOps[0xEC] = (*CPU).opCALLPE
	c.baseOps[0xF4] = (*CPU).opCALLNS
	c.baseOps[0xFC] = (*CPU).opCALLS
	c.baseOps[0xC0] = (*CPU).opRETNZ
	c.baseOps[0xC8] = (*CPU).opRETZ
	c.baseOps[0xD0] = (*CPU).opRETNC
	c.baseOps[0xD8] = (*CPU).opRETC
	c.baseOps[0xE0] = (*CPU).opRETPO
	c.baseOps[0xE8] = (*CPU).opRETPE
	c.baseOps[0xF0] = (*CPU).opRETNS
	c.baseOps[0xF8] = (*CPU).opRETS
	c.baseOps[0xCB] = (*CPU).opCBPrefix
	c.baseOps[0xDD] = (*CPU).opDDPrefix
	c.baseOps[0xFD] = (*CPU).opFDPrefix
	c.baseOps[0xED] = (*CPU).opEDPrefix
	c.baseOps[0xF3] = (*CPU).opDI
	c.baseOps[0xFB] = (*CPU).opEI
}

func (c *CPU) opCBPrefix() {
	opcode := c.fetchOpcode()
	c.cbOps[opcode](c)
}

func (c *CPU) opDDPrefix() {
	opcode := c.fetchOpcode()
	prev := c.prefixMode
	c.prefixMode = z80PrefixDD
	c.prefixOpcode = opcode
	c.ddOps[opcode](c)
	c.prefixMode = prev
}

func (c *CPU) opFDPrefix() {
	opcode := c.fetchOpcode()
	prev := c.prefixMode
	c.prefixMode = z80PrefixFD
	c.prefixOpcode = opcode
	c.fdOps[opcode](c)
	c.prefixMode = prev
}

func (c *CPU) opEDPrefix() {
	opcode := c.fetchOpcode()
	c.edOps[opcode](c)
}

func (c *CPU) initCBOps() {
	for i := range c.cbOps {
		c.cbOps[i] = (*CPU).opUnimplemented
	}

	for opcode := 0x00; opcode <= 0x3F; opcode++ {
		op := byte(opcode)
		group := op >> 3
		reg := op & 0x07
		c.cbOps[op] = func(cpu *CPU) {
			cpu.opCBRotateShift(group, reg)
		}
	}

	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		op := byte(opcode)
		bit := (op >> 3) & 0x07
		reg := op & 0x07
		c.cbOps[op] = func(cpu *CPU) {
			cpu.opCBBIT(bit, reg)
		}
	}

	for opcode := 0x80; opcode <= 0xBF; opcode++ {
		op := byte(opcode)
		bit := (op >> 3) & 0x07
		reg := op & 0x07
		c.cbOps[op] = func(cpu *CPU) {
			cpu.opCBRES(bit, reg)
		}
	}

	for opcode := 0xC0; opcode <= 0xFF; opcode++ {
		op := byte(opcode)
		bit := (op >> 3) & 0x07
		reg := op & 0x07
		c.cbOps[op] = func(cpu *CPU) {
			cpu.opCBSET(bit, reg)
		}
	}
}

func (c *CPU) initDDOps() {
	for i := range c.ddOps {
		c.ddOps[i] = (*CPU).opDDUnimplemented
	}
	c.ddOps[0x21] = (*CPU).opLDIXNN
	c.ddOps[0x22] = (*CPU).opLDNNIX
	c.ddOps[0x2A] = (*CPU).opLDIXNNMem
	c.ddOps[0xE5] = (*CPU).opPUSHIX
	c.ddOps[0xE1] = (*CPU).opPOPIX
	c.ddOps[0xF9] = (*CPU).opLDSPX
	c.ddOps[0x36] = (*CPU).opLDIXdN
	c.ddOps[0x34] = (*CPU).opINCIXd
	c.ddOps[0x35] = (*CPU).opDECIXd
	c.ddOps[0xE9] = (*CPU).opJPIX
	c.ddOps[0xCB] = (*CPU).opDDCBPrefix
	c.ddOps[0xE3] = (*CPU).opEXSPIX
	c.ddOps[0x09] = (*CPU).opADDIXBC
	c.ddOps[0x19] = (*CPU).opADDIXDE
	c.ddOps[0x29] = (*CPU).opADDIXIX
	c.ddOps[0x39] = (*CPU).opADDIXSP
	c.ddOps[0x23] = (*CPU).opINCIX
	c.ddOps[0x2B] = (*CPU).opDECIX

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.opLDRegIXd(dest)
		}
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		src := byte(op & 0x07)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.opLDIXdReg(src)
		}
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		op := opcode
		alu := aluOp((op >> 3) & 0x07)
		c.ddOps[op] = func(cpu *CPU) {
			cpu.opALUIXd(alu)
		}
	}
}

func (c *CPU) initFDOps() {
	for i := range c.fdOps {
		c.fdOps[i] = (*CPU).opFDUnimplemented
	}
	c.fdOps[0x21] = (*CPU).opLDIYNN
	c.fdOps[0x22] = (*CPU).opLDNNIY
	c.fdOps[0x2A] = (*CPU).opLDIYNNMem
	c.fdOps[0xE5] = (*CPU).opPUSHIY
	c.fdOps[0xE1] = (*CPU).opPOPIY
	c.fdOps[0xF9] = (*CPU).opLDSPY
	c.fdOps[0x36] = (*CPU).opLDIYdN
	c.fdOps[0x34] = (*CPU).opINCIYd
	c.fdOps[0x35] = (*CPU).opDECIYd
	c.fdOps[0xE9] = (*CPU).opJPIY
	c.fdOps[0xCB] = (*CPU).opFDCBPrefix
	c.fdOps[0xE3] = (*CPU).opEXSPIY
	c.fdOps[0x09] = (*CPU).opADDIYBC
	c.fdOps[0x19] = (*CPU).opADDIYDE
	c.fdOps[0x29] = (*CPU).opADDIYIY
	c.fdOps[0x39] = (*CPU).opADDIYSP
	c.fdOps[0x23] = (*CPU).opINCIY
	c.fdOps[0x2B] = (*CPU).opDECIY

	for opcode := byte(0x46); opcode <= 0x7E; opcode += 0x08 {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		dest := byte((op >> 3) & 0x07)
		c.fdOps[op] = func(cpu *CPU) {
			cpu.opLDRegIYd(dest)
		}
	}
	for opcode := byte(0x70); opcode <= 0x77; opcode++ {
		if opcode == 0x76 {
			continue
		}
		op := opcode
		src := byte(op & 0x07)
		c.fdOps[op] = func(cpu *CPU) {
			cpu.opLDIYdReg(src)
		}
	}
	for opcode := byte(0x86); opcode <= 0xBE; opcode += 0x08 {
		op := opcode
		alu := aluOp((op >> 3) & 0x07)
		c.fdOps[op] = func(cpu *CPU) {
			cpu.opALUIYd(alu)
		}
	}
}

func (c *CPU) initEDOps() {
	for i := range c.edOps {
		c.edOps[i] = (*CPU).opEDUnimplemented
	}

	c.edOps[0x40] = (*CPU).opINBC
	c.edOps[0x48] = (*CPU).opINRC
	c.edOps[0x50] = (*CPU).opINDC
	c.edOps[0x58] = (*CPU).opINEC
	c.edOps[0x60] = (*CPU).opINHC
	c.edOps[0x68] = (*CPU).opINLC
	c.edOps[0x70] = (*CPU).opINCM
	c.edOps[0x78] = (*CPU).opINAC

	c.edOps[0x41] = (*CPU).opOUTBC
	c.edOps[0x49] = (*CPU).opOUTCC
	c.edOps[0x51] = (*CPU).opOUTDC
	c.edOps[0x59] = (*CPU).opOUTEC
	c.edOps[0x61] = (*CPU).opOUTHC
	c.edOps[0x69] = (*CPU).opOUTLC
	c.edOps[0x71] = (*CPU).opOUTC0
	c.edOps[0x79] = (*CPU).opOUTAC

	c.edOps[0x44] = (*CPU).opNEG
	c.edOps[0x4C] = (*CPU).opNEG
	c.edOps[0x54] = (*CPU).opNEG
	c.edOps[0x5C] = (*CPU).opNEG
	c.edOps[0x64] = (*CPU).opNEG
	c.edOps[0x6C] = (*CPU).opNEG
	c.edOps[0x74] = (*CPU).opNEG
	c.edOps[0x7C] = (*CPU).opNEG

	c.edOps[0x47] = (*CPU).opLDIA
	c.edOps[0x4F] = (*CPU).opLDRA
	c.edOps[0x57] = (*CPU).opLDAI
	c.edOps[0x5F] = (*CPU).opLDAR

	c.edOps[0x46] = (*CPU).opIM0
	c.edOps[0x56] = (*CPU).opIM1
	c.edOps[0x5E] = (*CPU).opIM2
	c.edOps[0x66] = (*CPU).opIM0
	c.edOps[0x6E] = (*CPU).opIM0
	c.edOps[0x76] = (*CPU).opIM1
	c.edOps[0x7E] = (*CPU).opIM2

	c.edOps[0x45] = (*CPU).opRETN
	c.edOps[0x4D] = (*CPU).opRETI
	c.edOps[0x55] = (*CPU).opRETN
	c.edOps[0x5D] = (*CPU).opRETN
	c.edOps[0x65] = (*CPU).opRETN
	c.edOps[0x6D] = (*CPU).opRETN
	c.edOps[0x75] = (*CPU).opRETN
	c.edOps[0x7D] = (*CPU).opRETN

	c.edOps[0x67] = (*CPU).opRRD
	c.edOps[0x6F] = (*CPU).opRLD

	c.edOps[0xA0] = (*CPU).opLDI
	c.edOps[0xB0] = (*CPU).opLDIR
	c.edOps[0xA8] = (*CPU).opLDD
	c.edOps[0xB8] = (*CPU).opLDDR
	c.edOps[0xA1] = (*CPU).opCPI
	c.edOps[0xB1] = (*CPU).opCPIR
	c.edOps[0xA9] = (*CPU).opCPD
	c.edOps[0xB9] = (*CPU).opCPDR
	c.edOps[0xA2] = (*CPU).opINI
	c.edOps[0xB2] = (*CPU).opINIR
	c.edOps[0xAA] = (*CPU).opIND
	c.edOps[0xBA] = (*CPU).opINDR
	c.edOps[0xA3] = (*CPU).opOUTI
	c.edOps[0xB3] = (*CPU).opOTIR
	c.edOps[0xAB] = (*CPU).opOUTD
	c.edOps[0xBB] = (*CPU).opOTDR

	c.edOps[0x43] = (*CPU).opLDNNBC
	c.edOps[0x4B] = (*CPU).opLDBCNNED
	c.edOps[0x53] = (*CPU).opLDNNDE
	c.edOps[0x5B] = (*CPU).opLDDENNED
	c.edOps[0x63] = (*CPU).opLDNNHLed
	c.edOps[0x6B] = (*CPU).opLDHLNNed
	c.edOps[0x73] = (*CPU).opLDNNSP
	c.edOps[0x7B] = (*CPU).opLDSPNNED

	c.edOps[0x4A] = (*CPU).opADCHLBC
	c.edOps[0x5A] = (*CPU).opADCHLDE
	c.edOps[0x6A] = (*CPU).opADCHLHL
	c.edOps[0x7A] = (*CPU).opADCHLSP
	c.edOps[0x42] = (*CPU).opSBCHLBC
	c.edOps[0x52] = (*CPU).opSBCHLDE
	c.edOps[0x62] = (*CPU).opSBCHLHL
	c.edOps[0x72] = (*CPU).opSBCHLSP
}

func (c *CPU) opEDUnimplemented() {
	c.tick(8)
}

func (c *CPU) opDDUnimplemented() {
	c.tick(4)
	c.baseOps[c.prefixOpcode](c)
}

func (c *CPU) opFDUnimplemented() {
	c.tick(4)
	c.baseOps[c.prefixOpcode](c)
}

