// Package snapshot encodes and decodes the persisted state of a Core: every
// architectural CPU register, the ULA's border and flash latches, and the
// full 48 KiB RAM image. The wire format follows the same shape as the
// reference engine's own debug-snapshot framing: a magic, a version, a
// sequence of fixed-width fields, and a length-prefixed gzip-compressed
// memory block.
package snapshot

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"io"
)

const (
	magic   = "ZX48"
	version = 1
)

// State is the full persisted machine state, in this field order:
// AF/BC/DE/HL and their shadows, IX, IY, SP, PC, I, R, IM, IFF1, IFF2,
// halted, EI-delay, RAM, border latch, flash counter, and the flash
// ink/paper swap phase. Encode writes RAM last, after the flash fields. FlashState must travel alongside
// FlashCounter: restoring the counter without the phase bit can resume a
// session with FLASH-attributed cells showing the wrong colours until the
// two coincidentally resync.
type State struct {
	A, F   byte
	B, C   byte
	D, E   byte
	H, L   byte
	A2, F2 byte
	B2, C2 byte
	D2, E2 byte
	H2, L2 byte

	IX, IY uint16
	SP, PC uint16

	I, R byte
	IM   byte

	IFF1, IFF2 bool
	Halted     bool
	EIDelay    int

	RAM []byte // exactly 49,152 bytes

	Border       byte
	FlashCounter int
	FlashState   bool
}

// Encode serialises s into the wire format described above.
func Encode(s *State) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(magic)
	writeU32(&buf, version)

	regs := []byte{
		s.A, s.F, s.B, s.C, s.D, s.E, s.H, s.L,
		s.A2, s.F2, s.B2, s.C2, s.D2, s.E2, s.H2, s.L2,
		s.I, s.R, s.IM,
	}
	buf.Write(regs)
	writeU16(&buf, s.IX)
	writeU16(&buf, s.IY)
	writeU16(&buf, s.SP)
	writeU16(&buf, s.PC)
	writeBool(&buf, s.IFF1)
	writeBool(&buf, s.IFF2)
	writeBool(&buf, s.Halted)
	writeU32(&buf, uint32(s.EIDelay))

	buf.WriteByte(s.Border)
	writeU32(&buf, uint32(s.FlashCounter))
	writeBool(&buf, s.FlashState)

	writeU32(&buf, uint32(len(s.RAM)))
	var compressed bytes.Buffer
	gz := gzip.NewWriter(&compressed)
	if _, err := gz.Write(s.RAM); err != nil {
		return nil, fmt.Errorf("compressing RAM: %w", err)
	}
	if err := gz.Close(); err != nil {
		return nil, fmt.Errorf("closing gzip: %w", err)
	}
	buf.Write(compressed.Bytes())

	return buf.Bytes(), nil
}

// Decode parses the wire format produced by Encode.
func Decode(data []byte) (*State, error) {
	r := bytes.NewReader(data)

	gotMagic := make([]byte, len(magic))
	if _, err := io.ReadFull(r, gotMagic); err != nil {
		return nil, fmt.Errorf("reading magic: %w", err)
	}
	if string(gotMagic) != magic {
		return nil, fmt.Errorf("invalid snapshot magic: %q", string(gotMagic))
	}

	ver, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("reading version: %w", err)
	}
	if ver != version {
		return nil, fmt.Errorf("unsupported snapshot version: %d", ver)
	}

	regs := make([]byte, 19)
	if _, err := io.ReadFull(r, regs); err != nil {
		return nil, fmt.Errorf("reading registers: %w", err)
	}

	s := &State{
		A: regs[0], F: regs[1], B: regs[2], C: regs[3],
		D: regs[4], E: regs[5], H: regs[6], L: regs[7],
		A2: regs[8], F2: regs[9], B2: regs[10], C2: regs[11],
		D2: regs[12], E2: regs[13], H2: regs[14], L2: regs[15],
		I: regs[16], R: regs[17], IM: regs[18],
	}

	if s.IX, err = readU16(r); err != nil {
		return nil, fmt.Errorf("reading IX: %w", err)
	}
	if s.IY, err = readU16(r); err != nil {
		return nil, fmt.Errorf("reading IY: %w", err)
	}
	if s.SP, err = readU16(r); err != nil {
		return nil, fmt.Errorf("reading SP: %w", err)
	}
	if s.PC, err = readU16(r); err != nil {
		return nil, fmt.Errorf("reading PC: %w", err)
	}

	flags := make([]byte, 3)
	if _, err := io.ReadFull(r, flags); err != nil {
		return nil, fmt.Errorf("reading flags: %w", err)
	}
	s.IFF1, s.IFF2, s.Halted = flags[0] != 0, flags[1] != 0, flags[2] != 0

	eiDelay, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("reading EI-delay: %w", err)
	}
	s.EIDelay = int(eiDelay)

	border, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading border: %w", err)
	}
	s.Border = border

	flashCounter, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("reading flash counter: %w", err)
	}
	s.FlashCounter = int(flashCounter)

	flashState, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("reading flash state: %w", err)
	}
	s.FlashState = flashState != 0

	ramLen, err := readU32(r)
	if err != nil {
		return nil, fmt.Errorf("reading RAM length: %w", err)
	}

	remaining := data[len(data)-r.Len():]
	gz, err := gzip.NewReader(bytes.NewReader(remaining))
	if err != nil {
		return nil, fmt.Errorf("opening gzip reader: %w", err)
	}
	defer gz.Close()

	s.RAM = make([]byte, ramLen)
	if _, err := io.ReadFull(gz, s.RAM); err != nil {
		return nil, fmt.Errorf("decompressing RAM: %w", err)
	}

	return s, nil
}

func writeU32(buf *bytes.Buffer, v uint32) {
	binary.Write(buf, binary.LittleEndian, v)
}

func writeU16(buf *bytes.Buffer, v uint16) {
	binary.Write(buf, binary.LittleEndian, v)
}

func writeBool(buf *bytes.Buffer, v bool) {
	if v {
		buf.WriteByte(1)
	} else {
		buf.WriteByte(0)
	}
}

func readU32(r io.Reader) (uint32, error) {
	var v uint32
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}

func readU16(r io.Reader) (uint16, error) {
	var v uint16
	err := binary.Read(r, binary.LittleEndian, &v)
	return v, err
}
