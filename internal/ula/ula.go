// Package ula implements the ZX Spectrum 48K's ULA: the single chip that
// multiplexes the CPU's access to contended RAM, generates the 50 Hz frame
// interrupt, decodes port 0xFE, and renders the 256x192 attribute-based
// display into a 320x256 bordered frame buffer.
//
// A ULA is driven entirely by T-states: the bus calls Tick with each
// instruction's T-state cost and with any contention delay, and Render
// runs whenever the core's pixel buffer is requested. It holds no
// goroutines, channels, or locks; it is a plain state machine advanced by
// its caller, exactly like the CPU it serves.
package ula

// RAMReader is the shared 48K RAM the display file and attribute area
// live in. The ULA never owns memory itself: it reads the same bytes the
// CPU writes, offset from 0x4000.
type RAMReader interface {
	PeekRAM(offset uint16) byte
}

// Display geometry, in pixels.
const (
	DisplayWidth  = 256
	DisplayHeight = 192
	CellWidth     = 8
	CellHeight    = 8
	CellsX        = 32
	CellsY        = 24

	BorderLeft   = 32
	BorderRight  = 32
	BorderTop    = 32
	BorderBottom = 32

	FrameWidth  = DisplayWidth + BorderLeft + BorderRight
	FrameHeight = DisplayHeight + BorderTop + BorderBottom
)

const (
	bitmapSize  = 6144
	attrOffset  = 0x1800

	// flashFrames is the number of elapsed frames between FLASH toggles:
	// ink and paper swap on FLASH-attributed cells every 16 frames (0.32s
	// at 50Hz), not 32.
	flashFrames = 16

	// FrameTStates is the number of T-states in one 50 Hz video frame.
	FrameTStates = 69888

	// InterruptTStates is how long the ULA holds /INT low at the start
	// of each frame; the CPU must sample it within this window to take
	// the interrupt on this frame rather than the next instruction.
	InterruptTStates = 32
)

// Normal and bright RGB palettes, index 0-7 per the standard INK/PAPER
// encoding (black cannot be brightened on real hardware, but the table
// entry is kept for uniform indexing).
var colorNormal = [8][3]uint8{
	{0, 0, 0}, {0, 0, 205}, {205, 0, 0}, {205, 0, 205},
	{0, 205, 0}, {0, 205, 205}, {205, 205, 0}, {205, 205, 205},
}

var colorBright = [8][3]uint8{
	{0, 0, 0}, {0, 0, 255}, {255, 0, 0}, {255, 0, 255},
	{0, 255, 0}, {0, 255, 255}, {255, 255, 0}, {255, 255, 255},
}

// contendedPattern is the repeating 8-T-state delay pattern applied to
// every contended memory or IO access issued while the ULA is drawing the
// contended half of a scanline. It is indexed by (tstate-within-line) mod
// 8, and matches the documented 6,5,4,3,2,1,0,0 shape.
var contendedPattern = [8]int{6, 5, 4, 3, 2, 1, 0, 0}

// KeyRow is the keyboard's 8-row half-row reader, consulted by ReadPort
// when the CPU issues IN 0xFE.
type KeyRow interface {
	ReadHalfRows(selector byte) byte
}

// ULA is the ZX Spectrum video/IO chip. The zero value is not usable;
// construct with New.
type ULA struct {
	ram RAMReader
	kbd KeyRow

	tstate int // T-states elapsed within the current frame, 0..FrameTStates-1

	border       byte // bits 0-2 of the last OUT to port 0xFE
	speakerMIC   bool
	speakerEAR   bool
	earInputBit  bool // current cassette/EAR input latch sampled by IN 0xFE

	flashState   bool
	flashCounter int

	frame      []byte // FrameWidth*FrameHeight*4 RGBA, written by Render
	colorU32   [16]uint32
	irqPending bool // true for the first InterruptTStates T-states of a frame
}

// New builds a ULA that reads the display file from ram and the keyboard
// matrix from kbd.
func New(ram RAMReader, kbd KeyRow) *ULA {
	u := &ULA{
		ram:   ram,
		kbd:   kbd,
		frame: make([]byte, FrameWidth*FrameHeight*4),
	}
	for i := 0; i < 8; i++ {
		c := colorNormal[i]
		u.colorU32[i] = uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16 | 0xFF000000
		c = colorBright[i]
		u.colorU32[8+i] = uint32(c[0]) | uint32(c[1])<<8 | uint32(c[2])<<16 | 0xFF000000
	}
	u.irqPending = true
	u.earInputBit = true // no tape connected: EAR input reads high
	return u
}

// Reset restores border, speaker, and flash state to power-on values. It
// does not reset the frame T-state cursor: that belongs to whichever
// frame is already in progress.
func (u *ULA) Reset() {
	u.border = 0
	u.speakerMIC = false
	u.speakerEAR = false
	u.flashState = false
	u.flashCounter = 0
}

// Tick advances the frame-local T-state cursor by cycles, wrapping at
// FrameTStates and re-arming the interrupt window for the new frame. The
// bus calls this with the T-states of every CPU charge and every
// contention delay, so cycles is usually more than one.
func (u *ULA) Tick(cycles int) {
	u.tstate += cycles
	for u.tstate >= FrameTStates {
		u.tstate -= FrameTStates
		u.irqPending = true
		u.flashCounter++
		if u.flashCounter >= flashFrames {
			u.flashCounter = 0
			u.flashState = !u.flashState
		}
	}
}

// InterruptLine reports whether the ULA is currently asserting /INT. The
// core samples this once per CPU instruction boundary and clears it once
// the window has elapsed, matching a real ULA's 32 T-state pulse.
func (u *ULA) InterruptLine() bool {
	if u.irqPending && u.tstate >= InterruptTStates {
		u.irqPending = false
	}
	return u.tstate < InterruptTStates
}

// FrameTState returns the current position within the 69,888 T-state
// frame, for callers (Core.RunFrame) that need to detect frame boundaries
// without duplicating the wraparound logic.
func (u *ULA) FrameTState() int {
	return u.tstate
}

// MemoryContention returns the extra T-states charged for accessing addr
// at the chip's current frame position. Only the contended RAM bank
// (0x4000-0x7FFF) is ever delayed; ROM and uncontended RAM cost nothing
// extra.
func (u *ULA) MemoryContention(addr uint16) int {
	if addr < 0x4000 || addr >= 0x8000 {
		return 0
	}
	return u.contentionDelay()
}

// IOContention returns the extra T-states charged for an IO access at the
// chip's current frame position. Every port with bit 0 low gets the same
// delay a contended memory access would get at this position; ports with
// bit 0 high get none. The upper byte of the port is not consulted, and
// the separate IO contention sub-patterns of real hardware are not
// modelled.
func (u *ULA) IOContention(port uint16) int {
	if port&1 == 0 {
		return u.contentionDelay()
	}
	return 0
}

func (u *ULA) contentionDelay() int {
	// Contention only applies during the 128 T-states per scanline spent
	// drawing the visible 256 pixels (drawing starts partway into each
	// line; before/after that the ULA is fetching border or retracing
	// and imposes no delay).
	const tstatesPerLine = 224
	const firstContendedLine = 64 // lines 0-63 are top border/retrace
	const lastContendedLine = firstContendedLine + DisplayHeight
	const contendedWindow = 128

	line := u.tstate / tstatesPerLine
	if line < firstContendedLine || line >= lastContendedLine {
		return 0
	}
	col := u.tstate % tstatesPerLine
	if col >= contendedWindow {
		return 0
	}
	return contendedPattern[col%8]
}

// ReadPort implements bus.IOPort: IN 0xFE returns the keyboard half-row
// bits (D0-D4, active low) ORed with the EAR input bit (D6, high while no
// tape drives it) and fixed high D5 and D7. The high byte of the port address selects which half-rows are
// active; the Bus passes the full 16-bit port value through untouched.
func (u *ULA) ReadPort(port uint16) byte {
	selector := byte(port >> 8)
	value := u.kbd.ReadHalfRows(selector) & 0x1F
	if u.earInputBit {
		value |= 0x40
	}
	return value | 0xA0 // bits 5 and 7 always read high
}

// WritePort implements bus.IOPort: OUT 0xFE sets the border color (bits
// 0-2) and the MIC/EAR speaker latch (bits 3-4), driving the beeper.
func (u *ULA) WritePort(port uint16, value byte) {
	u.border = value & 0x07
	u.speakerMIC = value&0x08 != 0
	u.speakerEAR = value&0x10 != 0
}

// Border returns the current border color index (0-7).
func (u *ULA) Border() byte {
	return u.border
}

// Speaker reports the instantaneous beeper output level: true when either
// the MIC or EAR output bit is set, which is what drives the one-bit
// speaker on real hardware.
func (u *ULA) Speaker() bool {
	return u.speakerMIC || u.speakerEAR
}

// SetEarInput sets the EAR input bit sampled by ReadPort, for a future
// tape-input collaborator; the core itself never drives this.
func (u *ULA) SetEarInput(bit bool) {
	u.earInputBit = bit
}

// FlashCounter returns the number of frames elapsed since the last FLASH
// toggle (0..15), part of the persisted state.
func (u *ULA) FlashCounter() int {
	return u.flashCounter
}

// FlashState returns whether FLASH-attributed cells currently have their
// ink/paper swapped.
func (u *ULA) FlashState() bool {
	return u.flashState
}

// SetFlashCounter restores the frames-since-toggle counter from a snapshot.
func (u *ULA) SetFlashCounter(n int) {
	u.flashCounter = n
}

// SetFlashState restores the flash swap phase from a snapshot.
func (u *ULA) SetFlashState(on bool) {
	u.flashState = on
}

// bitmapAddress computes the "twisted" ZX Spectrum pixel-row byte offset:
// the familiar non-linear interleaving that lets the ULA read consecutive
// scanlines of a character row without walking the whole bitmap.
func bitmapAddress(y, xByte int) uint16 {
	highY := (y & 0xC0) << 5
	lowY := (y & 0x07) << 8
	midY := (y & 0x38) << 2
	return uint16(highY + lowY + midY + xByte)
}

func attributeAddress(cellY, cellX int) uint16 {
	return uint16(attrOffset + cellY*CellsX + cellX)
}

// Render draws the full bordered frame (including the 256x192 display
// area) into its internal buffer from the current contents of RAM, and
// returns it. The returned slice is owned by the ULA and is overwritten
// by the next Render call; callers that need to retain a frame must copy
// it.
func (u *ULA) Render() []byte {
	borderU32 := u.colorU32[u.border&0x07]
	for i := 0; i < len(u.frame); i += 4 {
		writeRGBA(u.frame, i, borderU32)
	}

	for screenY := 0; screenY < DisplayHeight; screenY++ {
		cellY := screenY >> 3
		frameY := BorderTop + screenY
		frameRowBase := frameY * FrameWidth * 4

		for cellX := 0; cellX < CellsX; cellX++ {
			bitmapByte := u.ram.PeekRAM(bitmapAddress(screenY, cellX))
			attr := u.ram.PeekRAM(attributeAddress(cellY, cellX))

			ink := attr & 0x07
			paper := (attr >> 3) & 0x07
			bright := attr&0x40 != 0
			flash := attr&0x80 != 0

			fg, bg := ink, paper
			if flash && u.flashState {
				fg, bg = bg, fg
			}
			var brightOff byte
			if bright {
				brightOff = 8
			}
			fgU32 := u.colorU32[brightOff+fg]
			bgU32 := u.colorU32[brightOff+bg]

			frameX := BorderLeft + cellX*8
			pixelBase := frameRowBase + frameX*4
			for bit := 7; bit >= 0; bit-- {
				idx := pixelBase + (7-bit)*4
				if (bitmapByte>>uint(bit))&1 != 0 {
					writeRGBA(u.frame, idx, fgU32)
				} else {
					writeRGBA(u.frame, idx, bgU32)
				}
			}
		}
	}

	return u.frame
}

func writeRGBA(buf []byte, offset int, c uint32) {
	buf[offset] = byte(c)
	buf[offset+1] = byte(c >> 8)
	buf[offset+2] = byte(c >> 16)
	buf[offset+3] = byte(c >> 24)
}
