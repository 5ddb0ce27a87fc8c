// Package debugapi holds the plain data types the core's debug surface
// exchanges with its callers: register listings, breakpoint/watchpoint
// events, and stop reasons. It has no dependency on z80, bus, or ula, so
// any of them can return these types without an import cycle.
package debugapi

// RegisterInfo describes a single named CPU register for display.
type RegisterInfo struct {
	Name  string // "A", "BC", "IX", "PC", ...
	Width int    // 8 or 16
	Value uint16
}

// DisassembledLine is one decoded instruction, as produced by Disassemble.
type DisassembledLine struct {
	Address      uint16
	HexBytes     string
	Mnemonic     string
	Size         int
	IsBranch     bool
	BranchTarget uint16
}

// BreakpointEvent is returned in a StopReason when execution halted
// because an address breakpoint was hit.
type BreakpointEvent struct {
	Address uint16
}

// WatchpointEvent is returned in a StopReason when execution halted
// because a watched memory address was written.
type WatchpointEvent struct {
	Address  uint16
	OldValue byte
	NewValue byte
}

// Watchpoint is a write watchpoint set on a single memory address.
type Watchpoint struct {
	Address uint16
}

// StopKind enumerates why Core.RunFrame or Core.RunFor returned before
// its nominal end condition.
type StopKind int

const (
	// StopFrameComplete means a full 69,888 T-state frame elapsed with
	// no breakpoint or watchpoint hit.
	StopFrameComplete StopKind = iota
	// StopTStateLimit means RunFor's requested T-state budget elapsed.
	StopTStateLimit
	// StopBreakpoint means PC matched an armed address breakpoint
	// before the next instruction was fetched.
	StopBreakpoint
	// StopWatchpoint means a memory write matched an armed watchpoint.
	StopWatchpoint
)

func (k StopKind) String() string {
	switch k {
	case StopFrameComplete:
		return "frame_complete"
	case StopTStateLimit:
		return "tstate_limit"
	case StopBreakpoint:
		return "breakpoint"
	case StopWatchpoint:
		return "watchpoint"
	default:
		return "unknown"
	}
}

// StopReason reports why a run loop returned, plus the relevant event
// detail for breakpoint/watchpoint stops.
type StopReason struct {
	Kind          StopKind
	TStatesElapsed int
	Breakpoint    *BreakpointEvent
	Watchpoint    *WatchpointEvent
}
