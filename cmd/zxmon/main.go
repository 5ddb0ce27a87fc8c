// Command zxmon is a debug shell for the spectrum48 core: it loads a ROM,
// runs frames (with raw keyboard input and audio unless --headless is
// given), and exposes breakpoints, disassembly, snapshot loading, and
// printing of the registers stored in a snapshot from the command line.
// It is a thin host around the core package; all machine semantics live
// there, not here.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "zxmon",
		Short: "Debug shell for the ZX Spectrum 48K core",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newDisasmCmd())
	root.AddCommand(newSnapshotCmd())
	return root
}
