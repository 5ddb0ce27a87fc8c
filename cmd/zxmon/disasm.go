package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spectrum48 "github.com/retrospec-go/spectrum48"
)

func newDisasmCmd() *cobra.Command {
	var romPath string
	var addr string
	var count int

	cmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble instructions from a ROM image",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(romPath)
			if err != nil {
				return fmt.Errorf("reading ROM: %w", err)
			}
			core, err := spectrum48.NewCore(rom)
			if err != nil {
				return err
			}
			startAddr, err := parseAddress(addr)
			if err != nil {
				return err
			}
			for _, line := range core.Disassemble(startAddr, count) {
				marker := " "
				if line.IsBranch {
					marker = ">"
				}
				fmt.Printf("%04X  %-11s %s %s\n", line.Address, line.HexBytes, marker, line.Mnemonic)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&romPath, "rom", "", "path to a 16KB ROM image (required)")
	cmd.Flags().StringVar(&addr, "addr", "0", "starting address, e.g. $0000")
	cmd.Flags().IntVar(&count, "count", 20, "number of instructions to decode")
	cmd.MarkFlagRequired("rom")

	return cmd
}
