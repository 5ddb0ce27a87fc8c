package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spectrum48 "github.com/retrospec-go/spectrum48"
	"github.com/retrospec-go/spectrum48/internal/snapshot"
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Inspect a saved machine snapshot",
	}
	cmd.AddCommand(newSnapshotShowCmd())
	return cmd
}

func newSnapshotShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <path>",
		Short: "Print the registers stored in a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			state, err := snapshot.Decode(data)
			if err != nil {
				return err
			}
			fmt.Printf("PC=%04X SP=%04X AF=%02X%02X BC=%04X DE=%04X HL=%04X IM=%d IFF1=%v IFF2=%v halted=%v\n",
				state.PC, state.SP, state.A, state.F,
				uint16(state.B)<<8|uint16(state.C),
				uint16(state.D)<<8|uint16(state.E),
				uint16(state.H)<<8|uint16(state.L),
				state.IM, state.IFF1, state.IFF2, state.Halted)
			return nil
		},
	}
}

func loadSnapshot(core *spectrum48.Core, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading snapshot: %w", err)
	}
	state, err := snapshot.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding snapshot: %w", err)
	}
	return core.Restore(state)
}
