package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	spectrum48 "github.com/retrospec-go/spectrum48"
)

func newRunCmd() *cobra.Command {
	var romPath string
	var loadSnapshotPath string
	var breakpoints []string
	var headless bool
	var frames int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the machine for a number of frames, optionally under keyboard/audio control",
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(romPath)
			if err != nil {
				return fmt.Errorf("reading ROM: %w", err)
			}
			core, err := spectrum48.NewCore(rom)
			if err != nil {
				return err
			}

			if loadSnapshotPath != "" {
				if err := loadSnapshot(core, loadSnapshotPath); err != nil {
					return err
				}
			}

			for _, bp := range breakpoints {
				addr, err := parseAddress(bp)
				if err != nil {
					return fmt.Errorf("invalid breakpoint %q: %w", bp, err)
				}
				core.SetBreakpoint(addr)
			}

			var speaker speakerSink
			if !headless {
				speaker, err = newSpeakerSink()
				if err != nil {
					fmt.Fprintf(os.Stderr, "zxmon: audio disabled: %v\n", err)
					speaker = nil
				}
			}

			var term *rawTerminal
			if !headless {
				term = startRawTerminal(core)
				defer term.Stop()
			}

			for i := 0; frames <= 0 || i < frames; i++ {
				reason := core.RunFrame()
				if speaker != nil {
					speaker.Play(core.SpeakerSamples())
				}
				if reason.Kind != 0 { // anything other than StopFrameComplete
					fmt.Fprintf(os.Stderr, "zxmon: stopped: %+v\n", reason)
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&romPath, "rom", "", "path to a 16KB ROM image (required)")
	cmd.Flags().StringVar(&loadSnapshotPath, "load-snapshot", "", "path to a snapshot file to restore before running")
	cmd.Flags().StringArrayVar(&breakpoints, "breakpoint", nil, "address to break at (repeatable), e.g. $8000")
	cmd.Flags().BoolVar(&headless, "headless", false, "disable raw keyboard input and audio output")
	cmd.Flags().IntVar(&frames, "frames", 0, "number of frames to run (0 = run until a breakpoint is hit; without --headless the raw-mode terminal does not stop on Ctrl-C)")
	cmd.MarkFlagRequired("rom")

	return cmd
}
