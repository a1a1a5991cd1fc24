package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// showCmd prints a layout preset
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the selected layout preset",
	Long: `Renders the selected layout preset row by row, one bracketed block per
layer, and reports its key counts. Useful for checking what geometry the
optimizer will permute before starting a long run.`,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	lay, g, err := buildGeometry()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, lay.String())
	fmt.Fprintf(out, "layout %s: %d keys, %d typeable, %d layers\n",
		cfg.Layout, g.NumKeys(), lay.NumTypeable(), len(lay.Modes()))

	return nil
}
