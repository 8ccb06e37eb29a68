package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks"
)

var movesCmd = &cobra.Command{
	Use:   "moves",
	Short: "List the twelve moves and their edge wiring",
	Args:  cobra.NoArgs,
	RunE:  runMoves,
}

func init() {
	rootCmd.AddCommand(movesCmd)
}

func runMoves(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for i, m := range rubiks.Moves {
		w, _ := rubiks.WiringFor(m)
		fmt.Fprintf(out, "%2d  %-2s  %s %s\n", i, m.Notation(), m.Side.Name(), m.Turn)
		for _, t := range w.Transfers {
			fmt.Fprintf(out, "        %s\n", t)
		}
	}
	return nil
}
