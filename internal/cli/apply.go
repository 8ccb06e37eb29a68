package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/rubiks"
)

var (
	applyFrom  string
	applyState bool
)

var applyCmd = &cobra.Command{
	Use:   "apply MOVES...",
	Short: "Apply moves to a cube",
	Long: `Apply a sequence of quarter turns and display the result.

Moves are L U F D R B, with ' for counter-clockwise.

Examples:
  rubiks apply "R U R' U'"
  rubiks apply F R U --from <state>
  rubiks apply R --state`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyFrom, "from", "", "Start from this facelet state")
	applyCmd.Flags().BoolVar(&applyState, "state", false, "Print only the resulting facelet state")
}

func runApply(cmd *cobra.Command, args []string) error {
	moves, err := rubiks.ParseMoves(strings.Join(args, " "))
	if err != nil {
		return err
	}

	c, err := startingCube(applyFrom)
	if err != nil {
		return err
	}
	if err := c.Apply(moves...); err != nil {
		return err
	}
	zap.S().Debugw("applied moves", "moves", rubiks.FormatMoves(moves))

	out := cmd.OutOrStdout()
	if applyState {
		fmt.Fprintln(out, c.State())
		return nil
	}

	fmt.Fprintf(out, "Moves: %s\n\n", rubiks.FormatMoves(moves))
	fmt.Fprint(out, newRenderer().Net(c))
	fmt.Fprintln(out)
	printProgress(cmd, c)
	return nil
}
