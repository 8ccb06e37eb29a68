package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks"
)

var showFrom string

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display a cube",
	Long: `Display a cube as a net. Without --from the cube is solved.

--from takes the 54 facelet letters (G Y O W B R) in L U F D R B side
order, row by row. Whitespace is ignored.

Examples:
  rubiks show
  rubiks show --from "$(rubiks apply R U --state)"`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showFrom, "from", "", "Start from this facelet state")
}

func runShow(cmd *cobra.Command, args []string) error {
	c, err := startingCube(showFrom)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, newRenderer().Net(c))
	fmt.Fprintln(out)
	printProgress(cmd, c)
	return nil
}

func startingCube(state string) (*rubiks.Cube, error) {
	if state == "" {
		return rubiks.NewCube(), nil
	}
	c, err := rubiks.ParseState(state)
	if err != nil {
		return nil, fmt.Errorf("invalid --from: %w", err)
	}
	return c, nil
}

func printProgress(cmd *cobra.Command, c *rubiks.Cube) {
	out := cmd.OutOrStdout()
	p := c.Progress()
	if p.Solved() {
		fmt.Fprintln(out, "Complete: yes")
		return
	}
	fmt.Fprintf(out, "Complete: no (%d/6 faces, %d/54 facelets)\n", p.CompleteFaces, p.MatchingFacelets)
}
