package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/rubiks/internal/storage"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded scrambles",
	Long:  `Display the most recent scrambles saved with 'rubiks shuffle --record' or from the play screen.`,
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

var historyShowCmd = &cobra.Command{
	Use:   "show <scramble-id>",
	Short: "Show a recorded scramble",
	Long:  `Replay a recorded scramble on a solved cube and display the result.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 10, "Number of scrambles to show")

	historyCmd.AddCommand(historyShowCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewScrambleRepository(db)
	scrambles, err := repo.List(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(scrambles) == 0 {
		fmt.Fprintln(out, "No scrambles recorded yet")
		fmt.Fprintln(out, "Record one with: rubiks shuffle --record")
		return nil
	}

	total, err := repo.Count()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Recent scrambles (showing %d of %d):\n", len(scrambles), total)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-36s  %-19s  %-20s  %s\n", "ID", "Created", "Seed", "Moves")
	fmt.Fprintln(out, "------------------------------------  -------------------  --------------------  -----")

	for _, s := range scrambles {
		fmt.Fprintf(out, "%-36s  %-19s  %-20d  %d\n",
			s.ScrambleID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Seed,
			s.MoveCount,
		)
	}

	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	s, err := storage.NewScrambleRepository(db).Get(args[0])
	if err != nil {
		return err
	}
	if s == nil {
		return fmt.Errorf("scramble not found: %s", args[0])
	}

	c, err := s.Replay()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n", s.ScrambleID)
	fmt.Fprintf(out, "Created:  %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Seed:     %d\n", s.Seed)
	fmt.Fprintf(out, "Moves (%d): %s\n\n", s.MoveCount, s.Moves)
	fmt.Fprint(out, newRenderer().Net(c))
	return nil
}
