package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/rubiks"
	"github.com/SeamusWaldron/rubiks/internal/storage"
)

var (
	shuffleCount  int
	shuffleSeed   uint64
	shuffleLast   bool
	shuffleRecord bool
)

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Generate a random shuffle",
	Long: `Apply random moves to a solved cube and display the result.

The seed is printed so the shuffle can be reproduced with --seed.

Examples:
  rubiks shuffle
  rubiks shuffle -n 40 --seed 1234
  rubiks shuffle --last
  rubiks shuffle --record`,
	Args: cobra.NoArgs,
	RunE: runShuffle,
}

func init() {
	rootCmd.AddCommand(shuffleCmd)
	shuffleCmd.Flags().IntVarP(&shuffleCount, "count", "n", 0, "Number of moves (default from settings, 25)")
	shuffleCmd.Flags().Uint64Var(&shuffleSeed, "seed", 0, "Random seed (default: random)")
	shuffleCmd.Flags().BoolVar(&shuffleLast, "last", false, "Repeat the previous shuffle (seed and count)")
	shuffleCmd.Flags().BoolVar(&shuffleRecord, "record", false, "Save the shuffle to the scramble log")
}

func runShuffle(cmd *cobra.Command, args []string) error {
	seed, n, err := pickShuffle(cmd)
	if err != nil {
		return err
	}

	c := rubiks.NewCube()
	moves, err := c.Shuffle(n, rubiks.WithSeed(seed))
	if err != nil {
		return err
	}
	zap.S().Debugw("shuffled", "seed", seed, "count", n)

	if err := settings.SetLastShuffle(seed, n); err != nil {
		zap.S().Warnw("could not save last shuffle", "error", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seed: %d\n", seed)
	fmt.Fprintf(out, "Moves (%d): %s\n\n", len(moves), rubiks.FormatMoves(moves))
	fmt.Fprint(out, newRenderer().Net(c))

	if shuffleRecord {
		id, err := recordScramble(seed, moves)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nRecorded: %s\n", id)
	}

	return nil
}

// pickShuffle resolves the seed and move count from the flags. --last
// repeats both unless they are given explicitly.
func pickShuffle(cmd *cobra.Command) (uint64, int, error) {
	seed := rand.Uint64()
	n := shuffleLength()

	if shuffleLast {
		lastSeed, lastCount, ok := settings.LastShuffle()
		if !ok {
			return 0, 0, fmt.Errorf("no previous shuffle to repeat")
		}
		seed = lastSeed
		if lastCount > 0 {
			n = lastCount
		}
	}
	if cmd.Flags().Changed("seed") {
		seed = shuffleSeed
	}
	if cmd.Flags().Changed("count") {
		n = shuffleCount
	}
	return seed, n, nil
}

func recordScramble(seed uint64, moves []rubiks.Move) (string, error) {
	db, err := openDB()
	if err != nil {
		return "", err
	}
	defer db.Close()

	id, err := storage.NewScrambleRepository(db).Create(seed, moves)
	if err != nil {
		return "", err
	}
	zap.S().Infow("recorded scramble", "id", id, "seed", seed)
	return id, nil
}
