package cli

import (
	"fmt"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/rubiks"
	"github.com/SeamusWaldron/rubiks/internal/tui"
)

var (
	playSeed   uint64
	playCount  int
	playRecord bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play with a cube interactively",
	Long: `Open an interactive cube.

Keys:
  l u f d r b   turn a side clockwise
  L U F D R B   turn a side counter-clockwise
  z             undo
  s             shuffle
  x             reset
  q             quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().Uint64Var(&playSeed, "seed", 0, "Seed for the shuffle key (default: random)")
	playCmd.Flags().IntVarP(&playCount, "count", "n", 0, "Moves per shuffle (default from settings, 25)")
	playCmd.Flags().BoolVar(&playRecord, "record", false, "Save every shuffle to the scramble log")
}

func runPlay(cmd *cobra.Command, args []string) error {
	opts := tui.Options{
		Seed:          playSeed,
		ShuffleLength: playCount,
		Color:         newRenderer().Color(),
	}
	if !cmd.Flags().Changed("seed") {
		opts.Seed = rand.Uint64()
	}
	if !cmd.Flags().Changed("count") {
		opts.ShuffleLength = shuffleLength()
	}
	if playRecord {
		opts.Record = func(seed uint64, moves []rubiks.Move) error {
			_, err := recordScramble(seed, moves)
			return err
		}
	}

	model := tui.New(opts)
	model.Tracker().OnMove(func(ev rubiks.MoveEvent) {
		zap.S().Debugw("move", "move", ev.Move.Notation())
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}

	return nil
}
