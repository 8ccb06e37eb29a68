package rubiks

import "fmt"

// Shuffle applies n random moves and returns them in the order applied.
// Each move picks one of the six sides uniformly, then a direction
// uniformly. Without WithSource or WithSeed a time-seeded generator is used.
func (c *Cube) Shuffle(n int, opts ...ShuffleOption) ([]Move, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}

	cfg := defaultShuffleConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	src := cfg.sourceOrDefault()

	moves := make([]Move, 0, n)
	for i := 0; i < n; i++ {
		side := src.IntN(len(indexOrder))
		counter := src.IntN(2)
		if side < 0 || side >= len(indexOrder) || counter < 0 || counter > 1 {
			return moves, fmt.Errorf("%w: source returned side=%d direction=%d", ErrInvalidMove, side, counter)
		}
		idx := side + counter*len(indexOrder)

		c.applyWiring(wirings[idx])
		moves = append(moves, Moves[idx])
	}

	return moves, nil
}
