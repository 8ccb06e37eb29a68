package rubiks

import "fmt"

// Color is the colour of a single facelet.
type Color byte

const (
	Green  Color = iota // Left face when solved
	Yellow              // Up face when solved
	Orange              // Front face when solved
	White               // Down face when solved
	Blue                // Right face when solved
	Red                 // Back face when solved
)

// Colors lists the six colours in side order.
var Colors = [6]Color{Green, Yellow, Orange, White, Blue, Red}

func (c Color) String() string {
	switch c {
	case Green:
		return "G"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case White:
		return "W"
	case Blue:
		return "B"
	case Red:
		return "R"
	default:
		return "?"
	}
}

// Name returns the full colour name.
func (c Color) Name() string {
	switch c {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Orange:
		return "orange"
	case White:
		return "white"
	case Blue:
		return "blue"
	case Red:
		return "red"
	default:
		return "unknown"
	}
}

// Valid reports whether c is one of the six cube colours.
func (c Color) Valid() bool {
	return c <= Red
}

// ParseColor parses a single colour letter (G, Y, O, W, B, R).
// Lower case letters are accepted.
func ParseColor(r rune) (Color, error) {
	switch r {
	case 'G', 'g':
		return Green, nil
	case 'Y', 'y':
		return Yellow, nil
	case 'O', 'o':
		return Orange, nil
	case 'W', 'w':
		return White, nil
	case 'B', 'b':
		return Blue, nil
	case 'R', 'r':
		return Red, nil
	default:
		return 0, fmt.Errorf("%w: unknown colour %q", ErrInvalidState, r)
	}
}
