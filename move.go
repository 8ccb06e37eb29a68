package rubiks

import (
	"fmt"
	"strings"
)

// Side identifies one of the six face positions of the cube, in net order.
type Side int

const (
	Left  Side = 0 // Green when solved
	Up    Side = 1 // Yellow when solved
	Front Side = 2 // Orange when solved
	Down  Side = 3 // White when solved
	Right Side = 4 // Blue when solved
	Back  Side = 5 // Red when solved
)

// Sides lists every side in net order.
var Sides = [6]Side{Left, Up, Front, Down, Right, Back}

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Up:
		return "U"
	case Front:
		return "F"
	case Down:
		return "D"
	case Right:
		return "R"
	case Back:
		return "B"
	default:
		return "?"
	}
}

// Name returns the lower-case side name.
func (s Side) Name() string {
	switch s {
	case Left:
		return "left"
	case Up:
		return "up"
	case Front:
		return "front"
	case Down:
		return "down"
	case Right:
		return "right"
	case Back:
		return "back"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the six sides.
func (s Side) Valid() bool {
	return s >= Left && s <= Back
}

// Home returns the colour the side shows when the cube is solved.
func (s Side) Home() Color {
	switch s {
	case Left:
		return Green
	case Up:
		return Yellow
	case Front:
		return Orange
	case Down:
		return White
	case Right:
		return Blue
	default:
		return Red
	}
}

// Opposite returns the side facing away from s.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	case Down:
		return Up
	case Front:
		return Back
	default:
		return Front
	}
}

// Turn is the direction of a quarter turn, seen looking at the side.
type Turn int

const (
	CW  Turn = 1  // Clockwise
	CCW Turn = -1 // Counter-clockwise
)

func (t Turn) String() string {
	switch t {
	case CW:
		return "clockwise"
	case CCW:
		return "counter-clockwise"
	default:
		return "invalid"
	}
}

// Move is one of the twelve quarter turns.
type Move struct {
	Side Side // Which side to turn
	Turn Turn // Direction
}

// indexOrder is the side order used by move indices: F R U B L D.
var indexOrder = [6]Side{Front, Right, Up, Back, Left, Down}

// Valid reports whether m is one of the twelve moves.
func (m Move) Valid() bool {
	return m.Side.Valid() && (m.Turn == CW || m.Turn == CCW)
}

// Notation returns the move identifier.
// Examples: L, L', U, U'
func (m Move) Notation() string {
	if m.Turn == CCW {
		return m.Side.String() + "'"
	}
	return m.Side.String()
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// Inverse returns the move that undoes m.
// L becomes L', L' becomes L.
func (m Move) Inverse() Move {
	m.Turn = -m.Turn
	return m
}

// Index returns the position of m in Moves (0..11), or -1 if m is invalid.
// Clockwise moves occupy 0..5 in F R U B L D order and counter-clockwise
// moves the same order at 6..11.
func (m Move) Index() int {
	if !m.Valid() {
		return -1
	}
	for i, s := range indexOrder {
		if s == m.Side {
			if m.Turn == CCW {
				return i + len(indexOrder)
			}
			return i
		}
	}
	return -1
}

// MoveFromIndex returns the move at index i of Moves.
func MoveFromIndex(i int) (Move, error) {
	if i < 0 || i >= len(Moves) {
		return Move{}, fmt.Errorf("%w: index %d", ErrInvalidMove, i)
	}
	return Moves[i], nil
}

// ParseMove parses a single move identifier.
// Accepted forms are the side letter alone (clockwise) or followed by ' or `
// (counter-clockwise). Half turns are not moves.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	var side Side
	switch s[0] {
	case 'L', 'l':
		side = Left
	case 'U', 'u':
		side = Up
	case 'F', 'f':
		side = Front
	case 'D', 'd':
		side = Down
	case 'R', 'r':
		side = Right
	case 'B', 'b':
		side = Back
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	if len(s) == 2 {
		switch s[1] {
		case '\'', '`':
			turn = CCW
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Side: side, Turn: turn}, nil
}

// ParseMoves parses a whitespace separated sequence of moves.
// Example: "R U R' U'"
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for i, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, fmt.Errorf("move %d: %w", i+1, err)
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats moves as a space separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}

// InvertMoves returns the sequence that undoes moves.
func InvertMoves(moves []Move) []Move {
	inv := make([]Move, len(moves))
	for i, m := range moves {
		inv[len(moves)-1-i] = m.Inverse()
	}
	return inv
}
