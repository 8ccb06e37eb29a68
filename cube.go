package rubiks

import (
	"fmt"
	"strings"
)

// Cube is a 3x3x3 cube made of six faces laid out as a net:
//
//	   [U]
//	[L][F][R][B]
//	   [D]
//
// A Cube is not safe for concurrent use; wrap it in a Tracker for that.
type Cube struct {
	faces [6]Face
}

// NewCube creates a solved cube with every side showing its home colour.
func NewCube() *Cube {
	c := &Cube{}
	c.Reset()
	return c
}

// Reset returns the cube to the solved state.
func (c *Cube) Reset() {
	for _, s := range Sides {
		c.faces[s] = NewFace(s.Home())
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	return &Cube{faces: c.cloneFaces()}
}

func (c *Cube) cloneFaces() [6]Face {
	var faces [6]Face
	for i := range c.faces {
		faces[i] = c.faces[i].Clone()
	}
	return faces
}

// Face returns a copy of the face on side s.
func (c *Cube) Face(s Side) Face {
	if !s.Valid() {
		panic(fmt.Errorf("%w: side %d", ErrIndexOutOfRange, s))
	}
	return c.faces[s].Clone()
}

// Equal reports whether both cubes hold identical faces.
func (c *Cube) Equal(other *Cube) bool {
	return c.faces == other.faces
}

// IsComplete returns true if every face is complete.
func (c *Cube) IsComplete() bool {
	for i := range c.faces {
		if !c.faces[i].IsComplete() {
			return false
		}
	}
	return true
}

// ApplyMove applies a single move. Values outside the twelve moves return
// ErrInvalidMove and leave the cube untouched.
func (c *Cube) ApplyMove(m Move) error {
	w, ok := WiringFor(m)
	if !ok {
		return fmt.Errorf("%w: side=%d turn=%d", ErrInvalidMove, m.Side, m.Turn)
	}
	c.applyWiring(w)
	return nil
}

// Apply applies moves in order, stopping at the first invalid one.
func (c *Cube) Apply(moves ...Move) error {
	for i, m := range moves {
		if err := c.ApplyMove(m); err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
	}
	return nil
}

// ApplyNotation parses and applies a space separated move sequence.
// Nothing is applied if any token is invalid.
func (c *Cube) ApplyNotation(s string) error {
	moves, err := ParseMoves(s)
	if err != nil {
		return err
	}
	return c.Apply(moves...)
}

// ColorCounts returns the number of cells holding each colour.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, len(Colors))
	for i := range c.faces {
		for _, cell := range c.faces[i].cells {
			counts[cell]++
		}
	}
	return counts
}

// Validate checks that every colour appears on exactly nine cells.
func (c *Cube) Validate() error {
	counts := c.ColorCounts()
	for k := range counts {
		if !k.Valid() {
			return fmt.Errorf("%w: unknown colour %d", ErrInvalidState, k)
		}
	}
	for _, k := range Colors {
		if counts[k] != 9 {
			return fmt.Errorf("%w: %s appears %d times", ErrInvalidState, k.Name(), counts[k])
		}
	}
	return nil
}

// String returns the cube as a text net.
func (c *Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for r := 0; r < faceSize; r++ {
		b.WriteString("      ")
		writeRow(&b, c.faces[Up].Row(r))
		b.WriteByte('\n')
	}

	// L, F, R, B faces (side by side)
	for r := 0; r < faceSize; r++ {
		for _, s := range []Side{Left, Front, Right, Back} {
			writeRow(&b, c.faces[s].Row(r))
		}
		b.WriteByte('\n')
	}

	// D face (indented)
	for r := 0; r < faceSize; r++ {
		b.WriteString("      ")
		writeRow(&b, c.faces[Down].Row(r))
		b.WriteByte('\n')
	}

	return b.String()
}

func writeRow(b *strings.Builder, line [3]Color) {
	for _, cell := range line {
		b.WriteString(cell.String())
		b.WriteByte(' ')
	}
}
