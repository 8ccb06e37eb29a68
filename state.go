package rubiks

import (
	"fmt"
	"strings"
	"unicode"
)

// State returns the 54 facelet letters, one face after another in side
// order (L U F D R B), each face row by row.
func (c *Cube) State() string {
	var b strings.Builder
	b.Grow(54)
	for i := range c.faces {
		for _, cell := range c.faces[i].cells {
			b.WriteString(cell.String())
		}
	}
	return b.String()
}

// ParseState builds a cube from a facelet string in the format returned by
// State. Whitespace is ignored, so faces may be grouped for readability.
// The colours must satisfy the nine-of-each invariant.
func ParseState(s string) (*Cube, error) {
	letters := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)

	if len(letters) != 54 {
		return nil, fmt.Errorf("%w: want 54 facelets, got %d", ErrInvalidState, len(letters))
	}

	c := NewCube()
	for i, r := range letters {
		color, err := ParseColor(r)
		if err != nil {
			return nil, fmt.Errorf("facelet %d: %w", i, err)
		}
		c.faces[i/9].cells[i%9] = color
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
