// Package render draws cubes for the terminal.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/rubiks"
)

var cellColors = map[rubiks.Color]lipgloss.Color{
	rubiks.Green:  lipgloss.Color("#009B48"),
	rubiks.Yellow: lipgloss.Color("#FFD500"),
	rubiks.Orange: lipgloss.Color("#FF5800"),
	rubiks.White:  lipgloss.Color("#FFFFFF"),
	rubiks.Blue:   lipgloss.Color("#0046AD"),
	rubiks.Red:    lipgloss.Color("#B71234"),
}

// Renderer draws cubes either with coloured cells or as plain letters.
type Renderer struct {
	color bool
	cells map[rubiks.Color]lipgloss.Style
}

// New creates a renderer. With color false it produces the same text as
// Cube.String.
func New(color bool) *Renderer {
	r := &Renderer{color: color, cells: make(map[rubiks.Color]lipgloss.Style)}
	for k, bg := range cellColors {
		r.cells[k] = lipgloss.NewStyle().
			Background(bg).
			Foreground(lipgloss.Color("#000000"))
	}
	return r
}

// Color reports whether the renderer draws coloured cells.
func (r *Renderer) Color() bool {
	return r.color
}

// Net draws the cube as a net with Up above and Down below the
// Left/Front/Right/Back belt.
func (r *Renderer) Net(c *rubiks.Cube) string {
	if !r.color {
		return c.String()
	}

	up := c.Face(rubiks.Up)
	down := c.Face(rubiks.Down)
	pad := strings.Repeat(" ", lipgloss.Width(r.Face(&up, 0)))

	var b strings.Builder
	for i := 0; i < 3; i++ {
		b.WriteString(pad)
		b.WriteString(r.Face(&up, i))
		b.WriteByte('\n')
	}
	for i := 0; i < 3; i++ {
		for _, s := range []rubiks.Side{rubiks.Left, rubiks.Front, rubiks.Right, rubiks.Back} {
			f := c.Face(s)
			b.WriteString(r.Face(&f, i))
		}
		b.WriteByte('\n')
	}
	for i := 0; i < 3; i++ {
		b.WriteString(pad)
		b.WriteString(r.Face(&down, i))
		b.WriteByte('\n')
	}
	return b.String()
}

// Face draws row i of f.
func (r *Renderer) Face(f *rubiks.Face, i int) string {
	var b strings.Builder
	for _, k := range f.Row(i) {
		b.WriteString(r.Cell(k))
	}
	return b.String()
}

// Cell draws a single facelet.
func (r *Renderer) Cell(k rubiks.Color) string {
	if !r.color {
		return k.String() + " "
	}
	st, ok := r.cells[k]
	if !ok {
		return "?? "
	}
	return st.Render(" "+k.String()) + " "
}

// Moves formats a move list, keeping only the last n moves.
func Moves(moves []rubiks.Move, n int) string {
	if n > 0 && len(moves) > n {
		return "... " + rubiks.FormatMoves(moves[len(moves)-n:])
	}
	return rubiks.FormatMoves(moves)
}
