package rubiks

import "fmt"

// Line selects a row or a column of a face.
type Line int

const (
	Row Line = iota
	Col
)

func (l Line) String() string {
	if l == Col {
		return "col"
	}
	return "row"
}

// Edge is one row or column of one side.
type Edge struct {
	Side  Side
	Line  Line
	Index int
}

func (e Edge) String() string {
	return fmt.Sprintf("%s.%s%d", e.Side, e.Line, e.Index)
}

// Transfer copies the From edge of the pre-move snapshot into the To edge of
// the live cube, optionally reversing the three cells.
type Transfer struct {
	From    Edge
	To      Edge
	Reverse bool
}

func (t Transfer) String() string {
	s := t.To.String() + " <- " + t.From.String()
	if t.Reverse {
		s += " (reversed)"
	}
	return s
}

// Wiring describes one move: which side turns, in which direction, and the
// four edge transfers that carry the adjacent stickers around it.
type Wiring struct {
	Side      Side
	Turn      Turn
	Transfers [4]Transfer
}

// Move returns the move this wiring implements.
func (w Wiring) Move() Move {
	return Move{Side: w.Side, Turn: w.Turn}
}

func row(s Side, i int) Edge { return Edge{Side: s, Line: Row, Index: i} }
func col(s Side, i int) Edge { return Edge{Side: s, Line: Col, Index: i} }

// wirings holds one entry per move, in Moves index order.
//
// Left/Right and Up/Down turns move whole rows or columns between faces
// without relabelling. Front/Back turns meet the left and right faces on
// columns and the up and down faces on rows, so two of their transfers
// cross from a row to a column.
var wirings = [12]Wiring{
	{Side: Front, Turn: CW, Transfers: [4]Transfer{
		{From: row(Down, 0), To: col(Left, 2)},
		{From: col(Left, 2), To: row(Up, 2), Reverse: true},
		{From: col(Right, 0), To: row(Down, 0), Reverse: true},
		{From: row(Up, 2), To: col(Right, 0)},
	}},
	{Side: Right, Turn: CW, Transfers: [4]Transfer{
		{From: col(Front, 2), To: col(Up, 2)},
		{From: col(Down, 2), To: col(Front, 2)},
		{From: col(Back, 0), To: col(Down, 2), Reverse: true},
		{From: col(Up, 2), To: col(Back, 0), Reverse: true},
	}},
	{Side: Up, Turn: CW, Transfers: [4]Transfer{
		{From: row(Front, 0), To: row(Left, 0)},
		{From: row(Right, 0), To: row(Front, 0)},
		{From: row(Back, 0), To: row(Right, 0)},
		{From: row(Left, 0), To: row(Back, 0)},
	}},
	{Side: Back, Turn: CW, Transfers: [4]Transfer{
		{From: row(Up, 0), To: col(Left, 0), Reverse: true},
		{From: col(Right, 2), To: row(Up, 0)},
		{From: col(Left, 0), To: row(Down, 2)},
		{From: row(Down, 2), To: col(Right, 2), Reverse: true},
	}},
	{Side: Left, Turn: CW, Transfers: [4]Transfer{
		{From: col(Back, 2), To: col(Up, 0), Reverse: true},
		{From: col(Up, 0), To: col(Front, 0)},
		{From: col(Front, 0), To: col(Down, 0)},
		{From: col(Down, 0), To: col(Back, 2), Reverse: true},
	}},
	{Side: Down, Turn: CW, Transfers: [4]Transfer{
		{From: row(Back, 2), To: row(Left, 2)},
		{From: row(Left, 2), To: row(Front, 2)},
		{From: row(Front, 2), To: row(Right, 2)},
		{From: row(Right, 2), To: row(Back, 2)},
	}},
	{Side: Front, Turn: CCW, Transfers: [4]Transfer{
		{From: row(Up, 2), To: col(Left, 2), Reverse: true},
		{From: col(Right, 0), To: row(Up, 2)},
		{From: col(Left, 2), To: row(Down, 0)},
		{From: row(Down, 0), To: col(Right, 0), Reverse: true},
	}},
	{Side: Right, Turn: CCW, Transfers: [4]Transfer{
		{From: col(Back, 0), To: col(Up, 2), Reverse: true},
		{From: col(Up, 2), To: col(Front, 2)},
		{From: col(Front, 2), To: col(Down, 2)},
		{From: col(Down, 2), To: col(Back, 0), Reverse: true},
	}},
	{Side: Up, Turn: CCW, Transfers: [4]Transfer{
		{From: row(Back, 0), To: row(Left, 0)},
		{From: row(Left, 0), To: row(Front, 0)},
		{From: row(Front, 0), To: row(Right, 0)},
		{From: row(Right, 0), To: row(Back, 0)},
	}},
	{Side: Back, Turn: CCW, Transfers: [4]Transfer{
		{From: row(Down, 2), To: col(Left, 0)},
		{From: col(Left, 0), To: row(Up, 0), Reverse: true},
		{From: col(Right, 2), To: row(Down, 2), Reverse: true},
		{From: row(Up, 0), To: col(Right, 2)},
	}},
	{Side: Left, Turn: CCW, Transfers: [4]Transfer{
		{From: col(Front, 0), To: col(Up, 0)},
		{From: col(Down, 0), To: col(Front, 0)},
		{From: col(Back, 2), To: col(Down, 0), Reverse: true},
		{From: col(Up, 0), To: col(Back, 2), Reverse: true},
	}},
	{Side: Down, Turn: CCW, Transfers: [4]Transfer{
		{From: row(Front, 2), To: row(Left, 2)},
		{From: row(Right, 2), To: row(Front, 2)},
		{From: row(Back, 2), To: row(Right, 2)},
		{From: row(Left, 2), To: row(Back, 2)},
	}},
}

// WiringFor returns the wiring table entry for m.
func WiringFor(m Move) (Wiring, bool) {
	i := m.Index()
	if i < 0 {
		return Wiring{}, false
	}
	return wirings[i], true
}

// applyWiring rotates the turning face, snapshots all six faces, then copies
// each edge from the snapshot into the live faces. Reads never see a
// partially updated face.
func (c *Cube) applyWiring(w Wiring) {
	turning := &c.faces[w.Side]
	if w.Turn == CW {
		turning.RotateClockwise()
	} else {
		turning.RotateCounterClockwise()
	}

	snapshot := c.cloneFaces()

	for _, t := range w.Transfers {
		src := &snapshot[t.From.Side]
		dst := &c.faces[t.To.Side]

		switch {
		case t.From.Line == Row && t.To.Line == Col:
			dst.TransposeRowToColumn(t.From.Index, t.To.Index, src, t.Reverse)
		case t.From.Line == Col && t.To.Line == Row:
			dst.TransposeColumnToRow(t.From.Index, t.To.Index, src, t.Reverse)
		case t.From.Line == Row:
			line := src.Row(t.From.Index)
			if t.Reverse {
				line = reversed(line)
			}
			dst.SetRow(t.To.Index, line)
		default:
			line := src.Col(t.From.Index)
			if t.Reverse {
				line = reversed(line)
			}
			dst.SetCol(t.To.Index, line)
		}
	}
}
