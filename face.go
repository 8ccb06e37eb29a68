package rubiks

import (
	"fmt"
	"strings"
)

const faceSize = 3

// Face is one 3x3 side of the cube. Cells are indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// A Face remembers the colour it was created with (its home colour) so it
// can report whether it is complete.
type Face struct {
	home  Color
	cells [faceSize * faceSize]Color
}

// NewFace creates a face with all nine cells set to home.
func NewFace(home Color) Face {
	f := Face{home: home}
	for i := range f.cells {
		f.cells[i] = home
	}
	return f
}

// Home returns the colour the face was created with.
func (f *Face) Home() Color {
	return f.home
}

// Cells returns a copy of the nine cells in row-major order.
func (f *Face) Cells() [9]Color {
	return f.cells
}

// At returns the colour at (row, col). It panics with ErrIndexOutOfRange if
// either index is outside 0..2.
func (f *Face) At(row, col int) Color {
	checkIndex("row", row)
	checkIndex("column", col)
	return f.cells[row*faceSize+col]
}

// Set sets the colour at (row, col).
func (f *Face) Set(row, col int, c Color) {
	checkIndex("row", row)
	checkIndex("column", col)
	f.cells[row*faceSize+col] = c
}

// Row returns a copy of row r.
func (f *Face) Row(r int) [3]Color {
	checkIndex("row", r)
	var out [3]Color
	copy(out[:], f.cells[r*faceSize:r*faceSize+faceSize])
	return out
}

// SetRow overwrites row r.
func (f *Face) SetRow(r int, line [3]Color) {
	checkIndex("row", r)
	copy(f.cells[r*faceSize:r*faceSize+faceSize], line[:])
}

// Col returns a copy of column c.
func (f *Face) Col(c int) [3]Color {
	checkIndex("column", c)
	var out [3]Color
	for i := 0; i < faceSize; i++ {
		out[i] = f.cells[i*faceSize+c]
	}
	return out
}

// SetCol overwrites column c.
func (f *Face) SetCol(c int, line [3]Color) {
	checkIndex("column", c)
	for i := 0; i < faceSize; i++ {
		f.cells[i*faceSize+c] = line[i]
	}
}

// RotateClockwise turns the grid 90 degrees clockwise: transpose, then
// reverse each row.
func (f *Face) RotateClockwise() {
	f.transpose()
	for r := 0; r < faceSize; r++ {
		f.SetRow(r, reversed(f.Row(r)))
	}
}

// RotateCounterClockwise turns the grid 90 degrees counter-clockwise:
// transpose, then reverse each column.
func (f *Face) RotateCounterClockwise() {
	f.transpose()
	for c := 0; c < faceSize; c++ {
		f.SetCol(c, reversed(f.Col(c)))
	}
}

func (f *Face) transpose() {
	for r := 0; r < faceSize; r++ {
		for c := r + 1; c < faceSize; c++ {
			f.cells[r*faceSize+c], f.cells[c*faceSize+r] = f.cells[c*faceSize+r], f.cells[r*faceSize+c]
		}
	}
}

// Clone returns a deep copy of the face.
func (f *Face) Clone() Face {
	return *f
}

// IsComplete returns true if every cell holds the home colour.
func (f *Face) IsComplete() bool {
	for _, c := range f.cells {
		if c != f.home {
			return false
		}
	}
	return true
}

// Count returns how many cells hold colour c.
func (f *Face) Count(c Color) int {
	n := 0
	for _, cell := range f.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Equal reports whether both faces have the same home colour and cells.
func (f *Face) Equal(other Face) bool {
	return f.home == other.home && f.cells == other.cells
}

// TransposeRowToColumn reads row rowIndex of src, optionally reversed, and
// writes it as column colIndex of f.
func (f *Face) TransposeRowToColumn(rowIndex, colIndex int, src *Face, reverse bool) {
	line := src.Row(rowIndex)
	if reverse {
		line = reversed(line)
	}
	f.SetCol(colIndex, line)
}

// TransposeColumnToRow reads column colIndex of src, optionally reversed,
// and writes it as row rowIndex of f.
func (f *Face) TransposeColumnToRow(colIndex, rowIndex int, src *Face, reverse bool) {
	line := src.Col(colIndex)
	if reverse {
		line = reversed(line)
	}
	f.SetRow(rowIndex, line)
}

// String returns the face as three lines of colour letters.
func (f *Face) String() string {
	var b strings.Builder
	for r := 0; r < faceSize; r++ {
		for c := 0; c < faceSize; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(f.cells[r*faceSize+c].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func checkIndex(name string, i int) {
	if i < 0 || i >= faceSize {
		panic(fmt.Errorf("%w: %s %d", ErrIndexOutOfRange, name, i))
	}
}

func reversed(line [3]Color) [3]Color {
	return [3]Color{line[2], line[1], line[0]}
}
