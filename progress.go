package rubiks

// Progress summarises how close a cube is to solved.
type Progress struct {
	CompleteFaces    int // Faces showing a single colour (0..6)
	MatchingFacelets int // Cells holding their face's home colour (0..54)
}

// Solved reports whether every face is complete.
func (p Progress) Solved() bool {
	return p.CompleteFaces == len(Sides)
}

// Percent returns MatchingFacelets as a percentage of all 54 cells.
func (p Progress) Percent() float64 {
	return float64(p.MatchingFacelets) * 100 / 54
}

// Progress returns the current progress of the cube.
func (c *Cube) Progress() Progress {
	var p Progress
	for i := range c.faces {
		f := &c.faces[i]
		if f.IsComplete() {
			p.CompleteFaces++
		}
		p.MatchingFacelets += f.Count(f.home)
	}
	return p
}
