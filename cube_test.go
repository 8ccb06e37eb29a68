package rubiks

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// scrambleFixture is a scrambled state, one face per entry in side order
// (L U F D R B), rows separated by spaces.
var scrambleFixture = [6]string{
	"RBY YGG OBG",
	"BGB RYR BWG",
	"OBR WOW YYR",
	"OBG OWY WYR",
	"WGO RBW YOB",
	"WOW ORR YGG",
}

func scrambledCube(t *testing.T) *Cube {
	t.Helper()
	c, err := ParseState(strings.Join(scrambleFixture[:], " "))
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	return c
}

// faceStrings renders each face as "ABC DEF GHI".
func faceStrings(c *Cube) [6]string {
	var out [6]string
	state := c.State()
	for i := range out {
		f := state[i*9 : i*9+9]
		out[i] = f[0:3] + " " + f[3:6] + " " + f[6:9]
	}
	return out
}

func TestNewCubeIsComplete(t *testing.T) {
	c := NewCube()
	if !c.IsComplete() {
		t.Error("New cube should be complete")
	}
	for _, s := range Sides {
		f := c.Face(s)
		if f.Home() != s.Home() {
			t.Errorf("side %v home = %v, want %v", s, f.Home(), s.Home())
		}
	}
}

func TestNewCubeHasSixDistinctHomeColors(t *testing.T) {
	c := NewCube()
	seen := make(map[Color]bool)
	for _, s := range Sides {
		f := c.Face(s)
		seen[f.Home()] = true
	}
	if len(seen) != 6 {
		t.Errorf("got %d distinct home colours, want 6", len(seen))
	}
}

func TestIsCompleteFalseWhenOneCellDiffers(t *testing.T) {
	c := NewCube()
	c.faces[Left].Set(0, 2, Red)
	if c.IsComplete() {
		t.Error("Cube with a wrong cell should not be complete")
	}
}

func TestSingleMoveBreaksComplete(t *testing.T) {
	for _, m := range Moves {
		c := NewCube()
		if err := c.ApplyMove(m); err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		if c.IsComplete() {
			t.Errorf("Cube should not be complete after %v", m)
		}
	}
}

func TestMoveThenInverseRestores(t *testing.T) {
	for _, m := range Moves {
		c := scrambledCube(t)
		before := c.Clone()

		if err := c.Apply(m, m.Inverse()); err != nil {
			t.Fatalf("%v: %v", m, err)
		}
		if !c.Equal(before) {
			t.Errorf("%v %v should restore the state", m, m.Inverse())
			t.Log(c.String())
		}
	}
}

func TestFourTurnsIsIdentity_AllSides(t *testing.T) {
	for _, m := range Moves {
		c := scrambledCube(t)
		before := c.Clone()
		for i := 0; i < 4; i++ {
			if err := c.ApplyMove(m); err != nil {
				t.Fatal(err)
			}
		}
		if !c.Equal(before) {
			t.Errorf("%v x 4 should return to the start", m)
			t.Log(c.String())
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		if err := c.Apply(SexyMove...); err != nil {
			t.Fatal(err)
		}
	}
	if !c.IsComplete() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestOppositeSidesCommute(t *testing.T) {
	for _, m := range []Move{L, U, F} {
		opp := Move{Side: m.Side.Opposite(), Turn: CW}

		a := scrambledCube(t)
		b := scrambledCube(t)
		if err := a.Apply(m, opp); err != nil {
			t.Fatal(err)
		}
		if err := b.Apply(opp, m); err != nil {
			t.Fatal(err)
		}
		if !a.Equal(b) {
			t.Errorf("%v and %v should commute", m, opp)
		}
	}
}

func TestMoveLocality(t *testing.T) {
	for _, m := range Moves {
		c := scrambledCube(t)
		before := c.Clone()
		if err := c.ApplyMove(m); err != nil {
			t.Fatal(err)
		}

		changed := 0
		for i := range c.faces {
			for j := range c.faces[i].cells {
				if c.faces[i].cells[j] != before.faces[i].cells[j] {
					changed++
				}
			}
		}
		if changed > 21 {
			t.Errorf("%v changed %d cells, want at most 21", m, changed)
		}

		opp := m.Side.Opposite()
		if c.Face(opp) != before.Face(opp) {
			t.Errorf("%v changed the opposite face %v", m, opp)
		}
	}
}

func TestMoveOnlyTouchesTurningAndAdjacentFaces(t *testing.T) {
	for _, m := range Moves {
		c := NewCube()
		if err := c.ApplyMove(m); err != nil {
			t.Fatal(err)
		}

		// From solved, the turning face keeps its colours and each neighbour
		// gains exactly three foreign cells.
		for _, s := range Sides {
			f := c.Face(s)
			foreign := 9 - f.Count(f.Home())
			switch s {
			case m.Side, m.Side.Opposite():
				if foreign != 0 {
					t.Errorf("%v: side %v has %d foreign cells, want 0", m, s, foreign)
				}
			default:
				if foreign != 3 {
					t.Errorf("%v: side %v has %d foreign cells, want 3", m, s, foreign)
				}
			}
		}
	}
}

func TestMoveFixtures(t *testing.T) {
	tests := []struct {
		move Move
		want [6]string
	}{
		{F, [6]string{
			"RBO YGB OBG",
			"BGB RYR GGY",
			"YWO YOB RWR",
			"YRW OWY WYR",
			"BGO WBW GOB",
			"WOW ORR YGG",
		}},
		{R, [6]string{
			"RBY YGG OBG",
			"BGR RYW BWR",
			"OBG WOY YYR",
			"OBY OWO WYW",
			"YRW OBG BWO",
			"GOW RRR BGG",
		}},
		{U, [6]string{
			"OBR YGG OBG",
			"BRB WYG GRB",
			"WGO WOW YYR",
			"OBG OWY WYR",
			"WOW RBW YOB",
			"RBY ORR YGG",
		}},
		{B, [6]string{
			"BBY GGG BBG",
			"OWB RYR BWG",
			"OBR WOW YYR",
			"OBG OWY RYO",
			"WGR RBY YOW",
			"YOW GRO GRW",
		}},
		{L, [6]string{
			"OYR BGB GGY",
			"GGB RYR WWG",
			"BBR ROW BYR",
			"OBG WWY YYR",
			"WGO RBW YOB",
			"WOW ORO YGO",
		}},
		{D, [6]string{
			"RBY YGG YGG",
			"BGB RYR BWG",
			"OBR WOW OBG",
			"WOO YWB RYG",
			"WGO RBW YYR",
			"WOW ORR YOB",
		}},
		{FPrime, [6]string{
			"RBG YGW OBB",
			"BGB RYR WRY",
			"RWR BOY OWY",
			"YGG OWY WYR",
			"GGO BBW OOB",
			"WOW ORR YGG",
		}},
		{RPrime, [6]string{
			"RBY YGG OBG",
			"BGY RYO BWW",
			"OBB WOR YYG",
			"OBR OWW WYR",
			"OWB GBO WRY",
			"ROW YRR GGG",
		}},
		{UPrime, [6]string{
			"WOW YGG OBG",
			"BRG GYW BRB",
			"RBY WOW YYR",
			"OBG OWY WYR",
			"OBR RBW YOB",
			"WGO ORR YGG",
		}},
		{BPrime, [6]string{
			"WBY YGG RBG",
			"OYR RYR BWG",
			"OBR WOW YYR",
			"OBG OWY BWO",
			"WGB RBG YOB",
			"WRG ORG WOY",
		}},
		{LPrime, [6]string{
			"YGG BGB RYO",
			"OGB WYR YWG",
			"OBR OOW WYR",
			"GBG RWY WYR",
			"WGO RBW YOB",
			"WOB ORR YGB",
		}},
		{DPrime, [6]string{
			"RBY YGG YYR",
			"BGB RYR BWG",
			"OBR WOW YOB",
			"GYR BWY OOW",
			"WGO RBW YGG",
			"WOW ORR OBG",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.move.Notation(), func(t *testing.T) {
			c := scrambledCube(t)
			if err := c.ApplyMove(tt.move); err != nil {
				t.Fatal(err)
			}

			if diff := cmp.Diff(tt.want, faceStrings(c)); diff != "" {
				t.Errorf("faces mismatch (-want +got):\n%s", diff)
			}

			opp := tt.move.Side.Opposite()
			if got := faceStrings(c)[opp]; got != scrambleFixture[opp] {
				t.Errorf("opposite face %v changed: %s", opp, got)
			}

			if err := c.Validate(); err != nil {
				t.Errorf("colour count: %v", err)
			}
		})
	}
}

func TestTurningFaceMatchesRotation(t *testing.T) {
	for _, m := range Moves {
		c := scrambledCube(t)
		want := c.Face(m.Side)
		if m.Turn == CW {
			want.RotateClockwise()
		} else {
			want.RotateCounterClockwise()
		}

		if err := c.ApplyMove(m); err != nil {
			t.Fatal(err)
		}
		if got := c.Face(m.Side); !got.Equal(want) {
			t.Errorf("%v: turning face\n%swant\n%s", m, got.String(), want.String())
		}
	}
}

func TestColorConservation(t *testing.T) {
	c := scrambledCube(t)
	for i := 0; i < 200; i++ {
		if err := c.ApplyMove(Moves[(i*7)%len(Moves)]); err != nil {
			t.Fatal(err)
		}
		for _, k := range Colors {
			if n := c.ColorCounts()[k]; n != 9 {
				t.Fatalf("after %d moves %s appears %d times", i+1, k.Name(), n)
			}
		}
	}
}

func TestApplyInvalidMove(t *testing.T) {
	invalid := []Move{
		{Side: Side(6), Turn: CW},
		{Side: Side(-1), Turn: CCW},
		{Side: Up, Turn: Turn(2)},
		{Side: Up, Turn: Turn(0)},
	}

	for _, m := range invalid {
		c := scrambledCube(t)
		before := c.Clone()

		err := c.ApplyMove(m)
		if !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ApplyMove(%+v) error = %v, want ErrInvalidMove", m, err)
		}
		if !c.Equal(before) {
			t.Errorf("ApplyMove(%+v) mutated the cube", m)
		}
	}
}

func TestApplyStopsAtFirstInvalidMove(t *testing.T) {
	c := NewCube()
	err := c.Apply(R, Move{Side: Up, Turn: Turn(3)}, U)
	if !errors.Is(err, ErrInvalidMove) {
		t.Fatalf("Apply error = %v, want ErrInvalidMove", err)
	}

	want := NewCube()
	if err := want.ApplyMove(R); err != nil {
		t.Fatal(err)
	}
	if !c.Equal(want) {
		t.Error("Apply should have applied only the moves before the invalid one")
		t.Log(c.String())
	}
}

func TestApplyNotation(t *testing.T) {
	c := NewCube()
	if err := c.ApplyNotation("R U R' U'"); err != nil {
		t.Fatal(err)
	}

	want := NewCube()
	if err := want.Apply(SexyMove...); err != nil {
		t.Fatal(err)
	}
	if !c.Equal(want) {
		t.Error("ApplyNotation should match Apply")
	}

	c = NewCube()
	if err := c.ApplyNotation("R U2"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ApplyNotation(\"R U2\") error = %v, want ErrInvalidNotation", err)
	}
	if !c.IsComplete() {
		t.Error("ApplyNotation should not apply anything when parsing fails")
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := NewCube()
	clone := c.Clone()
	if err := c.ApplyMove(F); err != nil {
		t.Fatal(err)
	}
	if !clone.IsComplete() {
		t.Error("Clone should not change when the original moves")
	}
}

func TestFaceReturnsCopy(t *testing.T) {
	c := NewCube()
	f := c.Face(Up)
	f.Set(0, 0, Red)
	if !c.IsComplete() {
		t.Error("Modifying a returned face changed the cube")
	}
}

func TestReset(t *testing.T) {
	c := scrambledCube(t)
	c.Reset()
	if !c.IsComplete() {
		t.Error("Reset cube should be complete")
	}
}

func TestStateRoundTrip(t *testing.T) {
	c := scrambledCube(t)
	if err := c.Apply(R, U, FPrime); err != nil {
		t.Fatal(err)
	}

	parsed, err := ParseState(c.State())
	if err != nil {
		t.Fatalf("ParseState: %v", err)
	}
	if !parsed.Equal(c) {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", parsed.String(), c.String())
	}
}

func TestSolvedState(t *testing.T) {
	want := strings.Repeat("G", 9) + strings.Repeat("Y", 9) + strings.Repeat("O", 9) +
		strings.Repeat("W", 9) + strings.Repeat("B", 9) + strings.Repeat("R", 9)
	if got := NewCube().State(); got != want {
		t.Errorf("State() = %s, want %s", got, want)
	}
}

func TestParseStateErrors(t *testing.T) {
	solved := NewCube().State()
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"short", solved[:53]},
		{"long", solved + "G"},
		{"unknown letter", "X" + solved[1:]},
		{"too many green", "G" + solved[1:9] + "G" + solved[10:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseState(tt.input)
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("ParseState error = %v, want ErrInvalidState", err)
			}
		})
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	c := NewCube()
	if err := c.Validate(); err != nil {
		t.Fatalf("solved cube: %v", err)
	}

	c.faces[Front].Set(1, 1, Blue)
	if err := c.Validate(); !errors.Is(err, ErrInvalidState) {
		t.Errorf("Validate error = %v, want ErrInvalidState", err)
	}
}

func TestValidateRejectsUnknownColor(t *testing.T) {
	c := NewCube()
	c.faces[Up].Set(0, 0, Color(7))
	err := c.Validate()
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("Validate error = %v, want ErrInvalidState", err)
	}
	if !strings.Contains(err.Error(), "unknown colour 7") {
		t.Errorf("Validate error = %v, want the unknown colour named", err)
	}
}

func TestColorValid(t *testing.T) {
	for _, k := range Colors {
		if !k.Valid() {
			t.Errorf("%s should be valid", k.Name())
		}
	}
	if Color(6).Valid() {
		t.Error("Color(6) should be invalid")
	}
}

func TestStringNetLayout(t *testing.T) {
	lines := strings.Split(strings.TrimRight(NewCube().String(), "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), strings.Join(lines, "\n"))
	}

	if got, want := lines[0], "      Y Y Y "; got != want {
		t.Errorf("up row = %q, want %q", got, want)
	}
	if got, want := lines[3], "G G G O O O B B B R R R "; got != want {
		t.Errorf("belt row = %q, want %q", got, want)
	}
	if got, want := lines[8], "      W W W "; got != want {
		t.Errorf("down row = %q, want %q", got, want)
	}
}

func TestProgress(t *testing.T) {
	c := NewCube()
	p := c.Progress()
	if !p.Solved() || p.MatchingFacelets != 54 || p.Percent() != 100 {
		t.Errorf("solved progress = %+v", p)
	}

	if err := c.ApplyMove(U); err != nil {
		t.Fatal(err)
	}
	p = c.Progress()
	// U and D stay complete; each belt face has one foreign row.
	if p.CompleteFaces != 2 {
		t.Errorf("CompleteFaces = %d, want 2", p.CompleteFaces)
	}
	if p.MatchingFacelets != 54-12 {
		t.Errorf("MatchingFacelets = %d, want 42", p.MatchingFacelets)
	}
	if p.Solved() {
		t.Error("progress should not be solved after U")
	}
}
