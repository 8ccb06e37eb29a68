package rubiks

// Predefined moves.
//
// Example:
//
//	cube.Apply(rubiks.R, rubiks.U, rubiks.RPrime, rubiks.UPrime)
var (
	F      = Move{Side: Front, Turn: CW}  // Front clockwise
	FPrime = Move{Side: Front, Turn: CCW} // Front counter-clockwise

	R      = Move{Side: Right, Turn: CW}  // Right clockwise
	RPrime = Move{Side: Right, Turn: CCW} // Right counter-clockwise

	U      = Move{Side: Up, Turn: CW}  // Up clockwise
	UPrime = Move{Side: Up, Turn: CCW} // Up counter-clockwise

	B      = Move{Side: Back, Turn: CW}  // Back clockwise
	BPrime = Move{Side: Back, Turn: CCW} // Back counter-clockwise

	L      = Move{Side: Left, Turn: CW}  // Left clockwise
	LPrime = Move{Side: Left, Turn: CCW} // Left counter-clockwise

	D      = Move{Side: Down, Turn: CW}  // Down clockwise
	DPrime = Move{Side: Down, Turn: CCW} // Down counter-clockwise
)

// Moves is the complete move set in index order.
var Moves = [12]Move{
	F, R, U, B, L, D,
	FPrime, RPrime, UPrime, BPrime, LPrime, DPrime,
}

// SexyMove is R U R' U'. Six repetitions restore any state.
var SexyMove = []Move{R, U, RPrime, UPrime}
