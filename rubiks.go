// Package rubiks models a 3x3x3 twisty cube as six 3x3 faces of colour
// cells and implements the twelve quarter-turn moves.
//
// # Quick Start
//
//	cube := rubiks.NewCube()
//
//	// Apply moves using predefined values
//	cube.Apply(rubiks.R, rubiks.U, rubiks.RPrime, rubiks.UPrime)
//
//	// Or from notation
//	cube.ApplyNotation("F B L' D")
//
//	fmt.Println("Solved:", cube.IsComplete())
//	fmt.Print(cube)
//
// # Layout
//
// The faces form a net with Up above, Down below and a belt of Left, Front,
// Right and Back around the middle:
//
//	   [U]
//	[L][F][R][B]
//	   [D]
//
// Each move turns one face a quarter turn and carries the twelve adjacent
// edge cells to the neighbouring faces. The edge movements are described by
// a table of Wiring values (see WiringFor).
//
// # Shuffling
//
// Shuffle draws moves from an injected source so runs are reproducible:
//
//	moves, err := cube.Shuffle(25, rubiks.WithSeed(42))
//
// # Concurrency
//
// Cube is not safe for concurrent use. Tracker wraps a Cube with a lock,
// move history and callbacks.
package rubiks
