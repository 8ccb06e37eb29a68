// Command rubiks is a terminal Rubik's Cube simulator.
package main

import "github.com/SeamusWaldron/rubiks/internal/cli"

func main() {
	cli.Execute()
}
