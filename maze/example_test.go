// File: maze/example_test.go
package maze_test

import (
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
)

// ExampleGrid_Apply builds a board the way a click-to-edit front end does:
// choose a mode, then click cells.
func ExampleGrid_Apply() {
	g, _ := maze.New(5, 5)
	_ = g.Apply(maze.ModeStart, maze.Coord{Row: 0, Col: 0})
	_ = g.Apply(maze.ModeEnd, maze.Coord{Row: 4, Col: 4})
	for r := 0; r < 4; r++ {
		_ = g.Apply(maze.ModeWall, maze.Coord{Row: r, Col: 2})
	}
	// Moving the start leaves an empty cell behind.
	_ = g.Apply(maze.ModeStart, maze.Coord{Row: 1, Col: 0})

	fmt.Print(g)
	// Output:
	// ..#..
	// S.#..
	// ..#..
	// ..#..
	// ....E
}
