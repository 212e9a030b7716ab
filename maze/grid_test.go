package maze_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/micromouse/maze"
)

//----------------------------------------------------------------------------//
// New, ClampSize and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects dimensions outside [5,20].
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		err        error
	}{
		{"TooFewRows", 4, 10, maze.ErrSize},
		{"TooFewCols", 10, 0, maze.ErrSize},
		{"TooManyRows", 21, 10, maze.ErrSize},
		{"TooManyCols", 10, 25, maze.ErrSize},
		{"Min", 5, 5, nil},
		{"Max", 20, 20, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := maze.New(tc.rows, tc.cols)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestClampSize covers both ends of the range.
func TestClampSize(t *testing.T) {
	for in, want := range map[int]int{-3: 5, 0: 5, 5: 5, 12: 12, 20: 20, 99: 20} {
		if got := maze.ClampSize(in); got != want {
			t.Errorf("ClampSize(%d) = %d; want %d", in, got, want)
		}
	}
}

// TestInBounds checks InBounds and the Wall reading of outside cells on a 5×6 grid.
func TestInBounds(t *testing.T) {
	g, err := maze.New(5, 6)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	valid := []maze.Coord{{0, 0}, {4, 5}, {2, 3}}
	for _, c := range valid {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
		if g.At(c) != maze.Empty {
			t.Errorf("At(%v)=%v; want Empty", c, g.At(c))
		}
	}
	invalid := []maze.Coord{{-1, 0}, {5, 0}, {0, 6}, {2, -1}, maze.Unset}
	for _, c := range invalid {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
		if g.At(c) != maze.Wall {
			t.Errorf("At(%v)=%v; want Wall outside the grid", c, g.At(c))
		}
	}
}

// TestIndexCoordinate verifies the row-major mapping round-trips.
func TestIndexCoordinate(t *testing.T) {
	g, _ := maze.New(5, 7)
	for idx := 0; idx < g.Rows()*g.Cols(); idx++ {
		c := g.Coordinate(idx)
		if got := g.Index(c); got != idx {
			t.Fatalf("Index(Coordinate(%d)) = %d", idx, got)
		}
	}
	if got := g.Index(maze.Coord{Row: 2, Col: 3}); got != 17 {
		t.Errorf("Index((2,3)) = %d; want 17", got)
	}
}

//----------------------------------------------------------------------------//
// Clone, Reset and Resize Tests
//----------------------------------------------------------------------------//

// TestClone_Independent ensures edits to a clone do not leak into the original.
func TestClone_Independent(t *testing.T) {
	g, _ := maze.New(5, 5)
	_ = g.SetStart(maze.Coord{Row: 0, Col: 0})
	c := g.Clone()
	_ = c.ToggleWall(maze.Coord{Row: 1, Col: 1})
	_ = c.SetStart(maze.Coord{Row: 4, Col: 4})

	if g.At(maze.Coord{Row: 1, Col: 1}) != maze.Empty {
		t.Error("wall on clone leaked into original")
	}
	if s, _ := g.Start(); s != (maze.Coord{Row: 0, Col: 0}) {
		t.Errorf("original start = %v; want (0,0)", s)
	}
}

// TestReset clears walls and endpoints.
func TestReset(t *testing.T) {
	g, _ := maze.Parse("S.#..\n.....\n..#..\n.....\n....E\n")
	g.Reset()
	if g.Walls() != 0 {
		t.Errorf("Walls after Reset = %d; want 0", g.Walls())
	}
	if _, ok := g.Start(); ok {
		t.Error("start survived Reset")
	}
	if _, ok := g.End(); ok {
		t.Error("end survived Reset")
	}
}

// TestResize clamps and empties the grid.
func TestResize(t *testing.T) {
	g, _ := maze.New(10, 10)
	_ = g.SetEnd(maze.Coord{Row: 9, Col: 9})
	rows, cols := g.Resize(3, 40)
	if rows != 5 || cols != 20 || g.Rows() != 5 || g.Cols() != 20 {
		t.Fatalf("Resize(3,40) = %dx%d; want 5x20", rows, cols)
	}
	if _, ok := g.End(); ok {
		t.Error("end survived Resize")
	}
	if g.At(maze.Coord{Row: 4, Col: 19}) != maze.Empty {
		t.Error("resized grid not empty")
	}
}
