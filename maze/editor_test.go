package maze_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/maze"
)

func newGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.New(5, 5)
	require.NoError(t, err)
	return g
}

func TestSetStart_MovesPrevious(t *testing.T) {
	g := newGrid(t)
	require.NoError(t, g.SetStart(maze.Coord{Row: 0, Col: 0}))
	require.NoError(t, g.SetStart(maze.Coord{Row: 2, Col: 2}))

	require.Equal(t, maze.Empty, g.At(maze.Coord{Row: 0, Col: 0}))
	require.Equal(t, maze.Start, g.At(maze.Coord{Row: 2, Col: 2}))
	s, ok := g.Start()
	require.True(t, ok)
	require.Equal(t, maze.Coord{Row: 2, Col: 2}, s)
}

func TestSetEnd_OverStartClearsStart(t *testing.T) {
	g := newGrid(t)
	require.NoError(t, g.SetStart(maze.Coord{Row: 1, Col: 1}))
	require.NoError(t, g.SetEnd(maze.Coord{Row: 1, Col: 1}))

	_, ok := g.Start()
	require.False(t, ok)
	e, ok := g.End()
	require.True(t, ok)
	require.Equal(t, maze.Coord{Row: 1, Col: 1}, e)
	require.Equal(t, maze.End, g.At(e))
}

func TestSetStart_OverEndClearsEnd(t *testing.T) {
	g := newGrid(t)
	require.NoError(t, g.SetEnd(maze.Coord{Row: 3, Col: 3}))
	require.NoError(t, g.Apply(maze.ModeStart, maze.Coord{Row: 3, Col: 3}))

	_, ok := g.End()
	require.False(t, ok)
	require.Equal(t, maze.Start, g.At(maze.Coord{Row: 3, Col: 3}))
}

func TestToggleWall(t *testing.T) {
	g := newGrid(t)
	c := maze.Coord{Row: 2, Col: 4}
	require.NoError(t, g.Apply(maze.ModeWall, c))
	require.Equal(t, maze.Wall, g.At(c))
	require.NoError(t, g.Apply(maze.ModeWall, c))
	require.Equal(t, maze.Empty, g.At(c))
}

func TestToggleWall_OverEndpoint(t *testing.T) {
	g := newGrid(t)
	s, e := maze.Coord{Row: 0, Col: 0}, maze.Coord{Row: 4, Col: 4}
	require.NoError(t, g.SetStart(s))
	require.NoError(t, g.SetEnd(e))

	require.NoError(t, g.ToggleWall(s))
	require.NoError(t, g.ToggleWall(e))
	require.Equal(t, maze.Wall, g.At(s))
	require.Equal(t, maze.Wall, g.At(e))
	_, ok := g.Start()
	require.False(t, ok)
	_, ok = g.End()
	require.False(t, ok)
}

func TestApply_OutOfBounds(t *testing.T) {
	g := newGrid(t)
	for _, m := range []maze.Mode{maze.ModeWall, maze.ModeStart, maze.ModeEnd} {
		require.ErrorIs(t, g.Apply(m, maze.Coord{Row: 5, Col: 0}), maze.ErrOutOfBounds, m.String())
	}
}
