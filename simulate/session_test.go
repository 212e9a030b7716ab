package simulate_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/simulate"
)

func newSession(t *testing.T, layout string, interval time.Duration) *simulate.Session {
	t.Helper()
	g, err := maze.Parse(layout)
	require.NoError(t, err)
	return simulate.NewSessionFromGrid(g, interval)
}

func TestSession_ClickModes(t *testing.T) {
	s := simulate.NewSession(3, 30, time.Millisecond)
	snap := s.Snapshot()
	require.Equal(t, 5, snap.Grid.Rows())
	require.Equal(t, 20, snap.Grid.Cols())
	require.Equal(t, maze.ModeWall, snap.Mode)

	require.NoError(t, s.Click(maze.Coord{Row: 1, Col: 1}))
	s.SetMode(maze.ModeStart)
	require.NoError(t, s.Click(maze.Coord{Row: 0, Col: 0}))
	s.SetMode(maze.ModeEnd)
	require.NoError(t, s.Click(maze.Coord{Row: 4, Col: 19}))

	snap = s.Snapshot()
	assert.Equal(t, maze.Wall, snap.Grid.At(maze.Coord{Row: 1, Col: 1}))
	assert.Equal(t, maze.Start, snap.Grid.At(maze.Coord{Row: 0, Col: 0}))
	assert.Equal(t, maze.End, snap.Grid.At(maze.Coord{Row: 4, Col: 19}))
	assert.Equal(t, maze.ModeEnd, snap.Mode)
}

func TestSession_StartAnimatesRoute(t *testing.T) {
	s := newSession(t, `
		S#E..
		.....
		.....
		.....
		.....
	`, time.Millisecond)

	var mu sync.Mutex
	var seen []maze.Coord
	require.NoError(t, s.Start(context.Background(), func(_ int, at maze.Coord) {
		mu.Lock()
		seen = append(seen, at)
		mu.Unlock()
	}))
	s.Wait()

	snap := s.Snapshot()
	require.False(t, snap.Simulating)
	require.NoError(t, snap.Err)
	require.Equal(t, maze.Coord{Row: 0, Col: 2}, snap.Mouse)
	require.Equal(t, 4, snap.Field.At(maze.Coord{Row: 0, Col: 2}))
	want := bfs.Path{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 0, Col: 2}}
	require.Equal(t, want, snap.Path)
	mu.Lock()
	require.Equal(t, []maze.Coord(want), seen)
	mu.Unlock()
}

func TestSession_BusyWhileSimulating(t *testing.T) {
	s := newSession(t, "S....\n.....\n.....\n.....\n....E", time.Hour)
	require.NoError(t, s.Start(context.Background(), nil))
	require.True(t, s.Simulating())

	require.ErrorIs(t, s.Start(context.Background(), nil), simulate.ErrBusy)
	require.ErrorIs(t, s.Click(maze.Coord{Row: 2, Col: 2}), simulate.ErrBusy)
	require.ErrorIs(t, s.Reset(), simulate.ErrBusy)
	require.ErrorIs(t, s.Resize(8, 8), simulate.ErrBusy)

	s.Stop()
	require.False(t, s.Simulating())
	snap := s.Snapshot()
	require.NoError(t, snap.Err)
	require.Equal(t, maze.Unset, snap.Mouse)
	require.NoError(t, s.Click(maze.Coord{Row: 2, Col: 2}))
}

func TestSession_NoRoute(t *testing.T) {
	s := newSession(t, `
		S....
		.....
		..###
		..#E#
		..###
	`, time.Millisecond)
	err := s.Start(context.Background(), nil)
	require.ErrorIs(t, err, bfs.ErrUnreachable)

	snap := s.Snapshot()
	require.False(t, snap.Simulating)
	require.ErrorIs(t, snap.Err, bfs.ErrUnreachable)
	require.NotNil(t, snap.Field)
	require.Empty(t, snap.Path)
}

func TestSession_MissingEndpoint(t *testing.T) {
	s := simulate.NewSession(5, 5, time.Millisecond)
	require.ErrorIs(t, s.Start(context.Background(), nil), bfs.ErrMissingEndpoint)
	require.Nil(t, s.Snapshot().Field)
}

func TestSession_ResetAndResizeClearResult(t *testing.T) {
	s := newSession(t, "S...E\n.....\n.....\n.....\n.....", time.Millisecond)
	require.NoError(t, s.Start(context.Background(), nil))
	s.Wait()
	require.NotNil(t, s.Snapshot().Field)

	require.NoError(t, s.Reset())
	snap := s.Snapshot()
	require.Nil(t, snap.Field)
	require.Empty(t, snap.Path)
	_, ok := snap.Grid.Start()
	require.False(t, ok)

	require.NoError(t, s.Resize(12, 7))
	snap = s.Snapshot()
	require.Equal(t, 12, snap.Grid.Rows())
	require.Equal(t, 7, snap.Grid.Cols())
}

func TestSession_SnapshotIsACopy(t *testing.T) {
	s := simulate.NewSession(5, 5, time.Millisecond)
	snap := s.Snapshot()
	_ = snap.Grid.ToggleWall(maze.Coord{Row: 0, Col: 0})
	require.Equal(t, maze.Empty, s.Snapshot().Grid.At(maze.Coord{Row: 0, Col: 0}))
}
