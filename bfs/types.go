// Package bfs provides the distance field, path and option types plus the
// sentinel errors for micromouse route search.
package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
)

// Sentinel errors for route search.
var (
	// ErrMissingEndpoint is returned when start or end is unset or out of
	// bounds, or when start sits on a Wall.
	ErrMissingEndpoint = errors.New("bfs: start or end missing")

	// ErrUnreachable is returned when the end cell was never reached.
	ErrUnreachable = errors.New("bfs: end is unreachable")

	// ErrNoPath is returned when the backward descent gets stuck before
	// reaching start.
	ErrNoPath = errors.New("bfs: no descending path to start")

	// ErrBadDistance is returned by NewDistanceField for a negative entry
	// other than Unreachable.
	ErrBadDistance = errors.New("bfs: invalid distance")
)

// Unreachable is the distance recorded for cells the search never reached.
const Unreachable = -1

// Grid is the read-only view of a maze that Build searches.
// *maze.Grid satisfies it.
type Grid interface {
	Rows() int
	Cols() int
	At(c maze.Coord) maze.CellState
}

// Option configures Build via functional arguments.
type Option func(*Options)

// Options holds the hooks Build invokes while exploring.
type Options struct {
	// OnEnqueue is called when a cell is pushed onto the frontier with its
	// tentative distance.
	OnEnqueue func(c maze.Coord, dist int)

	// OnVisit is called once per cell when it is popped and finalized.
	OnVisit func(c maze.Coord, dist int)
}

// DefaultOptions returns Options with no-op hooks.
func DefaultOptions() Options {
	return Options{
		OnEnqueue: func(maze.Coord, int) {},
		OnVisit:   func(maze.Coord, int) {},
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c maze.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run when a cell is finalized.
func WithOnVisit(fn func(c maze.Coord, dist int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// DistanceField holds the BFS hop count from start for every cell,
// row-major, with Unreachable for cells never reached.
type DistanceField struct {
	rows, cols int
	dist       []int
}

// newDistanceField returns a rows×cols field with every entry Unreachable.
func newDistanceField(rows, cols int) *DistanceField {
	d := make([]int, rows*cols)
	for i := range d {
		d[i] = Unreachable
	}
	return &DistanceField{rows: rows, cols: cols, dist: d}
}

// NewDistanceField builds a field from explicit per-row distances, using
// Unreachable for unreached cells. It exists for callers that restore or
// synthesize a field; every row must have the same length and every entry
// must be Unreachable or non-negative.
func NewDistanceField(rows [][]int) (*DistanceField, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, maze.ErrEmptyGrid
	}
	df := newDistanceField(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != df.cols {
			return nil, maze.ErrNonRectangular
		}
		for c, d := range row {
			if d < 0 && d != Unreachable {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrBadDistance, d, r, c)
			}
		}
		copy(df.dist[r*df.cols:], row)
	}
	return df, nil
}

// Rows returns the number of rows.
func (df *DistanceField) Rows() int { return df.rows }

// Cols returns the number of columns.
func (df *DistanceField) Cols() int { return df.cols }

// InBounds reports whether c lies within the field.
func (df *DistanceField) InBounds(c maze.Coord) bool {
	return c.Row >= 0 && c.Row < df.rows && c.Col >= 0 && c.Col < df.cols
}

// At returns the distance of c, or Unreachable if c was not reached or lies
// outside the field.
func (df *DistanceField) At(c maze.Coord) int {
	if !df.InBounds(c) {
		return Unreachable
	}
	return df.dist[c.Row*df.cols+c.Col]
}

// Reachable reports whether c has a finite distance.
func (df *DistanceField) Reachable(c maze.Coord) bool {
	return df.At(c) != Unreachable
}

// Reached returns the number of cells with a finite distance.
func (df *DistanceField) Reached() int {
	n := 0
	for _, d := range df.dist {
		if d != Unreachable {
			n++
		}
	}
	return n
}

// Max returns the largest finite distance, or Unreachable for an empty field.
func (df *DistanceField) Max() int {
	m := Unreachable
	for _, d := range df.dist {
		if d > m {
			m = d
		}
	}
	return m
}

// Table returns a copy of the field as one slice per row.
func (df *DistanceField) Table() [][]int {
	out := make([][]int, df.rows)
	for r := range out {
		out[r] = make([]int, df.cols)
		copy(out[r], df.dist[r*df.cols:(r+1)*df.cols])
	}
	return out
}

// Equal reports whether two fields have the same shape and distances.
func (df *DistanceField) Equal(other *DistanceField) bool {
	if df == nil || other == nil {
		return df == other
	}
	if df.rows != other.rows || df.cols != other.cols {
		return false
	}
	for i := range df.dist {
		if df.dist[i] != other.dist[i] {
			return false
		}
	}
	return true
}

// Path is an ordered route from start to end; consecutive cells are
// 4-connected.
type Path []maze.Coord

// Steps returns the number of moves along p.
func (p Path) Steps() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether c lies on p.
func (p Path) Contains(c maze.Coord) bool {
	for _, q := range p {
		if q == c {
			return true
		}
	}
	return false
}

// Result bundles the output of Solve.
type Result struct {
	Field *DistanceField
	Path  Path
}
