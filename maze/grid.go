package maze

import "fmt"

// New builds an all-Empty rows×cols grid with no endpoints.
// Returns ErrSize if either dimension lies outside [MinSize, MaxSize].
// Complexity: O(rows×cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < MinSize || rows > MaxSize || cols < MinSize || cols > MaxSize {
		return nil, fmt.Errorf("%w: %dx%d (want %d..%d per axis)", ErrSize, rows, cols, MinSize, MaxSize)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]CellState, rows*cols),
		start: Unset,
		end:   Unset,
	}, nil
}

// ClampSize maps n into [MinSize, MaxSize].
func ClampSize(n int) int {
	if n < MinSize {
		return MinSize
	}
	if n > MaxSize {
		return MaxSize
	}
	return n
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// At returns the state of cell c. Out-of-bounds coordinates read as Wall so
// that traversals treat the border as closed.
func (g *Grid) At(c Coord) CellState {
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[g.Index(c)]
}

// Index maps c to its row-major position. c must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Start returns the start cell and whether one is placed.
func (g *Grid) Start() (Coord, bool) {
	return g.start, g.start != Unset
}

// End returns the end cell and whether one is placed.
func (g *Grid) End() (Coord, bool) {
	return g.end, g.end != Unset
}

// Walls returns the number of Wall cells.
func (g *Grid) Walls() int {
	n := 0
	for _, s := range g.cells {
		if s == Wall {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g. Searches run over a clone so later edits
// cannot change a grid that is being read.
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
		start: g.start,
		end:   g.end,
	}
}

// Reset clears every cell to Empty and removes both endpoints.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.start, g.end = Unset, Unset
}

// Resize replaces g with an empty grid of the clamped dimensions.
// It returns the dimensions actually applied.
func (g *Grid) Resize(rows, cols int) (int, int) {
	g.rows, g.cols = ClampSize(rows), ClampSize(cols)
	g.cells = make([]CellState, g.rows*g.cols)
	g.start, g.end = Unset, Unset
	return g.rows, g.cols
}
