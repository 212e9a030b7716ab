// Package bfs provides breadth-first distance fields and greedy shortest-path
// reconstruction over a maze grid.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
)

// queueItem pairs a cell with the distance it was enqueued at.
type queueItem struct {
	at   maze.Coord
	dist int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid    Grid
	opts    Options
	queue   []queueItem
	visited []bool
	field   *DistanceField
}

// Build runs breadth-first search on g from start and returns the distance
// field. end is only validated, never searched for: the whole reachable
// region is explored so callers can display it even when end is walled off.
// Returns ErrMissingEndpoint if start or end lies outside g or start is a Wall.
func Build(g Grid, start, end maze.Coord, opts ...Option) (*DistanceField, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	rows, cols := g.Rows(), g.Cols()
	if !inBounds(start, rows, cols) {
		return nil, fmt.Errorf("%w: start %s", ErrMissingEndpoint, start)
	}
	if !inBounds(end, rows, cols) {
		return nil, fmt.Errorf("%w: end %s", ErrMissingEndpoint, end)
	}
	if g.At(start) == maze.Wall {
		return nil, fmt.Errorf("%w: start %s is a wall", ErrMissingEndpoint, start)
	}

	n := rows * cols
	w := &walker{
		grid:    g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		field:   newDistanceField(rows, cols),
	}
	w.field.dist[w.index(start)] = 0
	w.enqueue(start, 0)
	w.loop()

	return w.field, nil
}

// Solve reads the endpoints from g, builds the distance field and
// reconstructs the path. Result.Field is set whenever Build succeeded, so it
// is available alongside ErrUnreachable and ErrNoPath.
func Solve(g *maze.Grid, opts ...Option) (*Result, error) {
	start, ok := g.Start()
	if !ok {
		return nil, fmt.Errorf("%w: start not placed", ErrMissingEndpoint)
	}
	end, ok := g.End()
	if !ok {
		return nil, fmt.Errorf("%w: end not placed", ErrMissingEndpoint)
	}
	field, err := Build(g, start, end, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Field: field}
	res.Path, err = Reconstruct(field, start, end)
	if err != nil {
		return res, err
	}
	return res, nil
}

func (w *walker) index(c maze.Coord) int {
	return c.Row*w.field.cols + c.Col
}

// enqueue pushes c with distance d and calls OnEnqueue.
func (w *walker) enqueue(c maze.Coord, d int) {
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{at: c, dist: d})
}

// loop processes the frontier until it is exhausted.
func (w *walker) loop() {
	for head := 0; head < len(w.queue); head++ {
		item := w.queue[head]
		i := w.index(item.at)
		if w.visited[i] {
			continue
		}
		w.visited[i] = true
		w.opts.OnVisit(item.at, item.dist)
		w.enqueueNeighbors(item)
	}
}

// enqueueNeighbors relaxes each open, unvisited neighbor in Up, Down, Left,
// Right order.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.dist + 1
	for _, d := range maze.Directions {
		nb := item.at.Add(d)
		if !inBounds(nb, w.field.rows, w.field.cols) || w.grid.At(nb) == maze.Wall {
			continue
		}
		i := w.index(nb)
		if w.visited[i] {
			continue
		}
		if cur := w.field.dist[i]; cur == Unreachable || next < cur {
			w.field.dist[i] = next
			w.enqueue(nb, next)
		}
	}
}

func inBounds(c maze.Coord, rows, cols int) bool {
	return c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols
}
