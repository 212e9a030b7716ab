package bfs

import (
	"fmt"

	"github.com/katalvlaran/micromouse/maze"
)

// Reconstruct recovers a shortest path from start to end by descending df
// from end. At each cell it moves to the in-bounds neighbor with the
// strictly smallest distance; ties go to the first neighbor in Up, Down,
// Left, Right order. The returned path runs start → end and has
// df.At(end)+1 cells.
//
// Returns ErrMissingEndpoint if start or end lies outside df,
// ErrUnreachable if end has no finite distance, and ErrNoPath if a cell
// has no smaller neighbor before start is reached.
func Reconstruct(df *DistanceField, start, end maze.Coord) (Path, error) {
	if !df.InBounds(start) {
		return nil, fmt.Errorf("%w: start %s", ErrMissingEndpoint, start)
	}
	if !df.InBounds(end) {
		return nil, fmt.Errorf("%w: end %s", ErrMissingEndpoint, end)
	}
	if !df.Reachable(end) {
		return nil, fmt.Errorf("%w: %s", ErrUnreachable, end)
	}
	if df.At(end) < 0 {
		return nil, fmt.Errorf("%w: end %s has distance %d", ErrNoPath, end, df.At(end))
	}

	// build reversed path
	path := make(Path, 0, df.At(end)+1)
	cur := end
	for cur != start {
		path = append(path, cur)
		next, ok := df.descend(cur)
		if !ok {
			return nil, fmt.Errorf("%w: stuck at %s (distance %d)", ErrNoPath, cur, df.At(cur))
		}
		cur = next
	}
	path = append(path, start)

	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}

// descend returns the neighbor of c with the smallest finite distance, if
// that distance is strictly below c's own.
func (df *DistanceField) descend(c maze.Coord) (maze.Coord, bool) {
	best, bestDist := c, df.At(c)
	for _, d := range maze.Directions {
		nb := c.Add(d)
		nd := df.At(nb)
		if nd == Unreachable {
			continue
		}
		if nd < bestDist {
			best, bestDist = nb, nd
		}
	}
	return best, best != c
}
