// Package bfs computes micromouse routes over a maze.Grid: a breadth-first
// distance field from the start cell, and a shortest path recovered from
// that field by greedy descent from the end cell.
//
// What
//
//   - Build runs a single-source BFS and returns a DistanceField holding the
//     exact hop count from start to every reachable cell; unreached cells
//     hold Unreachable.
//   - Reconstruct walks the field backward from end, always stepping to the
//     neighbor with the strictly smallest distance, and returns the Path
//     from start to end.
//   - Solve chains both for a *maze.Grid carrying its own endpoints.
//   - Hooks (WithOnEnqueue, WithOnVisit) observe the exploration.
//
// Determinism
//
//	Neighbors are always expanded and inspected in the order Up, Down,
//	Left, Right (maze.Directions). Among equally short routes Reconstruct
//	therefore returns the same one on every call: the first minimal
//	neighbor in that order wins. This is not the route parent pointers
//	would give; both are shortest.
//
// Frontier semantics
//
//	A cell may be enqueued before it is visited; an item popped for a cell
//	that was already visited is skipped. On an unweighted grid every cell is
//	in practice enqueued once, at its minimum distance.
//
// Errors
//
//   - ErrMissingEndpoint: start or end unset / out of bounds, or start on a Wall.
//   - ErrUnreachable: the end cell has no finite distance.
//   - ErrNoPath: the descent found no strictly smaller neighbor before start;
//     the field is inconsistent with the endpoints.
//
// All three mean "no route" and are safe to surface to the user.
//
// Complexity (N = rows × cols)
//
//   - Build:       Time O(N), Memory O(N)
//   - Reconstruct: Time O(distance(end)), Memory O(distance(end))
//
// Usage
//
//	g, _ := maze.Parse(layout)
//	res, err := bfs.Solve(g)
//	switch {
//	case errors.Is(err, bfs.ErrUnreachable):
//	    // res.Field is still set; render the explored distances
//	case err != nil:
//	    // handle ErrMissingEndpoint / ErrNoPath
//	}
//	for _, c := range res.Path { /* ... */ }
package bfs
