package simulate

import (
	"context"
	"errors"
	"time"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
)

// DefaultInterval is the delay between two mouse steps.
const DefaultInterval = 500 * time.Millisecond

var (
	// ErrEmptyPath is returned when there is nothing to animate.
	ErrEmptyPath = errors.New("simulate: empty path")
	// ErrBusy is returned when an edit or search is requested while the
	// mouse is moving.
	ErrBusy = errors.New("simulate: simulation in progress")
)

// StepFunc receives the index and cell of each revealed path entry.
type StepFunc func(step int, at maze.Coord)

// Run calls onStep for each cell of path, one per interval. The first cell
// is revealed after the first interval. Returns nil once every cell has been
// revealed, ctx.Err() if ctx is cancelled first.
func Run(ctx context.Context, path bfs.Path, interval time.Duration, onStep StepFunc) error {
	if len(path) == 0 {
		return ErrEmptyPath
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for step := 0; step < len(path); {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if onStep != nil {
				onStep(step, path[step])
			}
			step++
		}
	}
	return nil
}
