package simulate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
)

// Snapshot is a consistent copy of the session state for rendering.
type Snapshot struct {
	Grid       *maze.Grid
	Mode       maze.Mode
	Field      *bfs.DistanceField // nil until a search ran
	Path       bfs.Path
	Mouse      maze.Coord // maze.Unset when no mouse is shown
	Simulating bool
	Err        error // outcome of the last search, nil on success
}

// Session is the editing and simulation state behind a board front end.
// It is safe for concurrent use; the animation goroutine and the UI share it.
type Session struct {
	mu         sync.Mutex
	grid       *maze.Grid
	mode       maze.Mode
	interval   time.Duration
	field      *bfs.DistanceField
	path       bfs.Path
	mouse      maze.Coord
	simulating bool
	lastErr    error
	cancel     context.CancelFunc
	done       chan struct{}
}

// NewSession starts a session on an empty rows×cols board (clamped to the
// allowed range) in wall mode.
func NewSession(rows, cols int, interval time.Duration) *Session {
	g, _ := maze.New(maze.ClampSize(rows), maze.ClampSize(cols))
	return NewSessionFromGrid(g, interval)
}

// NewSessionFromGrid starts a session on g. The session takes ownership of g.
func NewSessionFromGrid(g *maze.Grid, interval time.Duration) *Session {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Session{
		grid:     g,
		mode:     maze.ModeWall,
		interval: interval,
		mouse:    maze.Unset,
	}
}

// SetMode selects what Click does.
func (s *Session) SetMode(m maze.Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// Click applies the current mode to c. Clicks during a simulation are
// ignored and report ErrBusy.
func (s *Session) Click(c maze.Coord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.simulating {
		return ErrBusy
	}
	return s.grid.Apply(s.mode, c)
}

// Reset empties the board and forgets the last search.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.simulating {
		return ErrBusy
	}
	s.grid.Reset()
	s.clearResult()
	return nil
}

// Resize replaces the board with an empty one of the clamped size.
func (s *Session) Resize(rows, cols int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.simulating {
		return ErrBusy
	}
	s.grid.Resize(rows, cols)
	s.clearResult()
	return nil
}

// Start solves the current board and animates the mouse along the route in
// a background goroutine. onStep, if non-nil, runs after each move with the
// session unlocked. The search error is returned (and kept for Snapshot)
// when there is no route; the distance field is kept whenever it exists.
func (s *Session) Start(ctx context.Context, onStep StepFunc) error {
	s.mu.Lock()
	if s.simulating {
		s.mu.Unlock()
		return ErrBusy
	}
	s.clearResult()
	res, err := bfs.Solve(s.grid.Clone())
	if res != nil {
		s.field = res.Field
	}
	if err != nil {
		s.lastErr = err
		s.mu.Unlock()
		return err
	}
	s.path = res.Path
	s.simulating = true
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	done := make(chan struct{})
	s.done = done
	path, interval := s.path, s.interval
	s.mu.Unlock()

	go func() {
		defer close(done)
		err := Run(runCtx, path, interval, func(step int, at maze.Coord) {
			s.mu.Lock()
			s.mouse = at
			s.mu.Unlock()
			if onStep != nil {
				onStep(step, at)
			}
		})
		s.mu.Lock()
		s.simulating = false
		s.cancel = nil
		if err != nil && !errors.Is(err, context.Canceled) {
			s.lastErr = fmt.Errorf("simulate: animation stopped: %w", err)
		}
		s.mu.Unlock()
		cancel()
	}()
	return nil
}

// Stop cancels a running animation and waits for it to finish.
// It is a no-op when nothing is running.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Wait blocks until the current animation, if any, ends.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

// Simulating reports whether the mouse is moving.
func (s *Session) Simulating() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.simulating
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	path := make(bfs.Path, len(s.path))
	copy(path, s.path)
	return Snapshot{
		Grid:       s.grid.Clone(),
		Mode:       s.mode,
		Field:      s.field,
		Path:       path,
		Mouse:      s.mouse,
		Simulating: s.simulating,
		Err:        s.lastErr,
	}
}

// clearResult drops the previous search output. Callers hold s.mu.
func (s *Session) clearResult() {
	s.field = nil
	s.path = nil
	s.mouse = maze.Unset
	s.lastErr = nil
}
