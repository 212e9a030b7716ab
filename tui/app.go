package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/simulate"
)

const redrawInterval = 50 * time.Millisecond

// App ties a Session to a terminal: it reads keys, edits the board and
// redraws on a fixed tick so the animation shows up.
type App struct {
	screen  tcell.Screen
	session *simulate.Session
	view    *View
	sound   *Sound
	cursor  maze.Coord
	status  string
	ctx     context.Context
}

// NewApp returns an App for session on an initialized screen. sound may be nil.
func NewApp(screen tcell.Screen, session *simulate.Session, sound *Sound) *App {
	return &App{
		screen:  screen,
		session: session,
		view:    NewView(screen),
		sound:   sound,
		cursor:  maze.Coord{Row: 0, Col: 0},
		status:  "arrows move, s/e/w mode, space apply, enter run, q quit",
		ctx:     context.Background(),
	}
}

// Run processes events until the user quits or ctx is cancelled. It stops
// any running animation before returning.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx
	defer a.session.Stop()

	ticker := time.NewTicker(redrawInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return nil
			}
			a.draw()
		case <-ticker.C:
			a.draw()
		}
	}
}

func (a *App) draw() {
	a.view.Draw(a.session.Snapshot(), a.cursor, a.status)
}

// handleEvent returns false when the app should exit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

// handleKey applies one key press and returns false on quit.
func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		a.moveCursor(-1, 0)
	case tcell.KeyDown:
		a.moveCursor(1, 0)
	case tcell.KeyLeft:
		a.moveCursor(0, -1)
	case tcell.KeyRight:
		a.moveCursor(0, 1)
	case tcell.KeyEnter:
		a.start()
	case tcell.KeyRune:
		return a.handleRune(r)
	}
	return true
}

func (a *App) handleRune(r rune) bool {
	switch r {
	case 'q':
		return false
	case 's':
		a.session.SetMode(maze.ModeStart)
		a.status = "mode: start"
	case 'e':
		a.session.SetMode(maze.ModeEnd)
		a.status = "mode: end"
	case 'w':
		a.session.SetMode(maze.ModeWall)
		a.status = "mode: wall"
	case ' ':
		a.report(a.session.Click(a.cursor), "")
	case 'x':
		a.session.Stop()
		a.status = "stopped"
	case 'r':
		a.report(a.session.Reset(), "board reset")
		a.cursor = maze.Coord{}
	case '+', '-':
		delta := 1
		if r == '-' {
			delta = -1
		}
		g := a.session.Snapshot().Grid
		rows, cols := maze.ClampSize(g.Rows()+delta), maze.ClampSize(g.Cols()+delta)
		a.report(a.session.Resize(rows, cols), fmt.Sprintf("board %dx%d", rows, cols))
		a.cursor = maze.Coord{}
	}
	return true
}

// start launches a search + animation and reports the outcome.
func (a *App) start() {
	end, _ := a.session.Snapshot().Grid.End()
	err := a.session.Start(a.ctx, func(_ int, at maze.Coord) {
		if at == end {
			a.sound.Arrive()
			return
		}
		a.sound.Step()
	})
	if err == nil {
		snap := a.session.Snapshot()
		a.status = fmt.Sprintf("running: %d steps", snap.Path.Steps())
		return
	}
	a.report(err, "")
}

func (a *App) report(err error, ok string) {
	switch {
	case errors.Is(err, simulate.ErrBusy):
		a.status = "simulation in progress"
	case err != nil:
		a.status = describe(err)
	case ok != "":
		a.status = ok
	}
}

func (a *App) moveCursor(dr, dc int) {
	g := a.session.Snapshot().Grid
	next := a.cursor.Add(maze.Coord{Row: dr, Col: dc})
	if g.InBounds(next) {
		a.cursor = next
	}
}
