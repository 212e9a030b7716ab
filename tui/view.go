package tui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
	"github.com/katalvlaran/micromouse/simulate"
)

// Board geometry: one header line, then one text row per maze row, each
// cell cellWidth columns wide.
const (
	cellWidth = 3
	boardTop  = 2
)

// Styles used by the board.
var (
	styleDefault = tcell.StyleDefault
	styleWall    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorGray)
	styleStart   = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen)
	styleEnd     = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorYellow)
	styleMouse   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorRed)
	styleError   = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

// View renders session snapshots onto a tcell screen.
type View struct {
	screen tcell.Screen
}

// NewView returns a View drawing on screen.
func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// CellAt maps a board coordinate to the screen column and row of its
// first character.
func CellAt(c maze.Coord) (x, y int) {
	return c.Col * cellWidth, boardTop + c.Row
}

// Draw paints snap with the cursor highlighted and status as the bottom line.
func (v *View) Draw(snap simulate.Snapshot, cursor maze.Coord, status string) {
	v.screen.Clear()
	g := snap.Grid

	header := fmt.Sprintf("Micromouse %dx%d  mode: %s", g.Rows(), g.Cols(), snap.Mode)
	if snap.Simulating {
		header += "  [running]"
	}
	v.text(0, 0, header, styleDefault)

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			at := maze.Coord{Row: r, Col: c}
			label, style := cellLook(snap, at)
			if at == cursor {
				style = style.Reverse(true)
			}
			x, y := CellAt(at)
			v.text(x, y, label, style)
		}
	}

	bottom := boardTop + g.Rows() + 1
	if snap.Field != nil && len(snap.Path) > 0 {
		v.text(0, bottom, fmt.Sprintf("route: %d steps, %d cells explored", snap.Path.Steps(), snap.Field.Reached()), styleDefault)
	}
	if snap.Err != nil {
		v.text(0, bottom, describe(snap.Err), styleError)
	}
	v.text(0, bottom+1, status, styleDefault)
	v.screen.Show()
}

// cellLook picks the three-character label and style of one board cell.
func cellLook(snap simulate.Snapshot, at maze.Coord) (string, tcell.Style) {
	if at == snap.Mouse {
		return " @ ", styleMouse
	}
	switch snap.Grid.At(at) {
	case maze.Wall:
		return "###", styleWall
	case maze.Start:
		return " S ", styleStart
	case maze.End:
		return " E ", styleEnd
	}
	style := styleDefault
	if snap.Path.Contains(at) {
		style = stylePath
	}
	if snap.Field != nil && snap.Field.Reachable(at) {
		return fmt.Sprintf("%3d", snap.Field.At(at)), style
	}
	return " . ", style
}

// describe turns a search error into the message shown to the user.
func describe(err error) string {
	switch {
	case errors.Is(err, bfs.ErrMissingEndpoint):
		return "Place a start and an end first."
	case errors.Is(err, bfs.ErrUnreachable), errors.Is(err, bfs.ErrNoPath):
		return "No valid path found!"
	default:
		return err.Error()
	}
}

func (v *View) text(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, style)
	}
}
