package maze

import "fmt"

// Size limits for either axis of a Grid.
const (
	MinSize     = 5
	MaxSize     = 20
	DefaultSize = 10
)

// CellState is the content of a single grid cell.
type CellState uint8

const (
	// Empty is an open floor cell.
	Empty CellState = iota
	// Wall blocks movement.
	Wall
	// Start is where the mouse begins.
	Start
	// End is the goal cell.
	End
)

// String returns the text layout symbol for s.
func (s CellState) String() string {
	switch s {
	case Wall:
		return "#"
	case Start:
		return "S"
	case End:
		return "E"
	default:
		return "."
	}
}

// Mode selects what a click on the board does.
type Mode int

const (
	// ModeWall toggles walls.
	ModeWall Mode = iota
	// ModeStart places the start cell.
	ModeStart
	// ModeEnd places the end cell.
	ModeEnd
)

// String returns a lower-case mode name.
func (m Mode) String() string {
	switch m {
	case ModeStart:
		return "start"
	case ModeEnd:
		return "end"
	default:
		return "wall"
	}
}

// Coord addresses a cell by row and column.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Unset marks an endpoint that has not been placed.
var Unset = Coord{Row: -1, Col: -1}

// String formats c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Directions lists the 4-connected offsets in search order: Up, Down, Left, Right.
// Searches and path reconstruction rely on this order for tie-breaking.
var Directions = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// Grid is a rectangular maze. Cells are stored row-major: index = row*Cols + col.
// The zero value is not usable; build one with New or Parse.
type Grid struct {
	rows, cols int
	cells      []CellState
	start, end Coord
}
