package maze

import "fmt"

// Apply performs the click action of mode m on cell c.
// Returns ErrOutOfBounds if c is outside the grid.
func (g *Grid) Apply(m Mode, c Coord) error {
	switch m {
	case ModeStart:
		return g.SetStart(c)
	case ModeEnd:
		return g.SetEnd(c)
	default:
		return g.ToggleWall(c)
	}
}

// SetStart moves the start cell to c. The previous start becomes Empty.
// Placing the start over the end removes the end.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: start %s", ErrOutOfBounds, c)
	}
	if g.start != Unset {
		g.cells[g.Index(g.start)] = Empty
	}
	if g.end == c {
		g.end = Unset
	}
	g.cells[g.Index(c)] = Start
	g.start = c
	return nil
}

// SetEnd moves the end cell to c. The previous end becomes Empty.
// Placing the end over the start removes the start.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: end %s", ErrOutOfBounds, c)
	}
	if g.end != Unset {
		g.cells[g.Index(g.end)] = Empty
	}
	if g.start == c {
		g.start = Unset
	}
	g.cells[g.Index(c)] = End
	g.end = c
	return nil
}

// ToggleWall flips c between Wall and Empty. A Start or End cell turns into
// a Wall and loses its endpoint role.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: wall %s", ErrOutOfBounds, c)
	}
	i := g.Index(c)
	switch g.cells[i] {
	case Wall:
		g.cells[i] = Empty
		return nil
	case Start:
		g.start = Unset
	case End:
		g.end = Unset
	}
	g.cells[i] = Wall
	return nil
}
