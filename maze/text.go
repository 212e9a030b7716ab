package maze

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Parse builds a Grid from its text layout ('.', '#', 'S', 'E').
// Blank lines and surrounding whitespace are ignored.
func Parse(text string) (*Grid, error) {
	return Read(strings.NewReader(text))
}

// Read builds a Grid from a text layout read from r.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrSize, ErrUnknownCell or
// ErrDuplicateEndpoint for malformed input.
func Read(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read layout: %w", err)
	}
	return FromRows(lines)
}

// FromRows builds a Grid from one string per row.
func FromRows(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(rows), w)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		for col := 0; col < w; col++ {
			c := Coord{Row: r, Col: col}
			switch row[col] {
			case '.':
			case '#':
				g.cells[g.Index(c)] = Wall
			case 'S':
				if g.start != Unset {
					return nil, fmt.Errorf("%w: second start at %s", ErrDuplicateEndpoint, c)
				}
				g.cells[g.Index(c)] = Start
				g.start = c
			case 'E':
				if g.end != Unset {
					return nil, fmt.Errorf("%w: second end at %s", ErrDuplicateEndpoint, c)
				}
				g.cells[g.Index(c)] = End
				g.end = c
			default:
				return nil, fmt.Errorf("%w: %q at %s", ErrUnknownCell, row[col], c)
			}
		}
	}
	return g, nil
}

// Lines renders g as one string per row.
func (g *Grid) Lines() []string {
	out := make([]string, g.rows)
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		sb.Reset()
		for c := 0; c < g.cols; c++ {
			sb.WriteString(g.cells[r*g.cols+c].String())
		}
		out[r] = sb.String()
	}
	return out
}

// String renders g in its text layout, one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n") + "\n"
}
