package api

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/micromouse/bfs"
	"github.com/katalvlaran/micromouse/maze"
)

// RouteRequest carries a maze in its text layout, one string per row.
type RouteRequest struct {
	Maze []string `json:"maze" binding:"required,min=1"`
}

// RouteResponse is returned for a successful search. Length counts the
// cells on the path, start and end included.
type RouteResponse struct {
	ID        uuid.UUID    `json:"id"`
	Length    int          `json:"length"`
	Path      []maze.Coord `json:"path"`
	Distances [][]*int     `json:"distances"`
}

// DistancesResponse carries only the distance field.
type DistancesResponse struct {
	ID        uuid.UUID `json:"id"`
	Reached   int       `json:"reached"`
	Distances [][]*int  `json:"distances"`
}

// ErrorResponse reports a failed search. Distances is present when the
// field was built before the failure.
type ErrorResponse struct {
	ID        uuid.UUID `json:"id"`
	Error     string    `json:"error"`
	Distances [][]*int  `json:"distances,omitempty"`
}

// distanceTable renders df with null for unreachable cells.
func distanceTable(df *bfs.DistanceField) [][]*int {
	if df == nil {
		return nil
	}
	table := df.Table()
	out := make([][]*int, len(table))
	for r, row := range table {
		out[r] = make([]*int, len(row))
		for c := range row {
			if row[c] == bfs.Unreachable {
				continue
			}
			out[r][c] = &row[c]
		}
	}
	return out
}
