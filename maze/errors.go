package maze

import "errors"

var (
	// ErrSize indicates rows or cols fall outside [MinSize, MaxSize].
	ErrSize = errors.New("maze: dimensions out of range")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("maze: coordinate out of bounds")
	// ErrEmptyGrid indicates a text layout with no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrUnknownCell indicates an unrecognised character in a text layout.
	ErrUnknownCell = errors.New("maze: unknown cell symbol")
	// ErrDuplicateEndpoint indicates more than one Start or End in a text layout.
	ErrDuplicateEndpoint = errors.New("maze: duplicate start or end cell")
)
