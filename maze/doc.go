// Package maze models the micromouse arena as a rectangular table of cell
// states and provides the editing operations a front end needs to build one.
//
// What:
//
//   - Grid stores Rows×Cols cells row-major in a flat slice.
//   - Each cell is Empty, Wall, Start or End; at most one Start and one End.
//   - Apply/SetStart/SetEnd/ToggleWall edit the grid the way a click-to-edit
//     board does: placing an endpoint moves it, toggling a wall over an
//     endpoint removes that endpoint.
//   - Parse/Read/String convert to and from a plain text layout.
//
// Text layout:
//
//	S..#.
//	.#.#.
//	.#...
//	.####
//	....E
//
//	'.' Empty, '#' Wall, 'S' Start, 'E' End.
//
// Dimensions:
//
//   - Both axes must lie in [MinSize, MaxSize] (5..20). ClampSize maps any
//     requested size into that range.
//
// Errors:
//
//   - ErrSize: rows or cols outside [MinSize, MaxSize].
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownCell, ErrDuplicateEndpoint:
//     text layout problems.
//
// Complexity:
//
//   - New, Reset, Clone, Parse, String: O(Rows×Cols).
//   - At, Apply, SetStart, SetEnd, ToggleWall: O(1).
package maze
