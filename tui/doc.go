// Package tui is an interactive terminal front end for the micromouse
// simulator, drawn with tcell.
//
// The board shows walls as '#', the start as S, the end as E, the mouse as
// '@', every explored cell's distance from the start after a search, and the
// route highlighted in yellow. Keys:
//
//	arrows        move the cursor
//	s / e / w     choose start, end or wall mode
//	space         apply the mode at the cursor
//	enter         search and animate the mouse
//	x             stop the animation
//	r             reset the board
//	+ / -         grow or shrink the board
//	q, esc        quit
package tui
