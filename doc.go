// Package micromouse computes and animates shortest routes for a simulated
// maze-solving robot on a small rectangular board.
//
// What is in the box?
//
//	maze/     : the board: Empty/Wall/Start/End cells, click-to-edit operations, text layout
//	bfs/      : the route engine: breadth-first distance field + greedy path reconstruction
//	simulate/ : timed, cancelable animation of the mouse and the editing session state
//	api/      : JSON route API on gin
//	tui/      : interactive terminal simulator on tcell (optional step clicks via beep)
//	config/   : environment / .env configuration
//	cmd/micromouse: the command line: solve, serve, tui
//
// Quick ASCII example:
//
//	S..#.        0  1  2  #  8
//	.#.#.        1  #  3  #  7
//	.#...   →    2  #  4  5  6
//	.####        3  #  #  #  #
//	....E        4  5  6  7  8
//
// The route follows strictly decreasing distances back from E:
// (0,0) (1,0) (2,0) (3,0) (4,0) (4,1) (4,2) (4,3) (4,4).
package micromouse
