// Package simulate drives the micromouse along a computed route and holds the
// editing session a front end works against.
//
// Run reveals a bfs.Path one cell per tick until the route is exhausted or
// the context is cancelled. Session wraps a maze.Grid with the click mode,
// the last search result and the mouse position, and refuses edits and new
// searches while an animation is in flight.
package simulate
