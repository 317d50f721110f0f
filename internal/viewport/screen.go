// Package viewport implements the selection/scrolling controller: it
// tracks which visible node sits at the top of the screen and which is
// selected, and computes the minimal set of screen rows that must be
// repainted after a scroll, selection change, toggle, resize, or search.
// It never talks to the terminal directly — it writes through the Screen
// interface, which internal/term implements with real ANSI sequences.
package viewport

// Screen is the minimal terminal-writing surface the controller needs.
// Rows and columns are 1-indexed, matching the ANSI cursor-position
// convention ("ESC[y;xH").
type Screen interface {
	MoveTo(row, col int)
	EraseToEOL()
	Clear()
	DeleteLines(n int)
	InsertLines(n int)
	Print(s string)
}
