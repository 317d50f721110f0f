// Package prompt implements the one-line modal input editor used to read
// a search query: insert/delete at a cursor, grapheme-cluster aware so
// combining marks and wide characters move as one unit, with a small
// history ring and a live callback fired after every edit.
package prompt

import (
	"github.com/rivo/uniseg"
)

// Editor is a single-line input with cursor and history.
type Editor struct {
	runes  []rune
	cursor int // index into runes; moves by whole grapheme clusters

	history    []string
	historyPos int
	saved      string // the in-progress line, stashed while browsing history

	onChange func(string)
}

// New creates an Editor with the given live-edit callback (may be nil).
func New(onChange func(string)) *Editor {
	return &Editor{onChange: onChange}
}

// Text returns the current line content.
func (e *Editor) Text() string {
	return string(e.runes)
}

// Cursor returns the cursor's position, in runes, for the terminal device
// to place the hardware cursor.
func (e *Editor) Cursor() int {
	return e.cursor
}

// Reset clears the line and cursor and returns history browsing to idle.
func (e *Editor) Reset() {
	e.runes = nil
	e.cursor = 0
	e.historyPos = len(e.history)
	e.saved = ""
}

// Insert inserts s at the cursor, advancing the cursor past it, and fires
// the change callback.
func (e *Editor) Insert(s string) {
	if s == "" {
		return
	}
	ins := []rune(s)
	out := make([]rune, 0, len(e.runes)+len(ins))
	out = append(out, e.runes[:e.cursor]...)
	out = append(out, ins...)
	out = append(out, e.runes[e.cursor:]...)
	e.runes = out
	e.cursor += len(ins)
	e.fire()
}

// DeleteBackward removes the grapheme cluster immediately before the
// cursor (backspace).
func (e *Editor) DeleteBackward() {
	if e.cursor == 0 {
		return
	}
	start := graphemeStart(e.runes, e.cursor)
	e.runes = append(e.runes[:start], e.runes[e.cursor:]...)
	e.cursor = start
	e.fire()
}

// DeleteForward removes the grapheme cluster at the cursor (delete key).
func (e *Editor) DeleteForward() {
	if e.cursor >= len(e.runes) {
		return
	}
	end := graphemeEnd(e.runes, e.cursor)
	e.runes = append(e.runes[:e.cursor], e.runes[end:]...)
	e.fire()
}

// MoveLeft/MoveRight step the cursor by one grapheme cluster.
func (e *Editor) MoveLeft() {
	if e.cursor > 0 {
		e.cursor = graphemeStart(e.runes, e.cursor)
	}
}

func (e *Editor) MoveRight() {
	if e.cursor < len(e.runes) {
		e.cursor = graphemeEnd(e.runes, e.cursor)
	}
}

// Home/End jump to the start/end of the line.
func (e *Editor) Home() { e.cursor = 0 }
func (e *Editor) End()  { e.cursor = len(e.runes) }

// ClearToEnd deletes from the cursor to the end of the line (^K-style).
func (e *Editor) ClearToEnd() {
	if e.cursor >= len(e.runes) {
		return
	}
	e.runes = e.runes[:e.cursor]
	e.fire()
}

// HistoryPrev/HistoryNext browse e's history ring, stashing the
// in-progress line so it's restored when browsing back down past it.
func (e *Editor) HistoryPrev() {
	if e.historyPos == 0 {
		return
	}
	if e.historyPos == len(e.history) {
		e.saved = e.Text()
	}
	e.historyPos--
	e.setText(e.history[e.historyPos])
}

func (e *Editor) HistoryNext() {
	if e.historyPos >= len(e.history) {
		return
	}
	e.historyPos++
	if e.historyPos == len(e.history) {
		e.setText(e.saved)
		return
	}
	e.setText(e.history[e.historyPos])
}

// Submit appends the current line to history (if non-empty and distinct
// from the last entry) and returns it.
func (e *Editor) Submit() string {
	text := e.Text()
	if text != "" && (len(e.history) == 0 || e.history[len(e.history)-1] != text) {
		e.history = append(e.history, text)
	}
	e.historyPos = len(e.history)
	return text
}

func (e *Editor) setText(s string) {
	e.runes = []rune(s)
	e.cursor = len(e.runes)
	e.fire()
}

func (e *Editor) fire() {
	if e.onChange != nil {
		e.onChange(e.Text())
	}
}

// graphemeStart/graphemeEnd find the boundary of the grapheme cluster
// touching rune index i, using uniseg's cluster boundary detection so a
// combining mark or wide emoji moves and deletes as a single unit instead
// of one code point at a time.
func graphemeStart(runes []rune, i int) int {
	bounds := runeBoundaries(runes)
	prev := 0
	for _, b := range bounds {
		if b >= i {
			break
		}
		prev = b
	}
	return prev
}

func graphemeEnd(runes []rune, i int) int {
	bounds := runeBoundaries(runes)
	for _, b := range bounds {
		if b > i {
			return b
		}
	}
	return len(runes)
}

// runeBoundaries returns the rune offsets (not byte offsets) where each
// grapheme cluster in runes begins, plus a trailing offset at len(runes).
func runeBoundaries(runes []rune) []int {
	rest := string(runes)
	var bounds []int
	offset := 0
	for len(rest) > 0 {
		bounds = append(bounds, offset)
		cluster, remainder, _, _ := uniseg.FirstGraphemeClusterInString(rest, -1)
		offset += len([]rune(cluster))
		rest = remainder
	}
	bounds = append(bounds, offset)
	return bounds
}
