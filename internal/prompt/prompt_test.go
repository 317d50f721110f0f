package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndCursorAdvance(t *testing.T) {
	e := New(nil)
	e.Insert("abc")
	assert.Equal(t, "abc", e.Text())
	assert.Equal(t, 3, e.Cursor())
}

func TestDeleteBackwardAndForward(t *testing.T) {
	e := New(nil)
	e.Insert("hello")
	e.DeleteBackward()
	assert.Equal(t, "hell", e.Text())
	e.Home()
	e.DeleteForward()
	assert.Equal(t, "ell", e.Text())
}

func TestMoveLeftRightHomeEnd(t *testing.T) {
	e := New(nil)
	e.Insert("abc")
	e.Home()
	assert.Equal(t, 0, e.Cursor())
	e.MoveRight()
	assert.Equal(t, 1, e.Cursor())
	e.End()
	assert.Equal(t, 3, e.Cursor())
	e.MoveLeft()
	assert.Equal(t, 2, e.Cursor())
}

func TestInsertAtCursorMidLine(t *testing.T) {
	e := New(nil)
	e.Insert("ac")
	e.MoveLeft()
	e.Insert("b")
	assert.Equal(t, "abc", e.Text())
}

func TestClearToEnd(t *testing.T) {
	e := New(nil)
	e.Insert("abcdef")
	e.Home()
	e.MoveRight()
	e.MoveRight()
	e.ClearToEnd()
	assert.Equal(t, "ab", e.Text())
}

func TestHistoryNavigation(t *testing.T) {
	e := New(nil)
	e.Insert("first")
	e.Submit()
	e.Reset()
	e.Insert("second")
	e.Submit()
	e.Reset()
	e.Insert("wip")

	e.HistoryPrev()
	assert.Equal(t, "second", e.Text())
	e.HistoryPrev()
	assert.Equal(t, "first", e.Text())
	e.HistoryNext()
	assert.Equal(t, "second", e.Text())
	e.HistoryNext()
	assert.Equal(t, "wip", e.Text())
}

func TestOnChangeCallbackFiresOnEdit(t *testing.T) {
	var seen []string
	e := New(func(s string) { seen = append(seen, s) })
	e.Insert("a")
	e.Insert("b")
	assert.Equal(t, []string{"a", "ab"}, seen)
}

func TestGraphemeClusterDeletesAsOneUnit(t *testing.T) {
	e := New(nil)
	// "e" + combining acute accent (U+0301) forms one grapheme cluster.
	e.Insert("éx")
	e.Home()
	e.DeleteForward()
	assert.Equal(t, "x", e.Text())
}
