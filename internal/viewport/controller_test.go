package viewport

import (
	"fmt"
	"testing"

	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/value"
	"github.com/grovetools/jsonview/internal/vtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeScreen records writes instead of touching a real terminal, so tests
// can assert on what got redrawn without a tty.
type fakeScreen struct {
	moves   []int
	prints  int
	cleared int
	deleted []int
	ins     []int
}

func (f *fakeScreen) MoveTo(row, col int)  { f.moves = append(f.moves, row) }
func (f *fakeScreen) EraseToEOL()          {}
func (f *fakeScreen) Clear()               { f.cleared++ }
func (f *fakeScreen) DeleteLines(n int)    { f.deleted = append(f.deleted, n) }
func (f *fakeScreen) InsertLines(n int)    { f.ins = append(f.ins, n) }
func (f *fakeScreen) Print(s string)       { f.prints++ }

func newController(t *testing.T, src string, height int) *Controller {
	t.Helper()
	v, err := value.Parse([]byte(src))
	require.NoError(t, err)
	tr := vtree.New(v, theme.Default, 80)
	return New(tr, theme.Default, 80, height)
}

func TestNewSelectsFirstVisibleRowNotRoot(t *testing.T) {
	c := newController(t, `{"a": 1, "b": 2}`, 10)
	assert.Equal(t, "a", c.Sel.Value.Key)
	assert.NotEqual(t, c.Tree.Root, c.Sel)
}

func TestSelectMovesOffsetAndRepaintsRows(t *testing.T) {
	c := newController(t, `{"a": 1, "b": 2, "c": 3}`, 10)
	scr := &fakeScreen{}
	target := c.Sel.Next // "b"
	c.Select(scr, target)
	assert.Equal(t, target, c.Sel)
	assert.True(t, c.Down)
	assert.Equal(t, 1, c.Offset)
	assert.True(t, scr.prints > 0)
}

func TestToggleSelExpandsAndRepaintsTail(t *testing.T) {
	c := newController(t, `{"a": {"x": 1, "y": 2}, "b": 3}`, 10)
	scr := &fakeScreen{}
	c.ToggleSel(scr)
	assert.True(t, c.Sel.Expanded)
	assert.True(t, scr.prints > 0)
}

func TestScrollBeyondHeightTriggersFullRepaint(t *testing.T) {
	items := ""
	for i := 0; i < 20; i++ {
		if i > 0 {
			items += ", "
		}
		items += fmt.Sprintf(`"k%d": %d`, i, i)
	}
	c := newController(t, "{"+items+"}", 5)
	scr := &fakeScreen{}
	c.Scroll(scr, 10)
	assert.Equal(t, 1, scr.cleared)
}

func TestScrollSmallMoveUsesDeleteInsert(t *testing.T) {
	items := ""
	for i := 0; i < 20; i++ {
		if i > 0 {
			items += ", "
		}
		items += fmt.Sprintf(`"k%d": %d`, i, i)
	}
	c := newController(t, "{"+items+"}", 10)
	scr := &fakeScreen{}
	c.MoveNext(scr, 5) // keep selection well inside the window after the scroll below
	*scr = fakeScreen{}
	c.Scroll(scr, 2)
	require.Len(t, scr.deleted, 1)
	assert.Equal(t, 2, scr.deleted[0])
}

func TestMoveLastAndFirstOnLargeArray(t *testing.T) {
	items := ""
	for i := 0; i < 5000; i++ {
		if i > 0 {
			items += ","
		}
		items += fmt.Sprintf("%d", i)
	}
	c := newController(t, "["+items+"]", 20)
	scr := &fakeScreen{}
	c.MoveLast(scr, 1)
	assert.Equal(t, int64(4999), c.Sel.Value.Int)

	c.MoveFirst(scr, 1)
	assert.Equal(t, int64(0), c.Sel.Value.Int)

	c.MoveLast(scr, 1)
	c.MoveLast(scr, 3) // 3rd from the bottom: g/G count-prefix composition
	assert.Equal(t, int64(4997), c.Sel.Value.Int)

	c.MoveFirst(scr, 3) // 3rd from the top
	assert.Equal(t, int64(2), c.Sel.Value.Int)
}

func TestCountPrefixBuffer(t *testing.T) {
	c := &Controller{}
	c.PushDigit('0')
	assert.Equal(t, "", c.Numbuf)
	c.PushDigit('3')
	c.PushDigit('1')
	assert.Equal(t, 31, c.GetNum())
	assert.Equal(t, "", c.Numbuf)
	assert.Equal(t, 1, c.GetNum())
}

func TestSearchNextSelectsMatchAndExpandsAncestors(t *testing.T) {
	c := newController(t, `{"outer": {"inner": "findme"}, "other": 1}`, 10)
	scr := &fakeScreen{}
	c.SetQuery(scr, "findme")
	ok := c.SearchNext(scr, 1, true)
	require.True(t, ok)
	assert.Equal(t, "findme", c.Sel.Value.Str)
	assert.True(t, c.Tree.Root.Children[0].Expanded)
}

func TestClickTwiceWithinWindowToggles(t *testing.T) {
	c := newController(t, `{"a": {"x": 1}, "b": 2}`, 10)
	scr := &fakeScreen{}
	c.Click(scr, 0)
	assert.False(t, c.Sel.Expanded)
	c.Click(scr, 0)
	assert.True(t, c.Sel.Expanded)
}
