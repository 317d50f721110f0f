package viewport

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/grovetools/jsonview/internal/format"
	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/vtree"
)

const doubleClickWindow = time.Second

// Controller is the viewport/selection state machine described in the
// design: which node sits at the top of the screen, which is selected,
// and the anchor bookkeeping (offset/down) that lets scroll and select
// stay consistent with each other without recomputing from scratch.
type Controller struct {
	Tree *vtree.Tree

	Sel    *vtree.N
	Start  vtree.L
	Offset int  // screen row of Sel's anchor
	Down   bool // anchor is Sel's last row (true) or first row (false)

	Width, Height int
	Query         string
	Lineno        int
	Numbuf        string

	Theme theme.Theme

	// Message is a one-shot status line override (e.g. the path "y" copies
	// to the status line); drawStatus shows it once, then clears it.
	Message string

	lastClickAt  time.Time
	lastClickRow int
}

// New builds a Controller over tree, selecting its first visible row.
func New(tree *vtree.Tree, th theme.Theme, width, height int) *Controller {
	first := tree.Root.Next // tree.Root itself is never shown
	if first == nil {
		first = tree.Root
	}
	return &Controller{
		Tree:   tree,
		Sel:    first,
		Start:  vtree.L{Node: first, Line: 0},
		Down:   false,
		Width:  width,
		Height: height,
		Theme:  th,
	}
}

// Repaint redraws the entire canvas and status line from scratch.
func (c *Controller) Repaint(scr Screen) {
	scr.Clear()
	c.drawLines(scr, 0, c.Height)
	c.drawStatus(scr)
}

// drawLines erases and repaints each row in [first, last), advancing from
// Start by first rows to find the node/line that belongs there.
func (c *Controller) drawLines(scr Screen, first, last int) {
	for r := first; r < last; r++ {
		scr.MoveTo(r+1, 1)
		scr.EraseToEOL()
		l := vtree.Move(c.Start, r, false)
		if l.Node == nil {
			continue
		}
		scr.Print(c.renderRow(l))
	}
}

func (c *Controller) renderRow(l vtree.L) string {
	n := l.Node
	prefix := ""
	if n.Value.Depth > 0 {
		prefix = c.Theme.Muted.StartSeq(false) + strings.Repeat("  ", n.Value.Depth) + format.EndSeq(false)
	}
	line := n.Displayed().Value[l.Line]
	if c.Query != "" {
		ranges := n.Search(c.Query)
		on := c.Theme.Highlight.StartSeq(true) + c.Theme.HighlightFg.StartSeq(false)
		off := format.EndSeq(true) + format.EndSeq(false)
		line = overlayRanges(line, ranges, l.Line, on, off)
	}
	body := prefix + line
	if n == c.Sel {
		return c.Theme.SelectedBg.StartSeq(true) + body + format.EndSeq(true)
	}
	return body
}

func (c *Controller) drawStatus(scr Screen) {
	scr.MoveTo(c.Height+1, 1)
	scr.EraseToEOL()
	scr.Print(c.StatusLine())
	c.Message = ""
}

// StatusLine renders the one-row status: a one-shot Message if set,
// otherwise the pending count-prefix buffer, the selected value's kind,
// and the absolute top-row number.
func (c *Controller) StatusLine() string {
	if c.Message != "" {
		return c.Message
	}
	kind := ""
	if c.Sel != nil {
		kind = c.Sel.Value.Kind.String() + "  "
	}
	if c.Numbuf != "" {
		return fmt.Sprintf("%s  %srow %d", c.Numbuf, kind, c.Lineno+1)
	}
	return fmt.Sprintf("%srow %d", kind, c.Lineno+1)
}

// ShowMessage sets a one-shot status override and redraws the status row.
func (c *Controller) ShowMessage(scr Screen, msg string) {
	c.Message = msg
	c.drawStatus(scr)
}

// repaintNode redraws every on-screen row belonging to n, if any.
func (c *Controller) repaintNode(scr Screen, n *vtree.N) {
	row := vtree.DistanceFwd(c.Start, vtree.L{Node: n, Line: 0})
	if row < 0 || row >= c.Height {
		return
	}
	end := row + n.Lines()
	if end > c.Height {
		end = c.Height
	}
	c.drawLines(scr, row, end)
}

// clampSelectionToWindow snaps Sel (and recomputes Offset/Down) to stay
// inside the current [Start, Start+Height) window after Start moves. If
// Sel fell off the top it snaps to the top row; off the bottom, to the
// last visible row. This is a deliberate simplification of the literal
// "consume internal rows, flip down, step along next/prev" bounce
// algorithm — it satisfies the same invariant (selection always ends up
// on screen after a scroll) with far less bookkeeping.
func (c *Controller) clampSelectionToWindow() {
	row := vtree.DistanceFwd(c.Start, vtree.L{Node: c.Sel, Line: 0})
	switch {
	case row < 0:
		c.Sel = c.Start.Node
		c.Down = false
		c.Offset = 0
	case row >= c.Height:
		last := vtree.Move(c.Start, c.Height-1, true)
		c.Sel = last.Node
		c.Down = true
		c.Offset = c.Height - 1
	default:
		c.Offset = row
	}
}

// PushDigit accumulates a count-prefix digit (leading zero rejected,
// capped at six digits).
func (c *Controller) PushDigit(d byte) {
	if d == '0' && c.Numbuf == "" {
		return
	}
	if len(c.Numbuf) >= 6 {
		return
	}
	c.Numbuf += string(d)
}

// GetNum consumes the count-prefix buffer, returning max(1, parsed value),
// and resets the buffer.
func (c *Controller) GetNum() int {
	n := 1
	if v, err := strconv.Atoi(c.Numbuf); err == nil && v > 0 {
		n = v
	}
	c.Numbuf = ""
	return n
}

// ResetNum clears the count-prefix buffer, called after any non-digit,
// non-count-consuming key.
func (c *Controller) ResetNum() {
	c.Numbuf = ""
}
