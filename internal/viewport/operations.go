package viewport

import (
	"time"

	"github.com/grovetools/jsonview/internal/vtree"
)

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Scroll moves Start by `by` rows (positive = forward), repainting the
// minimal region: a delete/insert-lines shift plus the newly exposed rows,
// or a full repaint when the move is larger than the screen or the
// selection had to be reclamped onto the new window.
func (c *Controller) Scroll(scr Screen, by int) {
	if by == 0 {
		return
	}
	oldSel := c.Sel
	oldStart := c.Start
	newStart := vtree.Move(c.Start, by, true)
	if newStart.Node == c.Tree.Root && c.Tree.Root.Next != nil {
		// The root's own row is never shown; stop at its first child.
		newStart = vtree.L{Node: c.Tree.Root.Next}
	}

	var diff int
	if by > 0 {
		diff = vtree.DistanceFwd(oldStart, newStart)
	} else {
		diff = -vtree.DistanceFwd(newStart, oldStart)
	}
	if diff == 0 {
		return
	}
	c.Start = newStart
	c.Lineno += diff
	c.clampSelectionToWindow()

	if absInt(diff) >= c.Height || oldSel != c.Sel {
		c.Repaint(scr)
		return
	}
	if diff > 0 {
		scr.MoveTo(1, 1)
		scr.DeleteLines(diff)
		c.drawLines(scr, c.Height-diff, c.Height)
	} else {
		scr.MoveTo(1, 1)
		scr.InsertLines(-diff)
		c.drawLines(scr, 0, -diff)
	}
	c.drawStatus(scr)
}

// Select moves the selection to target, scrolling the minimal amount
// necessary to keep it on screen, then repaints the old and new selection
// rows (only those rows when no scroll was required).
func (c *Controller) Select(scr Screen, target *vtree.N) {
	if target == nil || target == c.Sel {
		return
	}
	oldSel := c.Sel
	down := vtree.IsBefore(c.Sel, target)
	var dist int
	if down {
		dist = vtree.DistanceFwd(vtree.L{Node: c.Sel}, vtree.L{Node: target})
	} else {
		dist = vtree.DistanceFwd(vtree.L{Node: target}, vtree.L{Node: c.Sel})
	}
	c.Down = down
	if down {
		c.Offset += dist
	} else {
		c.Offset -= dist
	}
	c.Sel = target

	switch {
	case c.Offset < 0:
		c.Scroll(scr, c.Offset)
	case c.Offset >= c.Height:
		c.Scroll(scr, c.Offset-c.Height+1)
	}
	c.repaintNode(scr, oldSel)
	c.repaintNode(scr, target)
	c.drawStatus(scr)
}

// SelPos selects whichever node is currently rendered at screen row row.
func (c *Controller) SelPos(scr Screen, row int) {
	l := vtree.Move(c.Start, row, false)
	if l.Node != nil {
		c.Select(scr, l.Node)
	}
}

// ToggleSel toggles Sel's expansion and repaints from its row to the
// bottom of the screen (everything below shifts once line counts change).
func (c *Controller) ToggleSel(scr Screen) {
	n := c.Sel
	row := vtree.DistanceFwd(c.Start, vtree.L{Node: n})
	c.Tree.Toggle(n)
	n.InvalidateSearch()
	if row < 0 {
		c.Repaint(scr)
		return
	}
	c.drawLines(scr, row, c.Height)
	c.drawStatus(scr)
}

// RecursiveExpand expands Sel and every expandable descendant.
func (c *Controller) RecursiveExpand(scr Screen) {
	n := c.Sel
	row := vtree.DistanceFwd(c.Start, vtree.L{Node: n})
	c.Tree.RecursiveExpand(n)
	n.InvalidateSearch()
	if row < 0 {
		c.Repaint(scr)
		return
	}
	c.drawLines(scr, row, c.Height)
	c.drawStatus(scr)
}

// Resize re-lays-out every visible node at the new width, re-clamps the
// selection onto the screen, and repaints everything.
func (c *Controller) Resize(scr Screen, width, height int) {
	c.Width, c.Height = width, height
	c.Tree.Resize(width)
	row := vtree.DistanceFwd(c.Start, vtree.L{Node: c.Sel})
	if row < 0 || row >= height {
		c.Start = vtree.L{Node: c.Sel}
		c.Offset = 0
		c.Down = false
	} else {
		c.Offset = row
	}
	c.Repaint(scr)
}

// SetQuery updates the active search query and repaints the visible
// window (every on-screen node's match highlights may have changed).
func (c *Controller) SetQuery(scr Screen, q string) {
	if c.Query == q {
		return
	}
	c.Query = q
	for r := 0; r < c.Height; r++ {
		l := vtree.Move(c.Start, r, false)
		if l.Node != nil {
			l.Node.InvalidateSearch()
		}
	}
	c.Repaint(scr)
}

// SearchNext drives the document-order search k matches in the given
// direction, expanding ancestors along the hit path before selecting it.
func (c *Controller) SearchNext(scr Screen, k int, forward bool) bool {
	if c.Query == "" || k == 0 {
		return false
	}
	from := c.Sel.Value.PathTo()
	path, ok := vtree.FindNth(c.Tree.Root.Value, from, c.Query, forward, k)
	if !ok {
		return false
	}
	n := c.Tree.EnsureExpandedPath(path)
	c.Select(scr, n)
	return true
}

// Click selects the node at row row; a second click on the same row
// within one second also toggles it.
func (c *Controller) Click(scr Screen, row int) {
	l := vtree.Move(c.Start, row, false)
	if l.Node == nil {
		return
	}
	now := time.Now()
	double := !c.lastClickAt.IsZero() && row == c.lastClickRow && now.Sub(c.lastClickAt) <= doubleClickWindow
	c.lastClickAt = now
	c.lastClickRow = row
	c.Select(scr, l.Node)
	if double {
		c.ToggleSel(scr)
	}
}

// Movement helpers used by the key dispatcher.

func (c *Controller) MoveNext(scr Screen, count int) {
	n := c.Sel
	for i := 0; i < count && n.Next != nil; i++ {
		n = n.Next
	}
	c.Select(scr, n)
}

func (c *Controller) MovePrev(scr Screen, count int) {
	n := c.Sel
	for i := 0; i < count && n.Prev != nil && n.Prev != c.Tree.Root; i++ {
		n = n.Prev
	}
	c.Select(scr, n)
}

func (c *Controller) MoveNextSibling(scr Screen, count int) {
	n := c.Sel
	for i := 0; i < count && n.NextSib != nil; i++ {
		n = n.NextSib
	}
	c.Select(scr, n)
}

func (c *Controller) MovePrevSibling(scr Screen, count int) {
	n := c.Sel
	for i := 0; i < count && n.PrevSib != nil; i++ {
		n = n.PrevSib
	}
	c.Select(scr, n)
}

func (c *Controller) MoveParent(scr Screen) {
	if c.Sel.Parent != nil && c.Sel.Parent != c.Tree.Root {
		c.Select(scr, c.Sel.Parent)
	}
}

// MoveFirst selects the first visible row, or — with a count prefix
// (vim's NG convention) — the N-th row from the top.
func (c *Controller) MoveFirst(scr Screen, count int) {
	n := c.Tree.Root.Next
	if n == nil {
		return
	}
	for i := 1; i < count && n.Next != nil; i++ {
		n = n.Next
	}
	c.Select(scr, n)
}

// MoveLast selects the last visible row, or — with a count prefix — the
// N-th row from the bottom.
func (c *Controller) MoveLast(scr Screen, count int) {
	n := c.Sel
	for n.Next != nil {
		n = n.Next
	}
	for i := 1; i < count && n.Prev != nil && n.Prev != c.Tree.Root; i++ {
		n = n.Prev
	}
	c.Select(scr, n)
}

// ScreenTop/Middle/Bottom select the node currently rendered at the top,
// middle, or bottom row of the screen (H/M/L).
func (c *Controller) ScreenTop(scr Screen) {
	c.SelPos(scr, 0)
}

func (c *Controller) ScreenMiddle(scr Screen) {
	c.SelPos(scr, c.Height/2)
}

func (c *Controller) ScreenBottom(scr Screen) {
	c.SelPos(scr, c.Height-1)
}

// Center scrolls so Sel sits in the middle row of the screen (zz).
func (c *Controller) Center(scr Screen) {
	target := c.Height / 2
	c.Scroll(scr, c.Offset-target)
}
