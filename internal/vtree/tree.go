package vtree

import (
	"github.com/grovetools/jsonview/internal/format"
	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/value"
)

// Tree owns the root of a visible tree and the width/theme its nodes were
// laid out against, so expand can format newly materialized children with
// the same settings the rest of the tree uses.
type Tree struct {
	Root  *N
	Theme theme.Theme
	Width int
}

// New builds a Tree over root. The root itself is never shown as a row —
// it auto-expands immediately so the top-level members are visible from
// the first frame, matching a document's members being "the list" rather
// than children of an implicit, invisible container.
func New(root *value.V, th theme.Theme, width int) *Tree {
	t := &Tree{Theme: th, Width: width}
	t.Root = &N{Value: root, Last: true}
	t.reformat(t.Root)
	t.Expand(t.Root)
	return t
}

func (t *Tree) reformat(n *N) {
	n.Content = format.Format(value.ContentF(n.Value, t.Theme), t.Width)
	if n.Value.IsExpandable() {
		n.Placeholder = format.Format(value.PlaceholderF(n.Value, t.Theme), t.Width)
	} else {
		n.Placeholder = n.Content
	}
	n.InvalidateSearch()
}

// Resize reformats every currently-materialized node at a new width. The
// caller is responsible for repositioning the viewport afterward, since
// line counts per node can change.
func (t *Tree) Resize(width int) {
	t.Width = width
	t.walkAll(t.reformat)
}

func (t *Tree) walkAll(fn func(*N)) {
	stack := []*N{t.Root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		fn(n)
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
}

// Expand materializes n's children (if n has any and isn't already
// expanded), splicing them into the visible chain in place of n's previous
// successor.
func (t *Tree) Expand(n *N) {
	if n == nil || n.Expanded || !n.Value.IsExpandable() {
		return
	}
	count := n.Value.NumChildren()
	if count == 0 {
		return
	}

	children := make([]*N, count)
	for i := 0; i < count; i++ {
		c := &N{Value: n.Value.Child(i), Parent: n, Last: i == count-1}
		t.reformat(c)
		children[i] = c
	}
	for i := 1; i < count; i++ {
		children[i].PrevSib = children[i-1]
		children[i-1].NextSib = children[i]
		children[i-1].Next = children[i]
		children[i].Prev = children[i-1]
	}

	children[0].Prev = n
	n.Next = children[0]

	last := children[count-1]
	succ := n.NextSib
	last.NextSib = succ
	last.Next = succ
	if succ != nil {
		succ.Prev = last
	}

	n.Children = children
	n.Expanded = true
}

// Collapse drops n's materialized children, splicing n's visible successor
// back to n.NextSib.
func (t *Tree) Collapse(n *N) {
	if n == nil || !n.Expanded {
		return
	}
	succ := n.NextSib
	n.Next = succ
	if succ != nil {
		succ.Prev = n
	}
	n.Children = nil
	n.Expanded = false
}

// Toggle expands a collapsible, collapsed n, or collapses an expanded one.
func (t *Tree) Toggle(n *N) {
	if n == nil {
		return
	}
	if n.Expanded {
		t.Collapse(n)
		return
	}
	if n.Value.IsExpandable() && n.Value.NumChildren() > 0 {
		t.Expand(n)
	}
}

// RecursiveExpand expands n and every expandable descendant, iteratively
// (an explicit stack, not recursion) so pathologically deep documents can't
// blow the call stack.
func (t *Tree) RecursiveExpand(n *N) {
	if n == nil {
		return
	}
	stack := []*N{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !cur.Expanded && cur.Value.IsExpandable() && cur.Value.NumChildren() > 0 {
			t.Expand(cur)
		}
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
}

// EnsureExpandedPath walks from the root down path (a sequence of child
// indices), expanding any collapsed ancestor it passes through, and
// returns the node the path resolves to (or the deepest node reached if
// the path runs past a leaf).
func (t *Tree) EnsureExpandedPath(path []int) *N {
	cur := t.Root
	for _, idx := range path {
		if !cur.Expanded {
			t.Expand(cur)
		}
		if idx < 0 || idx >= len(cur.Children) {
			return cur
		}
		cur = cur.Children[idx]
	}
	return cur
}

// IsBefore reports whether a occupies an earlier document position than b,
// by lexicographic comparison of their root-to-node child-index paths.
func IsBefore(a, b *N) bool {
	pa, pb := a.Value.PathTo(), b.Value.PathTo()
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}
