package vtree

import (
	"testing"

	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTree(t *testing.T, src string) *Tree {
	t.Helper()
	v, err := value.Parse([]byte(src))
	require.NoError(t, err)
	return New(v, theme.Default, 80)
}

func TestExpandSplicesChildrenIntoChain(t *testing.T) {
	tr := parseTree(t, `{"a": 1, "b": 2, "c": 3}`)
	root := tr.Root
	tr.Expand(root)

	require.True(t, root.Expanded)
	require.Len(t, root.Children, 3)

	a, b, c := root.Children[0], root.Children[1], root.Children[2]
	assert.Same(t, a, root.Next)
	assert.Same(t, root, a.Prev)
	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.PrevSib)
	assert.Same(t, c, b.Next)
	assert.Same(t, b, c.PrevSib)
	assert.Nil(t, c.Next)
	assert.True(t, c.Last)
}

func TestCollapseRestoresSuccessor(t *testing.T) {
	tr := parseTree(t, `{"a": {"x": 1}, "b": 2}`)
	root := tr.Root
	tr.Expand(root)
	a, b := root.Children[0], root.Children[1]

	tr.Expand(a)
	require.Len(t, a.Children, 1)
	x := a.Children[0]
	assert.Same(t, x, a.Next)
	assert.Same(t, b, x.Next)

	tr.Collapse(a)
	assert.False(t, a.Expanded)
	assert.Nil(t, a.Children)
	assert.Same(t, b, a.Next)
	assert.Same(t, a, b.Prev)
}

func TestToggleExpandsAndCollapses(t *testing.T) {
	tr := parseTree(t, `{"a": [1, 2]}`)
	a := tr.Root.Children[0]
	assert.False(t, a.Expanded)
	tr.Toggle(a)
	assert.True(t, a.Expanded)
	tr.Toggle(a)
	assert.False(t, a.Expanded)
}

func TestRecursiveExpandReachesLeaves(t *testing.T) {
	tr := parseTree(t, `{"a": {"b": {"c": 1}}}`)
	tr.RecursiveExpand(tr.Root)
	assert.True(t, tr.Root.Expanded)
	assert.True(t, tr.Root.Children[0].Expanded)
	assert.True(t, tr.Root.Children[0].Children[0].Expanded)
}

func TestIsBeforeOrdersByPath(t *testing.T) {
	tr := parseTree(t, `{"a": 1, "b": {"x": 1, "y": 2}}`)
	root := tr.Root
	tr.Expand(root)
	b := root.Children[1]
	tr.Expand(b)
	x, y := b.Children[0], b.Children[1]

	assert.True(t, IsBefore(root, x))
	assert.True(t, IsBefore(x, y))
	assert.False(t, IsBefore(y, x))
	assert.False(t, IsBefore(root, root))
}

func TestDistanceFwdSumsRows(t *testing.T) {
	tr := parseTree(t, `{"a": 1, "b": 2, "c": 3}`)
	tr.Expand(tr.Root)
	a, b, c := tr.Root.Children[0], tr.Root.Children[1], tr.Root.Children[2]

	assert.Equal(t, 0, DistanceFwd(L{a, 0}, L{a, 0}))
	assert.Equal(t, 1, DistanceFwd(L{a, 0}, L{b, 0}))
	assert.Equal(t, 2, DistanceFwd(L{a, 0}, L{c, 0}))
	assert.Equal(t, -1, DistanceFwd(L{c, 0}, L{a, 0}))
}

func TestMoveForwardAndBackwardAcrossNodes(t *testing.T) {
	tr := parseTree(t, `{"a": 1, "b": 2, "c": 3}`)
	tr.Expand(tr.Root)
	a, b, c := tr.Root.Children[0], tr.Root.Children[1], tr.Root.Children[2]

	assert.Equal(t, L{b, 0}, Move(L{a, 0}, 1, false))
	assert.Equal(t, L{c, 0}, Move(L{a, 0}, 2, false))
	assert.Equal(t, End(), Move(L{c, 0}, 1, false))
	assert.Equal(t, L{c, 0}, Move(L{c, 0}, 1, true))
	assert.Equal(t, L{a, 0}, Move(L{c, 0}, -2, false))
}

func TestSearchFindsNestedMatchAndEnsureExpandedPathExpandsAncestors(t *testing.T) {
	v, err := value.Parse([]byte(`{"outer": {"inner": {"needle": "findme"}}}`))
	require.NoError(t, err)
	tr := New(v, theme.Default, 80)

	path, ok := FindNth(v, nil, "findme", true, 1)
	require.True(t, ok)
	assert.Equal(t, []int{0, 0, 0}, path)

	n := tr.EnsureExpandedPath(path)
	require.NotNil(t, n)
	assert.True(t, tr.Root.Expanded)
	assert.True(t, tr.Root.Children[0].Expanded)
	assert.Equal(t, "findme", n.Value.Str)
}

func TestSearchBackwardFromEnd(t *testing.T) {
	v, err := value.Parse([]byte(`{"a": "one", "b": "two", "c": "one"}`))
	require.NoError(t, err)

	path, ok := FindNth(v, []int{2}, "one", false, 1)
	require.True(t, ok)
	assert.Equal(t, []int{0}, path)
}
