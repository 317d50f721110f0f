package vtree

import (
	"github.com/grovetools/jsonview/internal/format"
	"github.com/grovetools/jsonview/internal/theme"
	"github.com/grovetools/jsonview/internal/value"
)

// Search walks the full document (not just the currently visible nodes) in
// pre-order DFS, independent of what's materialized into N. Paths are
// root-relative sequences of child indices, matching value.V.PathTo. The
// caller drives expansion on a hit by calling Tree.EnsureExpandedPath.
type Search struct {
	root    *value.V
	cur     []int
	forward bool
}

// NewSearch starts a Search positioned at from; the first Next call yields
// the first node strictly after (or before, if !forward) from.
func NewSearch(root *value.V, from []int, forward bool) *Search {
	return &Search{root: root, cur: append([]int{}, from...), forward: forward}
}

// Next advances one step in document order and returns the resulting path,
// or false once traversal runs off either end of the document.
func (s *Search) Next() ([]int, bool) {
	var ok bool
	if s.forward {
		s.cur, ok = nextPath(s.root, s.cur)
	} else {
		s.cur, ok = prevPath(s.root, s.cur)
	}
	return s.cur, ok
}

func resolve(root *value.V, path []int) *value.V {
	cur := root
	for _, idx := range path {
		if cur == nil {
			return nil
		}
		cur = cur.Child(idx)
	}
	return cur
}

// nextPath returns the path immediately following path in document
// pre-order: path's first child if it has one, else the next sibling of
// the nearest ancestor (including path itself) that has one.
func nextPath(root *value.V, path []int) ([]int, bool) {
	node := resolve(root, path)
	if node == nil {
		return nil, false
	}
	if node.NumChildren() > 0 {
		return append(append([]int{}, path...), 0), true
	}
	for len(path) > 0 {
		parentPath := path[:len(path)-1]
		idx := path[len(path)-1]
		parent := resolve(root, parentPath)
		if parent != nil && idx+1 < parent.NumChildren() {
			next := append(append([]int{}, parentPath...), idx+1)
			return next, true
		}
		path = parentPath
	}
	return nil, false
}

// prevPath returns the path immediately preceding path in document
// pre-order: the deepest last-descendant of path's previous sibling, or
// path's parent if path is a first child, or false if path is the root.
func prevPath(root *value.V, path []int) ([]int, bool) {
	if len(path) == 0 {
		return nil, false
	}
	parentPath := path[:len(path)-1]
	idx := path[len(path)-1]
	if idx == 0 {
		return parentPath, true
	}
	cur := append(append([]int{}, parentPath...), idx-1)
	for {
		node := resolve(root, cur)
		if node == nil || node.NumChildren() == 0 {
			return cur, true
		}
		cur = append(append([]int{}, cur...), node.NumChildren()-1)
	}
}

// Matches reports whether the value at path contains q in its rendered
// content text.
func Matches(root *value.V, path []int, q string) bool {
	v := resolve(root, path)
	if v == nil {
		return false
	}
	return format.Contains(value.ContentF(v, theme.Default), q)
}

// FindNth advances a Search starting at from until it has seen n matches
// of q (n >= 1), returning the n-th match's path, or false if the document
// runs out first.
func FindNth(root *value.V, from []int, q string, forward bool, n int) ([]int, bool) {
	s := NewSearch(root, from, forward)
	found := 0
	for {
		path, ok := s.Next()
		if !ok {
			return nil, false
		}
		if Matches(root, path, q) {
			found++
			if found >= n {
				return path, true
			}
		}
	}
}
