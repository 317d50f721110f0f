// Package vtree implements the visible tree: a doubly-linked chain of list
// nodes (N) representing exactly the currently-expanded portion of a
// document, augmented with sibling shortcuts for whole-subtree skips and
// list-position arithmetic for scroll/page math. Go's tracing garbage
// collector handles the parent/child/sibling reference cycles directly
// (every link is an ordinary pointer; nothing needs an arena of stable
// handles).
package vtree

import (
	"github.com/grovetools/jsonview/internal/format"
	"github.com/grovetools/jsonview/internal/value"
)

// N is a node in the visible tree, created lazily when its parent expands
// and destroyed when its parent collapses.
type N struct {
	Value    *value.V
	Expanded bool
	Last     bool // last child of its parent

	Content     *format.Preformatted // full representation, used when collapsed
	Placeholder *format.Preformatted // shortened representation, used when expanded

	SearchQuery   string
	SearchResults []format.Range

	Prev, Next       *N
	PrevSib, NextSib *N
	Parent           *N
	Children         []*N
}

// Displayed returns the Preformatted currently on screen for n: Placeholder
// while expanded, Content while collapsed.
func (n *N) Displayed() *format.Preformatted {
	if n.Expanded {
		return n.Placeholder
	}
	return n.Content
}

// Lines returns the number of visual rows n currently occupies; always >= 1.
func (n *N) Lines() int {
	return n.Displayed().Lines()
}

// Search runs format.Search against n's currently displayed Preformatted
// and caches the result so repeated repaint passes don't re-scan.
func (n *N) Search(query string) []format.Range {
	if n.SearchQuery == query && query != "" {
		return n.SearchResults
	}
	n.SearchQuery = query
	if query == "" {
		n.SearchResults = nil
		return nil
	}
	n.SearchResults = format.Search(n.Displayed(), query)
	return n.SearchResults
}

// InvalidateSearch clears the cached search result, forcing the next
// Search call to rescan — used after a resize or toggle changes what's
// displayed.
func (n *N) InvalidateSearch() {
	n.SearchQuery = ""
	n.SearchResults = nil
}
