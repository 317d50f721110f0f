package format

import "strings"

// Pos is an on-screen position within a Preformatted's Value lines: a line
// index and a rune column within that line's unstyled text.
type Pos struct {
	Line int
	Col  int
}

// Anchor maps one rune offset within a raw chunk to an on-screen Pos.
// One anchor is recorded for every ordinary rune, control rune and tab
// (a tab that wraps is anchored on the new line); a newline gets none.
// Translate takes the nearest anchor at or before a raw offset and adds
// the rune-count delta.
type Anchor struct {
	RuneOffset int
	Pos        Pos
}

// Preformatted (P) is the result of laying an F out at a fixed width: the
// styled display lines, the raw unstyled text used for search (split into
// chunks at Exclude boundaries), and the coordinate map between them.
type Preformatted struct {
	Value   []string
	Raw     []string
	Mapping [][]Anchor // Mapping[chunk] is sorted by RuneOffset ascending.
}

// Lines returns the number of visual rows; always >= 1 per the list-node
// invariant that every displayed node occupies at least one row.
func (p *Preformatted) Lines() int {
	if len(p.Value) == 0 {
		return 1
	}
	return len(p.Value)
}

// Translate finds the largest anchor at or before runeOffset in the given
// chunk and returns its Pos shifted by the rune-count delta, per §4.1's
// "translate" contract. ok is false if chunk is out of range or has no
// anchors at or before runeOffset.
func (p *Preformatted) Translate(chunk, runeOffset int) (Pos, bool) {
	if chunk < 0 || chunk >= len(p.Mapping) {
		return Pos{}, false
	}
	anchors := p.Mapping[chunk]
	// Binary search for the largest anchor with RuneOffset <= runeOffset.
	lo, hi := 0, len(anchors)-1
	best := -1
	for lo <= hi {
		mid := (lo + hi) / 2
		if anchors[mid].RuneOffset <= runeOffset {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if best < 0 {
		return Pos{}, false
	}
	a := anchors[best]
	delta := runeOffset - a.RuneOffset
	return Pos{Line: a.Pos.Line, Col: a.Pos.Col + delta}, true
}

// Range is a half-open span [Start, End) of on-screen positions produced
// by a search match.
type Range struct {
	Start Pos
	End   Pos
}

// Search scans every raw chunk of p for byte-based occurrences of q and
// returns the corresponding on-screen ranges, skipping Exclude subtrees
// (they never entered p.Raw in the first place) and reporting disjoint,
// document-ordered ranges as required by the searchable-text law.
func Search(p *Preformatted, q string) []Range {
	if q == "" {
		return nil
	}
	var ranges []Range
	for chunkIdx, chunk := range p.Raw {
		start := 0
		for {
			idx := strings.Index(chunk[start:], q)
			if idx < 0 {
				break
			}
			byteStart := start + idx
			byteEnd := byteStart + len(q)
			runeStart := runeCount(chunk[:byteStart])
			runeEnd := runeStart + runeCount(q)
			if sp, ok := p.Translate(chunkIdx, runeStart); ok {
				if ep, ok2 := p.Translate(chunkIdx, runeEnd); ok2 {
					ranges = append(ranges, Range{Start: sp, End: ep})
				}
			}
			start = byteEnd
			if idx == 0 && len(q) == 0 {
				break
			}
		}
	}
	return ranges
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

// Contains does a pre-format substring check against F's literal text
// without laying it out, skipping Exclude subtrees. It is used to test
// whether a collapsed node's content is worth expanding during a tree
// search (§4.3) without paying for a full Format call.
func Contains(f F, q string) bool {
	if q == "" {
		return true
	}
	found := false
	var walk func(F)
	walk = func(node F) {
		if found {
			return
		}
		switch n := node.(type) {
		case Concat:
			for _, c := range n.Children {
				walk(c)
				if found {
					return
				}
			}
		case Color:
			walk(n.Child)
		case NoBreak:
			walk(n.Child)
		case Literal:
			if strings.Contains(n.Text, q) {
				found = true
			}
		case Exclude:
			// Skipped: excluded subtrees never contribute to raw text.
		}
	}
	walk(f)
	return found
}
