package viewport

import (
	"sort"
	"strings"

	"github.com/grovetools/jsonview/internal/format"
)

type highlightEvent struct {
	col int
	seq string
}

// overlayRanges splices onSeq/offSeq into line at the visible-column
// boundaries named by ranges whose Start.Line equals lineIdx, without
// disturbing any escape sequences already embedded in line. Columns are
// counted in runes, not terminal cells — an accepted simplification also
// noted in DESIGN.md, since search hits are almost always plain ASCII
// tokens where the two coincide.
func overlayRanges(line string, ranges []format.Range, lineIdx int, onSeq, offSeq string) string {
	var events []highlightEvent
	for _, r := range ranges {
		if r.Start.Line != lineIdx {
			continue
		}
		end := r.End.Col
		if r.End.Line != lineIdx {
			end = 1 << 30
		}
		events = append(events, highlightEvent{r.Start.Col, onSeq})
		events = append(events, highlightEvent{end, offSeq})
	}
	if len(events) == 0 {
		return line
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].col < events[j].col })

	var b strings.Builder
	col := 0
	ei := 0
	i := 0
	n := len(line)
	for i < n {
		for ei < len(events) && events[ei].col <= col {
			b.WriteString(events[ei].seq)
			ei++
		}
		if line[i] == 0x1b {
			j := i + 1
			for j < n && line[j] != 'm' {
				j++
			}
			if j < n {
				j++
			}
			b.WriteString(line[i:j])
			i = j
			continue
		}
		r := rune(line[i])
		size := 1
		if r >= 0x80 {
			// decode a multi-byte UTF-8 rune without importing unicode/utf8
			// twice over; width in bytes is all we need to advance i.
			switch {
			case line[i]&0xE0 == 0xC0:
				size = 2
			case line[i]&0xF0 == 0xE0:
				size = 3
			case line[i]&0xF8 == 0xF0:
				size = 4
			}
		}
		if i+size > n {
			size = 1
		}
		b.WriteString(line[i : i+size])
		i += size
		col++
	}
	for ei < len(events) {
		b.WriteString(events[ei].seq)
		ei++
	}
	return b.String()
}
