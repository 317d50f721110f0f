package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ControlColor is the colour control characters render in.
var ControlColor = Magenta

// TabWidth is how many columns a literal tab expands to. cmd/jsonview
// overrides it from the user's config file before building the tree.
var TabWidth = 4

// state carries the mutable cursor used while walking an F tree: the
// current output line under construction, the current raw chunk, the
// active style, and the coordinate bookkeeping needed to emit anchors.
type state struct {
	width     int
	unbounded bool
	noWrap    bool // suppress wrap decisions (already verified to fit, or in the nobreak fallback)
	clip      bool // once true, further cells beyond width are recorded but not drawn

	lines              []*strings.Builder
	finishedLineWidths []int
	cellCol            int
	runeCol            int

	style Style

	record    bool
	rawChunks []*strings.Builder
	mapping   [][]Anchor
	rawOffset int
}

func newState(width int, unbounded bool) *state {
	return &state{
		width:     width,
		unbounded: unbounded,
		lines:     []*strings.Builder{{}},
		record:    true,
		rawChunks: []*strings.Builder{{}},
		mapping:   [][]Anchor{{}},
	}
}

func (s *state) curLine() *strings.Builder  { return s.lines[len(s.lines)-1] }
func (s *state) curChunk() *strings.Builder { return s.rawChunks[len(s.rawChunks)-1] }
func (s *state) curLineIdx() int            { return len(s.lines) - 1 }

// breakLine closes the active style, starts a fresh output line, and
// reopens the style — so no style escape ever spans a soft or hard wrap.
func (s *state) breakLine() {
	s.curLine().WriteString(s.style.closeSeq())
	s.finishedLineWidths = append(s.finishedLineWidths, s.cellCol)
	s.lines = append(s.lines, &strings.Builder{})
	s.curLine().WriteString(s.style.openSeq())
	s.cellCol = 0
	s.runeCol = 0
}

// setStyle transitions from s.style to next, emitting only the escapes
// needed for the slots that actually changed — color() overrides nest by
// slot, not by stack depth.
func (s *state) setStyle(next Style) {
	if next == s.style {
		return
	}
	if next.Fg != s.style.Fg {
		if !s.style.Fg.IsDefault() {
			s.curLine().WriteString(endEscape(false))
		}
		if !next.Fg.IsDefault() {
			s.curLine().WriteString(startEscape(next.Fg, false))
		}
	}
	if next.Bg != s.style.Bg {
		if !s.style.Bg.IsDefault() {
			s.curLine().WriteString(endEscape(true))
		}
		if !next.Bg.IsDefault() {
			s.curLine().WriteString(startEscape(next.Bg, true))
		}
	}
	s.style = next
}

// startChunk opens a new raw chunk at an Exclude boundary.
func (s *state) startChunk() {
	s.rawChunks = append(s.rawChunks, &strings.Builder{})
	s.mapping = append(s.mapping, []Anchor{})
	s.rawOffset = 0
}

func (s *state) curMapIdx() int { return len(s.mapping) - 1 }

// addAnchor records that the next raw rune (at the current rawOffset) maps
// to pos. Called before writeRawRune for the same rune.
func (s *state) addAnchor(pos Pos) {
	if !s.record {
		return
	}
	i := s.curMapIdx()
	s.mapping[i] = append(s.mapping[i], Anchor{RuneOffset: s.rawOffset, Pos: pos})
}

// writeRawRune appends r to the current raw chunk and advances rawOffset.
func (s *state) writeRawRune(r rune) {
	if !s.record {
		return
	}
	s.curChunk().WriteRune(r)
	s.rawOffset++
}

// emitVisible writes text to the current output line and advances cellCol,
// unless clip has already closed off the remaining width — in which case
// the rune is still accounted for in raw/anchors/runeCol, just not drawn.
func (s *state) emitVisible(text string, cellWidth int) {
	if s.clip && s.cellCol >= s.width {
		return
	}
	s.curLine().WriteString(text)
	s.cellCol += cellWidth
}

func (s *state) pos() Pos {
	return Pos{Line: s.curLineIdx(), Col: s.runeCol}
}

// wrapIfNeeded starts a new line if cellWidth more cells would overflow
// width, unless wrapping is currently suppressed.
func (s *state) wrapIfNeeded(cellWidth int) {
	if s.unbounded || s.noWrap {
		return
	}
	if s.cellCol+cellWidth > s.width {
		s.breakLine()
	}
}

// Format lays f out at display width width (must be > 0) and returns the
// styled lines, raw search text, and coordinate mapping.
func Format(f F, width int) *Preformatted {
	s := newState(width, false)
	walk(s, f)
	s.curLine().WriteString(s.style.closeSeq())
	s.style = Style{}
	return s.result()
}

func (s *state) result() *Preformatted {
	p := &Preformatted{
		Value:   make([]string, len(s.lines)),
		Raw:     make([]string, len(s.rawChunks)),
		Mapping: s.mapping,
	}
	for i, b := range s.lines {
		p.Value[i] = b.String()
	}
	for i, b := range s.rawChunks {
		p.Raw[i] = b.String()
	}
	return p
}

// measure lays f out unbounded (no wrapping, no recording) purely to learn
// how many cells a single line of it occupies, for NoBreak's fit check.
func measure(f F) (cellWidth int, singleLine bool) {
	ms := newState(0, true)
	ms.record = false
	walk(ms, f)
	return ms.cellCol, len(ms.finishedLineWidths) == 0
}

func walk(s *state, f F) {
	switch n := f.(type) {
	case Concat:
		for _, c := range n.Children {
			walk(s, c)
		}
	case Color:
		old := s.style
		next := old
		if n.Slot == SlotFg {
			next.Fg = n.Spec
		} else {
			next.Bg = n.Spec
		}
		s.setStyle(next)
		walk(s, n.Child)
		s.setStyle(old)
	case Literal:
		walkLiteral(s, n.Text)
	case Exclude:
		prevRecord := s.record
		s.startChunk()
		s.record = false
		walk(s, n.Child)
		s.startChunk()
		s.record = prevRecord
	case NoBreak:
		walkNoBreak(s, n)
	}
}

func walkNoBreak(s *state, n NoBreak) {
	if s.unbounded || s.noWrap {
		walk(s, n.Child)
		return
	}
	childWidth, single := measure(n.Child)
	if single && s.cellCol+childWidth <= s.width {
		walk(s, n.Child)
		return
	}
	s.breakLine()
	if single && childWidth <= s.width {
		walk(s, n.Child)
		return
	}
	// Doesn't fit even on a fresh line: fall back to raw inclusion, clipped
	// to width rather than overflowing the terminal (§9 open question).
	prevNoWrap, prevClip := s.noWrap, s.clip
	s.noWrap, s.clip = true, true
	walk(s, n.Child)
	s.noWrap, s.clip = prevNoWrap, prevClip
}

func walkLiteral(s *state, text string) {
	for _, r := range text {
		switch {
		case r == '\n':
			s.writeRawRune('\n')
			s.breakLine()
		case r == '\t':
			s.wrapTab()
		case isControl(r):
			s.writeControl(r)
		default:
			s.writeOrdinary(r)
		}
	}
}

func isControl(r rune) bool {
	return (r >= 0 && r <= 8) || (r >= 11 && r <= 31) || r == 127
}

func (s *state) writeOrdinary(r rune) {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		w = 0
	}
	s.wrapIfNeeded(w)
	s.addAnchor(s.pos())
	s.writeRawRune(r)
	s.emitVisible(string(r), w)
	s.runeCol++
}

func (s *state) writeControl(r rune) {
	s.wrapIfNeeded(2)
	s.addAnchor(s.pos())
	s.writeRawRune(r)
	substitute := rune((int(r) + 64) % 128)
	seq := startEscape(ControlColor, false) + "^" + string(substitute) + endEscape(false)
	s.emitVisible(seq, 2)
	s.runeCol += 2
}

func (s *state) wrapTab() {
	w := TabWidth
	if w < 1 {
		w = 1
	}
	if !s.unbounded && !s.noWrap && s.cellCol >= s.width-w {
		s.breakLine()
	}
	s.addAnchor(s.pos())
	s.writeRawRune('\t')
	s.emitVisible(strings.Repeat(" ", w), w)
	s.runeCol += w
}
