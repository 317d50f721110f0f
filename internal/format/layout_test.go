package format

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		if r == '\x1b' {
			inEsc = true
			continue
		}
		if inEsc {
			if r == 'm' {
				inEsc = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestFormatNeverExceedsWidth(t *testing.T) {
	f := Lit("the quick brown fox jumps over the lazy dog")
	p := Format(f, 10)
	for _, line := range p.Value {
		assert.LessOrEqual(t, runewidth.StringWidth(stripANSI(line)), 10)
	}
}

func TestFormatTabWrap(t *testing.T) {
	p := Format(Lit("hello\tworld"), 9)
	require.Len(t, p.Value, 2)
	assert.Equal(t, "hello", stripANSI(p.Value[0]))
	assert.Equal(t, "    world", stripANSI(p.Value[1]))
}

func TestMappingRoundTrips(t *testing.T) {
	f := Cat(Lit("ab"), Fg(Red, Lit("cd")), Lit("ef"))
	p := Format(f, 80)
	require.Len(t, p.Raw, 1)
	require.Equal(t, "abcdef", p.Raw[0])
	for i, want := range []rune("abcdef") {
		pos, ok := p.Translate(0, i)
		require.True(t, ok)
		line := stripANSI(p.Value[pos.Line])
		runes := []rune(line)
		require.Less(t, pos.Col, len(runes))
		assert.Equal(t, want, runes[pos.Col])
	}
}

func TestSearchFindsAllOccurrences(t *testing.T) {
	f := Lit("ababab")
	p := Format(f, 80)
	ranges := Search(p, "ab")
	assert.Len(t, ranges, 3)
	assert.Equal(t, Pos{Line: 0, Col: 0}, ranges[0].Start)
	assert.Equal(t, Pos{Line: 0, Col: 2}, ranges[0].End)
}

func TestSearchSkipsExcludedText(t *testing.T) {
	f := Cat(Lit("find "), Excl(Lit("me")), Lit(" here"))
	p := Format(f, 80)
	assert.Empty(t, Search(p, "me"))
	assert.NotEmpty(t, Search(p, "find"))
	assert.NotEmpty(t, Search(p, "here"))
}

func TestContainsSkipsExcluded(t *testing.T) {
	f := Cat(Lit("visible"), Excl(Lit("secret")))
	assert.True(t, Contains(f, "visible"))
	assert.False(t, Contains(f, "secret"))
}

func TestNoBreakWrapsWhenItDoesNotFit(t *testing.T) {
	f := Cat(Lit("x:"), NB(Lit("abcdefgh")))
	p := Format(f, 6)
	require.Len(t, p.Value, 2)
	assert.Equal(t, "x:", stripANSI(p.Value[0]))
	assert.Equal(t, "abcdef", stripANSI(p.Value[1])[:6])
}

func TestControlRuneRendersCaretNotation(t *testing.T) {
	p := Format(Lit("a\x01b"), 80)
	assert.Contains(t, stripANSI(p.Value[0]), "^A")
}
