package format

import (
	"fmt"

	"github.com/muesli/termenv"
)

// Spec names a foreground or background color: an 8-colour ANSI index, a
// 256-colour index, or the terminal default (the zero Spec). It wraps
// termenv.Color so that the sequence bodies it produces are exactly the
// ones the terminal device writes: "3{c}"/"4{c}" for ANSI, "38;5;{n}"/
// "48;5;{n}" for 256-colour.
type Spec struct {
	color termenv.Color
}

// IsDefault reports whether spec carries no color override.
func (s Spec) IsDefault() bool {
	return s.color == nil
}

// ANSI builds an 8-colour Spec (0-15; 0-7 standard, 8-15 bright).
func ANSI(n int) Spec {
	return Spec{color: termenv.ANSIColor(n)}
}

// ANSI256 builds a 256-colour Spec.
func ANSI256(n int) Spec {
	return Spec{color: termenv.ANSI256Color(n)}
}

// Named 8-colour specs, at the ANSI-escape level.
var (
	Black   = ANSI(0)
	Red     = ANSI(1)
	Green   = ANSI(2)
	Yellow  = ANSI(3)
	Blue    = ANSI(4)
	Magenta = ANSI(5)
	Cyan    = ANSI(6)
	White   = ANSI(7)

	BrightBlack   = ANSI(8)
	BrightRed     = ANSI(9)
	BrightGreen   = ANSI(10)
	BrightYellow  = ANSI(11)
	BrightBlue    = ANSI(12)
	BrightMagenta = ANSI(13)
	BrightCyan    = ANSI(14)
	BrightWhite   = ANSI(15)
)

const (
	csi = "\x1b["
)

// startEscape returns the SGR sequence that turns spec on for the given
// slot (bg selects background over foreground). A default Spec yields the
// empty string: nothing to emit.
func startEscape(spec Spec, bg bool) string {
	if spec.IsDefault() {
		return ""
	}
	return fmt.Sprintf("%s%sm", csi, spec.color.Sequence(bg))
}

// endEscape returns the SGR sequence that restores the terminal default for
// the given slot: ESC[39m for foreground, ESC[49m for background.
func endEscape(bg bool) string {
	if bg {
		return csi + "49m"
	}
	return csi + "39m"
}

// StartSeq returns the SGR sequence that turns s on for the given slot, for
// callers outside this package that need to paint a region (e.g. the
// viewport's selected-row and search-highlight overlays) without going
// through the Format layout pass.
func (s Spec) StartSeq(bg bool) string {
	return startEscape(s, bg)
}

// EndSeq returns the SGR sequence that restores the terminal default for
// the given slot.
func EndSeq(bg bool) string {
	return endEscape(bg)
}

// Style pairs an optional foreground and background Spec. Styles nest by
// slot: setting Fg leaves an outer Bg untouched, per §4.1's "styles nest
// by slot, not by stack depth".
type Style struct {
	Fg Spec
	Bg Spec
}

// IsZero reports whether neither slot carries an override.
func (s Style) IsZero() bool {
	return s.Fg.IsDefault() && s.Bg.IsDefault()
}

// openSeq returns the escape sequence(s) needed to enter s from the
// terminal default.
func (s Style) openSeq() string {
	return startEscape(s.Fg, false) + startEscape(s.Bg, true)
}

// closeSeq returns the escape sequence(s) needed to return from s to the
// terminal default. Order is reversed relative to open so that a reader
// tracing opens/closes sees a balanced stack per slot.
func (s Style) closeSeq() string {
	out := ""
	if !s.Bg.IsDefault() {
		out += endEscape(true)
	}
	if !s.Fg.IsDefault() {
		out += endEscape(false)
	}
	return out
}

// withFg returns a copy of s with the foreground slot replaced.
func (s Style) withFg(spec Spec) Style {
	s.Fg = spec
	return s
}

// withBg returns a copy of s with the background slot replaced.
func (s Style) withBg(spec Spec) Style {
	s.Bg = spec
	return s
}
