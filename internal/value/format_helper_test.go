package value

import (
	"strings"

	"github.com/grovetools/jsonview/internal/format"
)

// formatHelper renders f at a generous width and strips ANSI escapes, for
// assertions that only care about the visible text.
func formatHelper(f format.F) string {
	p := format.Format(f, 200)
	var b strings.Builder
	inEsc := false
	for _, line := range p.Value {
		for _, r := range line {
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
		b.WriteRune('\n')
	}
	return b.String()
}
