package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/grovetools/jsonview/internal/format"
	"github.com/grovetools/jsonview/internal/theme"
)

// keyPrefix builds the "key: " (or "idx: ") header every row starts with,
// rendered in the theme's key color and excluded from search only for its
// quoting/colon punctuation — the key text itself stays searchable.
func keyPrefix(v *V, th theme.Theme) format.F {
	if v.Parent == nil {
		return nil
	}
	if v.Parent.Kind == KindArray {
		return format.Cat(
			format.Fg(th.Key, format.Lit(v.Key)),
			format.Excl(format.Fg(th.Muted, format.Lit(": "))),
		)
	}
	return format.Cat(
		format.Excl(format.Fg(th.Muted, format.Lit(`"`))),
		format.Fg(th.Key, format.Lit(v.Key)),
		format.Cat(format.Excl(format.Fg(th.Muted, format.Lit(`": `)))),
	)
}

// scalarText renders a scalar's value as plain text.
func scalarText(v *V) string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case KindNull:
		return "null"
	default:
		return ""
	}
}

func scalarF(v *V, th theme.Theme) format.F {
	spec := th.ForKind(v.Kind.String())
	if v.Kind == KindString {
		escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`).Replace(v.Str)
		return format.Cat(
			format.Excl(format.Fg(spec, format.Lit(`"`))),
			format.Fg(spec, format.Lit(escaped)),
			format.Excl(format.Fg(spec, format.Lit(`"`))),
		)
	}
	return format.Fg(spec, format.Lit(scalarText(v)))
}

func summary(v *V) string {
	n := v.NumChildren()
	noun := "items"
	if v.Kind == KindObject {
		noun = "keys"
	}
	if n == 1 {
		noun = strings.TrimSuffix(noun, "s")
	}
	return fmt.Sprintf("%d %s", n, noun)
}

// ContentF is the styled full representation of v used when v is
// collapsed (or is a leaf, which is always "collapsed" in the sense that
// it has no children to show).
func ContentF(v *V, th theme.Theme) format.F {
	prefix := keyPrefix(v, th)
	switch v.Kind {
	case KindObject:
		return format.Cat(prefix,
			format.Excl(format.Fg(th.Muted, format.Lit("{"+summary(v)+"}"))))
	case KindArray:
		return format.Cat(prefix,
			format.Excl(format.Fg(th.Muted, format.Lit("["+summary(v)+"]"))))
	default:
		return format.Cat(prefix, scalarF(v, th))
	}
}

// PlaceholderF is the shortened representation shown for v's own row once
// v is expanded: just the key header plus an opening bracket, since its
// children render as their own rows beneath it.
func PlaceholderF(v *V, th theme.Theme) format.F {
	prefix := keyPrefix(v, th)
	switch v.Kind {
	case KindObject:
		return format.Cat(prefix, format.Excl(format.Fg(th.Muted, format.Lit("{"))))
	case KindArray:
		return format.Cat(prefix, format.Excl(format.Fg(th.Muted, format.Lit("["))))
	default:
		return ContentF(v, th)
	}
}

// IsExpandable reports whether v has children to show.
func (v *V) IsExpandable() bool {
	return v.Kind == KindObject || v.Kind == KindArray
}
