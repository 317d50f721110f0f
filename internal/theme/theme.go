// Package theme assigns the named Spec values from internal/format to the
// semantic roles the value adapter and viewport paint with. Because the
// renderer writes raw ANSI itself, a lipgloss.Color only lives here long
// enough to name a palette entry in a "Kanagawa Dragon" style before being
// lowered to a 256-colour format.Spec.
package theme

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/jsonview/internal/format"
)

// Palette, named after their Kanagawa Dragon color roles.
var (
	paletteCyan   = lipgloss.Color("#7E9CD8") // crystalBlue
	paletteGreen  = lipgloss.Color("#98BB6C") // springGreen
	paletteYellow = lipgloss.Color("#FF9E3B") // roninYellow
	paletteViolet = lipgloss.Color("#957FB8") // oniViolet
	paletteRed    = lipgloss.Color("#FF5D62") // peachRed
	paletteGray   = lipgloss.Color("#727169") // fujiGray
	paletteYank   = lipgloss.Color("#E6C384") // carpYellow, search-highlight bg
	paletteInk    = lipgloss.Color("#1D1C19") // dragonBlack2, search-highlight fg
	paletteWave   = lipgloss.Color("#223249") // waveBlue1, selected-row bg
)

// Theme is the palette a viewport paints tree content with.
type Theme struct {
	Key         format.Spec // object/array member keys
	String      format.Spec // string values
	Number      format.Spec // numeric values
	Bool        format.Spec // boolean values
	Null        format.Spec // the null literal
	Muted       format.Spec // tree glyphs, brackets, placeholders
	Highlight   format.Spec // search match background
	HighlightFg format.Spec // search match foreground
	SelectedBg  format.Spec // selected-row background
}

// Default lowers the named lipgloss palette above into 256-colour specs,
// one per semantic role.
var Default = Theme{
	Key:         lower(paletteCyan),
	String:      lower(paletteGreen),
	Number:      lower(paletteYellow),
	Bool:        lower(paletteViolet),
	Null:        lower(paletteRed),
	Muted:       lower(paletteGray),
	Highlight:   lower(paletteYank),
	HighlightFg: lower(paletteInk),
	SelectedBg:  lower(paletteWave),
}

// lower converts a lipgloss hex Color to an xterm 256-colour index in the
// standard 6x6x6 color cube (indices 16-231); the 24-step grayscale ramp
// (232-255) is never chosen.
func lower(c lipgloss.Color) format.Spec {
	r, g, b, ok := parseHex(string(c))
	if !ok {
		return format.Spec{}
	}
	return format.ANSI256(rgbTo256(r, g, b))
}

func parseHex(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	rv, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	gv, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	bv, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0, false
	}
	return int(rv), int(gv), int(bv), true
}

func rgbTo256(r, g, b int) int {
	toCube := func(v int) int {
		if v < 48 {
			return 0
		}
		if v < 115 {
			return 1
		}
		return (v - 35) / 40
	}
	cr, cg, cb := toCube(r), toCube(g), toCube(b)
	if cr > 5 {
		cr = 5
	}
	if cg > 5 {
		cg = 5
	}
	if cb > 5 {
		cb = 5
	}
	return 16 + 36*cr + 6*cg + cb
}

// WithOverrides returns a copy of t with any slot named in overrides (by
// the names "key", "string", "number", "bool", "null", "muted",
// "highlight", "selected_bg") replaced by the 256-colour index it parses
// to. Unknown names or unparsable values are ignored — a malformed config
// entry should not prevent startup.
func (t Theme) WithOverrides(overrides map[string]string) Theme {
	for name, value := range overrides {
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 || n > 255 {
			continue
		}
		spec := format.ANSI256(n)
		switch name {
		case "key":
			t.Key = spec
		case "string":
			t.String = spec
		case "number":
			t.Number = spec
		case "bool":
			t.Bool = spec
		case "null":
			t.Null = spec
		case "muted":
			t.Muted = spec
		case "highlight":
			t.Highlight = spec
		case "selected_bg":
			t.SelectedBg = spec
		}
	}
	return t
}

// ForKind returns the Spec for a value kind name as used by internal/value.
func (t Theme) ForKind(kind string) format.Spec {
	switch kind {
	case "string":
		return t.String
	case "integer", "float":
		return t.Number
	case "boolean":
		return t.Bool
	case "null":
		return t.Null
	default:
		return t.Muted
	}
}
