package ui

import (
	"strconv"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Rule pairs one simple selector (".param", "#params") with its raw declarations.
type Rule struct {
	Selector string
	Props    map[string]string
}

// Stylesheet holds rules in source order; later rules win.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle is a node's resolved look. LeftPct/TopPct hold a 0-100 percentage, or -1 when
// Left/Top are pixels. Nodes that are not Positioned keep the bounds their owner assigns, as
// Controls does for slider rows.
type ComputedStyle struct {
	Background rl.Color
	Color      rl.Color
	Border     rl.Color
	Accent     rl.Color // slider fill
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	LeftPct    int32
	TopPct     int32
	Positioned bool
	Padding    int32
	FontSize   int32
}

// DefaultComputedStyle is the style of a node no rule matches: transparent, white text, unsized.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: rl.NewColor(0, 0, 0, 0),
		Color:      rl.White,
		Border:     rl.Black,
		Accent:     rl.NewColor(47, 164, 231, 255),
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   defaultFontSize,
	}
}

// ParseHexColor parses #RGB, #RRGGBB or #RRGGBBAA. Anything else yields rl.Black and false.
func ParseHexColor(s string) (rl.Color, bool) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return rl.Black, false
	}
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return rl.Black, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rl.Black, false
	}
	return rl.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), true
}

// ParsePx parses "12px" or a bare "12".
func ParsePx(s string) (int32, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px")))
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in [0, 100].
func ParsePct(s string) (int32, bool) {
	num, ok := strings.CutSuffix(strings.TrimSpace(s), "%")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num)
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// property applies one declaration to a style. It leaves the style alone when the value
// does not parse.
type property func(out *ComputedStyle, v string)

func colorProp(field func(*ComputedStyle) *rl.Color) property {
	return func(out *ComputedStyle, v string) {
		if c, ok := ParseHexColor(v); ok {
			*field(out) = c
		}
	}
}

func sizeProp(field func(*ComputedStyle) *int32, least int32) property {
	return func(out *ComputedStyle, v string) {
		if n, ok := ParsePx(v); ok && n >= least {
			*field(out) = n
		}
	}
}

// positionProp accepts a percentage or pixels; either marks the node as positioned.
func positionProp(px, pct func(*ComputedStyle) *int32) property {
	return func(out *ComputedStyle, v string) {
		if n, ok := ParsePct(v); ok {
			*pct(out) = n
		} else if n, ok := ParsePx(v); ok {
			*px(out) = n
		} else {
			return
		}
		out.Positioned = true
	}
}

var properties = map[string]property{
	"background":   colorProp(func(s *ComputedStyle) *rl.Color { return &s.Background }),
	"color":        colorProp(func(s *ComputedStyle) *rl.Color { return &s.Color }),
	"accent-color": colorProp(func(s *ComputedStyle) *rl.Color { return &s.Accent }),
	"border": func(out *ComputedStyle, v string) {
		if c, ok := ParseHexColor(v); ok {
			out.Border, out.HasBorder = c, true
		}
	},
	"font-size": sizeProp(func(s *ComputedStyle) *int32 { return &s.FontSize }, 1),
	"width":     sizeProp(func(s *ComputedStyle) *int32 { return &s.Width }, 0),
	"height":    sizeProp(func(s *ComputedStyle) *int32 { return &s.Height }, 0),
	"padding":   sizeProp(func(s *ComputedStyle) *int32 { return &s.Padding }, 0),
	"left": positionProp(
		func(s *ComputedStyle) *int32 { return &s.Left },
		func(s *ComputedStyle) *int32 { return &s.LeftPct }),
	"top": positionProp(
		func(s *ComputedStyle) *int32 { return &s.Top },
		func(s *ComputedStyle) *int32 { return &s.TopPct }),
}

// ResolveProps builds a ComputedStyle from merged declarations. Unknown properties are ignored.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		if apply, ok := properties[k]; ok {
			apply(&out, strings.TrimSpace(v))
		}
	}
	return out
}
