package ui

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
)

// ParseCSS parses a stylesheet. Only plain .class and #id selectors are kept; at-rules and
// compound selectors are ignored. Later rules override earlier ones for the same node.
func ParseCSS(content string) (*Stylesheet, error) {
	parsed, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("css: %w", err)
	}
	sheet := &Stylesheet{}
	for _, r := range parsed.Rules {
		if r.Kind == css.AtRule || len(r.Declarations) == 0 {
			continue
		}
		props := make(map[string]string, len(r.Declarations))
		for _, d := range r.Declarations {
			props[strings.ToLower(d.Property)] = d.Value
		}
		for _, sel := range r.Selectors {
			sel = strings.TrimSpace(sel)
			if !simpleSelector(sel) {
				continue
			}
			sheet.Rules = append(sheet.Rules, Rule{Selector: sel, Props: props})
		}
	}
	return sheet, nil
}

func simpleSelector(sel string) bool {
	if len(sel) < 2 || (sel[0] != '.' && sel[0] != '#') {
		return false
	}
	return !strings.ContainsAny(sel[1:], " .#>:+~[")
}

// HasID reports whether the sheet has a rule for #id.
func (s *Stylesheet) HasID(id string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.Rules {
		if r.Selector == "#"+id {
			return true
		}
	}
	return false
}
