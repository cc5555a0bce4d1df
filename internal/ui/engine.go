package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"scene-viewer/internal/input"
)

const defaultFontSize = 20

// ActionKind is what a pointer interaction with a widget produced.
type ActionKind int

const (
	Clicked ActionKind = iota
	Changed
)

// Action is reported by Handle: a button click or a slider value change.
type Action struct {
	Kind  ActionKind
	ID    string
	Value float32
}

// Engine holds the current stylesheet and nodes, lays them out and draws them with raylib.
// Draw order is node order; hit testing walks the nodes back to front so the topmost wins.
// Resolved styles are cached and only recomputed when sheet or nodes change.
type Engine struct {
	sheet        *Stylesheet
	nodes        []*Node
	cachedStyles []ComputedStyle
	cacheValid   bool
	font         rl.Font

	active *Node // slider being dragged
}

// New creates an empty UI engine (no stylesheet, no nodes).
func New() *Engine {
	return &Engine{}
}

// LoadCSS loads and parses a CSS file from path. Replaces the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. from embedded CSS).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.cacheValid = false
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// LoadFont loads a TTF font from path for text rendering. If loading fails, the engine keeps using the default font.
// Call after the window exists.
func (e *Engine) LoadFont(path string) error {
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		return os.ErrNotExist
	}
	e.unloadFont()
	e.font = f
	return nil
}

// Font returns the loaded font; its texture ID is zero when none is loaded.
func (e *Engine) Font() rl.Font {
	return e.font
}

func (e *Engine) unloadFont() {
	if e.font.Texture.ID != 0 {
		rl.UnloadFont(e.font)
		e.font = rl.Font{}
	}
}

// Close releases the font, if any.
func (e *Engine) Close() {
	e.unloadFont()
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(n *Node) {
	e.nodes = append(e.nodes, n)
	e.cacheValid = false
}

// Node returns the node with the given id, or nil.
func (e *Engine) Node(id string) *Node {
	for _, n := range e.nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// Style returns the resolved style for n. The zero style is returned for nodes not owned by the engine.
func (e *Engine) Style(n *Node) ComputedStyle {
	e.resolve()
	for i, m := range e.nodes {
		if m == n {
			return e.cachedStyles[i]
		}
	}
	return DefaultComputedStyle()
}

// resolveProps returns merged properties for a node (class and id matched; last wins).
func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := false
		switch sel[0] {
		case '.':
			matches = n.Class == sel[1:]
		case '#':
			matches = n.ID == sel[1:]
		}
		if matches {
			for k, v := range rule.Props {
				merged[k] = v
			}
		}
	}
	return merged
}

func (e *Engine) resolve() {
	if e.cacheValid {
		return
	}
	e.cachedStyles = make([]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.cachedStyles[i] = ResolveProps(e.resolveProps(n))
	}
	e.cacheValid = true
}

// Layout updates node bounds from style for the given screen size. Nodes without a declared
// position keep their current X/Y; a declared width/height always applies.
func (e *Engine) Layout(screenW, screenH int32) {
	e.resolve()
	for i, n := range e.nodes {
		style := e.cachedStyles[i]
		if style.Width > 0 {
			n.Bounds.Width = float32(style.Width)
		}
		if style.Height > 0 {
			n.Bounds.Height = float32(style.Height)
		}
		if !style.Positioned {
			continue
		}
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)
		x, y := style.Left, style.Top
		if style.LeftPct >= 0 {
			x = (screenW - w) * style.LeftPct / 100
		}
		if style.TopPct >= 0 {
			y = (screenH - h) * style.TopPct / 100
		}
		n.Bounds.X = float32(x)
		n.Bounds.Y = float32(y)
	}
}

// NodeAt returns the topmost visible node under the point, or nil.
func (e *Engine) NodeAt(x, y float32) *Node {
	for i := len(e.nodes) - 1; i >= 0; i-- {
		if e.nodes[i].Contains(x, y) {
			return e.nodes[i]
		}
	}
	return nil
}

// Handle routes a pointer event to the widgets. consumed is true when the event landed on
// the UI and must not reach the camera controller.
func (e *Engine) Handle(ev input.Event) (actions []Action, consumed bool) {
	switch ev.Kind {
	case input.PointerDown:
		n := e.NodeAt(ev.X, ev.Y)
		if n == nil {
			return nil, false
		}
		switch n.Type {
		case TypeButton:
			return []Action{{Kind: Clicked, ID: n.ID}}, true
		case TypeSlider:
			e.active = n
			return e.slide(n, ev.X), true
		}
		return nil, true
	case input.PointerMove:
		if e.active == nil {
			return nil, false
		}
		return e.slide(e.active, ev.X), true
	case input.PointerUp:
		if e.active == nil {
			return nil, false
		}
		e.active = nil
		return nil, true
	case input.Wheel:
		return nil, e.NodeAt(ev.X, ev.Y) != nil
	}
	return nil, false
}

func (e *Engine) slide(n *Node, x float32) []Action {
	v := n.valueAt(x)
	if v == n.Value {
		return nil
	}
	n.Value = v
	return []Action{{Kind: Changed, ID: n.ID, Value: v}}
}

// Draw draws all visible nodes: background, border, slider fill, then text.
func (e *Engine) Draw() {
	e.resolve()
	for i, n := range e.nodes {
		if n.Hidden {
			continue
		}
		style := e.cachedStyles[i]
		x := int32(n.Bounds.X)
		y := int32(n.Bounds.Y)
		w := int32(n.Bounds.Width)
		h := int32(n.Bounds.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if n.Type == TypeSlider {
			fill := int32(float32(w) * n.Fraction())
			rl.DrawRectangle(x, y, fill, h, style.Accent)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			e.drawText(n.Text, x+style.Padding, y+style.Padding, style)
		}
	}
}

func (e *Engine) drawText(text string, x, y int32, style ComputedStyle) {
	if e.font.Texture.ID != 0 {
		rl.DrawTextEx(e.font, text, rl.NewVector2(float32(x), float32(y)), float32(style.FontSize), 1, style.Color)
		return
	}
	rl.DrawText(text, x, y, style.FontSize, style.Color)
}
