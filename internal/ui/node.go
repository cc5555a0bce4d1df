package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node types.
const (
	TypePanel  = "panel"
	TypeLabel  = "label"
	TypeButton = "button"
	TypeSlider = "slider"
)

// Node is a single UI element. Class and ID match CSS selectors. Sliders carry a value
// within [Min, Max]; buttons report clicks by ID.
type Node struct {
	Type   string
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string
	Hidden bool

	Value    float32
	Min, Max float32
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}

// Contains reports whether the point lies inside the node's bounds.
func (n *Node) Contains(x, y float32) bool {
	b := n.Bounds
	return !n.Hidden && x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Fraction returns the slider position in [0, 1].
func (n *Node) Fraction() float32 {
	if n.Max <= n.Min {
		return 0
	}
	f := (n.Value - n.Min) / (n.Max - n.Min)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// valueAt maps a screen x coordinate on a slider to a value in [Min, Max].
func (n *Node) valueAt(x float32) float32 {
	if n.Bounds.Width <= 0 {
		return n.Value
	}
	f := (x - n.Bounds.X) / n.Bounds.Width
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return n.Min + f*(n.Max-n.Min)
}
