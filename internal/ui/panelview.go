package ui

import (
	_ "embed"
	"fmt"
	"strings"

	"scene-viewer/internal/input"
	"scene-viewer/internal/panel"
)

//go:embed default.css
var defaultCSS string

// DefaultStylesheet returns the built-in layout, which declares every step button.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(defaultCSS)
	if err != nil {
		panic(err)
	}
	return sheet
}

const (
	paramsID     = "params"
	paramsTitle  = "params-title"
	paramClass   = "param"
	stepClass    = "step"
	zDistID      = "zdist"
	sliderPrefix = "param-"
	rowGap       = 4
)

var stepLabels = map[input.ButtonID]string{
	input.IncreaseZ:     "Z +",
	input.DecreaseZ:     "Z -",
	input.IncreaseR:     "R +",
	input.DecreaseR:     "R -",
	input.IncreaseTheta: "Theta +",
	input.DecreaseTheta: "Theta -",
	input.IncreasePhi:   "Phi +",
	input.DecreasePhi:   "Phi -",
}

// Controls is the viewer's on-screen UI: a parameter panel with one slider per camera
// field, the step buttons present in the stylesheet, and a z-distance readout.
// It implements panel.View.
type Controls struct {
	engine  *Engine
	frame   *Node
	title   *Node
	sliders []*Node
	zLabel  *Node
	buttons []input.ButtonID
}

// NewControls builds the widgets on e. Call after the stylesheet is set: only buttons whose
// #id has a rule are created.
func NewControls(e *Engine) *Controls {
	c := &Controls{engine: e}
	c.frame = NewNode(TypePanel, "", paramsID, "")
	e.AddNode(c.frame)
	c.title = NewNode(TypeLabel, "", paramsTitle, "Camera")
	e.AddNode(c.title)
	for _, f := range panel.Fields {
		n := NewNode(TypeSlider, paramClass, sliderPrefix+f.Name, f.Name)
		n.Min, n.Max = f.Range.Min, f.Range.Max
		c.sliders = append(c.sliders, n)
		e.AddNode(n)
	}
	for _, id := range input.Buttons {
		if !e.Stylesheet().HasID(string(id)) {
			continue
		}
		e.AddNode(NewNode(TypeButton, stepClass, string(id), stepLabels[id]))
		c.buttons = append(c.buttons, id)
	}
	c.zLabel = NewNode(TypeLabel, "", zDistID, "")
	e.AddNode(c.zLabel)
	return c
}

// Buttons returns the step buttons that were created.
func (c *Controls) Buttons() []input.ButtonID {
	return c.buttons
}

// Show implements panel.View.
func (c *Controls) Show(values []panel.Value) {
	for _, v := range values {
		n := c.engine.Node(sliderPrefix + v.Name)
		if n == nil {
			continue
		}
		n.Min, n.Max, n.Value = v.Min, v.Max, v.Value
		n.Text = fmt.Sprintf("%s  %.3f", v.Name, v.Value)
	}
}

// ShowZ updates the z-distance readout.
func (c *Controls) ShowZ(z float32) {
	c.zLabel.Text = fmt.Sprintf("z distance  %.2f", z)
}

// Layout positions every widget for the screen size; slider rows stack inside the panel frame.
func (c *Controls) Layout(screenW, screenH int32) {
	e := c.engine
	rowH := float32(e.Style(c.sliders[0]).Height)
	titleH := float32(e.Style(c.title).Height)
	const inset = 6
	c.frame.Bounds.Height = titleH + float32(len(c.sliders))*(rowH+rowGap) + inset
	e.Layout(screenW, screenH)

	fx, fy, fw := c.frame.Bounds.X, c.frame.Bounds.Y, c.frame.Bounds.Width
	c.title.Bounds.X, c.title.Bounds.Y, c.title.Bounds.Width = fx, fy, fw
	y := fy + titleH
	for _, n := range c.sliders {
		n.Bounds.X = fx + inset
		n.Bounds.Y = y
		n.Bounds.Width = fw - 2*inset
		n.Bounds.Height = rowH
		y += rowH + rowGap
	}
}

// Actions translates widget actions into panel edits and step events.
func Actions(actions []Action, p *panel.Panel) (steps []input.Event, err error) {
	for _, a := range actions {
		switch a.Kind {
		case Clicked:
			if input.IsButton(a.ID) {
				steps = append(steps, input.PressButton(input.ButtonID(a.ID)))
			}
		case Changed:
			if name, ok := strings.CutPrefix(a.ID, sliderPrefix); ok {
				if e := p.Edit(name, a.Value); e != nil {
					err = e
				}
			}
		}
	}
	return steps, err
}
