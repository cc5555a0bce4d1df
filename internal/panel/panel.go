// Package panel binds the camera parameters to an editable display. Edits flow from the
// display into orbit.State; Refresh pushes state changes made elsewhere back to the display.
package panel

import (
	"fmt"

	"scene-viewer/internal/orbit"
)

// Field is one editable camera parameter with its declared range.
type Field struct {
	Name  string
	Range orbit.Range
	get   func(*orbit.State) float32
	set   func(*orbit.State, float32)
}

// Fields are the live-editable parameters, in display order.
var Fields = []Field{
	{"znear", orbit.NearRange, func(s *orbit.State) float32 { return s.Near }, (*orbit.State).SetNear},
	{"zfar", orbit.FarRange, func(s *orbit.State) float32 { return s.Far }, (*orbit.State).SetFar},
	{"radius", orbit.RadiusRange, func(s *orbit.State) float32 { return s.Radius }, (*orbit.State).SetRadius},
	{"theta", orbit.ThetaRange, func(s *orbit.State) float32 { return s.Theta }, (*orbit.State).SetTheta},
	{"phi", orbit.PhiRange, func(s *orbit.State) float32 { return s.Phi }, (*orbit.State).SetPhi},
	{"fov", orbit.FOVRange, func(s *orbit.State) float32 { return s.FOV }, (*orbit.State).SetFOV},
	{"aspect", orbit.AspectRange, func(s *orbit.State) float32 { return s.Aspect }, (*orbit.State).SetAspect},
}

// Lookup returns the field with the given name.
func Lookup(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// Value is a field's displayed value.
type Value struct {
	Name     string
	Min, Max float32
	Value    float32
}

// View displays values. Show is called with every field on each refresh.
type View interface {
	Show(values []Value)
}

// Panel is the two-way binding between a State and a View.
type Panel struct {
	state  *orbit.State
	view   View
	onEdit func(field string)
}

// New binds state to view. view may be nil until SetView.
func New(state *orbit.State, view View) *Panel {
	return &Panel{state: state, view: view}
}

// SetView attaches the display and refreshes it.
func (p *Panel) SetView(view View) {
	p.view = view
	p.Refresh()
}

// OnEdit registers the callback run after each successful edit (typically Controller.Apply).
func (p *Panel) OnEdit(fn func(field string)) {
	p.onEdit = fn
}

// Values returns the current value of every field.
func (p *Panel) Values() []Value {
	out := make([]Value, len(Fields))
	for i, f := range Fields {
		out[i] = Value{Name: f.Name, Min: f.Range.Min, Max: f.Range.Max, Value: f.get(p.state)}
	}
	return out
}

// Edit sets a field from the display side. The value is limited to the field's range before
// the state's own clamps run. Unknown field names are an error.
func (p *Panel) Edit(name string, value float32) error {
	f, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("panel: unknown field %q", name)
	}
	f.set(p.state, f.Range.Clamp(value))
	if p.onEdit != nil {
		p.onEdit(name)
	}
	p.Refresh()
	return nil
}

// Refresh pushes the state to the view. It satisfies input.Display.
func (p *Panel) Refresh() {
	if p.view == nil {
		return
	}
	p.view.Show(p.Values())
}
