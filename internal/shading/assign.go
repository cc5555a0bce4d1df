package shading

// Part is one drawable sub-part of a loaded model.
type Part interface {
	// BaseColor is the part's original flat color (RGBA, 0..1).
	BaseColor() [4]float32
	// SetShading replaces the part's appearance with Phong shading.
	SetShading(p Params)
}

// Surface exposes a loaded model's drawable parts.
type Surface interface {
	Parts() []Part
}

// Assigner installs Phong shading on every part of a surface. With Tint set, each part keeps
// its original flat color as a multiplicative tint; otherwise original colors are ignored.
type Assigner struct {
	Base Params
	Tint bool
}

// NewAssigner returns an assigner using Default parameters.
func NewAssigner(tint bool) *Assigner {
	return &Assigner{Base: Default(), Tint: tint}
}

// ForPart returns the parameters for a part whose original color is base.
func (a *Assigner) ForPart(base [4]float32) Params {
	p := a.Base
	p.MaterialColor = nil
	if a.Tint {
		c := [4]float32{base[0], base[1], base[2], 1}
		p.MaterialColor = &c
	}
	return p
}

// Assign shades every part of s and returns how many parts it touched.
func (a *Assigner) Assign(s Surface) int {
	parts := s.Parts()
	for _, part := range parts {
		part.SetShading(a.ForPart(part.BaseColor()))
	}
	return len(parts)
}
