// Package shading describes the Phong appearance installed on every mesh of a loaded model.
// Parameters are fixed per mesh at load time. Evaluate mirrors the GPU shader on the CPU.
package shading

// Params is one mesh's Phong configuration. Light and surface positions are in eye space.
type Params struct {
	LightPosition [3]float32
	Ambient       [4]float32
	Diffuse       [4]float32
	Specular      [4]float32
	Shininess     float32
	// MaterialColor tints ambient and diffuse when set. Nil means untinted (white).
	MaterialColor *[4]float32
}

var white = [4]float32{1, 1, 1, 1}

// Default returns the light at (100,100,100), ambient 0.1, diffuse 1.0, specular 0.9 and shininess 30.
func Default() Params {
	return Params{
		LightPosition: [3]float32{100, 100, 100},
		Ambient:       [4]float32{0.1, 0.1, 0.1, 1},
		Diffuse:       [4]float32{1, 1, 1, 1},
		Specular:      [4]float32{0.9, 0.9, 0.9, 1},
		Shininess:     30,
	}
}

// Tint returns the material color multiplied into ambient and diffuse.
func (p Params) Tint() [4]float32 {
	if p.MaterialColor == nil {
		return white
	}
	return *p.MaterialColor
}

// Tinted reports whether the mesh's own color participates in shading.
func (p Params) Tinted() bool {
	return p.MaterialColor != nil
}
